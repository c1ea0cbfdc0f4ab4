/*
Package agrocalc is a catalog of agronomic calculators: soil correction, seeding,
spraying calibration and yield or loss estimates.

Each calculator (a module) declares its input fields, validates the raw text the
user typed, runs a pure closed-form computation and returns an ordered list of
labeled, unit-tagged results. Modules may offer more than one computation
strategy; liming, for instance, can be computed by base saturation or by the
share of Ca and Mg in the soil CEC.

# Architecture

The core is a single-threaded reducer over a small state (the selected module and
its session). Presentation layers (terminal, HTTP, MCP) feed it events and render
its views. Selection can be bound to an external address fragment, which is the
source of truth on start.

# Usage

One-shot computation:

	eng, err := agrocalc.New()
	if err != nil {
		log.Fatal(err)
	}

	seq, err := eng.Compute(ctx, "LIMING_REQUIREMENT", "base_saturation", domain.RawInputSet{
		"ve": "70", "v": "50", "ctc": "7", "prnt": "80", "depth": "20", "coverage": "100",
	})

Interactive flow:

	state := domain.NewState()
	state, _ = eng.Dispatch(ctx, state, domain.Event{Type: domain.EventModuleSelect, Module: "HARVEST_LOSS"})
	state, _ = eng.Dispatch(ctx, state, domain.Event{Type: domain.EventFieldEdit, Field: "grains", Value: "30"})
	state, _ = eng.Dispatch(ctx, state, domain.Event{Type: domain.EventCompute})
	view, _ := eng.Render(ctx, state)
*/
package agrocalc
