/*
Package runner implements the interactive loop that drives the calculator engine
from a line-oriented terminal or a JSON-Lines pipe.

The runner owns no domain logic: every command becomes a domain.Event that the
engine reduces, and every resulting state is rendered through an IOHandler.

# Commands

	modules              list the catalog (same as home)
	select <ID> | #<ID>  open a module (the #form behaves like a URL fragment)
	home                 back to the catalog
	set <field> <value>  edit a field (the value may contain spaces)
	strategy <id>        switch the computation strategy
	compute              run the active strategy
	show                 render the current screen again
	report [format]      export the active session (markdown, json, yaml)
	help                 list commands
	quit | exit          leave

# Usage

	r := runner.NewRunner(
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
		runner.WithLogger(logger),
	)
	final, err := r.Run(ctx, engine, nil)
*/
package runner
