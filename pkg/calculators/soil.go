package calculators

import (
	"github.com/aretw0/agrocalc/pkg/calc"
	"github.com/aretw0/agrocalc/pkg/domain"
	"github.com/aretw0/agrocalc/pkg/dsl"
)

const MagnesiumAppliedID = "MAGNESIUM_APPLIED"

type magnesiumInput struct {
	Dose float64 `mapstructure:"dose"`
	MgO  float64 `mapstructure:"mgo"`
}

func magnesiumApplied(in magnesiumInput) domain.ResultSequence {
	mgo := in.Dose * KilogramsPerTon * in.MgO / 100

	return domain.ResultSequence{
		domain.Value("Óxido de Magnésio (MgO) Aplicado", domain.Q(mgo, domain.UnitKgPerHectare)),
		domain.Value("Magnésio Elementar (Mg) Aplicado", domain.Q(mgo*MgOToMg, domain.UnitKgPerHectare)),
	}
}

// MagnesiumApplied returns the module computing Mg supplied by a liming dose.
func MagnesiumApplied() *calc.Module {
	return &calc.Module{
		ModuleDescriptor: domain.ModuleDescriptor{
			ID:          MagnesiumAppliedID,
			Name:        "Magnésio Aplicado ao Solo",
			Description: "Calcula Mg aplicado via calcário.",
		},
		Strategies: []calc.Strategy{{
			ID:   calc.DefaultStrategy,
			Name: "Magnésio (Mg) Aplicado ao Solo via Calcário",
			Fields: dsl.New().
				Number("dose", "Quantidade de Calcário Aplicada").Unit(domain.UnitTonPerHectare).Default("2").NonNegative().
				Number("mgo", "Teor de Óxido de Magnésio (MgO) no Calcário").Default("12").Percent().
				MustBuild(),
			Formula: "MgO Aplicado (kg/ha) = Qtd. Calcário (t/ha) × 1000 × (Teor MgO % / 100)\n" +
				"Mg Elementar (kg/ha) = MgO Aplicado (kg/ha) × 0,60304",
			Compute: calc.Typed(magnesiumApplied),
		}},
		Notes: []string{
			"Este cálculo ajuda a quantificar o aporte de magnésio ao solo através da calagem, especialmente com calcários dolomíticos ou magnesianos.",
			"O teor de MgO é uma informação importante presente na análise do corretivo.",
		},
	}
}
