package calculators

import (
	"fmt"

	"github.com/aretw0/agrocalc/pkg/calc"
	"github.com/aretw0/agrocalc/pkg/domain"
	"github.com/aretw0/agrocalc/pkg/dsl"
	"github.com/aretw0/agrocalc/pkg/locale"
)

const (
	CoffeeLimingID = "COFFEE_LIMING"
	CoffeeYieldID  = "COFFEE_YIELD_EST"
)

const LabelCoffeeLimeNeed = "Necessidade de Calcário para Café (NC Café)"

type coffeeLimingInput struct {
	V        float64 `mapstructure:"v"`
	CTC      float64 `mapstructure:"ctc"`
	VE       float64 `mapstructure:"ve"`
	PRNT     float64 `mapstructure:"prnt"`
	Depth    float64 `mapstructure:"depth"`
	Coverage float64 `mapstructure:"coverage"`
}

func coffeeLiming(in coffeeLimingInput) domain.ResultSequence {
	if in.V >= in.VE {
		return domain.ResultSequence{
			domain.Value(LabelCoffeeLimeNeed, domain.Q(0, domain.UnitTonPerHectare)),
			domain.Info(fmt.Sprintf(
				"A saturação por bases atual (%s%%) já é igual ou superior à desejada para café (%s%%).",
				locale.FormatCompact(in.V), locale.FormatCompact(in.VE))),
		}
	}

	base := (in.VE - in.V) * in.CTC / 100
	nc := base * (100 / in.PRNT) * (in.Depth / ReferenceDepthCm) * (in.Coverage / 100)

	return domain.ResultSequence{
		domain.Value(LabelCoffeeLimeNeed, domain.Q(nc, domain.UnitTonPerHectare)),
	}
}

// CoffeeLiming returns the coffee liming module.
func CoffeeLiming() *calc.Module {
	return &calc.Module{
		ModuleDescriptor: domain.ModuleDescriptor{
			ID:          CoffeeLimingID,
			Name:        "Calagem para Café",
			Description: "Necessidade de calagem para lavouras de café.",
		},
		Strategies: []calc.Strategy{{
			ID:   calc.DefaultStrategy,
			Name: "Calagem para Café (Método Saturação por Bases)",
			Fields: dsl.New().
				Number("v", "Saturação por Bases Atual do Solo (Vatual)").Default("40").Percent().
				Number("ctc", "Capacidade de Troca Catiônica a pH 7,0 (CTC)").Unit(domain.UnitCmolcPerDm3).Default("8").Positive().
				Number("ve", "Saturação por Bases Desejada para Café (Vdesejada)").Default("60").Percent().
				Number("prnt", "Poder Relativo de Neutralização Total do Calcário (PRNT)").Unit(domain.UnitPercent).Default("85").Positive().
				Number("depth", "Profundidade de Incorporação").Unit(domain.UnitCentimeter).Default("20").Positive().
				Number("coverage", "Percentual da Área de Aplicação").Default("100").PercentPositive().
				MustBuild(),
			Formula: "NCbase (t/ha) = (Vdesejada − Vatual) × CTC / 100\n" +
				"NC Café (t/ha) = NCbase × (100 / PRNT) × (Profundidade / 20) × (Área Aplic. % / 100)",
			Compute: calc.Typed(coffeeLiming),
		}},
		Notes: []string{
			"Este cálculo visa elevar a saturação por bases do solo ao nível recomendado para o café (geralmente entre 60-70%).",
			"A profundidade de incorporação e o percentual de área de aplicação são importantes para ajustar a dose à realidade do manejo.",
			"Consulte sempre um engenheiro agrônomo para recomendações específicas baseadas na análise completa do solo e nas condições da sua lavoura.",
		},
	}
}

type coffeeYieldInput struct {
	Plants         float64 `mapstructure:"plants"`
	LitersPerPlant float64 `mapstructure:"liters_per_plant"`
	LitersPerSack  float64 `mapstructure:"liters_per_sack"`
}

func coffeeYield(in coffeeYieldInput) domain.ResultSequence {
	liters := in.Plants * in.LitersPerPlant

	return domain.ResultSequence{
		domain.Value("Produção Total Estimada (Café Cereja/Coco)", domain.Q(liters, domain.UnitLiterPerHectare)),
		domain.Value("Produtividade Estimada (Café Beneficiado)", domain.Q(liters/in.LitersPerSack, domain.UnitSackPerHectare)),
	}
}

// CoffeeYield returns the coffee yield estimate module.
func CoffeeYield() *calc.Module {
	return &calc.Module{
		ModuleDescriptor: domain.ModuleDescriptor{
			ID:          CoffeeYieldID,
			Name:        "Estimativa de Produtividade Café",
			Description: "Estima a produtividade do café.",
		},
		Strategies: []calc.Strategy{{
			ID:   calc.DefaultStrategy,
			Name: "Estimativa de Produtividade do Café",
			Fields: dsl.New().
				Number("plants", "Nº de Plantas de Café por Hectare").Unit(domain.UnitPlantsPerHectare).Default("4000").Positive().
				Number("liters_per_plant", "Produção Média por Planta").Unit(domain.UnitLiterPerPlant).Default("5").NonNegative().
				Number("liters_per_sack", "Rendimento Médio").Unit(domain.UnitLiterPerSack).Default("480").Positive().
				MustBuild(),
			Formula: "Total Litros/ha = Nº Plantas/ha × Litros/planta\nProdutividade (sc/ha) = Total Litros/ha / Rendimento (Litros/saca)",
			Compute: calc.Typed(coffeeYield),
		}},
		Notes: []string{
			"Esta é uma estimativa. A produção real depende de muitos fatores como variedade, idade das plantas, tratos culturais, clima e colheita.",
			"Para \"Produção Média por Planta\", faça uma amostragem representativa na lavoura, colhendo e medindo o volume de algumas plantas.",
			"O \"Rendimento\" é um fator crucial e pode variar significativamente (ex: 360-600 L/saca). Use um valor realista para sua região e tipo de processamento.",
		},
	}
}
