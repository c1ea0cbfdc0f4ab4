package calculators

import (
	"fmt"
	"math"

	"github.com/aretw0/agrocalc/pkg/calc"
	"github.com/aretw0/agrocalc/pkg/domain"
	"github.com/aretw0/agrocalc/pkg/dsl"
	"github.com/aretw0/agrocalc/pkg/locale"
)

const (
	LimingID = "LIMING_REQUIREMENT"

	StrategyBaseSaturation domain.StrategyID = "base_saturation"
	StrategyCECPercentage  domain.StrategyID = "cec_percentage"
)

// Result labels of the liming module. Both strategies lead with NC and Qta.
const (
	LabelLimeNeed  = "Necessidade de Calcário (NC)"
	LabelLimeDose  = "Calagem Corrigida (Qta)"
	LabelCaDeficit = "Déficit de Ca"
	LabelMgDeficit = "Déficit de Mg"
	LabelCaDose    = "Dose para suprir Ca"
	LabelMgDose    = "Dose para suprir Mg"
)

func limingSatisfied(v, ve float64) domain.ResultSequence {
	return domain.ResultSequence{
		domain.Value(LabelLimeNeed, domain.Q(0, domain.UnitTonPerHectare)),
		domain.Value(LabelLimeDose, domain.Q(0, domain.UnitTonPerHectare)),
		domain.Info(fmt.Sprintf(
			"A saturação por bases atual (%s%%) já é igual ou superior à desejada (%s%%). Não é necessário aplicar calcário.",
			locale.FormatCompact(v), locale.FormatCompact(ve))),
	}
}

type baseSaturationInput struct {
	VE       float64 `mapstructure:"ve"`
	V        float64 `mapstructure:"v"`
	CTC      float64 `mapstructure:"ctc"`
	PRNT     float64 `mapstructure:"prnt"`
	Depth    float64 `mapstructure:"depth"`
	Coverage float64 `mapstructure:"coverage"`
}

// baseSaturation: NC = (VE − V)·T/100 and Qta = NC·(100/PRNT)·(depth/20)·(coverage/100).
func baseSaturation(in baseSaturationInput) domain.ResultSequence {
	if in.V >= in.VE {
		return limingSatisfied(in.V, in.VE)
	}

	nc := (in.VE - in.V) * in.CTC / 100
	qta := nc * (100 / in.PRNT) * (in.Depth / ReferenceDepthCm) * (in.Coverage / 100)

	return domain.ResultSequence{
		domain.Value(LabelLimeNeed, domain.Q(nc, domain.UnitTonPerHectare)),
		domain.Value(LabelLimeDose, domain.Q(qta, domain.UnitTonPerHectare)),
	}
}

type cecPercentageInput struct {
	CTC      float64 `mapstructure:"ctc"`
	Ca       float64 `mapstructure:"ca"`
	Mg       float64 `mapstructure:"mg"`
	CaTarget float64 `mapstructure:"ca_target"`
	MgTarget float64 `mapstructure:"mg_target"`
	CaO      float64 `mapstructure:"cao"`
	MgO      float64 `mapstructure:"mgo"`
	PRNT     float64 `mapstructure:"prnt"`
}

// nutrientDose is the corrective material (kg/ha) needed to supply one nutrient.
type nutrientDose struct {
	deficit float64 // cmolc/dm³
	need    float64 // kg/ha of element
	dose    float64 // kg/ha of material
}

// supply converts a concentration deficit into the material dose that covers it.
// ok is false when there is a deficit the material cannot supply.
func supply(required, current, kgPerCmolc, oxide, oxideToElement float64) (nutrientDose, bool) {
	deficit := math.Max(0, required-current)
	if deficit == 0 {
		return nutrientDose{}, true
	}
	need := deficit * kgPerCmolc
	fraction := oxide / 100 * oxideToElement
	if fraction <= 0 {
		return nutrientDose{deficit: deficit, need: need}, false
	}
	return nutrientDose{deficit: deficit, need: need, dose: need / fraction}, true
}

func unsatisfiable(nutrient, oxide string, need float64) domain.ResultSequence {
	return domain.Unsatisfiable(fmt.Sprintf(
		"O corretivo informado não contém %s e não pode suprir o déficit de %s (%s de %s necessários).",
		oxide, nutrient, locale.FormatQuantity(need, domain.UnitKgPerHectare), nutrient))
}

// cecPercentage reconciles the Ca and Mg deficits: each nutrient gets its own
// dose and the application covers the larger one. Doses are never summed.
func cecPercentage(in cecPercentageInput) domain.ResultSequence {
	ca, ok := supply(in.CTC*in.CaTarget/100, in.Ca, CaKgPerCmolc, in.CaO, CaOToCa)
	if !ok {
		return unsatisfiable("Ca", "CaO", ca.need)
	}
	mg, ok := supply(in.CTC*in.MgTarget/100, in.Mg, MgKgPerCmolc, in.MgO, MgOToMg)
	if !ok {
		return unsatisfiable("Mg", "MgO", mg.need)
	}

	if ca.deficit == 0 && mg.deficit == 0 {
		return domain.ResultSequence{
			domain.Value(LabelLimeNeed, domain.Q(0, domain.UnitTonPerHectare)),
			domain.Value(LabelLimeDose, domain.Q(0, domain.UnitTonPerHectare)),
			domain.Info("Os teores de Ca e Mg já atendem às participações desejadas na CTC. Não é necessário aplicar calcário."),
		}
	}

	nc := math.Max(ca.dose, mg.dose) / KilogramsPerTon
	qta := nc * 100 / in.PRNT

	return domain.ResultSequence{
		domain.Value(LabelLimeNeed, domain.Q(nc, domain.UnitTonPerHectare)),
		domain.Value(LabelLimeDose, domain.Q(qta, domain.UnitTonPerHectare)),
		domain.Value(LabelCaDeficit, domain.Q(ca.deficit, domain.UnitCmolcPerDm3)),
		domain.Value(LabelMgDeficit, domain.Q(mg.deficit, domain.UnitCmolcPerDm3)),
		domain.Value(LabelCaDose, domain.Q(ca.dose/KilogramsPerTon, domain.UnitTonPerHectare)),
		domain.Value(LabelMgDose, domain.Q(mg.dose/KilogramsPerTon, domain.UnitTonPerHectare)),
	}
}

// Liming returns the dual-strategy liming requirement module.
func Liming() *calc.Module {
	return &calc.Module{
		ModuleDescriptor: domain.ModuleDescriptor{
			ID:          LimingID,
			Name:        "Necessidade de Calagem",
			Description: "Calcula a quantidade de calcário (em toneladas por hectare) necessária para corrigir a acidez do solo.",
		},
		Strategies: []calc.Strategy{
			{
				ID:   StrategyBaseSaturation,
				Name: "Saturação por bases",
				Fields: dsl.New().
					Number("ve", "Saturação por Bases Desejada (VE)").Default("70").Percent().
					Number("v", "Saturação por Bases Atual do Solo (V)").Default("50").Percent().
					Number("ctc", "CTC a pH 7,0 (T)").Unit(domain.UnitCmolcPerDm3).Default("7").Positive().
					Number("prnt", "Poder Relativo de Neutralização Total (PRNT)").Unit(domain.UnitPercent).Default("80").Positive().
					Number("depth", "Profundidade de Incorporação").Unit(domain.UnitCentimeter).Default("20").Positive().
					Number("coverage", "Porcentagem da Área de Aplicação").Default("100").PercentPositive().
					MustBuild(),
				Formula: "NC (t/ha) = (VE − V) × T / 100\nQta (t/ha) = NC × (100 / PRNT) × (Profundidade / 20) × (Área % / 100)",
				Compute: calc.Typed(baseSaturation),
			},
			{
				ID:   StrategyCECPercentage,
				Name: "Participação de Ca e Mg na CTC",
				Fields: dsl.New().
					Number("ctc", "CTC a pH 7,0 (T)").Unit(domain.UnitCmolcPerDm3).Default("7").Positive().
					Number("ca", "Teor de Ca no solo").Unit(domain.UnitCmolcPerDm3).Default("2").NonNegative().
					Number("mg", "Teor de Mg no solo").Unit(domain.UnitCmolcPerDm3).Default("0,5").NonNegative().
					Number("ca_target", "Participação desejada de Ca na CTC").Default("60").Percent().
					Number("mg_target", "Participação desejada de Mg na CTC").Default("15").Percent().
					Number("cao", "Teor de CaO do calcário").Default("30").Percent().
					Number("mgo", "Teor de MgO do calcário").Default("15").Percent().
					Number("prnt", "Poder Relativo de Neutralização Total (PRNT)").Unit(domain.UnitPercent).Default("80").Positive().
					MustBuild(),
				Formula: "Déficit = máx(0, T × participação / 100 − teor)\n" +
					"Ca (kg/ha) = déficit × 400; Mg (kg/ha) = déficit × 240\n" +
					"Dose = nutriente ÷ (óxido / 100 × fator), fator CaO 0,7143 e MgO 0,60304\n" +
					"NC = máx(dose Ca, dose Mg); Qta = NC × 100 / PRNT",
				Compute: calc.Typed(cecPercentage),
			},
		},
		Notes: []string{
			"Se a saturação por bases atual (V%) for maior ou igual à desejada (VE%), a necessidade de calcário será zero.",
			"Recomendação para a camada de 0 a 20 cm; a profundidade ajusta a dose proporcionalmente.",
			"A dose final atende ao nutriente mais deficiente; as doses de Ca e Mg não são somadas.",
		},
	}
}
