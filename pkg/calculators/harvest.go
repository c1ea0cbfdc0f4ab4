package calculators

import (
	"fmt"

	"github.com/aretw0/agrocalc/pkg/calc"
	"github.com/aretw0/agrocalc/pkg/domain"
	"github.com/aretw0/agrocalc/pkg/dsl"
	"github.com/aretw0/agrocalc/pkg/locale"
)

const (
	SoybeanYieldID     = "SOYBEAN_YIELD_EST"
	FlowerAbortionID   = "SOYBEAN_FLOWER_ABORTION_LOSS"
	HarvestLossID      = "HARVEST_LOSS"
	MoistureDiscountID = "MOISTURE_DISCOUNT"
)

type soybeanYieldInput struct {
	PlantsPerMeter float64 `mapstructure:"plants_per_meter"`
	Pods           float64 `mapstructure:"pods"`
	Grains         float64 `mapstructure:"grains"`
	RowSpacing     float64 `mapstructure:"row_spacing"`
	PMG            float64 `mapstructure:"pmg"`
}

func soybeanYield(in soybeanYieldInput) domain.ResultSequence {
	plants := in.PlantsPerMeter / in.RowSpacing * SquareMetersPerHectare
	grains := plants * in.Pods * in.Grains
	kg := grains * in.PMG / GramsPerThousandToKg

	return domain.ResultSequence{
		domain.Value("Plantas por Hectare", domain.Q(plants, domain.UnitPlantsPerHectare)),
		domain.Value("Grãos por Hectare", domain.Q(grains, domain.UnitGrainsPerHectare)),
		domain.Value("Produtividade Estimada", domain.Q(kg, domain.UnitKgPerHectare)),
		domain.Value("Produtividade Estimada", domain.Q(kg/KilogramsPerSack, domain.UnitSackPerHectare)),
	}
}

// SoybeanYield returns the soybean yield estimate module.
func SoybeanYield() *calc.Module {
	return &calc.Module{
		ModuleDescriptor: domain.ModuleDescriptor{
			ID:          SoybeanYieldID,
			Name:        "Estimativa de Produtividade Soja",
			Description: "Estima a produtividade da soja.",
		},
		Strategies: []calc.Strategy{{
			ID:   calc.DefaultStrategy,
			Name: "Estimativa de Produtividade da Soja",
			Fields: dsl.New().
				Number("plants_per_meter", "Nº de Plantas por Metro Linear").Unit(domain.UnitPlantsPerMeter).Default("10").Positive().
				Number("pods", "Nº Médio de Vagens por Planta").Unit(domain.UnitPodsPerPlant).Default("25").NonNegative().
				Number("grains", "Nº Médio de Grãos por Vagem").Unit(domain.UnitGrainsPerPod).Default("2,5").NonNegative().
				Number("row_spacing", "Espaçamento entre Linhas").Unit(domain.UnitMeter).Default("0,5").Positive().
				Number("pmg", "Peso de Mil Grãos (PMG)").Unit(domain.UnitGram).Default("180").Positive().
				MustBuild(),
			Formula: "Plantas/ha = (Plantas/metro / Espaçamento Linhas) × 10.000\n" +
				"Grãos/ha = Plantas/ha × Vagens/planta × Grãos/vagem\n" +
				"Produtividade (kg/ha) = (Grãos/ha × PMG) / 1.000.000\n" +
				"Produtividade (sc/ha) = Produtividade (kg/ha) / 60",
			Compute: calc.Typed(soybeanYield),
		}},
		Notes: []string{
			"Esta é uma estimativa e a produtividade real pode variar devido a diversos fatores (clima, pragas, doenças, manejo).",
			"Colete dados de vários pontos representativos da área para maior precisão.",
		},
	}
}

type flowerAbortionInput struct {
	AbortedPerMeter float64 `mapstructure:"aborted_per_meter"`
	RowSpacing      float64 `mapstructure:"row_spacing"`
	Grains          float64 `mapstructure:"grains"`
	PMG             float64 `mapstructure:"pmg"`
}

func flowerAbortion(in flowerAbortionInput) domain.ResultSequence {
	pods := in.AbortedPerMeter / in.RowSpacing * SquareMetersPerHectare
	grains := pods * in.Grains
	kg := grains * in.PMG / GramsPerThousandToKg

	return domain.ResultSequence{
		domain.Value("Flores/Vagens Jovens Abortadas por Hectare", domain.Q(pods, domain.UnitUnitsPerHectare)),
		domain.Value("Grãos Potenciais Perdidos por Hectare", domain.Q(grains, domain.UnitGrainsPerHectare)),
		domain.Value("Perda Estimada de Produtividade", domain.Q(kg, domain.UnitKgPerHectare)),
		domain.Value("Perda Estimada de Produtividade", domain.Q(kg/KilogramsPerSack, domain.UnitSackPerHectare)),
	}
}

// FlowerAbortion returns the soybean flower abortion loss module.
func FlowerAbortion() *calc.Module {
	return &calc.Module{
		ModuleDescriptor: domain.ModuleDescriptor{
			ID:          FlowerAbortionID,
			Name:        "Perda por Abortamento Floral Soja",
			Description: "Calcula perdas por abortamento floral.",
		},
		Strategies: []calc.Strategy{{
			ID:   calc.DefaultStrategy,
			Name: "Estimativa de Perda por Abortamento Floral/Vagens Jovens na Soja",
			Fields: dsl.New().
				Number("aborted_per_meter", "Nº de Flores/Vagens Jovens Abortadas por Metro Linear").Unit(domain.UnitUnitsPerMeter).Default("50").NonNegative().
				Number("row_spacing", "Espaçamento entre Linhas").Unit(domain.UnitMeter).Default("0,5").Positive().
				Number("grains", "Nº Médio de Grãos por Vagem Viável").Unit(domain.UnitGrainsPerPod).Default("2,5").Positive().
				Number("pmg", "Peso de Mil Grãos (PMG)").Unit(domain.UnitGram).Default("180").Positive().
				MustBuild(),
			Formula: "Vagens Potenciais Perdidas/ha = (Flores Abortadas/metro / Espaçamento Linhas) × 10.000\n" +
				"Grãos Perdidos/ha = Vagens Perdidas/ha × Grãos/Vagem Viável\n" +
				"Perda de Produtividade (kg/ha) = (Grãos Perdidos/ha × PMG) / 1.000.000\n" +
				"Perda de Produtividade (sc/ha) = Perda (kg/ha) / 60",
			Compute: calc.Typed(flowerAbortion),
		}},
		Notes: []string{
			"O abortamento de flores e vagens jovens é um processo natural na soja, mas níveis excessivos podem indicar estresse (hídrico, nutricional, ataque de pragas ou doenças).",
			"A contagem de flores/vagens abortadas pode ser feita no solo, abaixo das plantas, em uma seção linear conhecida.",
			"Este cálculo fornece uma estimativa da perda potencial. A planta pode compensar parcialmente esse abortamento dependendo da fase e intensidade.",
		},
	}
}

type harvestLossInput struct {
	Grains     float64 `mapstructure:"grains"`
	SampleArea float64 `mapstructure:"sample_area"`
	PMG        float64 `mapstructure:"pmg"`
}

func harvestLoss(in harvestLossInput) domain.ResultSequence {
	perM2 := in.Grains / in.SampleArea
	kg := perM2 * in.PMG / GrainsPerSquareMeterToKg

	return domain.ResultSequence{
		domain.Value("Grãos Perdidos por m²", domain.Q(perM2, domain.UnitGrainsPerSquareMeter)),
		domain.Value("Perda na Colheita", domain.Q(kg, domain.UnitKgPerHectare)),
		domain.Value("Perda na Colheita", domain.Q(kg/KilogramsPerSack, domain.UnitSackPerHectare)),
	}
}

// HarvestLoss returns the harvest loss module.
func HarvestLoss() *calc.Module {
	return &calc.Module{
		ModuleDescriptor: domain.ModuleDescriptor{
			ID:          HarvestLossID,
			Name:        "Perdas na Colheita",
			Description: "Calcula perdas durante a colheita.",
		},
		Strategies: []calc.Strategy{{
			ID:   calc.DefaultStrategy,
			Name: "Cálculo de Perdas na Colheita",
			Fields: dsl.New().
				Number("grains", "Nº de Grãos Perdidos na Amostra").Default("20").NonNegative().
				Number("sample_area", "Área da Amostra").Unit(domain.UnitSquareMeter).Default("2").Positive().
				Number("pmg", "Peso de Mil Grãos (PMG)").Unit(domain.UnitGram).Default("180").Positive().
				MustBuild(),
			Formula: "Grãos Perdidos/m² = Nº Grãos Perdidos na Amostra / Área da Amostra (m²)\n" +
				"Perda (kg/ha) = (Grãos Perdidos/m² × PMG) / 100\n" +
				"Perda (sc/ha) = Perda (kg/ha) / 60",
			Compute: calc.Typed(harvestLoss),
		}},
		Notes: []string{
			"Utilize uma armação de área conhecida (ex: 1m x 1m, 2m x 0,5m) para coletar os grãos perdidos no solo após a passagem da colhedora.",
			"Realize múltiplas amostragens em diferentes pontos da lavoura para obter uma média representativa.",
			"Níveis de perdas aceitáveis variam, mas geralmente busca-se menos de 1 saca/ha para soja.",
		},
	}
}

const LabelCorrectedWeight = "Peso/Quantidade Corrigida"

type moistureInput struct {
	Weight     float64 `mapstructure:"weight"`
	WeightUnit string  `mapstructure:"weight_unit"`
	Moisture   float64 `mapstructure:"moisture"`
	Target     float64 `mapstructure:"target"`
}

// moistureDiscount: moisture at or below the target keeps the harvested weight.
func moistureDiscount(in moistureInput) domain.ResultSequence {
	if in.Moisture <= in.Target {
		return domain.ResultSequence{
			domain.Value(LabelCorrectedWeight, domain.Q(in.Weight, in.WeightUnit)),
			domain.Info(fmt.Sprintf(
				"A umidade inicial (%s%%) já é menor ou igual à final (%s%%). Nenhum desconto aplicado.",
				locale.FormatCompact(in.Moisture), locale.FormatCompact(in.Target))),
		}
	}

	final := in.Weight * (100 - in.Moisture) / (100 - in.Target)

	return domain.ResultSequence{
		domain.Value(LabelCorrectedWeight, domain.Q(final, in.WeightUnit)),
	}
}

// MoistureDiscount returns the moisture discount module.
func MoistureDiscount() *calc.Module {
	return &calc.Module{
		ModuleDescriptor: domain.ModuleDescriptor{
			ID:          MoistureDiscountID,
			Name:        "Desconto de Umidade",
			Description: "Ajusta o peso da colheita pela umidade.",
		},
		Strategies: []calc.Strategy{{
			ID:   calc.DefaultStrategy,
			Name: "Cálculo de Desconto de Umidade",
			Fields: dsl.New().
				Number("weight", "Peso/Quantidade Colhida").Default("66,6").NonNegative().
				Choice("weight_unit", "Unidade do Peso Colhido",
					dsl.Option(domain.UnitKilogram, "kg"),
					dsl.Option(domain.UnitSack, "Sacas")).Default(domain.UnitSack).
				Number("moisture", "Umidade Inicial").Default("16").Percent().
				Number("target", "Umidade Final (Alvo)").Default("14").PercentBelowFull().
				MustBuild(),
			Formula: "Peso Corrigido = Peso Colhido × ((100 − Umidade Inicial %) / (100 − Umidade Final %))",
			Compute: calc.Typed(moistureDiscount),
		}},
		Notes: []string{
			"Se a umidade inicial for menor ou igual à umidade final, nenhum desconto de umidade é aplicado e o peso original é mantido.",
		},
	}
}
