package calculators

import (
	"fmt"

	"github.com/aretw0/agrocalc/pkg/calc"
	"github.com/aretw0/agrocalc/pkg/domain"
	"github.com/aretw0/agrocalc/pkg/dsl"
	"github.com/aretw0/agrocalc/pkg/locale"
)

const (
	SeedQuantityID     = "SEED_QUANTITY_KG_HA"
	SeederRegulationID = "SEEDER_REGULATION_PLANTS"
	SowingTimeID       = "SOWING_TIME"
)

type seedQuantityInput struct {
	Population  float64 `mapstructure:"population"`
	Germination float64 `mapstructure:"germination"`
	PMS         float64 `mapstructure:"pms"`
	TotalArea   float64 `mapstructure:"total_area"`
}

// seedQuantity adds the total for the planted area only when one was given.
func seedQuantity(in seedQuantityInput) domain.ResultSequence {
	adjusted := in.Population / (in.Germination / 100)
	kg := adjusted * in.PMS / GramsPerThousandToKg

	seq := domain.ResultSequence{
		domain.Value("População de Plantas Ajustada", domain.Q(adjusted, domain.UnitPlantsPerHectare)),
		domain.Value("Quantidade de Sementes", domain.Q(kg, domain.UnitKgPerHectare)),
	}
	if in.TotalArea > 0 {
		label := fmt.Sprintf("Total de Sementes para %s ha", locale.FormatCompact(in.TotalArea))
		seq = append(seq, domain.Value(label, domain.Q(kg*in.TotalArea, domain.UnitKilogram)))
	}
	return seq
}

// SeedQuantity returns the seed rate (kg/ha) module.
func SeedQuantity() *calc.Module {
	return &calc.Module{
		ModuleDescriptor: domain.ModuleDescriptor{
			ID:          SeedQuantityID,
			Name:        "Quantidade de Sementes (kg/ha)",
			Description: "Calcula sementes necessárias por hectare.",
		},
		Strategies: []calc.Strategy{{
			ID:   calc.DefaultStrategy,
			Name: "Quantidade de Sementes (kg/ha)",
			Fields: dsl.New().
				Number("population", "População Recomendada de Plantas").Unit(domain.UnitPlantsPerHectare).Default("320000").Positive().
				Number("germination", "Taxa de Germinação das Sementes").Default("85").PercentPositive().
				Number("pms", "Peso de Mil Sementes (PMS)").Unit(domain.UnitGram).Default("200").Positive().
				Number("total_area", "Total de Hectares para Plantio (Opcional)").Unit(domain.UnitHectare).Default("1").Optional().
				MustBuild(),
			Formula: "População Ajustada (plantas/ha) = População Recomendada / (Germinação % / 100)\n" +
				"Quantidade de Sementes (kg/ha) = (População Ajustada / 1000) × (PMS / 1000)",
			Compute: calc.Typed(seedQuantity),
		}},
		Notes: []string{
			"A \"População de Plantas Ajustada\" considera a taxa de germinação para estimar quantas sementes viáveis são necessárias.",
			"O campo \"Total de Hectares\" é opcional e, se preenchido, calculará a quantidade total de sementes para a área informada.",
		},
	}
}

type seederInput struct {
	Population  float64 `mapstructure:"population"`
	RowSpacing  float64 `mapstructure:"row_spacing"`
	Germination float64 `mapstructure:"germination"`
}

func seederRegulation(in seederInput) domain.ResultSequence {
	meters := SquareMetersPerHectare / in.RowSpacing
	plants := in.Population / meters

	return domain.ResultSequence{
		domain.Value("Metros Lineares de Sulco por Hectare", domain.Q(meters, domain.UnitMeterPerHectare)),
		domain.Value("Plantas Alvo por Metro Linear", domain.Q(plants, domain.UnitPlantsPerMeter)),
		domain.Value("Sementes a Distribuir por Metro Linear", domain.Q(plants/(in.Germination/100), domain.UnitSeedsPerMeter)),
	}
}

// SeederRegulation returns the seeds-per-meter seeder calibration module.
func SeederRegulation() *calc.Module {
	return &calc.Module{
		ModuleDescriptor: domain.ModuleDescriptor{
			ID:          SeederRegulationID,
			Name:        "Regulagem de Semeadora (Sementes/m)",
			Description: "Sementes por metro linear para calibração.",
		},
		Strategies: []calc.Strategy{{
			ID:   calc.DefaultStrategy,
			Name: "Regulagem de Semeadora (Sementes por Metro Linear)",
			Fields: dsl.New().
				Number("population", "População de Plantas Desejada").Unit(domain.UnitPlantsPerHectare).Default("300000").Positive().
				Number("row_spacing", "Espaçamento entre Linhas").Unit(domain.UnitMeter).Default("0,5").Positive().
				Number("germination", "Poder Germinativo das Sementes (Viabilidade)").Default("90").PercentPositive().
				MustBuild(),
			Formula: "Metros Lineares/ha = 10.000 / Espaçamento entre Linhas (m)\n" +
				"Plantas Alvo/m = População Desejada (plantas/ha) / Metros Lineares/ha\n" +
				"Sementes/m = Plantas Alvo/m / (Poder Germinativo % / 100)",
			Compute: calc.Typed(seederRegulation),
		}},
		Notes: []string{
			"Use o valor de \"Sementes a Distribuir por Metro Linear\" para calibrar sua semeadora, verificando a quantidade de sementes coletadas em uma distância conhecida.",
			"Perdas de emergência em campo não são consideradas aqui, podendo exigir um pequeno aumento da quantidade de sementes na prática.",
		},
	}
}

type sowingTimeInput struct {
	Area       float64 `mapstructure:"area"`
	Width      float64 `mapstructure:"width"`
	Speed      float64 `mapstructure:"speed"`
	Efficiency float64 `mapstructure:"efficiency"`
}

func sowingTime(in sowingTimeInput) domain.ResultSequence {
	theoretical := in.Width * in.Speed / FieldCapacityFactor
	effective := theoretical * in.Efficiency / 100
	hours := in.Area / effective

	return domain.ResultSequence{
		domain.Value("Capacidade de Campo Teórica", domain.Q(theoretical, domain.UnitHectarePerHour)),
		domain.Value("Capacidade de Campo Efetiva", domain.Q(effective, domain.UnitHectarePerHour)),
		domain.Value("Tempo Total de Semeadura", domain.Q(hours, domain.UnitHour)),
		domain.Value("Tempo Total de Semeadura (jornada 8h/dia)", domain.Q(hours/ShortWorkdayHours, domain.UnitDay)),
		domain.Value("Tempo Total de Semeadura (jornada 10h/dia)", domain.Q(hours/LongWorkdayHours, domain.UnitDay)),
	}
}

// SowingTime returns the sowing time planning module.
func SowingTime() *calc.Module {
	return &calc.Module{
		ModuleDescriptor: domain.ModuleDescriptor{
			ID:          SowingTimeID,
			Name:        "Tempo de Semeadura",
			Description: "Calcula o tempo necessário para semear.",
		},
		Strategies: []calc.Strategy{{
			ID:   calc.DefaultStrategy,
			Name: "Cálculo do Tempo de Semeadura",
			Fields: dsl.New().
				Number("area", "Área Total a Semear").Unit(domain.UnitHectare).Default("100").Positive().
				Number("width", "Largura Útil da Semeadora").Unit(domain.UnitMeter).Default("9").Positive().
				Number("speed", "Velocidade Média de Semeadura").Unit(domain.UnitKmPerHour).Default("6").Positive().
				Number("efficiency", "Eficiência Operacional").Default("75").PercentPositive().
				MustBuild(),
			Formula: "Cap. Campo Teórica (ha/h) = (Largura Semeadora (m) × Velocidade (km/h)) / 10\n" +
				"Cap. Campo Efetiva (ha/h) = Cap. Teórica × (Eficiência % / 100)\n" +
				"Tempo Total (horas) = Área Total (ha) / Cap. Efetiva (ha/h)",
			Compute: calc.Typed(sowingTime),
		}},
		Notes: []string{
			"A eficiência operacional considera o tempo perdido com reabastecimentos, manobras e regulagens. Varia tipicamente de 65% a 85%.",
			"Os resultados em \"dias\" consideram jornadas de 8 ou 10 horas de trabalho efetivo por dia.",
		},
	}
}
