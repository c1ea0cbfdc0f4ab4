package calculators

import (
	"github.com/aretw0/agrocalc/pkg/calc"
	"github.com/aretw0/agrocalc/pkg/domain"
	"github.com/aretw0/agrocalc/pkg/dsl"
)

const (
	TravelSpeedID         = "TRAVEL_SPEED"
	SprayingSpeedID       = "SPRAYING_SPEED"
	NozzleRegulationID    = "SPRAYER_REGULATION_NOZZLE"
	TankDosageID          = "PESTICIDE_TANK_DOSAGE"
	SpreaderCalibrationID = "FERTILIZER_SPREADER_CALIBRATION"
	BackpackSprayerID     = "BACKPACK_SPRAYER_REGULATION"
)

type travelSpeedInput struct {
	Time float64 `mapstructure:"time"`
}

func travelSpeed(in travelSpeedInput) domain.ResultSequence {
	return domain.ResultSequence{
		domain.Value("Velocidade de Deslocamento", domain.Q(TravelCourseFactor/in.Time, domain.UnitKmPerHour)),
	}
}

// TravelSpeed returns the machine travel speed module.
func TravelSpeed() *calc.Module {
	return &calc.Module{
		ModuleDescriptor: domain.ModuleDescriptor{
			ID:          TravelSpeedID,
			Name:        "Velocidade de Deslocamento (Geral)",
			Description: "Calcula a velocidade de máquinas.",
		},
		Strategies: []calc.Strategy{{
			ID:   calc.DefaultStrategy,
			Name: "Cálculo da Velocidade de Deslocamento",
			Fields: dsl.New().
				Number("time", "Tempo Médio para Percorrer 50m").Unit(domain.UnitSecond).Default("30").Positive().
				MustBuild(),
			Formula: "Velocidade (km/h) = 180 / Tempo (s)\n180 = 50 m × 3,6",
			Compute: calc.Typed(travelSpeed),
		}},
		Notes: []string{
			"Marque uma distância de 50 metros no terreno. Com a máquina na marcha e rotação de trabalho, cronometre o tempo para percorrer essa distância.",
			"Repita algumas vezes e use o tempo médio.",
		},
	}
}

type sprayingSpeedInput struct {
	Rate    float64 `mapstructure:"rate"`
	Flow    float64 `mapstructure:"flow"`
	Spacing float64 `mapstructure:"spacing"`
}

func sprayingSpeed(in sprayingSpeedInput) domain.ResultSequence {
	kmh := in.Flow * FlowFactor / (in.Rate * in.Spacing)

	return domain.ResultSequence{
		domain.Value("Velocidade de Deslocamento Requerida", domain.Q(kmh, domain.UnitKmPerHour)),
		domain.Value("Velocidade de Deslocamento Requerida", domain.Q(kmh/MetersPerSecondToKmPerHour, domain.UnitMeterPerSecond)),
	}
}

// SprayingSpeed returns the required spraying speed module.
func SprayingSpeed() *calc.Module {
	return &calc.Module{
		ModuleDescriptor: domain.ModuleDescriptor{
			ID:          SprayingSpeedID,
			Name:        "Velocidade de Aplicação (Pulverização)",
			Description: "Determina a velocidade ótima de pulverização.",
		},
		Strategies: []calc.Strategy{{
			ID:   calc.DefaultStrategy,
			Name: "Cálculo da Velocidade de Aplicação (Pulverização)",
			Fields: dsl.New().
				Number("rate", "Volume de Calda Desejado").Unit(domain.UnitLiterPerHectare).Default("150").Positive().
				Number("flow", "Vazão Média por Bico (Real)").Unit(domain.UnitLiterPerMinute).Default("1,2").Positive().
				Number("spacing", "Espaçamento entre Bicos na Barra").Unit(domain.UnitMeter).Default("0,5").Positive().
				MustBuild(),
			Formula: "Velocidade (km/h) = (Vazão do Bico (L/min) × 600) / (Volume de Calda (L/ha) × Espaçamento Bicos (m))\n" +
				"Velocidade (m/s) = Velocidade (km/h) / 3,6",
			Compute: calc.Typed(sprayingSpeed),
		}},
		Notes: []string{
			"A \"Vazão Média por Bico (Real)\" deve ser obtida medindo a vazão de alguns bicos na barra ou consultando o catálogo do fabricante para a pressão de trabalho utilizada.",
			"Ajuste a marcha e aceleração do trator/pulverizador para atingir essa velocidade.",
		},
	}
}

type nozzleInput struct {
	Rate    float64 `mapstructure:"rate"`
	Speed   float64 `mapstructure:"speed"`
	Spacing float64 `mapstructure:"spacing"`
}

func nozzleRegulation(in nozzleInput) domain.ResultSequence {
	flow := in.Rate * in.Speed * in.Spacing / FlowFactor

	return domain.ResultSequence{
		domain.Value("Vazão por Bico", domain.Q(flow, domain.UnitLiterPerMinute)),
		domain.Value("Vazão por Bico", domain.Q(flow*MillilitersPerLiter, domain.UnitMilliliterPerMinute)),
	}
}

// NozzleRegulation returns the per-nozzle flow module.
func NozzleRegulation() *calc.Module {
	return &calc.Module{
		ModuleDescriptor: domain.ModuleDescriptor{
			ID:          NozzleRegulationID,
			Name:        "Regulagem de Pulverizador (Bico)",
			Description: "Vazão de bico para pulverizadores.",
		},
		Strategies: []calc.Strategy{{
			ID:   calc.DefaultStrategy,
			Name: "Regulagem de Pulverizador (Vazão de Bico)",
			Fields: dsl.New().
				Number("rate", "Volume de Calda Desejado").Unit(domain.UnitLiterPerHectare).Default("150").Positive().
				Number("speed", "Velocidade de Deslocamento").Unit(domain.UnitKmPerHour).Default("5").Positive().
				Number("spacing", "Espaçamento entre Bicos na Barra").Unit(domain.UnitMeter).Default("0,5").Positive().
				MustBuild(),
			Formula: "Vazão do Bico (L/min) = (Volume de Calda (L/ha) × Velocidade (km/h) × Espaçamento entre Bicos (m)) / 600",
			Compute: calc.Typed(nozzleRegulation),
		}},
		Notes: []string{
			"Compare o resultado com as tabelas de vazão fornecidas pelos fabricantes de bicos.",
		},
	}
}

// Unit the pesticide label dose is given in; the per-tank amount follows it.
var doseUnitProduct = map[string]string{
	domain.UnitLiterPerHectare:      domain.UnitLiter,
	domain.UnitMilliliterPerHectare: domain.UnitMilliliter,
}

type tankDosageInput struct {
	Dose     float64 `mapstructure:"dose"`
	DoseUnit string  `mapstructure:"dose_unit"`
	Tank     float64 `mapstructure:"tank"`
	Rate     float64 `mapstructure:"rate"`
}

func tankDosage(in tankDosageInput) domain.ResultSequence {
	return domain.ResultSequence{
		domain.Value("Produto por Tanque", domain.Q(in.Dose*in.Tank/in.Rate, doseUnitProduct[in.DoseUnit])),
	}
}

// TankDosage returns the pesticide-per-tank module.
func TankDosage() *calc.Module {
	return &calc.Module{
		ModuleDescriptor: domain.ModuleDescriptor{
			ID:          TankDosageID,
			Name:        "Dosagem de Defensivo (Tanque)",
			Description: "Calcula defensivo por tanque.",
		},
		Strategies: []calc.Strategy{{
			ID:   calc.DefaultStrategy,
			Name: "Dosagem de Defensivo por Tanque Pulverizador",
			Fields: dsl.New().
				Number("dose", "Dosagem Recomendada do Produto").Default("2,0").NonNegative().
				Choice("dose_unit", "Unidade da Dosagem Recomendada",
					dsl.Option(domain.UnitLiterPerHectare, "L/ha"),
					dsl.Option(domain.UnitMilliliterPerHectare, "mL/ha")).Default(domain.UnitLiterPerHectare).
				Number("tank", "Capacidade do Tanque do Pulverizador").Unit(domain.UnitLiter).Default("400").Positive().
				Number("rate", "Volume de Calda por Hectare").Unit(domain.UnitLiterPerHectare).Default("150").Positive().
				MustBuild(),
			Formula: "Produto por Tanque = (Dosagem Recomendada × Capacidade do Pulverizador) / Volume de Calda por Hectare",
			Compute: calc.Typed(tankDosage),
		}},
		Notes: []string{
			"O Volume de Calda por Hectare é obtido através da calibração do pulverizador. A Dosagem Recomendada é encontrada na bula do produto.",
		},
	}
}

type spreaderInput struct {
	Collected float64 `mapstructure:"collected"`
	Distance  float64 `mapstructure:"distance"`
	Width     float64 `mapstructure:"width"`
}

func spreaderCalibration(in spreaderInput) domain.ResultSequence {
	area := in.Distance * in.Width

	return domain.ResultSequence{
		domain.Value("Área Coberta na Amostra", domain.Q(area, domain.UnitSquareMeter)),
		domain.Value("Taxa de Aplicação Estimada", domain.Q(in.Collected/area*SquareMetersPerHectare, domain.UnitKgPerHectare)),
	}
}

// SpreaderCalibration returns the fertilizer spreader calibration module.
func SpreaderCalibration() *calc.Module {
	return &calc.Module{
		ModuleDescriptor: domain.ModuleDescriptor{
			ID:          SpreaderCalibrationID,
			Name:        "Calibração de Distribuidor de Fertilizantes",
			Description: "Calibra a vazão do distribuidor de fertilizantes.",
		},
		Strategies: []calc.Strategy{{
			ID:   calc.DefaultStrategy,
			Name: "Calibração de Distribuidor de Fertilizantes",
			Fields: dsl.New().
				Number("collected", "Quantidade de Fertilizante Coletada").Unit(domain.UnitKilogram).Default("10").NonNegative().
				Number("distance", "Distância Percorrida Durante a Coleta").Unit(domain.UnitMeter).Default("50").Positive().
				Number("width", "Largura Efetiva da Faixa de Aplicação").Unit(domain.UnitMeter).Default("12").Positive().
				MustBuild(),
			Formula: "Área Coberta (m²) = Distância Percorrida (m) × Largura da Faixa (m)\n" +
				"Taxa de Aplicação (kg/ha) = (Quantidade Coletada (kg) / Área Coberta (m²)) × 10.000",
			Compute: calc.Typed(spreaderCalibration),
		}},
		Notes: []string{
			"Este método é comum para calibrar distribuidores de fertilizantes a lanço ou em linha.",
			"Para a coleta, pode-se colocar lonas sob a faixa de aplicação ou coletar o produto de um dosador por um tempo ou distância definidos.",
			"A \"Largura Efetiva da Faixa de Aplicação\" deve ser determinada corretamente para distribuidores a lanço e pode ser diferente da largura total de alcance.",
			"Ajuste as configurações do distribuidor e repita o teste até atingir a taxa de aplicação desejada.",
		},
	}
}

type backpackInput struct {
	Volume      float64 `mapstructure:"volume"`
	CollectTime float64 `mapstructure:"collect_time"`
	Width       float64 `mapstructure:"width"`
	Distance    float64 `mapstructure:"distance"`
	WalkTime    float64 `mapstructure:"walk_time"`
}

func backpackRegulation(in backpackInput) domain.ResultSequence {
	ms := in.Distance / in.WalkTime
	flow := in.Volume / in.CollectTime * (SecondsPerMinute / MillilitersPerLiter)
	// mL ÷ (s × m × m/s) is mL/m²; × 10 gives L/ha.
	rate := in.Volume / (in.CollectTime * in.Width * ms) * 10

	return domain.ResultSequence{
		domain.Value("Velocidade de Deslocamento", domain.Q(ms*MetersPerSecondToKmPerHour, domain.UnitKmPerHour)),
		domain.Value("Velocidade de Deslocamento", domain.Q(ms, domain.UnitMeterPerSecond)),
		domain.Value("Vazão do Bico", domain.Q(flow, domain.UnitLiterPerMinute)),
		domain.Value("Volume de Aplicação Estimado", domain.Q(rate, domain.UnitLiterPerHectare)),
	}
}

// BackpackSprayer returns the backpack sprayer calibration module.
func BackpackSprayer() *calc.Module {
	return &calc.Module{
		ModuleDescriptor: domain.ModuleDescriptor{
			ID:          BackpackSprayerID,
			Name:        "Regulagem de Pulverizador Costal",
			Description: "Regula pulverizador costal.",
		},
		Strategies: []calc.Strategy{{
			ID:   calc.DefaultStrategy,
			Name: "Regulagem de Pulverizador Costal",
			Fields: dsl.New().
				Number("volume", "Volume Coletado do Bico").Unit(domain.UnitMilliliter).Default("500").NonNegative().
				Number("collect_time", "Tempo de Coleta da Vazão do Bico").Unit(domain.UnitSecond).Default("30").Positive().
				Number("width", "Largura da Faixa Pulverizada (por bico)").Unit(domain.UnitMeter).Default("0,5").Positive().
				Number("distance", "Distância Percorrida (Calibração Velocidade)").Unit(domain.UnitMeter).Default("10").Positive().
				Number("walk_time", "Tempo para Percorrer Distância (Calibração Velocidade)").Unit(domain.UnitSecond).Default("15").Positive().
				MustBuild(),
			Formula: "Vazão do Bico (L/min) = (Volume Coletado (mL) / Tempo de Coleta (s)) × (60 / 1000)\n" +
				"Velocidade (m/s) = Distância Percorrida (m) / Tempo para Percorrer (s)\n" +
				"Volume de Aplicação (L/ha) = (Volume Coletado (mL) / (Tempo Coleta (s) × Largura Faixa (m) × Velocidade (m/s))) × 10",
			Compute: calc.Typed(backpackRegulation),
		}},
		Notes: []string{
			"Para calibrar a velocidade, caminhe em ritmo normal de trabalho e cronometre o tempo para cobrir uma distância conhecida (ex: 10 ou 20 metros).",
			"Para a vazão do bico, com o pulverizador pressurizado, acione o gatilho e colete a água de um bico em um recipiente graduado por um tempo determinado (ex: 30 segundos).",
			"Mantenha pressão constante durante a coleta da vazão e a aplicação.",
		},
	}
}
