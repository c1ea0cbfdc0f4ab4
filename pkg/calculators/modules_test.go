package calculators

import (
	"testing"

	"github.com/aretw0/agrocalc/pkg/calc"
	"github.com/aretw0/agrocalc/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inputs returns the defaults of the module's first strategy with overrides applied.
func inputs(m *calc.Module, overrides map[string]string) domain.RawInputSet {
	raw := m.Default().Defaults()
	for k, v := range overrides {
		raw[k] = v
	}
	return raw
}

type want struct {
	label string
	value float64
	unit  string
}

func TestModules(t *testing.T) {
	tests := []struct {
		name      string
		module    *calc.Module
		overrides map[string]string
		want      []want
		info      bool
	}{
		{
			name:   "coffee liming defaults",
			module: CoffeeLiming(),
			want:   []want{{LabelCoffeeLimeNeed, 1.6 * 100 / 85, "t/ha"}},
		},
		{
			name:      "coffee liming scales with depth and coverage",
			module:    CoffeeLiming(),
			overrides: map[string]string{"prnt": "80", "depth": "40", "coverage": "50"},
			want:      []want{{LabelCoffeeLimeNeed, 2.0, "t/ha"}},
		},
		{
			name:      "coffee liming already satisfied",
			module:    CoffeeLiming(),
			overrides: map[string]string{"v": "65"},
			want:      []want{{LabelCoffeeLimeNeed, 0, "t/ha"}},
			info:      true,
		},
		{
			name:   "magnesium applied",
			module: MagnesiumApplied(),
			want: []want{
				{"Óxido de Magnésio (MgO) Aplicado", 240, "kg/ha"},
				{"Magnésio Elementar (Mg) Aplicado", 240 * 0.60304, "kg/ha"},
			},
		},
		{
			name:   "seed quantity with total area",
			module: SeedQuantity(),
			want: []want{
				{"População de Plantas Ajustada", 320000 / 0.85, "plantas/ha"},
				{"Quantidade de Sementes", 320000 / 0.85 * 200 / 1e6, "kg/ha"},
				{"Total de Sementes para 1 ha", 320000 / 0.85 * 200 / 1e6, "kg"},
			},
		},
		{
			name:      "seed quantity total label uses pt-BR grouping",
			module:    SeedQuantity(),
			overrides: map[string]string{"total_area": "1500"},
			want: []want{
				{"População de Plantas Ajustada", 320000 / 0.85, "plantas/ha"},
				{"Quantidade de Sementes", 320000 / 0.85 * 200 / 1e6, "kg/ha"},
				{"Total de Sementes para 1.500 ha", 320000 / 0.85 * 200 / 1e6 * 1500, "kg"},
			},
		},
		{
			name:      "seed quantity without total area",
			module:    SeedQuantity(),
			overrides: map[string]string{"total_area": ""},
			want: []want{
				{"População de Plantas Ajustada", 320000 / 0.85, "plantas/ha"},
				{"Quantidade de Sementes", 320000 / 0.85 * 200 / 1e6, "kg/ha"},
			},
		},
		{
			name:      "seed quantity ignores a zero total area",
			module:    SeedQuantity(),
			overrides: map[string]string{"total_area": "0"},
			want: []want{
				{"População de Plantas Ajustada", 320000 / 0.85, "plantas/ha"},
				{"Quantidade de Sementes", 320000 / 0.85 * 200 / 1e6, "kg/ha"},
			},
		},
		{
			name:   "seeder regulation",
			module: SeederRegulation(),
			want: []want{
				{"Metros Lineares de Sulco por Hectare", 20000, "m/ha"},
				{"Plantas Alvo por Metro Linear", 15, "plantas/m"},
				{"Sementes a Distribuir por Metro Linear", 15 / 0.9, "sementes/m"},
			},
		},
		{
			name:   "sowing time",
			module: SowingTime(),
			want: []want{
				{"Capacidade de Campo Teórica", 5.4, "ha/h"},
				{"Capacidade de Campo Efetiva", 4.05, "ha/h"},
				{"Tempo Total de Semeadura", 100 / 4.05, "horas"},
				{"Tempo Total de Semeadura (jornada 8h/dia)", 100 / 4.05 / 8, "dias"},
				{"Tempo Total de Semeadura (jornada 10h/dia)", 100 / 4.05 / 10, "dias"},
			},
		},
		{
			name:   "travel speed",
			module: TravelSpeed(),
			want:   []want{{"Velocidade de Deslocamento", 6, "km/h"}},
		},
		{
			name:   "spraying speed",
			module: SprayingSpeed(),
			want: []want{
				{"Velocidade de Deslocamento Requerida", 9.6, "km/h"},
				{"Velocidade de Deslocamento Requerida", 9.6 / 3.6, "m/s"},
			},
		},
		{
			name:   "nozzle regulation",
			module: NozzleRegulation(),
			want: []want{
				{"Vazão por Bico", 0.625, "L/min"},
				{"Vazão por Bico", 625, "mL/min"},
			},
		},
		{
			name:   "tank dosage in liters",
			module: TankDosage(),
			want:   []want{{"Produto por Tanque", 2.0 * 400 / 150, "L"}},
		},
		{
			name:      "tank dosage in milliliters",
			module:    TankDosage(),
			overrides: map[string]string{"dose": "500", "dose_unit": "mL/ha"},
			want:      []want{{"Produto por Tanque", 500.0 * 400 / 150, "mL"}},
		},
		{
			name:   "spreader calibration",
			module: SpreaderCalibration(),
			want: []want{
				{"Área Coberta na Amostra", 600, "m²"},
				{"Taxa de Aplicação Estimada", 10.0 / 600 * 10000, "kg/ha"},
			},
		},
		{
			name:   "backpack sprayer",
			module: BackpackSprayer(),
			want: []want{
				{"Velocidade de Deslocamento", 10.0 / 15 * 3.6, "km/h"},
				{"Velocidade de Deslocamento", 10.0 / 15, "m/s"},
				{"Vazão do Bico", 1.0, "L/min"},
				{"Volume de Aplicação Estimado", 500, "L/ha"},
			},
		},
		{
			name:   "soybean yield",
			module: SoybeanYield(),
			want: []want{
				{"Plantas por Hectare", 200000, "plantas/ha"},
				{"Grãos por Hectare", 12.5e6, "grãos/ha"},
				{"Produtividade Estimada", 2250, "kg/ha"},
				{"Produtividade Estimada", 37.5, "sc/ha (60kg)"},
			},
		},
		{
			name:   "flower abortion",
			module: FlowerAbortion(),
			want: []want{
				{"Flores/Vagens Jovens Abortadas por Hectare", 1e6, "unid./ha"},
				{"Grãos Potenciais Perdidos por Hectare", 2.5e6, "grãos/ha"},
				{"Perda Estimada de Produtividade", 450, "kg/ha"},
				{"Perda Estimada de Produtividade", 7.5, "sc/ha (60kg)"},
			},
		},
		{
			name:   "coffee yield",
			module: CoffeeYield(),
			want: []want{
				{"Produção Total Estimada (Café Cereja/Coco)", 20000, "L/ha"},
				{"Produtividade Estimada (Café Beneficiado)", 20000.0 / 480, "sc/ha (60kg)"},
			},
		},
		{
			name:   "harvest loss",
			module: HarvestLoss(),
			want: []want{
				{"Grãos Perdidos por m²", 10, "grãos/m²"},
				{"Perda na Colheita", 18, "kg/ha"},
				{"Perda na Colheita", 0.3, "sc/ha (60kg)"},
			},
		},
		{
			name:   "moisture discount in sacks",
			module: MoistureDiscount(),
			want:   []want{{LabelCorrectedWeight, 66.6 * 84 / 86, "sacas"}},
		},
		{
			name:      "moisture discount in kilograms",
			module:    MoistureDiscount(),
			overrides: map[string]string{"weight": "1000", "weight_unit": "kg", "moisture": "18"},
			want:      []want{{LabelCorrectedWeight, 1000 * 82.0 / 86, "kg"}},
		},
		{
			name:      "moisture at target keeps the weight",
			module:    MoistureDiscount(),
			overrides: map[string]string{"weight": "1000", "weight_unit": "kg", "moisture": "14"},
			want:      []want{{LabelCorrectedWeight, 1000, "kg"}},
			info:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := tt.module.Run("", inputs(tt.module, tt.overrides))
			require.NoError(t, err)
			require.False(t, seq.Failed(), "unexpected failure: %v", seq)

			n := len(tt.want)
			if tt.info {
				n++
			}
			require.Len(t, seq, n, "%v", seq)
			for i, w := range tt.want {
				assert.Equal(t, w.label, seq[i].Label, "result %d", i)
				assert.Equal(t, w.unit, seq[i].Unit, "result %d", i)
				v, ok := seq[i].Number()
				require.True(t, ok, "result %d is not numeric", i)
				assert.InDelta(t, w.value, v, 1e-9, w.label)
			}
			assert.Equal(t, tt.info, domain.Outcome(seq) == domain.ResultInfo)
			if tt.info {
				assert.Equal(t, domain.LabelInfo, seq[n-1].Label)
			}
		})
	}
}

func TestModules_InfoMessagesQuoteInputs(t *testing.T) {
	seq, err := CoffeeLiming().Run("", inputs(CoffeeLiming(), map[string]string{"v": "62,5"}))
	require.NoError(t, err)
	assert.Equal(t,
		"A saturação por bases atual (62,5%) já é igual ou superior à desejada para café (60%).",
		seq[1].Value)

	seq, err = MoistureDiscount().Run("", inputs(MoistureDiscount(), map[string]string{"moisture": "13"}))
	require.NoError(t, err)
	assert.Equal(t,
		"A umidade inicial (13%) já é menor ou igual à final (14%). Nenhum desconto aplicado.",
		seq[1].Value)
}

func TestModules_ValidationFailures(t *testing.T) {
	tests := []struct {
		name      string
		module    *calc.Module
		overrides map[string]string
		key       string
	}{
		{"zero time", TravelSpeed(), map[string]string{"time": "0"}, "Tempo Médio para Percorrer 50m"},
		{"negative grains", HarvestLoss(), map[string]string{"grains": "-1"}, "Nº de Grãos Perdidos na Amostra"},
		{"germination zero", SeedQuantity(), map[string]string{"germination": "0"}, "Taxa de Germinação das Sementes"},
		{"optional field still parsed", SeedQuantity(), map[string]string{"total_area": "cem"}, "Total de Hectares para Plantio"},
		{"germination above 100", SeederRegulation(), map[string]string{"germination": "101"}, "Poder Germinativo"},
		{"target moisture 100", MoistureDiscount(), map[string]string{"target": "100"}, "Umidade Final (Alvo)"},
		{"text in number", SprayingSpeed(), map[string]string{"flow": "um"}, "Vazão Média por Bico (Real)"},
		{"zero PRNT", CoffeeLiming(), map[string]string{"prnt": "0"}, "Poder Relativo de Neutralização Total"},
		{"MgO above 100", MagnesiumApplied(), map[string]string{"mgo": "120"}, "Teor de Óxido de Magnésio"},
		{"zero yield per sack", CoffeeYield(), map[string]string{"liters_per_sack": "0"}, "Rendimento Médio"},
		{"zero viable grains", FlowerAbortion(), map[string]string{"grains": "0"}, "Grãos por Vagem Viável"},
		{"zero walk time", BackpackSprayer(), map[string]string{"walk_time": "0"}, "Tempo para Percorrer Distância"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := tt.module.Run("", inputs(tt.module, tt.overrides))
			require.NoError(t, err)
			f, ok := seq.Failure()
			require.True(t, ok, "expected failure, got %v", seq)
			assert.Equal(t, domain.ResultError, f.Kind)
			assert.Contains(t, f.Value, tt.key)
		})
	}
}

func TestModules_ZeroCountsAreAccepted(t *testing.T) {
	for _, tc := range []struct {
		module    *calc.Module
		overrides map[string]string
	}{
		{SoybeanYield(), map[string]string{"pods": "0", "grains": "0"}},
		{HarvestLoss(), map[string]string{"grains": "0"}},
		{CoffeeYield(), map[string]string{"liters_per_plant": "0"}},
		{SpreaderCalibration(), map[string]string{"collected": "0"}},
		{MagnesiumApplied(), map[string]string{"dose": "0"}},
	} {
		seq, err := tc.module.Run("", inputs(tc.module, tc.overrides))
		require.NoError(t, err)
		assert.False(t, seq.Failed(), "%s: %v", tc.module.ID, seq)
	}
}
