package domain

import "strconv"

// Units used across the catalog.
const (
	UnitPercent              = "%"
	UnitTonPerHectare        = "t/ha"
	UnitKgPerHectare         = "kg/ha"
	UnitCmolcPerDm3          = "cmolc/dm³"
	UnitCentimeter           = "cm"
	UnitMeter                = "m"
	UnitSquareMeter          = "m²"
	UnitMeterPerHectare      = "m/ha"
	UnitHectare              = "ha"
	UnitHectarePerHour       = "ha/h"
	UnitHour                 = "horas"
	UnitDay                  = "dias"
	UnitSecond               = "s"
	UnitKmPerHour            = "km/h"
	UnitMeterPerSecond       = "m/s"
	UnitLiter                = "L"
	UnitMilliliter           = "mL"
	UnitLiterPerMinute       = "L/min"
	UnitMilliliterPerMinute  = "mL/min"
	UnitLiterPerHectare      = "L/ha"
	UnitMilliliterPerHectare = "mL/ha"
	UnitKilogram             = "kg"
	UnitGram                 = "g"
	UnitSack                 = "sacas"
	UnitSackPerHectare       = "sc/ha (60kg)"
	UnitLiterPerSack         = "L/saca"
	UnitPlantsPerHectare     = "plantas/ha"
	UnitPlantsPerMeter       = "plantas/m"
	UnitSeedsPerMeter        = "sementes/m"
	UnitGrainsPerHectare     = "grãos/ha"
	UnitGrainsPerSquareMeter = "grãos/m²"
	UnitGrainsPerPod         = "grãos/vagem"
	UnitPodsPerPlant         = "vagens/planta"
	UnitUnitsPerHectare      = "unid./ha"
	UnitUnitsPerMeter        = "unid./m"
	UnitLiterPerPlant        = "L/planta"
)

// Quantity is a decimal value tagged with its physical unit.
type Quantity struct {
	Value float64 `json:"value" yaml:"value"`
	Unit  string  `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// Q builds a Quantity.
func Q(value float64, unit string) Quantity {
	return Quantity{Value: value, Unit: unit}
}

// String renders the quantity without locale formatting (debugging and logs).
func (q Quantity) String() string {
	s := strconv.FormatFloat(q.Value, 'f', -1, 64)
	if q.Unit == "" {
		return s
	}
	return s + " " + q.Unit
}
