package calculators

import "github.com/aretw0/agrocalc/pkg/calc"

// All returns a fresh copy of the catalog in display order.
func All() []*calc.Module {
	return []*calc.Module{
		Liming(),
		CoffeeLiming(),
		MagnesiumApplied(),
		SeedQuantity(),
		SeederRegulation(),
		SowingTime(),
		TravelSpeed(),
		SprayingSpeed(),
		NozzleRegulation(),
		TankDosage(),
		SpreaderCalibration(),
		BackpackSprayer(),
		SoybeanYield(),
		FlowerAbortion(),
		CoffeeYield(),
		HarvestLoss(),
		MoistureDiscount(),
	}
}
