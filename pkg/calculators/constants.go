package calculators

const (
	SquareMetersPerHectare = 10000.0
	KilogramsPerSack       = 60.0
	KilogramsPerTon        = 1000.0
	GramsPerKilogram       = 1000.0
	MillilitersPerLiter    = 1000.0
	SecondsPerMinute       = 60.0
	// g/ha ÷ 1e6 = t/ha, and grains × PMG (g per 1000 grains) ÷ 1e6 = kg.
	GramsPerThousandToKg = 1e6

	// Mass fraction of the element in its oxide.
	MgOToMg = 0.60304
	CaOToCa = 0.7143

	// kg/ha of element per cmolc/dm³ in the 0-20 cm layer.
	CaKgPerCmolc = 400.0
	MgKgPerCmolc = 240.0

	// L/ha × km/h × m ÷ 600 = L/min
	FlowFactor = 600.0
	// m × km/h ÷ 10 = ha/h
	FieldCapacityFactor = 10.0
	// m/s × 3,6 = km/h
	MetersPerSecondToKmPerHour = 3.6
	// 50 m × 3,6: seconds over a 50 m course to km/h.
	TravelCourseFactor = 180.0
	// grains/m² × PMG ÷ 100 = kg/ha
	GrainsPerSquareMeterToKg = 100.0

	// Reference depth of liming recommendations.
	ReferenceDepthCm = 20.0

	// Workday lengths the sowing time is reported in.
	ShortWorkdayHours = 8.0
	LongWorkdayHours  = 10.0
)
