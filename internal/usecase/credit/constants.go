package credit

const (
	maxScore        = 100.0
	componentWeight = 25.0
	// Flat factor granted to any customer with at least one past loan.
	approvedVolumeFactor = 1.8

	// Affordability gate: active monthly repayments may not exceed this share
	// of monthly salary.
	maxEMIToSalaryRatio = 0.5

	// Score tier boundaries (strict lower bounds) and the floor rates applied
	// to the lower tiers.
	tierPrime   = 50.0
	tierMid     = 30.0
	tierSub     = 10.0
	midFloorPct = 12.0
	subFloorPct = 16.0

	monthsPerYear = 12
	percentScale  = 100
)
