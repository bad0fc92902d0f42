package domain

import "github.com/shopspring/decimal"

// Statutory constants of the pension system. Loaded once, treated as
// immutable configuration; the engine never mutates them.
var (
	// Total pension contribution: 19.52% of gross salary, split between
	// the main account (12.22%) and the sub-account (7.30%).
	ContributionRateTotal = decimal.NewFromFloat(0.1952)
	MainAccountRate       = decimal.NewFromFloat(0.1222)
	SubAccountRate        = decimal.NewFromFloat(0.0730)

	// Statutory minimum monthly pension (2025).
	MinimumPension = decimal.NewFromFloat(1780.96)

	// Fixed annual salary growth applied to years after the current
	// calendar year. Historical years use the stated salary unchanged.
	SalaryGrowthRate = decimal.NewFromFloat(0.035)

	// Long-run fallback multipliers for years absent from the index table.
	DefaultValorizationIndex  = decimal.NewFromFloat(1.0400)
	DefaultProfitabilityIndex = decimal.NewFromFloat(1.0350)

	// WorkingDaysPerYear is the denominator of the sick-leave reduction
	// factor. 250 is also the hard ceiling for sick leave days.
	WorkingDaysPerYear = decimal.NewFromInt(250)

	// TargetReplacementRate drives the years-to-target heuristic: the
	// solver aims at 60% of the projected final salary.
	TargetReplacementRate = decimal.NewFromFloat(0.60)
)

// Validation thresholds.
const (
	MinAge            = 18
	MaxAge            = 67
	YoungAgeWarning   = 20
	MinWorkStartYear  = 1970
	MinWorkingAge     = 18
	MaxSickLeaveDays  = 250
	SickLeaveWarnDays = 100

	// Implied retirement age may deviate this many years from the
	// statutory age before a warning is raised.
	RetirementAgeDeviationYears = 10

	// Work-end years further out than this are flagged.
	MaxYearsAhead = 50
)

var (
	MinimumWageThreshold = decimal.NewFromInt(3000)
	HighSalaryThreshold  = decimal.NewFromInt(100000)
	MaxMainBalance       = decimal.NewFromInt(5000000)
	MaxSubBalance        = decimal.NewFromInt(2000000)
)

var (
	retirementAges = map[Sex]int{
		SexMale:   65,
		SexFemale: 60,
	}

	// Average remaining life expectancy at retirement, in months, per
	// the GUS demographic tables.
	lifeExpectancyMonths = map[Sex]decimal.Decimal{
		SexMale:   decimal.NewFromInt(210),
		SexFemale: decimal.NewFromFloat(254.3),
	}
)

// RetirementAge returns the statutory retirement age for the sex.
func RetirementAge(s Sex) int {
	return retirementAges[s]
}

// LifeExpectancyMonths returns the average remaining life expectancy in
// months used to annuitize accumulated capital.
func LifeExpectancyMonths(s Sex) decimal.Decimal {
	return lifeExpectancyMonths[s]
}
