package calculation

import (
	"testing"

	"github.com/pmroz/zusgo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYearsToTarget(t *testing.T) {
	lifeMonths := dec("210")

	t.Run("target already met", func(t *testing.T) {
		profile := &domain.WorkerProfile{DesiredPension: decPtr("3000")}
		years := yearsToTarget(profile, dec("3200"), dec("672000"), dec("8000"), dec("8000"), lifeMonths)
		assert.Equal(t, 0, years)
	})

	t.Run("desired pension below the minimum floors at the minimum", func(t *testing.T) {
		// Reported benefit equals the statutory minimum, so even a lower
		// stated target needs no extra years.
		profile := &domain.WorkerProfile{DesiredPension: decPtr("1500")}
		years := yearsToTarget(profile, domain.MinimumPension, dec("300000"), dec("4000"), dec("4000"), lifeMonths)
		assert.Equal(t, 0, years)
	})

	t.Run("desired pension above the benefit needs extra years", func(t *testing.T) {
		profile := &domain.WorkerProfile{DesiredPension: decPtr("4000")}
		// Shortfall 4000*210 - 420000 = 420000; one extra year adds
		// 8000 * 0.1952 * 12 * 1.04 = 19488.768.
		years := yearsToTarget(profile, dec("2000"), dec("420000"), dec("8000"), dec("8000"), lifeMonths)
		assert.Equal(t, 22, years)
	})

	t.Run("no desired pension targets 60 percent of final salary", func(t *testing.T) {
		profile := &domain.WorkerProfile{}
		// Target 4800; shortfall 4800*210 - 630000 = 378000.
		years := yearsToTarget(profile, dec("3000"), dec("630000"), dec("8000"), dec("8000"), lifeMonths)
		assert.Equal(t, 19, years)
	})

	t.Run("zero effective salary yields zero", func(t *testing.T) {
		profile := &domain.WorkerProfile{DesiredPension: decPtr("4000")}
		years := yearsToTarget(profile, dec("2000"), dec("420000"), dec("8000"), dec("0"), lifeMonths)
		assert.Equal(t, 0, years)
	})
}

func TestSickLeaveImpact(t *testing.T) {
	// 10000 lost, 20-year horizon: compounded at 1.04^10, annuitized
	// over 210 months.
	impact := sickLeaveImpact(dec("10000"), 20, dec("210"))
	assert.True(t, impact.Equal(dec("70.49")), "impact: %s", impact)

	// Odd horizons use the integer half.
	odd := sickLeaveImpact(dec("10000"), 21, dec("210"))
	assert.True(t, odd.Equal(impact))
}

func TestSickLeaveFactor(t *testing.T) {
	assert.True(t, sickLeaveFactor(dec("0")).Equal(decimalOne))
	assert.True(t, sickLeaveFactor(dec("-5")).Equal(decimalOne))
	// (250 - 25) / 250 = 0.9
	assert.True(t, sickLeaveFactor(dec("25")).Equal(dec("0.9")))
	assert.True(t, sickLeaveFactor(dec("250")).Equal(dec("0")))
}

func TestProjectedSalary(t *testing.T) {
	base := dec("8000")

	assert.True(t, projectedSalary(base, 2010, 2025).Equal(base))
	assert.True(t, projectedSalary(base, 2025, 2025).Equal(base))
	// 8000 * 1.035^2 = 8569.80
	two := projectedSalary(base, 2027, 2025)
	assert.True(t, two.Round(2).Equal(dec("8569.80")), "salary: %s", two)
}

// The solver is a linear estimate: it ignores revaluation of the
// already-accumulated capital and salary growth during the extra
// years, both of which only add capital. Re-simulating with the
// estimated extension must therefore land at or near the target.
func TestYearsToTargetEstimateBoundsResimulation(t *testing.T) {
	desired := dec("4000")
	profile := &domain.WorkerProfile{
		Age:                40,
		Sex:                "male",
		GrossMonthlySalary: dec("8000"),
		WorkStartYear:      2015,
		WorkEndYear:        intPtr(2030),
		DesiredPension:     &desired,
	}

	engine := NewEngine(nil)
	first, err := engine.Project(profile, testCurrentYear)
	require.NoError(t, err)
	require.NotNil(t, first.YearsToWorkLonger)
	require.Greater(t, *first.YearsToWorkLonger, 0)

	extended := *profile
	end := *profile.WorkEndYear + *first.YearsToWorkLonger
	extended.WorkEndYear = &end

	second, err := engine.Project(&extended, testCurrentYear)
	require.NoError(t, err)

	assert.True(t, second.MonthlyPension.GreaterThanOrEqual(desired.Mul(dec("0.95"))),
		"extended benefit %s vs target %s", second.MonthlyPension, desired)
}

func TestProjectAlwaysReportsYearsToTarget(t *testing.T) {
	profile := &domain.WorkerProfile{
		Age:                35,
		Sex:                "male",
		GrossMonthlySalary: dec("8000"),
		WorkStartYear:      2010,
		WorkEndYear:        intPtr(2050),
		DesiredPension:     decPtr("20000"),
	}

	engine := NewEngine(nil)
	result, err := engine.Project(profile, testCurrentYear)
	require.NoError(t, err)

	require.NotNil(t, result.YearsToWorkLonger)
	assert.Greater(t, *result.YearsToWorkLonger, 0)
}
