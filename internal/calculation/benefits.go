package calculation

import (
	"github.com/pmroz/zusgo/internal/domain"
	"github.com/shopspring/decimal"
)

// deriveResult converts the accumulated capital into the reported
// benefit figures. Presentation values are rounded to two fractional
// digits, half up; the underlying derivation runs at full precision.
func deriveResult(profile *domain.WorkerProfile, sex domain.Sex, state *projectionState, startYear, endYear, currentYear int, sickDays decimal.Decimal) *domain.ProjectionResult {
	lifeMonths := domain.LifeExpectancyMonths(sex)
	total := state.main.Add(state.sub)

	gross := total.Div(lifeMonths)
	reported := gross
	guaranteeApplied := false
	var gap *decimal.Decimal
	if gross.LessThan(domain.MinimumPension) {
		reported = domain.MinimumPension
		guaranteeApplied = true
		g := domain.MinimumPension.Sub(gross).Round(2)
		gap = &g
	}

	replacement := reported.Div(state.finalNominalSalary).Mul(decimalHundred)

	result := &domain.ProjectionResult{
		MonthlyPension:          reported.Round(2),
		GrossMonthlyPension:     gross.Round(2),
		MinimumGuaranteeApplied: guaranteeApplied,
		MinimumPensionGap:       gap,
		ReplacementRatePercent:  replacement.Round(2),
		FinalSalaryProjection:   state.finalNominalSalary.Round(2),
		Capital: domain.CapitalBreakdown{
			MainAccount:          state.main.Round(2),
			SubAccount:           state.sub.Round(2),
			Total:                total.Round(2),
			LifeExpectancyMonths: lifeMonths,
		},
		AuditTrail:    state.trail,
		Assumptions:   assumptions(),
		Sex:           sex,
		WorkStartYear: startYear,
		WorkEndYear:   endYear,
		CurrentYear:   currentYear,
	}

	horizon := endYear - startYear + 1
	if sickDays.GreaterThan(decimalZero) {
		impact := sickLeaveImpact(state.lostContributions, horizon, lifeMonths)
		result.SickLeaveImpactMonthly = &impact
	}

	years := yearsToTarget(profile, reported, total, state.finalNominalSalary, state.finalEffectiveSalary, lifeMonths)
	result.YearsToWorkLonger = &years

	return result
}

// sickLeaveImpact estimates the monthly benefit lost to sick leave: the
// total contribution shortfall, compounded at the default valorization
// over half the horizon as an approximation of when the average
// contribution was made, annuitized over the life expectancy.
func sickLeaveImpact(lostContributions decimal.Decimal, horizonYears int, lifeMonths decimal.Decimal) decimal.Decimal {
	halfHorizon := int64(horizonYears / 2)
	compounded := lostContributions.Mul(domain.DefaultValorizationIndex.Pow(decimal.NewFromInt(halfHorizon)))
	return compounded.Div(lifeMonths).Round(2)
}

// yearsToTarget estimates how many additional working years are needed
// to reach the target benefit. The target is the desired pension when
// the profile states one, otherwise 60% of the projected final salary,
// floored at the statutory minimum in both cases.
//
// This is a deliberate closed-form linear approximation: one extra year
// is assumed to add the final-year contribution revalued once at the
// default valorization. It does not re-run the compounding engine per
// candidate year.
func yearsToTarget(profile *domain.WorkerProfile, reported, totalCapital, finalNominal, finalEffective, lifeMonths decimal.Decimal) int {
	target := domain.MinimumPension
	if profile.DesiredPension != nil {
		if profile.DesiredPension.GreaterThan(target) {
			target = *profile.DesiredPension
		}
	} else {
		heuristic := finalNominal.Mul(domain.TargetReplacementRate)
		if heuristic.GreaterThan(target) {
			target = heuristic
		}
	}

	if reported.GreaterThanOrEqual(target) {
		return 0
	}

	monthlyContribution := finalEffective.Mul(domain.ContributionRateTotal)
	annualGain := monthlyContribution.Mul(decimalTwelve).Mul(domain.DefaultValorizationIndex)
	if !annualGain.GreaterThan(decimalZero) {
		return 0
	}

	shortfall := target.Mul(lifeMonths).Sub(totalCapital)
	if !shortfall.GreaterThan(decimalZero) {
		return 0
	}

	years := int(shortfall.Div(annualGain).Round(0).IntPart())
	if years < 0 {
		years = 0
	}
	return years
}

// assumptions lists the modeling constants baked into a run, rendered
// verbatim in detailed outputs.
func assumptions() []string {
	return []string{
		"Pension contribution: 19.52% of gross salary (12.22% main account, 7.30% sub-account)",
		"Salary growth for future years: 3.5% annually; historical years use the stated salary unchanged",
		"Long-run valorization: 4.0% main account, 3.5% sub-account",
		"Life expectancy after retirement: 210 months (male), 254.3 months (female)",
		"Statutory minimum pension: 1780.96 PLN per month",
		"Sick leave reduces contributions by (250 - days) / 250 working days",
		"Years-to-target is a closed-form linear estimate, not a re-simulation",
	}
}
