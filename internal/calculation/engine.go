// Package calculation implements the capital projection engine and the
// benefit derivation on top of it. Every run is pure: state lives in a
// per-invocation accumulator, the index table and statutory constants
// are read-only, and identical inputs (including the passed-in current
// year) produce identical results.
package calculation

import (
	"fmt"

	"github.com/pmroz/zusgo/internal/domain"
	"github.com/pmroz/zusgo/internal/validation"
	"github.com/shopspring/decimal"
)

var (
	decimalZero    = decimal.Zero
	decimalOne     = decimal.NewFromInt(1)
	decimalTwelve  = decimal.NewFromInt(12)
	decimalHundred = decimal.NewFromInt(100)
)

// Engine runs capital projections against a fixed index table. A nil
// table is valid and resolves every year to the long-run defaults.
type Engine struct {
	Table *domain.IndexTable
}

// NewEngine creates an engine bound to the given index table.
func NewEngine(table *domain.IndexTable) *Engine {
	return &Engine{Table: table}
}

// projectionState is the mutable accumulator scoped to one simulation
// run. It is owned exclusively by Project for the duration of one call.
type projectionState struct {
	main  decimal.Decimal
	sub   decimal.Decimal
	trail domain.AuditTrail

	// lostContributions accumulates the contribution shortfall caused
	// by sick leave, re-used by the sick-leave impact approximation.
	lostContributions decimal.Decimal

	finalNominalSalary   decimal.Decimal
	finalEffectiveSalary decimal.Decimal
}

// Project validates the profile, simulates capital accumulation from
// work start to work end inclusive, and derives the benefit figures.
// It fails fast with a *domain.ValidationError when the profile is
// invalid, so callers need not pre-validate.
func (e *Engine) Project(profile *domain.WorkerProfile, currentYear int) (*domain.ProjectionResult, error) {
	vr := validation.Validate(profile, currentYear)
	if !vr.Valid {
		return nil, &domain.ValidationError{Result: vr}
	}

	sex, _ := domain.ParseSex(profile.Sex)
	lifeMonths := domain.LifeExpectancyMonths(sex)
	if !lifeMonths.GreaterThan(decimalZero) {
		return nil, &domain.ComputationError{Op: "project", Message: "life expectancy months must be positive"}
	}

	startYear := profile.WorkStartYear
	endYear := resolveWorkEndYear(profile, sex, currentYear)
	if endYear < startYear {
		return nil, &domain.ComputationError{
			Op:      "project",
			Message: fmt.Sprintf("work end year %d before work start year %d", endYear, startYear),
		}
	}

	sickDays := decimalZero
	if profile.SickLeaveDaysPerYear != nil {
		sickDays = *profile.SickLeaveDaysPerYear
	}
	sickFactor := sickLeaveFactor(sickDays)

	state := &projectionState{
		main:              decimalZero,
		sub:               decimalZero,
		lostContributions: decimalZero,
	}
	if profile.MainAccountBalance != nil {
		state.main = *profile.MainAccountBalance
	}
	if profile.SubAccountBalance != nil {
		state.sub = *profile.SubAccountBalance
	}

	// Bounded loop: exactly endYear-startYear+1 iterations.
	for year := startYear; year <= endYear; year++ {
		nominal := projectedSalary(profile.GrossMonthlySalary, year, currentYear)
		effective := nominal.Mul(sickFactor)

		mainContribution := effective.Mul(domain.MainAccountRate).Mul(decimalTwelve)
		subContribution := effective.Mul(domain.SubAccountRate).Mul(decimalTwelve)
		state.main = state.main.Add(mainContribution)
		state.sub = state.sub.Add(subContribution)

		lost := nominal.Sub(effective).Mul(domain.ContributionRateTotal).Mul(decimalTwelve)
		state.lostContributions = state.lostContributions.Add(lost)

		state.trail.Contributions = append(state.trail.Contributions, domain.ContributionRecord{
			Year:             year,
			NominalSalary:    nominal.Round(2),
			EffectiveSalary:  effective.Round(2),
			SickLeaveFactor:  sickFactor.Round(4),
			MainContribution: mainContribution.Round(2),
			SubContribution:  subContribution.Round(2),
			MainBalance:      state.main.Round(2),
			SubBalance:       state.sub.Round(2),
		})

		// End-of-year revaluation takes effect for the following
		// contribution year, so the indices are looked up one year
		// ahead and the final simulated year is not revalued.
		if year != endYear {
			valorization := e.Table.ValorizationFor(year + 1)
			profitability := e.Table.ProfitabilityFor(year + 1)
			state.main = state.main.Mul(valorization)
			state.sub = state.sub.Mul(profitability)

			state.trail.Valorizations = append(state.trail.Valorizations, domain.ValorizationRecord{
				IndexYear:          year + 1,
				ValorizationIndex:  valorization,
				ProfitabilityIndex: profitability,
				MainBalance:        state.main.Round(2),
				SubBalance:         state.sub.Round(2),
			})
		}

		state.finalNominalSalary = nominal
		state.finalEffectiveSalary = effective
	}

	return deriveResult(profile, sex, state, startYear, endYear, currentYear, sickDays), nil
}

// resolveWorkEndYear returns the explicit work end year, or derives one
// from the statutory retirement age when the profile omits it.
func resolveWorkEndYear(profile *domain.WorkerProfile, sex domain.Sex, currentYear int) int {
	if profile.WorkEndYear != nil {
		return *profile.WorkEndYear
	}
	endYear := currentYear + (domain.RetirementAge(sex) - profile.Age)
	if endYear < profile.WorkStartYear {
		endYear = profile.WorkStartYear
	}
	return endYear
}

// projectedSalary returns the gross monthly salary assumed for a year.
// Years at or before the current calendar year use the stated salary
// unchanged; later years compound the fixed annual growth rate.
func projectedSalary(base decimal.Decimal, year, currentYear int) decimal.Decimal {
	if year <= currentYear {
		return base
	}
	growth := onePlus(domain.SalaryGrowthRate).Pow(decimal.NewFromInt(int64(year - currentYear)))
	return base.Mul(growth)
}

// sickLeaveFactor is (workingDays - sickDays) / workingDays; 1 when no
// sick leave figure was supplied.
func sickLeaveFactor(sickDays decimal.Decimal) decimal.Decimal {
	if sickDays.LessThanOrEqual(decimalZero) {
		return decimalOne
	}
	return domain.WorkingDaysPerYear.Sub(sickDays).Div(domain.WorkingDaysPerYear)
}

func onePlus(rate decimal.Decimal) decimal.Decimal {
	return decimalOne.Add(rate)
}
