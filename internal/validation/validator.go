// Package validation performs structural and domain-range checks on a
// worker profile before projection. All checks are independent and all
// violations are collected; nothing short-circuits on the first
// failure and nothing here panics.
package validation

import (
	"fmt"

	"github.com/pmroz/zusgo/internal/domain"
	"github.com/shopspring/decimal"
)

// Validate runs every rule against the profile and returns the full
// list of errors and warnings. currentYear is passed in so results are
// reproducible; callers normally supply time.Now().Year().
func Validate(profile *domain.WorkerProfile, currentYear int) domain.ValidationResult {
	result := domain.ValidationResult{
		Errors:   []string{},
		Warnings: []string{},
	}
	if profile == nil {
		result.Errors = append(result.Errors, "profile is required")
		return result
	}

	checkAge(profile, &result)
	sex, sexOK := domain.ParseSex(profile.Sex)
	if !sexOK {
		result.Errors = append(result.Errors,
			fmt.Sprintf("sex must be one of: male, female, m, f, k (got %q)", profile.Sex))
	}
	checkSalary(profile, &result)
	checkWorkStartYear(profile, currentYear, &result)
	if profile.WorkEndYear != nil {
		checkWorkEndYear(profile, sex, sexOK, currentYear, &result)
	}
	checkBalances(profile, &result)
	checkSickLeave(profile, &result)

	result.Valid = len(result.Errors) == 0
	return result
}

func checkAge(p *domain.WorkerProfile, r *domain.ValidationResult) {
	switch {
	case p.Age < domain.MinAge:
		r.Errors = append(r.Errors, fmt.Sprintf("age must be at least %d (got %d)", domain.MinAge, p.Age))
	case p.Age > domain.MaxAge:
		r.Errors = append(r.Errors, fmt.Sprintf("age must be at most %d (got %d)", domain.MaxAge, p.Age))
	case p.Age < domain.YoungAgeWarning:
		r.Warnings = append(r.Warnings, fmt.Sprintf("very young age (%d) - verify the input", p.Age))
	}
}

func checkSalary(p *domain.WorkerProfile, r *domain.ValidationResult) {
	salary := p.GrossMonthlySalary
	switch {
	case salary.LessThanOrEqual(decimal.Zero):
		r.Errors = append(r.Errors, "gross monthly salary must be positive")
	case salary.LessThan(domain.MinimumWageThreshold):
		r.Warnings = append(r.Warnings,
			fmt.Sprintf("salary %s PLN is below the minimum wage threshold", salary.StringFixed(2)))
	case salary.GreaterThan(domain.HighSalaryThreshold):
		r.Warnings = append(r.Warnings,
			fmt.Sprintf("salary %s PLN is implausibly high - verify the input", salary.StringFixed(2)))
	}
}

func checkWorkStartYear(p *domain.WorkerProfile, currentYear int, r *domain.ValidationResult) {
	switch {
	case p.WorkStartYear < domain.MinWorkStartYear:
		r.Errors = append(r.Errors,
			fmt.Sprintf("work start year must not be earlier than %d (got %d)", domain.MinWorkStartYear, p.WorkStartYear))
	case p.WorkStartYear > currentYear:
		r.Errors = append(r.Errors,
			fmt.Sprintf("work start year %d is in the future", p.WorkStartYear))
	default:
		yearsSinceStart := currentYear - p.WorkStartYear
		if yearsSinceStart > p.Age {
			// Would mean the worker started before being born.
			r.Errors = append(r.Errors,
				fmt.Sprintf("age %d is inconsistent with work start year %d", p.Age, p.WorkStartYear))
		} else if p.Age-yearsSinceStart < domain.MinWorkingAge {
			r.Warnings = append(r.Warnings,
				fmt.Sprintf("work start year %d implies starting work before age %d - verify the input",
					p.WorkStartYear, domain.MinWorkingAge))
		}
	}
}

func checkWorkEndYear(p *domain.WorkerProfile, sex domain.Sex, sexOK bool, currentYear int, r *domain.ValidationResult) {
	endYear := *p.WorkEndYear
	switch {
	case endYear < p.WorkStartYear:
		r.Errors = append(r.Errors,
			fmt.Sprintf("work end year %d is before work start year %d", endYear, p.WorkStartYear))
	case endYear < currentYear:
		r.Warnings = append(r.Warnings,
			fmt.Sprintf("work end year %d is in the past - already retired?", endYear))
	case endYear > currentYear+domain.MaxYearsAhead:
		r.Warnings = append(r.Warnings,
			fmt.Sprintf("work end year %d is more than %d years out - verify the input", endYear, domain.MaxYearsAhead))
	}

	if sexOK && endYear >= p.WorkStartYear {
		statutory := domain.RetirementAge(sex)
		impliedAge := p.Age + (endYear - currentYear)
		deviation := impliedAge - statutory
		if deviation < -domain.RetirementAgeDeviationYears || deviation > domain.RetirementAgeDeviationYears {
			r.Warnings = append(r.Warnings,
				fmt.Sprintf("implied retirement age %d deviates more than %d years from the statutory age %d",
					impliedAge, domain.RetirementAgeDeviationYears, statutory))
		}
	}
}

func checkBalances(p *domain.WorkerProfile, r *domain.ValidationResult) {
	if p.MainAccountBalance != nil {
		switch {
		case p.MainAccountBalance.IsNegative():
			r.Errors = append(r.Errors, "main account balance must not be negative")
		case p.MainAccountBalance.GreaterThan(domain.MaxMainBalance):
			r.Warnings = append(r.Warnings,
				fmt.Sprintf("main account balance %s PLN is implausibly large - verify the input",
					p.MainAccountBalance.StringFixed(2)))
		}
	}
	if p.SubAccountBalance != nil {
		switch {
		case p.SubAccountBalance.IsNegative():
			r.Errors = append(r.Errors, "sub-account balance must not be negative")
		case p.SubAccountBalance.GreaterThan(domain.MaxSubBalance):
			r.Warnings = append(r.Warnings,
				fmt.Sprintf("sub-account balance %s PLN is implausibly large - verify the input",
					p.SubAccountBalance.StringFixed(2)))
		}
		if p.MainAccountBalance != nil && p.SubAccountBalance.GreaterThan(*p.MainAccountBalance) {
			// Atypical but not invalid.
			r.Warnings = append(r.Warnings, "sub-account balance exceeds the main account balance")
		}
	}
}

func checkSickLeave(p *domain.WorkerProfile, r *domain.ValidationResult) {
	if p.SickLeaveDaysPerYear == nil {
		return
	}
	days := *p.SickLeaveDaysPerYear
	switch {
	case days.IsNegative():
		r.Errors = append(r.Errors, "sick leave days per year must not be negative")
	case days.GreaterThan(decimal.NewFromInt(domain.MaxSickLeaveDays)):
		// More sick days than working days in a year.
		r.Errors = append(r.Errors,
			fmt.Sprintf("sick leave days per year must not exceed %d", domain.MaxSickLeaveDays))
	case days.GreaterThan(decimal.NewFromInt(domain.SickLeaveWarnDays)):
		r.Warnings = append(r.Warnings,
			fmt.Sprintf("very high sick leave (%s days per year) - severe impact on the benefit", days.String()))
	}
}
