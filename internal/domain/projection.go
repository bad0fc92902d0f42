package domain

import "github.com/shopspring/decimal"

// ContributionRecord is the audit entry appended for every simulated
// working year, after contributions are added to both accounts.
type ContributionRecord struct {
	Year             int             `json:"year"`
	NominalSalary    decimal.Decimal `json:"nominalSalary"`
	EffectiveSalary  decimal.Decimal `json:"effectiveSalary"`
	SickLeaveFactor  decimal.Decimal `json:"sickLeaveFactor"`
	MainContribution decimal.Decimal `json:"mainContribution"`
	SubContribution  decimal.Decimal `json:"subContribution"`
	MainBalance      decimal.Decimal `json:"mainBalance"`
	SubBalance       decimal.Decimal `json:"subBalance"`
}

// ValorizationRecord is appended after end-of-year revaluation. The
// index year is the year whose multiplier was applied (Y+1 relative to
// the contribution year).
type ValorizationRecord struct {
	IndexYear          int             `json:"indexYear"`
	ValorizationIndex  decimal.Decimal `json:"valorizationIndex"`
	ProfitabilityIndex decimal.Decimal `json:"profitabilityIndex"`
	MainBalance        decimal.Decimal `json:"mainBalance"`
	SubBalance         decimal.Decimal `json:"subBalance"`
}

// AuditTrail is the append-only per-year log of one simulation run. The
// engine retains it in full; presentation layers may truncate it.
type AuditTrail struct {
	Contributions []ContributionRecord `json:"contributions"`
	Valorizations []ValorizationRecord `json:"valorizations"`
}

// Truncate returns a copy keeping only the most recent n years of each
// record kind. n <= 0 keeps everything.
func (a AuditTrail) Truncate(n int) AuditTrail {
	if n <= 0 {
		return a
	}
	out := a
	if len(out.Contributions) > n {
		out.Contributions = out.Contributions[len(out.Contributions)-n:]
	}
	if len(out.Valorizations) > n {
		out.Valorizations = out.Valorizations[len(out.Valorizations)-n:]
	}
	return out
}

// CapitalBreakdown splits the accumulated capital by account.
type CapitalBreakdown struct {
	MainAccount          decimal.Decimal `json:"mainAccount"`
	SubAccount           decimal.Decimal `json:"subAccount"`
	Total                decimal.Decimal `json:"total"`
	LifeExpectancyMonths decimal.Decimal `json:"lifeExpectancyMonths"`
}

// ProjectionResult is the complete output of one engine invocation.
// Every field has exactly one producer; there are no fallback chains.
// The struct is created once per run and not mutated afterwards.
type ProjectionResult struct {
	// MonthlyPension is the reported benefit after the statutory
	// minimum floor; GrossMonthlyPension retains the pre-floor value
	// for diagnostics.
	MonthlyPension          decimal.Decimal  `json:"monthlyPension"`
	GrossMonthlyPension     decimal.Decimal  `json:"grossMonthlyPension"`
	MinimumGuaranteeApplied bool             `json:"minimumGuaranteeApplied"`
	MinimumPensionGap       *decimal.Decimal `json:"minimumPensionGap,omitempty"`

	ReplacementRatePercent decimal.Decimal `json:"replacementRatePercent"`
	FinalSalaryProjection  decimal.Decimal `json:"finalSalaryProjection"`

	Capital CapitalBreakdown `json:"capital"`

	YearsToWorkLonger      *int             `json:"yearsToWorkLonger,omitempty"`
	SickLeaveImpactMonthly *decimal.Decimal `json:"sickLeaveImpactMonthly,omitempty"`

	AuditTrail  AuditTrail `json:"auditTrail"`
	Assumptions []string   `json:"assumptions"`

	// Inputs resolved during the run, recorded for reproducibility.
	Sex           Sex `json:"sex"`
	WorkStartYear int `json:"workStartYear"`
	WorkEndYear   int `json:"workEndYear"`
	CurrentYear   int `json:"currentYear"`
}
