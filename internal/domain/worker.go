package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Sex identifies the statutory category used for retirement age and
// life expectancy lookups.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// ParseSex normalizes the accepted aliases ("m", "male", "f", "k",
// "female", any case) to a canonical Sex value. The "k" alias comes from
// the Polish "kobieta".
func ParseSex(raw string) (Sex, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "m", "male":
		return SexMale, true
	case "f", "k", "female":
		return SexFemale, true
	default:
		return "", false
	}
}

// WorkerProfile is the full input to a projection run. Monetary values
// are gross monthly amounts in PLN.
type WorkerProfile struct {
	Age                int             `json:"age" yaml:"age"`
	Sex                string          `json:"sex" yaml:"sex"`
	GrossMonthlySalary decimal.Decimal `json:"grossMonthlySalary" yaml:"grossMonthlySalary"`
	WorkStartYear      int             `json:"workStartYear" yaml:"workStartYear"`

	// Optional fields. Nil means "not supplied", which is distinct from
	// an explicit zero (e.g. sick leave days).
	WorkEndYear          *int             `json:"workEndYear,omitempty" yaml:"workEndYear,omitempty"`
	MainAccountBalance   *decimal.Decimal `json:"mainAccountBalance,omitempty" yaml:"mainAccountBalance,omitempty"`
	SubAccountBalance    *decimal.Decimal `json:"subAccountBalance,omitempty" yaml:"subAccountBalance,omitempty"`
	SickLeaveDaysPerYear *decimal.Decimal `json:"sickLeaveDaysPerYear,omitempty" yaml:"sickLeaveDaysPerYear,omitempty"`
	DesiredPension       *decimal.Decimal `json:"desiredPension,omitempty" yaml:"desiredPension,omitempty"`
}

// ValidationResult collects every violation found in a profile. Checks
// are independent; nothing short-circuits on the first failure.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}
