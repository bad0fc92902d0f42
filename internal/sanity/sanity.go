// Package sanity implements the plausibility layer over a completed
// projection: independent checks that escalate an overall status and
// collect human-readable diagnostics, without ever mutating the result.
package sanity

import (
	"fmt"
	"strings"

	"github.com/pmroz/zusgo/internal/domain"
	"github.com/shopspring/decimal"
)

// Status is the verdict severity. Ordering: ok < warning < uncertain <
// error; checks only escalate, never de-escalate.
type Status string

const (
	StatusOK        Status = "ok"
	StatusWarning   Status = "warning"
	StatusUncertain Status = "uncertain"
	StatusError     Status = "error"
)

var severity = map[Status]int{
	StatusOK:        0,
	StatusWarning:   1,
	StatusUncertain: 2,
	StatusError:     3,
}

// escalate returns the more severe of the two statuses.
func escalate(current, candidate Status) Status {
	if severity[candidate] > severity[current] {
		return candidate
	}
	return current
}

// Verdict is the outcome of a plausibility check: the maximum-severity
// status among all triggered checks, the concatenated diagnostics, and
// a details mapping with the individual flags.
type Verdict struct {
	Status     Status         `json:"status"`
	Diagnostic string         `json:"diagnostic"`
	Details    map[string]any `json:"details"`
}

// Statistical bounds for a plausible benefit.
var (
	implausibleFloor    = decimal.NewFromInt(1000)
	implausibleCeiling  = decimal.NewFromInt(20000)
	minPlausibleCapital = decimal.NewFromInt(100000)
	maxPlausibleCapital = decimal.NewFromInt(5000000)

	deviationUncertain = decimal.NewFromInt(200)
	deviationWarning   = decimal.NewFromInt(100)

	replacementUncertain = decimal.NewFromInt(20)
	replacementLow       = decimal.NewFromInt(40)
	replacementHigh      = decimal.NewFromInt(80)
)

const withinBoundsMessage = "Projection within normal bounds - calculation looks correct"

// Check evaluates every plausibility rule against a completed
// projection result. The optional table supplies population-average
// overrides; built-in statistics are used otherwise. A missing result
// is a hard error with no further checks run.
func Check(result *domain.ProjectionResult, table *domain.IndexTable) Verdict {
	if result == nil {
		return Verdict{
			Status:     StatusError,
			Diagnostic: "No benefit value in the projection result",
			Details:    map[string]any{},
		}
	}

	status := StatusOK
	var diagnostics []string
	details := map[string]any{}

	pension := result.MonthlyPension

	// Absolute bounds.
	if pension.LessThan(implausibleFloor) {
		status = escalate(status, StatusUncertain)
		diagnostics = append(diagnostics,
			fmt.Sprintf("Benefit below the implausibility floor (%s PLN)", implausibleFloor))
		details["below_minimum"] = true
	} else if pension.LessThan(domain.MinimumPension) {
		status = escalate(status, StatusWarning)
		diagnostics = append(diagnostics,
			fmt.Sprintf("Benefit below the statutory minimum (%s PLN) - the minimum guarantee tops it up", domain.MinimumPension))
		details["minimum_guarantee_applied"] = true
	}
	if pension.GreaterThan(implausibleCeiling) {
		status = escalate(status, StatusUncertain)
		diagnostics = append(diagnostics,
			fmt.Sprintf("Benefit above the implausibility ceiling (%s PLN)", implausibleCeiling))
		details["above_maximum"] = true
	}

	// Deviation from the sex-specific population average.
	average, ok := table.AveragePension(result.Sex)
	if !ok {
		average = builtinAveragePension(result.Sex)
	}
	if average.GreaterThan(decimal.Zero) {
		deviation := pension.Sub(average).Div(average).Mul(decimal.NewFromInt(100))
		details["deviation_from_average_percent"] = deviation.Round(2)
		details["average_pension_for_sex"] = average

		switch {
		case deviation.Abs().GreaterThan(deviationUncertain):
			status = escalate(status, StatusUncertain)
			diagnostics = append(diagnostics,
				fmt.Sprintf("Severe deviation from the population average (%s%%)", deviation.Round(1)))
		case deviation.Abs().GreaterThan(deviationWarning):
			status = escalate(status, StatusWarning)
			diagnostics = append(diagnostics,
				fmt.Sprintf("Large deviation from the population average (%s%%)", deviation.Round(1)))
		}
	}

	// Replacement rate.
	replacement := result.ReplacementRatePercent
	details["replacement_rate"] = replacement
	switch {
	case replacement.LessThan(replacementUncertain):
		status = escalate(status, StatusUncertain)
		diagnostics = append(diagnostics,
			fmt.Sprintf("Very low replacement rate (%s%%)", replacement.Round(1)))
	case replacement.LessThan(replacementLow):
		status = escalate(status, StatusWarning)
		diagnostics = append(diagnostics,
			fmt.Sprintf("Low replacement rate (%s%%) - consider working longer", replacement.Round(1)))
	case replacement.GreaterThan(replacementHigh):
		status = escalate(status, StatusWarning)
		diagnostics = append(diagnostics,
			fmt.Sprintf("High replacement rate (%s%%) - verify the assumptions", replacement.Round(1)))
	}

	// Internally inconsistent: benefit exceeding the final salary.
	if pension.GreaterThan(result.FinalSalaryProjection) {
		status = escalate(status, StatusUncertain)
		diagnostics = append(diagnostics, "Benefit exceeds the projected final salary - verify the calculation")
		details["pension_higher_than_salary"] = true
	}

	// Total accumulated capital.
	capital := result.Capital.Total
	details["total_capital"] = capital
	if capital.LessThan(minPlausibleCapital) {
		status = escalate(status, StatusWarning)
		diagnostics = append(diagnostics, "Low pension capital - consider working longer or higher contributions")
	} else if capital.GreaterThan(maxPlausibleCapital) {
		status = escalate(status, StatusWarning)
		diagnostics = append(diagnostics, "Very high pension capital - verify the assumptions")
	}

	diagnostic := withinBoundsMessage
	if len(diagnostics) > 0 {
		diagnostic = strings.Join(diagnostics, "; ")
	}

	return Verdict{
		Status:     status,
		Diagnostic: diagnostic,
		Details:    details,
	}
}

func builtinAveragePension(sex domain.Sex) decimal.Decimal {
	if sex == domain.SexFemale {
		return decimal.NewFromInt(2800)
	}
	return decimal.NewFromInt(3500)
}
