// Package output renders projection results in the supported report
// formats: human-readable console text, machine-readable JSON, and a
// CSV dump of the audit trail.
package output

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/pmroz/zusgo/internal/domain"
	"github.com/pmroz/zusgo/internal/sanity"
)

// Report bundles everything a rendered report needs.
type Report struct {
	Profile *domain.WorkerProfile    `json:"profile"`
	Result  *domain.ProjectionResult `json:"result"`
	Verdict sanity.Verdict           `json:"verdict"`
}

// Generate renders the report in the requested format.
func Generate(w io.Writer, report Report, format string) error {
	switch format {
	case "console":
		return generateConsole(w, report)
	case "json":
		return generateJSON(w, report)
	case "csv":
		return generateCSV(w, report)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func generateConsole(w io.Writer, report Report) error {
	r := report.Result

	fmt.Fprintln(w, "=================================================================")
	fmt.Fprintln(w, "PENSION CAPITAL PROJECTION")
	fmt.Fprintln(w, "=================================================================")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Work span:             %d - %d\n", r.WorkStartYear, r.WorkEndYear)
	fmt.Fprintf(w, "Monthly pension:       %s\n", FormatCurrency(r.MonthlyPension))
	fmt.Fprintf(w, "Gross (pre-floor):     %s\n", FormatCurrency(r.GrossMonthlyPension))
	if r.MinimumGuaranteeApplied && r.MinimumPensionGap != nil {
		fmt.Fprintf(w, "Minimum guarantee:     applied (gap %s)\n", FormatCurrency(*r.MinimumPensionGap))
	}
	fmt.Fprintf(w, "Replacement rate:      %s\n", FormatPercent(r.ReplacementRatePercent))
	fmt.Fprintf(w, "Final salary:          %s\n", FormatCurrency(r.FinalSalaryProjection))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "CAPITAL BREAKDOWN")
	fmt.Fprintln(w, "-----------------")
	fmt.Fprintf(w, "Main account:          %s\n", FormatCurrency(r.Capital.MainAccount))
	fmt.Fprintf(w, "Sub-account:           %s\n", FormatCurrency(r.Capital.SubAccount))
	fmt.Fprintf(w, "Total capital:         %s\n", FormatCurrency(r.Capital.Total))
	fmt.Fprintf(w, "Life expectancy:       %s months\n", r.Capital.LifeExpectancyMonths.String())
	fmt.Fprintln(w)

	if r.YearsToWorkLonger != nil && *r.YearsToWorkLonger > 0 {
		fmt.Fprintf(w, "Additional years to reach the target benefit: %d\n", *r.YearsToWorkLonger)
	}
	if r.SickLeaveImpactMonthly != nil {
		fmt.Fprintf(w, "Sick leave impact:     %s per month\n", FormatCurrency(*r.SickLeaveImpactMonthly))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "PLAUSIBILITY CHECK")
	fmt.Fprintln(w, "------------------")
	fmt.Fprintf(w, "Status:     %s\n", report.Verdict.Status)
	fmt.Fprintf(w, "Diagnostic: %s\n", report.Verdict.Diagnostic)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "ASSUMPTIONS")
	fmt.Fprintln(w, "-----------")
	for _, a := range r.Assumptions {
		fmt.Fprintf(w, "  - %s\n", a)
	}

	return nil
}

func generateJSON(w io.Writer, report Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// generateCSV writes the contribution audit trail, one row per
// simulated year.
func generateCSV(w io.Writer, report Report) error {
	cw := csv.NewWriter(w)
	header := []string{
		"year", "nominal_salary", "effective_salary", "sick_leave_factor",
		"main_contribution", "sub_contribution", "main_balance", "sub_balance",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, c := range report.Result.AuditTrail.Contributions {
		row := []string{
			fmt.Sprintf("%d", c.Year),
			c.NominalSalary.StringFixed(2),
			c.EffectiveSalary.StringFixed(2),
			c.SickLeaveFactor.String(),
			c.MainContribution.StringFixed(2),
			c.SubContribution.StringFixed(2),
			c.MainBalance.StringFixed(2),
			c.SubBalance.StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
