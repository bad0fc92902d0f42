// Package tui is a terminal browser over a computed projection: a
// summary panel plus a scrollable table of the yearly audit trail.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pmroz/zusgo/internal/domain"
	"github.com/pmroz/zusgo/internal/sanity"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	valueStyle = lipgloss.NewStyle().Bold(true)

	statusStyles = map[sanity.Status]lipgloss.Style{
		sanity.StatusOK:        lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		sanity.StatusWarning:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		sanity.StatusUncertain: lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		sanity.StatusError:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
)

// Model drives the projection browser.
type Model struct {
	result  *domain.ProjectionResult
	verdict sanity.Verdict
	trail   table.Model
	width   int
	height  int
}

// NewModel builds the browser for a completed projection.
func NewModel(result *domain.ProjectionResult, verdict sanity.Verdict) Model {
	columns := []table.Column{
		{Title: "Year", Width: 6},
		{Title: "Salary", Width: 12},
		{Title: "Effective", Width: 12},
		{Title: "Main contrib", Width: 13},
		{Title: "Sub contrib", Width: 12},
		{Title: "Main balance", Width: 14},
		{Title: "Sub balance", Width: 13},
	}

	rows := make([]table.Row, 0, len(result.AuditTrail.Contributions))
	for _, c := range result.AuditTrail.Contributions {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", c.Year),
			c.NominalSalary.StringFixed(2),
			c.EffectiveSalary.StringFixed(2),
			c.MainContribution.StringFixed(2),
			c.SubContribution.StringFixed(2),
			c.MainBalance.StringFixed(2),
			c.SubBalance.StringFixed(2),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	return Model{result: result, verdict: verdict, trail: t}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if msg.Height > 14 {
			m.trail.SetHeight(msg.Height - 14)
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.trail, cmd = m.trail.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	r := m.result

	header := titleStyle.Render("PENSION PROJECTION")

	summary := lipgloss.JoinVertical(lipgloss.Left,
		fmt.Sprintf("%s %s", labelStyle.Render("Monthly pension:"), valueStyle.Render(r.MonthlyPension.StringFixed(2)+" PLN")),
		fmt.Sprintf("%s %s", labelStyle.Render("Replacement rate:"), valueStyle.Render(r.ReplacementRatePercent.StringFixed(1)+"%")),
		fmt.Sprintf("%s %s", labelStyle.Render("Total capital:"), valueStyle.Render(r.Capital.Total.StringFixed(2)+" PLN")),
		fmt.Sprintf("%s %d - %d", labelStyle.Render("Work span:"), r.WorkStartYear, r.WorkEndYear),
		fmt.Sprintf("%s %s  %s", labelStyle.Render("Plausibility:"),
			statusStyles[m.verdict.Status].Render(string(m.verdict.Status)),
			labelStyle.Render(m.verdict.Diagnostic)),
	)

	help := helpStyle.Render("↑/↓ scroll audit trail • q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, "", summary, "", m.trail.View(), help)
}
