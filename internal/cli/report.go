package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/venue-sim/internal/model"
	"github.com/Veraticus/venue-sim/internal/staff"
)

// RenderReport renders one day's report in a box. balance is the ledger
// balance after the day closed.
func RenderReport(venue string, report *model.DailyReport, balance float64, currency string) string {
	var b strings.Builder

	b.WriteString(BoldStyle.Render("Income") + "\n")
	writeAmounts(&b, report.IncomeBySource(), currency, SuccessStyle)
	b.WriteString("\n" + BoldStyle.Render("Expenses") + "\n")
	writeAmounts(&b, report.ExpensesByCategory(), currency, ErrorStyle)

	profitStyle := SuccessStyle
	if report.Profit < 0 {
		profitStyle = ErrorStyle
	}

	fmt.Fprintf(&b, "\n%-16s %s\n", "Total income", FormatMoney(report.TotalIncome, currency))
	fmt.Fprintf(&b, "%-16s %s\n", "Total expenses", FormatMoney(report.TotalExpenses, currency))
	fmt.Fprintf(&b, "%-16s %s\n", "Profit", profitStyle.Render(FormatMoney(report.Profit, currency)))
	fmt.Fprintf(&b, "%-16s %s\n", "Balance", FormatMoney(balance, currency))
	b.WriteString(SubtleStyle.Render(fmt.Sprintf("%d transactions", report.TransactionCount())))

	return RenderBox(fmt.Sprintf("%s %s · Day %d", ChartIcon, venue, report.Day), b.String())
}

func writeAmounts(b *strings.Builder, amounts map[string]float64, currency string, style lipgloss.Style) {
	if len(amounts) == 0 {
		b.WriteString(SubtleStyle.Render("  (none)") + "\n")
		return
	}
	for _, category := range model.SortedCategories(amounts) {
		fmt.Fprintf(b, "  %-14s %s\n", category, style.Render(FormatMoney(amounts[category], currency)))
	}
}

// RenderTaskTable renders the task family presets as a table.
func RenderTaskTable(presets []staff.Preset) string {
	headers := []string{"Family", "Duration", "Location", "Requires", "Weights"}
	rows := make([][]string, 0, len(presets))
	for _, p := range presets {
		rows = append(rows, []string{
			p.Family,
			formatDuration(p),
			p.Location,
			formatRequirements(p.Required),
			formatWeights(p.Relevant),
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	b.WriteString(renderRow(headers, widths, TableHeaderStyle) + "\n")
	for _, row := range rows {
		b.WriteString(renderRow(row, widths, TableCellStyle) + "\n")
	}
	return b.String()
}

func renderRow(cells []string, widths []int, style lipgloss.Style) string {
	rendered := make([]string, len(cells))
	for i, cell := range cells {
		rendered[i] = style.Width(widths[i] + 2).Render(cell)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func formatDuration(p staff.Preset) string {
	if p.Duration <= 0 {
		return "continuous"
	}
	return fmt.Sprintf("%.0fm", p.Duration.Minutes())
}

func formatRequirements(reqs []staff.Requirement) string {
	parts := make([]string, 0, len(reqs))
	for _, r := range reqs {
		parts = append(parts, fmt.Sprintf("%s≥%g", r.Attribute, r.Min))
	}
	return strings.Join(parts, " ")
}

func formatWeights(weights []staff.Weight) string {
	parts := make([]string, 0, len(weights))
	for _, w := range weights {
		parts = append(parts, fmt.Sprintf("%s×%g", w.Attribute, w.Weight))
	}
	return strings.Join(parts, " ")
}
