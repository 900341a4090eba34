package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/entremotivator/turoi/internal/cli"
	"github.com/entremotivator/turoi/internal/config"
	"github.com/entremotivator/turoi/internal/engine"
	"github.com/entremotivator/turoi/internal/model"
	"github.com/entremotivator/turoi/internal/tui/components"
	"github.com/entremotivator/turoi/internal/tui/theme"
)

func (a App) viewMain() string {
	t := theme.Active
	cw := a.contentWidth()

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  ◈ turoi"))
	b.WriteString(subtitleStyle.Render(" · Car Rental ROI Calculator"))
	b.WriteString("\n")
	b.WriteString(components.RenderTabBar(a.activeTab))
	b.WriteString("\n\n")

	switch a.activeTab {
	case tabResults:
		b.WriteString(a.viewResults(cw))
	case tabMilestones:
		b.WriteString(a.viewMilestones(cw))
	case tabSettings:
		b.WriteString(a.viewSettings(cw))
	}

	b.WriteString("\n")
	b.WriteString(a.viewFooter())

	return b.String()
}

func (a App) viewResults(cw int) string {
	if a.calcErr != nil {
		return a.viewCalcError(cw)
	}

	t := theme.Active
	var b strings.Builder

	breakEven := "-"
	if idx := a.series.BreakEvenIndex(a.inputs.CarCost); idx >= 0 {
		breakEven = fmt.Sprintf("month %d", a.series[idx].Month)
	}

	cards := []struct{ Label, Value, Sub string }{
		{"Monthly Income", cli.FormatMoney(a.res.MonthlyIncome),
			fmt.Sprintf("%s x %d days", cli.FormatMoney(a.inputs.DailyRate), a.inputs.RentalDays)},
		{"Months to Recoup", fmt.Sprintf("%.2f", a.res.MonthsToRecoup),
			"break-even " + breakEven},
		{"Monthly ROI", cli.FormatPercent(a.res.ROIPercent),
			"of " + cli.FormatMoney(a.inputs.CarCost)},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Breakdown narrative
	breakdownStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	lines := []string{
		fmt.Sprintf("Monthly Income:  Daily Rate x Rental Days = %s x %d = %s",
			cli.FormatMoney(a.inputs.DailyRate), a.inputs.RentalDays, cli.FormatMoney(a.res.MonthlyIncome)),
		fmt.Sprintf("Recoupment Time: Car Cost / Monthly Income = %s / %s = %s",
			cli.FormatMoney(a.inputs.CarCost), cli.FormatMoney(a.res.MonthlyIncome), cli.FormatMonths(a.res.MonthsToRecoup)),
		fmt.Sprintf("Monthly ROI:     (Monthly Income / Car Cost) x 100 = %s",
			cli.FormatPercent(a.res.ROIPercent)),
	}
	b.WriteString(components.ContentCard("Calculation Breakdown",
		breakdownStyle.Render(strings.Join(lines, "\n")), cw))
	b.WriteString("\n")

	// Cumulative income chart
	chartH := a.height - 22
	if chartH < 8 {
		chartH = 8
	}
	if chartH > 16 {
		chartH = 16
	}
	if len(a.series) > 0 {
		b.WriteString(components.ContentCard(
			fmt.Sprintf("Cumulative Income vs. Investment (%d months)", len(a.series)),
			components.IncomeChart(a.series, a.inputs.CarCost, components.CardInnerWidth(cw), chartH),
			cw,
		))
		b.WriteString("\n")
	}

	return b.String()
}

func (a App) viewCalcError(cw int) string {
	t := theme.Active
	errStyle := lipgloss.NewStyle().Foreground(t.Red)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var msg string
	switch {
	case errors.Is(a.calcErr, engine.ErrNoIncome), errors.Is(a.calcErr, engine.ErrZeroCost):
		msg = "Calculation cannot proceed: " + a.calcErr.Error() + "."
	case errors.Is(a.calcErr, model.ErrInvalidInput):
		msg = "Please enter valid positive values for all parameters."
	default:
		msg = a.calcErr.Error()
	}

	body := errStyle.Render(msg) + "\n" +
		hintStyle.Render("Press e to adjust the inputs.")
	return components.ContentCard("Error", body, cw)
}

func (a App) viewMilestones(cw int) string {
	if a.calcErr != nil {
		return a.viewCalcError(cw)
	}
	if len(a.series) == 0 {
		t := theme.Active
		return components.ContentCard("Milestones",
			lipgloss.NewStyle().Foreground(t.TextMuted).
				Render("Recoupment is under a month; no milestones to list."), cw)
	}

	title := fmt.Sprintf("Milestones (%d months, income %s/month)",
		len(a.series), cli.FormatMoney(a.res.MonthlyIncome))
	return components.ContentCard(title, a.milestones.View(), cw)
}

func (a App) viewSettings(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent)
	noteStyle := lipgloss.NewStyle().Foreground(t.Green)

	var b strings.Builder
	b.WriteString(valueStyle.Render("Color theme"))
	b.WriteString("\n")
	for i, th := range theme.All {
		marker := "( )"
		style := labelStyle
		if th.Name == theme.Active.Name {
			marker = "(o)"
		}
		if i == a.themeCursor {
			style = accentStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("  %s %s", marker, th.Name)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("j/k select · enter apply · d save current inputs as defaults"))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Config: " + config.ConfigPath()))

	if a.statusNote != "" {
		b.WriteString("\n\n")
		b.WriteString(noteStyle.Render(a.statusNote))
	}

	return components.ContentCard("Settings", b.String(), cw)
}

func (a App) viewFooter() string {
	t := theme.Active
	hint := lipgloss.NewStyle().Foreground(t.TextDim)
	return hint.Render("  e edit inputs · r/m/s or ←/→ tabs · q quit")
}
