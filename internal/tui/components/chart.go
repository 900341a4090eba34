package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/entremotivator/turoi/internal/model"
	"github.com/entremotivator/turoi/internal/tui/theme"
)

// IncomeChart plots the cumulative income curve with a dashed reference
// line at carCost, themed for the dashboard. The series is sampled down
// when there are more milestones than columns.
func IncomeChart(series model.ProjectionSeries, carCost float64, width, height int) string {
	if len(series) == 0 {
		return ""
	}
	t := theme.Active

	if width < 20 {
		width = 20
	}
	if height < 4 {
		height = 4
	}

	values := series.Values()
	months := series.Months()

	maxVal := carCost
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal <= 0 {
		maxVal = 1
	}

	tickStep := niceTickStep(maxVal)
	for int(math.Ceil(maxVal/tickStep)) > height/2 {
		tickStep *= 2
	}
	ceiling := math.Ceil(maxVal/tickStep) * tickStep

	yLabelW := len(axisLabel(ceiling)) + 1
	if yLabelW < 5 {
		yLabelW = 5
	}

	chartW := width - yLabelW - 1
	if chartW < 10 {
		chartW = 10
	}

	if len(values) > chartW {
		sampled := make([]float64, chartW)
		sampledMonths := make([]int, chartW)
		for i := range sampled {
			src := i * (len(values) - 1) / (chartW - 1)
			sampled[i] = values[src]
			sampledMonths[i] = months[src]
		}
		values = sampled
		months = sampledMonths
	}

	colW := chartW / len(values)
	if colW < 1 {
		colW = 1
	}
	if colW > 4 {
		colW = 4
	}
	axisLen := colW * len(values)

	refRow := int(math.Round(carCost / ceiling * float64(height)))
	if refRow > height {
		refRow = height
	}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	curveStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	fillStyle := lipgloss.NewStyle().Foreground(t.Blue).Background(t.Surface)
	refLineStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
	blankStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder

	for row := height; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(height)
		rowBottom := ceiling * float64(row-1) / float64(height)

		label := ""
		labelStyle := axisStyle
		if row == refRow {
			label = axisLabel(carCost)
			labelStyle = refLineStyle
		} else if isTickRow(rowTop, tickStep, ceiling/float64(height)) {
			label = axisLabel(rowTop)
		}
		b.WriteString(labelStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))

		for _, v := range values {
			switch {
			case (v >= rowBottom && v < rowTop) || (row == height && v >= ceiling):
				b.WriteString(curveStyle.Render(strings.Repeat("•", colW)))
			case v >= rowTop:
				b.WriteString(fillStyle.Render(strings.Repeat("░", colW)))
			case row == refRow:
				b.WriteString(refLineStyle.Render(strings.Repeat("╌", colW)))
			default:
				b.WriteString(blankStyle.Render(strings.Repeat(" ", colW)))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└" + strings.Repeat("─", axisLen)))
	b.WriteString("\n")

	// Month labels under the axis, thinned for readability
	buf := make([]byte, axisLen)
	for i := range buf {
		buf[i] = ' '
	}
	step := 1
	if colW < 6 {
		step = (6 + colW - 1) / colW
	}
	for i := 0; i < len(values); i += step {
		lbl := fmt.Sprintf("%d", months[i])
		pos := i * colW
		if pos+len(lbl) <= axisLen {
			copy(buf[pos:], lbl)
		}
	}
	b.WriteString(blankStyle.Render(strings.Repeat(" ", yLabelW+1)))
	b.WriteString(axisStyle.Render(string(buf)))

	return b.String()
}

func isTickRow(rowTop, tickStep, rowHeight float64) bool {
	return math.Mod(rowTop, tickStep) < rowHeight/2
}

// niceTickStep computes a tick interval targeting ~5 ticks.
func niceTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

func axisLabel(v float64) string {
	switch {
	case v >= 1e6:
		if v == math.Trunc(v/1e6)*1e6 {
			return fmt.Sprintf("%.0fM", v/1e6)
		}
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("%.0fk", v/1e3)
		}
		return fmt.Sprintf("%.1fk", v/1e3)
	case v >= 1:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
