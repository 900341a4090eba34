package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/entremotivator/turoi/internal/model"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorRed       = lipgloss.Color("#D14D41")
	ColorBlue      = lipgloss.Color("#4385BE")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	incomeStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	refStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows. The first
// column is left-aligned, the rest right-aligned. A row of just "---"
// renders as a separator.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		if len(h) > widths[i] {
			widths[i] = len(h)
		}
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	writeBorder(&b, widths, "╭", "┬", "╮")

	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(headerStyle.Render(fmt.Sprintf(" %-*s ", widths[i], h)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
		writeBorder(&b, widths, "├", "┼", "┤")
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			writeBorder(&b, widths, "├", "┼", "┤")
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			var padded string
			if i == 0 {
				padded = fmt.Sprintf(" %-*s ", widths[i], cell)
			} else {
				padded = fmt.Sprintf(" %*s ", widths[i], cell)
			}
			b.WriteString(valueStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	writeBorder(&b, widths, "╰", "┴", "╯")

	return b.String()
}

func writeBorder(b *strings.Builder, widths []int, left, mid, right string) {
	b.WriteString(dimStyle.Render(left))
	for i, w := range widths {
		b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
		if i < len(widths)-1 {
			b.WriteString(dimStyle.Render(mid))
		}
	}
	b.WriteString(dimStyle.Render(right))
	b.WriteString("\n")
}

// Breakdown renders the calculation narrative with substituted values,
// one line per formula.
func Breakdown(in model.RentalInputs, res model.ROIResult) string {
	lines := []string{
		fmt.Sprintf("Monthly Income:  Daily Rate x Rental Days = %s x %d = %s",
			FormatMoney(in.DailyRate), in.RentalDays, FormatMoney(res.MonthlyIncome)),
		fmt.Sprintf("Recoupment Time: Car Cost / Monthly Income = %s / %s = %s",
			FormatMoney(in.CarCost), FormatMoney(res.MonthlyIncome), FormatMonths(res.MonthsToRecoup)),
		fmt.Sprintf("Monthly ROI:     (Monthly Income / Car Cost) x 100 = (%s / %s) x 100 = %s",
			FormatMoney(res.MonthlyIncome), FormatMoney(in.CarCost), FormatPercent(res.ROIPercent)),
	}

	var b strings.Builder
	for _, l := range lines {
		b.WriteString("  ")
		b.WriteString(mutedStyle.Render("- "))
		b.WriteString(valueStyle.Render(l))
		b.WriteString("\n")
	}
	return b.String()
}

// LineChart plots the cumulative income series against month columns with
// a dashed horizontal reference line at refValue (the car cost). The
// series is sampled when there are more points than columns.
func LineChart(series model.ProjectionSeries, refValue float64, width, height int) string {
	if len(series) == 0 {
		return ""
	}
	if width < 20 {
		width = 20
	}
	if height < 4 {
		height = 4
	}

	values := series.Values()
	months := series.Months()

	maxVal := refValue
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal <= 0 {
		maxVal = 1
	}

	// Y-axis: nice tick step, ceiling at a tick boundary
	tickStep := chartTickStep(maxVal)
	for int(math.Ceil(maxVal/tickStep)) > height/2 {
		tickStep *= 2
	}
	ceiling := math.Ceil(maxVal/tickStep) * tickStep

	yLabelW := len(chartLabel(ceiling)) + 1
	if yLabelW < 5 {
		yLabelW = 5
	}

	chartW := width - yLabelW - 1
	if chartW < 10 {
		chartW = 10
	}

	// Sample down to one point per column if needed
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

	refRow := int(math.Round(refValue / ceiling * float64(height)))
	if refRow > height {
		refRow = height
	}

	axis := dimStyle
	var b strings.Builder

	for row := height; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(height)
		rowBottom := ceiling * float64(row-1) / float64(height)

		// Y label on tick rows, reference label on the reference row
		label := ""
		if row == refRow {
			label = chartLabel(refValue)
		} else if math.Mod(rowTop, tickStep) < ceiling/float64(height)/2 {
			label = chartLabel(rowTop)
		}
		if row == refRow {
			b.WriteString(refStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		} else {
			b.WriteString(axis.Render(fmt.Sprintf("%*s", yLabelW, label)))
		}
		b.WriteString(axis.Render("│"))

		for _, v := range values {
			var cell string
			var style lipgloss.Style
			switch {
			case v >= rowBottom && v < rowTop || (row == height && v >= ceiling):
				// The curve passes through this cell
				cell = strings.Repeat("•", colW)
				style = incomeStyle
			case v >= rowTop:
				// Area under the curve
				cell = strings.Repeat("░", colW)
				style = lipgloss.NewStyle().Foreground(ColorBlue)
			case row == refRow:
				cell = strings.Repeat("╌", colW)
				style = refStyle
			default:
				cell = strings.Repeat(" ", colW)
				style = axis
			}
			b.WriteString(style.Render(cell))
		}
		b.WriteString("\n")
	}

	// X axis
	b.WriteString(axis.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axis.Render("└"))
	b.WriteString(axis.Render(strings.Repeat("─", axisLen)))
	b.WriteString("\n")

	// Month labels, thinned to keep at least 6 columns between them
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
	b.WriteString(strings.Repeat(" ", yLabelW+1))
	b.WriteString(dimStyle.Render(strings.TrimRight(string(buf), " ")))
	b.WriteString("\n")

	// Legend
	b.WriteString(strings.Repeat(" ", yLabelW+1))
	b.WriteString(incomeStyle.Render("• cumulative income"))
	b.WriteString(mutedStyle.Render("   "))
	b.WriteString(refStyle.Render("╌ car cost"))
	b.WriteString(mutedStyle.Render("   (months)"))
	b.WriteString("\n")

	return b.String()
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
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

func chartLabel(v float64) string {
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
