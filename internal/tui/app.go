// Package tui provides the interactive Bubble Tea dashboard for turoi.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/entremotivator/turoi/internal/cli"
	"github.com/entremotivator/turoi/internal/config"
	"github.com/entremotivator/turoi/internal/engine"
	"github.com/entremotivator/turoi/internal/model"
	"github.com/entremotivator/turoi/internal/tui/components"
	"github.com/entremotivator/turoi/internal/tui/theme"
)

const (
	minTerminalWidth = 70
	maxContentWidth  = 140
)

const (
	tabResults = iota
	tabMilestones
	tabSettings
)

// formValues backs the huh input form. Text in, parsed on submit.
type formValues struct {
	cost string
	rate string
	days string
}

// App is the root Bubble Tea model.
type App struct {
	width  int
	height int

	// Current computation. Recomputed in full on every submit; nothing
	// is carried over between computations.
	inputs  model.RentalInputs
	res     model.ROIResult
	series  model.ProjectionSeries
	calcErr error

	// Input form state
	form     *huh.Form
	formVals formValues
	editing  bool

	// UI state
	activeTab   int
	milestones  table.Model
	themeCursor int
	statusNote  string
}

// NewApp creates the dashboard model seeded with the configured defaults.
// The input form opens first; results render once it is submitted.
func NewApp(cfg config.Config) App {
	a := App{
		inputs:  cfg.Inputs(),
		editing: true,
	}

	for i, t := range theme.All {
		if t.Name == theme.Active.Name {
			a.themeCursor = i
		}
	}

	a.formVals = valuesFromInputs(a.inputs)
	a.form = newInputForm(&a.formVals)

	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return a.form.Init()
}

func valuesFromInputs(in model.RentalInputs) formValues {
	return formValues{
		cost: strconv.FormatFloat(in.CarCost, 'f', 2, 64),
		rate: strconv.FormatFloat(in.DailyRate, 'f', 2, 64),
		days: strconv.Itoa(in.RentalDays),
	}
}

func newInputForm(v *formValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Car Purchase Cost ($)").
				Description("What you paid (or would pay) for the car").
				Value(&v.cost).
				Validate(validatePositiveFloat),
			huh.NewInput().
				Title("Daily Rental Rate ($)").
				Description("Income per rented day").
				Value(&v.rate).
				Validate(validatePositiveFloat),
			huh.NewInput().
				Title("Rental Days per Month").
				Description("Expected days on rent each month").
				Value(&v.days).
				Validate(validatePositiveInt),
		).Title("Rental ROI Inputs"),
	)
}

func validatePositiveFloat(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v <= 0 {
		return fmt.Errorf("must be greater than zero")
	}
	return nil
}

func validatePositiveInt(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a whole number")
	}
	if v <= 0 {
		return fmt.Errorf("must be at least 1")
	}
	return nil
}

func parseFormValues(v formValues) (model.RentalInputs, error) {
	cost, err := strconv.ParseFloat(strings.TrimSpace(v.cost), 64)
	if err != nil {
		return model.RentalInputs{}, fmt.Errorf("%w: car cost: %v", model.ErrInvalidInput, err)
	}
	rate, err := strconv.ParseFloat(strings.TrimSpace(v.rate), 64)
	if err != nil {
		return model.RentalInputs{}, fmt.Errorf("%w: daily rate: %v", model.ErrInvalidInput, err)
	}
	days, err := strconv.Atoi(strings.TrimSpace(v.days))
	if err != nil {
		return model.RentalInputs{}, fmt.Errorf("%w: rental days: %v", model.ErrInvalidInput, err)
	}

	in := model.RentalInputs{CarCost: cost, DailyRate: rate, RentalDays: days}
	return in, in.Validate()
}

// recompute runs the engine for the current inputs and rebuilds the
// milestone table. Plain synchronous call; the computation is O(months)
// and effectively instant.
func (a *App) recompute() {
	a.res, a.series, a.calcErr = engine.Project(a.inputs)
	if a.calcErr != nil {
		a.series = nil
		a.milestones = table.Model{}
		return
	}
	a.milestones = newMilestoneTable(a.series, a.tableHeight())
}

func (a *App) tableHeight() int {
	h := a.height - 8 // header, tab bar, card frame, footer
	if h < 5 {
		h = 5
	}
	return h
}

func newMilestoneTable(series model.ProjectionSeries, height int) table.Model {
	t := theme.Active

	columns := []table.Column{
		{Title: "Month", Width: 8},
		{Title: "Cumulative Income", Width: 22},
	}

	rows := make([]table.Row, len(series))
	for i, p := range series {
		rows[i] = table.Row{
			cli.FormatNumber(int64(p.Month)),
			cli.FormatMoney(p.CumulativeIncome),
		}
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Foreground(t.Accent).
		BorderForeground(t.Border).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(t.TextPrimary).
		Background(t.Surface).
		Bold(false)
	styles.Cell = styles.Cell.Foreground(t.TextMuted)

	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height),
		table.WithFocused(true),
	)
	tbl.SetStyles(styles)
	return tbl
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		if len(a.series) > 0 {
			a.milestones.SetHeight(a.tableHeight())
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if a.editing {
			return a.updateForm(msg)
		}

		switch key {
		case "q", "esc":
			return a, tea.Quit

		case "e":
			return a.openForm()

		case "enter":
			if a.activeTab == tabResults {
				return a.openForm()
			}

		case "r":
			a.activeTab = tabResults
			return a, nil
		case "m":
			a.activeTab = tabMilestones
			return a, nil
		case "s":
			a.activeTab = tabSettings
			return a, nil
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}

		if a.activeTab == tabSettings {
			return a.updateSettings(key)
		}

		if a.activeTab == tabMilestones && len(a.series) > 0 {
			var cmd tea.Cmd
			a.milestones, cmd = a.milestones.Update(msg)
			return a, cmd
		}

		return a, nil
	}

	if a.editing {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) openForm() (tea.Model, tea.Cmd) {
	a.formVals = valuesFromInputs(a.inputs)
	a.form = newInputForm(&a.formVals)
	if a.width > 0 {
		a.form = a.form.WithWidth(a.width).WithHeight(a.height)
	}
	a.editing = true
	return a, a.form.Init()
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		// Field validators guarantee parse succeeds; Validate is the
		// final gate before the engine is invoked.
		in, err := parseFormValues(a.formVals)
		a.editing = false
		if err != nil {
			a.calcErr = err
			a.series = nil
			return a, nil
		}
		a.inputs = in
		a.recompute()
		return a, nil
	}

	if a.form.State == huh.StateAborted {
		if a.calcErr == nil && len(a.series) > 0 {
			a.editing = false
			return a, nil
		}
		return a, tea.Quit
	}

	return a, cmd
}

func (a App) updateSettings(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.themeCursor < len(theme.All)-1 {
			a.themeCursor++
		}
	case "k", "up":
		if a.themeCursor > 0 {
			a.themeCursor--
		}
	case "enter", " ":
		picked := theme.All[a.themeCursor]
		theme.SetActive(picked.Name)
		cfg, _ := config.Load()
		cfg.Appearance.Theme = picked.Name
		if err := config.Save(cfg); err != nil {
			a.statusNote = fmt.Sprintf("could not save theme: %v", err)
		} else {
			a.statusNote = fmt.Sprintf("theme %s saved", picked.Name)
		}
		if len(a.series) > 0 {
			// Re-style the table for the new palette
			a.milestones = newMilestoneTable(a.series, a.tableHeight())
		}
	case "d":
		cfg, _ := config.Load()
		cfg.Defaults.CarCost = a.inputs.CarCost
		cfg.Defaults.DailyRate = a.inputs.DailyRate
		cfg.Defaults.RentalDays = a.inputs.RentalDays
		if err := config.Save(cfg); err != nil {
			a.statusNote = fmt.Sprintf("could not save defaults: %v", err)
		} else {
			a.statusNote = "current inputs saved as defaults"
		}
	}
	return a, nil
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  turoi needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}

	if a.editing {
		return a.viewForm()
	}

	return a.viewMain()
}

func (a App) viewForm() string {
	t := theme.Active
	title := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).
		Render("  ◈ turoi · Car Rental ROI Calculator")
	return "\n" + title + "\n\n" + a.form.View()
}
