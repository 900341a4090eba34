package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/entremotivator/turoi/internal/config"
	"github.com/entremotivator/turoi/internal/tui"
	"github.com/entremotivator/turoi/internal/tui/theme"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, _ := config.Load()
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor so background styling always produces ANSI codes;
	// lipgloss may otherwise fall back to the Ascii profile
	lipgloss.SetColorProfile(termenv.TrueColor)

	// Flags override the configured defaults the form opens with
	if cmd.Flags().Changed("cost") {
		cfg.Defaults.CarCost = flagCost
	}
	if cmd.Flags().Changed("rate") {
		cfg.Defaults.DailyRate = flagRate
	}
	if cmd.Flags().Changed("days") {
		cfg.Defaults.RentalDays = flagDays
	}

	app := tui.NewApp(cfg)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
