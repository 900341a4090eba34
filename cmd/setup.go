package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/entremotivator/turoi/internal/cli"
	"github.com/entremotivator/turoi/internal/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to turoi!")
	fmt.Println("  Set the default inputs used when you run turoi without flags.")
	fmt.Println()

	fmt.Println("  1. Car purchase cost")
	cfg.Defaults.CarCost = promptFloat(reader, cfg.Defaults.CarCost)
	fmt.Println()

	fmt.Println("  2. Daily rental rate")
	cfg.Defaults.DailyRate = promptFloat(reader, cfg.Defaults.DailyRate)
	fmt.Println()

	fmt.Println("  3. Rental days per month")
	cfg.Defaults.RentalDays = promptInt(reader, cfg.Defaults.RentalDays)
	fmt.Println()

	fmt.Println("  4. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	if err := cfg.Inputs().Validate(); err != nil {
		return fmt.Errorf("%w\nPlease enter valid positive values for all parameters.", err)
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `turoi setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

func promptFloat(reader *bufio.Reader, current float64) float64 {
	fmt.Printf("     Current: %s\n", cli.FormatMoney(current))
	fmt.Print("     > ")
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return current
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		fmt.Println("     Not a number, keeping current value.")
		return current
	}
	return v
}

func promptInt(reader *bufio.Reader, current int) int {
	fmt.Printf("     Current: %d\n", current)
	fmt.Print("     > ")
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return current
	}
	v, err := strconv.Atoi(line)
	if err != nil {
		fmt.Println("     Not a whole number, keeping current value.")
		return current
	}
	return v
}
