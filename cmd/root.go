package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/entremotivator/turoi/internal/config"
	"github.com/entremotivator/turoi/internal/engine"
	"github.com/entremotivator/turoi/internal/model"
)

var (
	flagCost  float64
	flagRate  float64
	flagDays  int
	flagQuiet bool
)

var rootCmd = &cobra.Command{
	Use:   "turoi",
	Short: "Car Rental ROI Calculator",
	Long: "Estimate the return on investment and recoupment time for renting\n" +
		"out a car: monthly income, months to break even, and a cumulative\n" +
		"income projection against the purchase cost.",
	RunE: runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Float64VarP(&flagCost, "cost", "c", 25000, "Car purchase cost")
	rootCmd.PersistentFlags().Float64VarP(&flagRate, "rate", "r", 50, "Daily rental rate")
	rootCmd.PersistentFlags().IntVarP(&flagDays, "days", "n", 15, "Rental days per month")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress narrative output")
}

// resolveInputs merges config defaults with any flags the user set, then
// applies the positivity gate. The engine is never invoked on inputs that
// fail here.
func resolveInputs(cmd *cobra.Command) (model.RentalInputs, error) {
	cfg, err := config.Load()
	if err != nil {
		return model.RentalInputs{}, err
	}

	in := cfg.Inputs()
	if cmd.Flags().Changed("cost") {
		in.CarCost = flagCost
	}
	if cmd.Flags().Changed("rate") {
		in.DailyRate = flagRate
	}
	if cmd.Flags().Changed("days") {
		in.RentalDays = flagDays
	}

	if err := in.Validate(); err != nil {
		return model.RentalInputs{}, fmt.Errorf("%w\nPlease enter valid positive values for all parameters.", err)
	}

	return in, nil
}

// computeOrExplain runs the full computation, translating an undefined
// result into the user-facing message. No partial results come back.
func computeOrExplain(in model.RentalInputs) (model.ROIResult, model.ProjectionSeries, error) {
	res, series, err := engine.Project(in)
	if err != nil {
		return model.ROIResult{}, nil, fmt.Errorf("calculation cannot proceed: %w\nPlease adjust your inputs.", err)
	}
	return res, series, nil
}
