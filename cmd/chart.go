package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/entremotivator/turoi/internal/cli"
)

var (
	flagChartWidth  int
	flagChartHeight int
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Plot cumulative income against the car cost",
	RunE:  runChart,
}

func init() {
	chartCmd.Flags().IntVar(&flagChartWidth, "width", 72, "Chart width in columns")
	chartCmd.Flags().IntVar(&flagChartHeight, "height", 14, "Chart height in rows")
	rootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, _ []string) error {
	in, err := resolveInputs(cmd)
	if err != nil {
		return err
	}

	res, series, err := computeOrExplain(in)
	if err != nil {
		return err
	}

	if len(series) == 0 {
		fmt.Println("  Recoupment takes under a month; nothing to plot.")
		return nil
	}

	if !flagQuiet {
		fmt.Println()
		fmt.Printf("  Income %s/month, recouped in %s\n",
			cli.FormatMoney(res.MonthlyIncome), cli.FormatMonths(res.MonthsToRecoup))
		fmt.Println()
	}

	fmt.Print(cli.LineChart(series, in.CarCost, flagChartWidth, flagChartHeight))
	return nil
}
