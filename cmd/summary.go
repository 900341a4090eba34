package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/entremotivator/turoi/internal/cli"
	"github.com/entremotivator/turoi/internal/model"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Full ROI report: results, breakdown, chart, and milestones",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	in, err := resolveInputs(cmd)
	if err != nil {
		return err
	}

	res, series, err := computeOrExplain(in)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("CAR RENTAL ROI"))
	fmt.Println()

	if !flagQuiet {
		fmt.Println("  Assumes steady rental income: monthly income = daily rate x rental days.")
		fmt.Println("  Maintenance, insurance, depreciation, and seasonality are not modeled.")
		fmt.Println()
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Car Cost", cli.FormatMoney(in.CarCost)},
			{"Daily Rate", cli.FormatMoney(in.DailyRate)},
			{"Rental Days/Month", cli.FormatNumber(int64(in.RentalDays))},
			{"---"},
			{"Monthly Income", cli.FormatMoney(res.MonthlyIncome)},
			{"Months to Recoup", fmt.Sprintf("%.2f", res.MonthsToRecoup)},
			{"Monthly ROI", cli.FormatPercent(res.ROIPercent)},
		},
	}))

	fmt.Println()
	fmt.Println("  Calculation Breakdown")
	fmt.Print(cli.Breakdown(in, res))

	if len(series) > 0 {
		fmt.Println()
		fmt.Println("  Cumulative Income vs. Investment")
		fmt.Print(cli.LineChart(series, in.CarCost, 72, 12))

		fmt.Println()
		fmt.Print(cli.RenderTable(milestoneTable(series, 0)))
	}

	if !flagQuiet {
		fmt.Println()
		fmt.Println("  Next steps: fold in maintenance, insurance, depreciation, and")
		fmt.Println("  seasonal demand for a net figure. This report is gross income only.")
	}

	return nil
}

// milestoneTable builds the (month, cumulative income) table. limit <= 0
// lists the full projection range.
func milestoneTable(series model.ProjectionSeries, limit int) cli.Table {
	n := len(series)
	if limit > 0 && limit < n {
		n = limit
	}

	rows := make([][]string, n)
	for i, p := range series[:n] {
		rows[i] = []string{
			cli.FormatNumber(int64(p.Month)),
			cli.FormatMoney(p.CumulativeIncome),
		}
	}

	return cli.Table{
		Title:   "Milestones",
		Headers: []string{"Month", "Cumulative Income"},
		Rows:    rows,
	}
}
