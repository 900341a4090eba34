package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/entremotivator/turoi/internal/cli"
)

var flagLimit int

var milestonesCmd = &cobra.Command{
	Use:   "milestones",
	Short: "List (month, cumulative income) milestones",
	RunE:  runMilestones,
}

func init() {
	milestonesCmd.Flags().IntVar(&flagLimit, "limit", 0, "Max rows to list (0 = full range)")
	rootCmd.AddCommand(milestonesCmd)
}

func runMilestones(cmd *cobra.Command, _ []string) error {
	in, err := resolveInputs(cmd)
	if err != nil {
		return err
	}

	res, series, err := computeOrExplain(in)
	if err != nil {
		return err
	}

	if len(series) == 0 {
		fmt.Println("  Recoupment takes under a month; no milestones to list.")
		return nil
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(milestoneTable(series, flagLimit)))

	if flagLimit > 0 && flagLimit < len(series) {
		fmt.Printf("  ... %d more months through %s\n",
			len(series)-flagLimit, cli.FormatMonths(res.MonthsToRecoup*1.2))
	}

	return nil
}
