package cmd

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/entremotivator/turoi/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("# %s", config.ConfigPath())
	if !config.Exists() {
		fmt.Print(" (not saved yet, showing defaults)")
	}
	fmt.Println()
	fmt.Println()

	enc := toml.NewEncoder(os.Stdout)
	return enc.Encode(cfg)
}
