package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"stocksignal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Write the default tuning file",
	Long: `Config writes the built-in detector tolerances and per-style safety
thresholds to a file, as a starting point for tuning.

Example:
  stocksignal config --out tuning.yaml`,
	RunE: runConfig,
}

var cfgOutPath string

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringVarP(&cfgOutPath, "out", "o", "tuning.yaml", "output path (.yaml or .json)")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if err := config.Default().SaveToFile(cfgOutPath); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", cfgOutPath)
	return nil
}
