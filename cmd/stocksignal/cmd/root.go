package cmd

import (
	"github.com/spf13/cobra"

	"stocksignal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "stocksignal",
	Short: "Technical-analysis signal engine for daily stock bars",
	Long: `Stocksignal turns a daily price series into technical indicators,
candlestick and chart-pattern reads, a combined buy/sell/neutral call, and
safety flags.

It provides tools for:
  - Computing RSI, moving averages, MACD, and Bollinger Bands
  - Classifying the latest candlestick and multi-bar chart formations
  - Merging those reads into one directional signal with plain-English reasons
  - Evaluating surge/dangerous/overheat/decline safety flags per investment style
  - Journaling analysis runs to CSV or SQLite for later audit`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfgFile == "" {
			return nil
		}
		cfg, err := config.LoadFromFile(cfgFile)
		if err != nil {
			return err
		}
		cfg.Apply()
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML/JSON tuning file")
}
