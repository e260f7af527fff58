package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"stocksignal/safety"
)

var safetyCmd = &cobra.Command{
	Use:   "safety",
	Short: "Evaluate the safety flags from scalar metrics",
	Long: `Safety runs the surge/dangerous/overheat/decline predicates directly on
metrics you supply, without needing a bar series.

Example:
  stocksignal safety --week-change -12 --deviation 18 --volatility 60 --profitable=false --style balanced`,
	RunE: runSafety,
}

var (
	sfWeekChange float64
	sfDeviation  float64
	sfVolatility float64
	sfProfitable bool
	sfStyle      string
)

func init() {
	rootCmd.AddCommand(safetyCmd)

	safetyCmd.Flags().Float64Var(&sfWeekChange, "week-change", 0, "week-over-week change rate in percent")
	safetyCmd.Flags().Float64Var(&sfDeviation, "deviation", 0, "deviation rate from the moving average in percent")
	safetyCmd.Flags().Float64Var(&sfVolatility, "volatility", 0, "volatility score")
	safetyCmd.Flags().BoolVar(&sfProfitable, "profitable", true, "whether the company is currently profitable")
	safetyCmd.Flags().StringVar(&sfStyle, "style", string(safety.Default), "investment style")
}

func runSafety(cmd *cobra.Command, args []string) error {
	flags := safety.Evaluate(safety.Metrics{
		WeekChangeRate: sfWeekChange,
		DeviationRate:  sfDeviation,
		Volatility:     sfVolatility,
		IsProfitable:   sfProfitable,
	}, safety.Style(sfStyle))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "surge:      %v\n", flags.IsSurge)
	fmt.Fprintf(out, "dangerous:  %v\n", flags.IsDangerous)
	fmt.Fprintf(out, "overheated: %v\n", flags.IsOverheated)
	fmt.Fprintf(out, "in-decline: %v\n", flags.IsInDecline)
	return nil
}
