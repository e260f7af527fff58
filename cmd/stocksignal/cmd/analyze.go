package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"stocksignal/advisor"
	"stocksignal/journal"
	"stocksignal/market"
	"stocksignal/safety"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a daily bar series and print the signal report",
	Long: `Analyze reads a CSV of daily bars (date,open,high,low,close[,volume];
.xz and .zip files are handled transparently), runs the full signal engine,
and prints the report.

Example:
  stocksignal analyze --bars data/7203.csv --symbol 7203.T --style balanced --journal runs.sqlite`,
	RunE: runAnalyze,
}

var (
	anBarsPath    string
	anSymbol      string
	anStyle       string
	anProfitable  bool
	anJournalPath string
)

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&anBarsPath, "bars", "b", "", "path to bar CSV (required)")
	analyzeCmd.Flags().StringVarP(&anSymbol, "symbol", "s", "", "ticker symbol for the report and journal")
	analyzeCmd.Flags().StringVar(&anStyle, "style", string(safety.Default), "investment style (conservative, balanced, aggressive, default)")
	analyzeCmd.Flags().BoolVar(&anProfitable, "profitable", true, "whether the company is currently profitable (feeds the danger flag)")
	analyzeCmd.Flags().StringVarP(&anJournalPath, "journal", "j", "", "record the run to this .sqlite or .csv file")
	analyzeCmd.MarkFlagRequired("bars")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	bars, err := market.LoadCSV(anBarsPath)
	if err != nil {
		return fmt.Errorf("load bars: %w", err)
	}

	report, err := advisor.Analyze(bars)
	if err != nil {
		return err
	}

	metrics := safety.Metrics{IsProfitable: anProfitable}
	if v, ok := advisor.WeekChangeRate(bars); ok {
		metrics.WeekChangeRate = v
	}
	if v, ok := advisor.Volatility(bars, 30); ok {
		metrics.Volatility = v
	}
	if report.Indicators.DeviationRate != nil {
		metrics.DeviationRate = *report.Indicators.DeviationRate
	}
	flags := safety.Evaluate(metrics, safety.Style(anStyle))

	printReport(cmd, report, flags)

	if anJournalPath != "" {
		if err := recordRun(report, flags); err != nil {
			return fmt.Errorf("journal: %w", err)
		}
	}
	return nil
}

func printReport(cmd *cobra.Command, report *advisor.Report, flags safety.Flags) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Signal:   %s (strength %d)\n", report.Combined.Signal, report.Combined.Strength)
	for _, r := range report.Combined.Reasons {
		fmt.Fprintf(out, "  - %s\n", r)
	}

	fmt.Fprintf(out, "Candle:   %s (%s, strength %d)\n",
		report.Candle.Kind, report.Candle.Signal, report.Candle.Strength)

	ind := report.Indicators
	if ind.RSI != nil {
		fmt.Fprintf(out, "RSI:      %.2f\n", *ind.RSI)
	}
	if ind.MACD != nil {
		fmt.Fprintf(out, "MACD:     line %.2f signal %.2f histogram %.2f\n",
			ind.MACD.Line, ind.MACD.Signal, ind.MACD.Histogram)
	}
	if ind.Bollinger != nil {
		fmt.Fprintf(out, "Bands:    %.2f / %.2f / %.2f\n",
			ind.Bollinger.Upper, ind.Bollinger.Middle, ind.Bollinger.Lower)
	}
	if ind.DeviationRate != nil {
		fmt.Fprintf(out, "MA dev:   %.2f%%\n", *ind.DeviationRate)
	}

	if len(report.Patterns) > 0 {
		fmt.Fprintln(out, "Patterns:")
		for _, p := range report.Patterns {
			fmt.Fprintf(out, "  %-28s %s rank %s (ref win rate %d%%)\n",
				p.Kind, p.Signal, p.Rank, p.ReferenceWinRate)
		}
	}

	var raised []string
	for _, f := range []struct {
		on   bool
		name string
	}{
		{flags.IsSurge, "surge"},
		{flags.IsDangerous, "dangerous"},
		{flags.IsOverheated, "overheated"},
		{flags.IsInDecline, "in-decline"},
	} {
		if f.on {
			raised = append(raised, f.name)
		}
	}
	if len(raised) > 0 {
		fmt.Fprintf(out, "Flags:    %s\n", strings.Join(raised, ", "))
	}
}

func recordRun(report *advisor.Report, flags safety.Flags) error {
	var j journal.Journal
	var err error
	if strings.HasSuffix(anJournalPath, ".csv") {
		j, err = journal.NewCSV(anJournalPath)
	} else {
		j, err = journal.NewSQLite(anJournalPath)
	}
	if err != nil {
		return err
	}
	defer j.Close()

	rec := journal.Record{
		ID:           journal.NewID(),
		Symbol:       anSymbol,
		AnalyzedAt:   time.Now().UTC(),
		Signal:       string(report.Combined.Signal),
		Strength:     report.Combined.Strength,
		Reasons:      report.Combined.Reasons,
		IsSurge:      flags.IsSurge,
		IsDangerous:  flags.IsDangerous,
		IsOverheated: flags.IsOverheated,
		IsInDecline:  flags.IsInDecline,
	}
	if len(report.Patterns) > 0 {
		rec.TopPattern = string(report.Patterns[0].Kind)
	}
	return j.Record(rec)
}
