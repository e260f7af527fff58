// Package signal merges the candlestick read, RSI, and MACD histogram into
// one directional call with a strength and human-readable reasons. Inputs
// are optional; whatever is present contributes to the score.
package signal

import (
	"math"

	"stocksignal/candlestick"
	"stocksignal/market"
)

// CombinedSignal is the merged directional call.
type CombinedSignal struct {
	Signal   market.Signal
	Strength int // 0..100
	Reasons  []string
}

// Score contributions. RSI past the hard bounds speaks loudly; the soft
// bounds add a nudge without a reason line. The MACD histogram only earns a
// reason line once its magnitude clears momentumNote.
const (
	rsiOversold    = 30.0
	rsiOverbought  = 70.0
	rsiSoftLow     = 40.0
	rsiSoftHigh    = 60.0
	rsiHardScore   = 70
	rsiSoftScore   = 30
	macdScore      = 40
	momentumNote   = 1.0
	decisionMargin = 50
)

// Combine scores the available inputs and resolves a direction. With no
// inputs at all the result is neutral with strength 0.
func Combine(candle *candlestick.Pattern, rsi *float64, macdHistogram *float64) CombinedSignal {
	buy, sell := 0, 0
	var reasons []string

	if candle != nil {
		switch candle.Signal {
		case market.Buy:
			buy += candle.Strength
			reasons = append(reasons, candle.Description)
		case market.Sell:
			sell += candle.Strength
			reasons = append(reasons, candle.Description)
		}
	}

	if rsi != nil {
		switch {
		case *rsi <= rsiOversold:
			buy += rsiHardScore
			reasons = append(reasons, "RSI shows the stock is oversold")
		case *rsi >= rsiOverbought:
			sell += rsiHardScore
			reasons = append(reasons, "RSI shows the stock is overbought")
		case *rsi <= rsiSoftLow:
			buy += rsiSoftScore
		case *rsi >= rsiSoftHigh:
			sell += rsiSoftScore
		}
	}

	if macdHistogram != nil {
		switch {
		case *macdHistogram > 0:
			buy += macdScore
			if *macdHistogram > momentumNote {
				reasons = append(reasons, "MACD shows rising momentum")
			}
		case *macdHistogram < 0:
			sell += macdScore
			if *macdHistogram < -momentumNote {
				reasons = append(reasons, "MACD shows falling momentum")
			}
		}
	}

	total := buy + sell
	if total == 0 {
		return CombinedSignal{
			Signal:   market.Neutral,
			Strength: 0,
			Reasons:  []string{"insufficient data to judge a direction"},
		}
	}

	diff := buy - sell
	switch {
	case diff > decisionMargin:
		return CombinedSignal{
			Signal:   market.Buy,
			Strength: pct(buy, total),
			Reasons:  reasons,
		}
	case diff < -decisionMargin:
		return CombinedSignal{
			Signal:   market.Sell,
			Strength: pct(sell, total),
			Reasons:  reasons,
		}
	default:
		if len(reasons) == 0 {
			reasons = []string{"mixed signals; wait and see"}
		}
		return CombinedSignal{
			Signal:   market.Neutral,
			Strength: 50,
			Reasons:  reasons,
		}
	}
}

func pct(part, total int) int {
	return int(math.Round(float64(part) / float64(total) * 100))
}
