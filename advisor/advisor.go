// Package advisor is the one-call front of the signal engine: it turns an
// oldest-first daily bar series into indicators, a candlestick read, chart
// formations, and a combined directional call. The result is plain data for
// the prompt-construction and recommendation layers to consume; nothing
// here fetches, persists, or decides an action.
package advisor

import (
	"errors"
	"math"

	"stocksignal/candlestick"
	"stocksignal/chartpattern"
	"stocksignal/indicators"
	"stocksignal/market"
	"stocksignal/signal"
)

// Report is everything the engine can say about one bar series.
type Report struct {
	Indicators indicators.Snapshot
	Candle     candlestick.Pattern
	Patterns   []chartpattern.Match
	Combined   signal.CombinedSignal
}

// ErrNoBars is returned when the series is empty. Short-but-nonempty input
// is not an error: each stage simply reports what the data allows.
var ErrNoBars = errors.New("advisor: no bars")

// Analyze runs the full pipeline over an oldest-first series.
func Analyze(bars []market.Bar) (*Report, error) {
	latest, ok := market.Latest(bars)
	if !ok {
		return nil, ErrNoBars
	}

	snap := indicators.Compute(bars)
	candle := candlestick.Classify(latest)
	patterns := chartpattern.Detect(bars)

	var hist *float64
	if snap.MACD != nil {
		hist = &snap.MACD.Histogram
	}
	combined := signal.Combine(&candle, snap.RSI, hist)

	return &Report{
		Indicators: snap,
		Candle:     candle,
		Patterns:   patterns,
		Combined:   combined,
	}, nil
}

// tradingWeek is how many bars back "a week ago" means on a daily series.
const tradingWeek = 5

// WeekChangeRate is the percent change from the close one trading week ago
// to the latest close.
func WeekChangeRate(bars []market.Bar) (float64, bool) {
	if len(bars) < tradingWeek+1 {
		return 0, false
	}
	prev := bars[len(bars)-1-tradingWeek].Close
	if prev == 0 {
		return 0, false
	}
	last := bars[len(bars)-1].Close
	return round2((last - prev) / prev * 100), true
}

// Volatility is the total high-to-low swing over the last lookback bars, as
// a percent of the lowest low. It feeds safety.Metrics.Volatility.
func Volatility(bars []market.Bar, lookback int) (float64, bool) {
	if lookback < 2 || len(bars) < lookback {
		return 0, false
	}
	window := bars[len(bars)-lookback:]
	hi, lo := window[0].High, window[0].Low
	for _, b := range window[1:] {
		if b.High > hi {
			hi = b.High
		}
		if b.Low < lo {
			lo = b.Low
		}
	}
	if lo <= 0 {
		return 0, false
	}
	return round2((hi - lo) / lo * 100), true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
