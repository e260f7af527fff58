package indicators

import "stocksignal/market"

// Snapshot gathers every indicator computed from one bar series. Fields
// stay nil when the series is too short for the indicator's window.
type Snapshot struct {
	RSI           *float64
	SMA           *float64
	EMA           *float64
	MACD          *MACD
	Bollinger     *Bollinger
	DeviationRate *float64
}

// Compute fills a Snapshot from an oldest-first bar series, using the
// package default periods.
func Compute(bars []market.Bar) Snapshot {
	closes := market.Closes(bars)

	var snap Snapshot
	if v, ok := RSI(closes, RSIPeriod); ok {
		snap.RSI = &v
	}
	if v, ok := SMA(closes, DeviationPeriod); ok {
		snap.SMA = &v
	}
	if v, ok := EMA(closes, DeviationPeriod); ok {
		snap.EMA = &v
	}
	if v, ok := ComputeMACD(closes); ok {
		snap.MACD = &v
	}
	if v, ok := ComputeBollinger(closes, BollingerPeriod, 2.0); ok {
		snap.Bollinger = &v
	}
	if v, ok := DeviationRate(closes, DeviationPeriod); ok {
		snap.DeviationRate = &v
	}
	return snap
}
