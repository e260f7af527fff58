// Package market defines the daily price bar and series helpers shared by
// every analysis package.
//
// Every function in this module that takes a []Bar expects the slice to be
// chronologically ordered oldest-first. Callers holding newest-first data
// (some vendor APIs deliver it that way) must go through OldestFirst once at
// the boundary; nothing downstream reverses or sorts.
package market

import "time"

// Bar is one daily OHLC candle. Volume is optional and may be zero.
type Bar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Bullish reports whether the bar closed at or above its open.
func (b Bar) Bullish() bool { return b.Close >= b.Open }

// Closes extracts the close prices of an oldest-first series, preserving
// order.
func Closes(bars []Bar) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}

// Latest returns the most recent bar of an oldest-first series.
func Latest(bars []Bar) (Bar, bool) {
	if len(bars) == 0 {
		return Bar{}, false
	}
	return bars[len(bars)-1], true
}

// OldestFirst normalizes a series to oldest-first order. When newestFirst is
// true the input is copied and reversed; otherwise the input is returned
// as-is. This is the single ordering adapter for the whole module.
func OldestFirst(bars []Bar, newestFirst bool) []Bar {
	if !newestFirst {
		return bars
	}
	out := make([]Bar, len(bars))
	for i, b := range bars {
		out[len(bars)-1-i] = b
	}
	return out
}
