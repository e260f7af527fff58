// Package indicators computes momentum and trend indicators from a daily
// close series.
//
// Every function takes closes ordered oldest-first. Insufficient data is an
// expected condition, reported through a false ok result rather than an
// error; callers branch on ok. All returned values are rounded to two
// decimal places so results stay stable and comparable across runs.
package indicators

import "math"

// Default periods. RSIPeriod follows Wilder's 14; DeviationPeriod matches
// the 25-day moving average the advisory screens quote.
const (
	RSIPeriod       = 14
	DeviationPeriod = 25
	BollingerPeriod = 20
)

// Deviation-rate bounds shared by the overheat check and the prompt layer.
// A stock more than DeviationUpperBound percent above its moving average is
// considered extended; below DeviationLowerBound, oversold.
const (
	DeviationUpperBound = 15.0
	DeviationLowerBound = -15.0
)

// round2 pins a value to two decimals at the package boundary.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// SMA returns the arithmetic mean of the last period closes.
func SMA(closes []float64, period int) (float64, bool) {
	if period <= 0 || len(closes) < period {
		return 0, false
	}
	sum := 0.0
	for i := len(closes) - period; i < len(closes); i++ {
		sum += closes[i]
	}
	return round2(sum / float64(period)), true
}

// EMA returns the exponential moving average over the whole series: the
// oldest period closes seed a simple average, then each later close is
// folded in with smoothing factor 2/(period+1).
func EMA(closes []float64, period int) (float64, bool) {
	if period <= 0 || len(closes) < period {
		return 0, false
	}
	return round2(emaSeries(closes, period)), true
}

// emaSeries is the unrounded EMA used internally by MACD.
func emaSeries(closes []float64, period int) float64 {
	k := 2.0 / float64(period+1)

	seed := 0.0
	for i := 0; i < period; i++ {
		seed += closes[i]
	}
	ema := seed / float64(period)

	for i := period; i < len(closes); i++ {
		ema = (closes[i]-ema)*k + ema
	}
	return ema
}

// RSI returns the Relative Strength Index over the last period price
// changes. Needs period+1 closes. When the window has no down-moves the
// result is exactly 100.
func RSI(closes []float64, period int) (float64, bool) {
	if period <= 0 || len(closes) < period+1 {
		return 0, false
	}

	var gain, loss float64
	for i := len(closes) - period; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gain += change
		} else {
			loss -= change
		}
	}
	avgGain := gain / float64(period)
	avgLoss := loss / float64(period)

	if avgLoss == 0 {
		return 100, true
	}
	rs := avgGain / avgLoss
	return round2(100 - 100/(1+rs)), true
}

// DeviationRate returns how far the latest close sits from its period
// moving average, in percent. Positive means above the average.
func DeviationRate(closes []float64, period int) (float64, bool) {
	if period <= 0 || len(closes) < period {
		return 0, false
	}
	sum := 0.0
	for i := len(closes) - period; i < len(closes); i++ {
		sum += closes[i]
	}
	sma := sum / float64(period)
	if sma == 0 {
		return 0, false
	}
	last := closes[len(closes)-1]
	return round2((last - sma) / sma * 100), true
}
