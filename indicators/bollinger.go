package indicators

import "math"

// Bollinger holds the three band levels.
type Bollinger struct {
	Upper  float64
	Middle float64
	Lower  float64
}

// ComputeBollinger returns Bollinger Bands over the last period closes:
// middle is the simple moving average, the bands sit mult population
// standard deviations away.
func ComputeBollinger(closes []float64, period int, mult float64) (Bollinger, bool) {
	if period <= 0 || len(closes) < period {
		return Bollinger{}, false
	}

	window := closes[len(closes)-period:]
	mean := 0.0
	for _, c := range window {
		mean += c
	}
	mean /= float64(period)

	variance := 0.0
	for _, c := range window {
		d := c - mean
		variance += d * d
	}
	stddev := math.Sqrt(variance / float64(period))

	return Bollinger{
		Upper:  round2(mean + mult*stddev),
		Middle: round2(mean),
		Lower:  round2(mean - mult*stddev),
	}, true
}
