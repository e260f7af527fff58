package chartpattern

import (
	"math"

	"stocksignal/market"
)

// Extrema holds the indices of local peaks and troughs found in a bar
// series. Both lists are ascending by index.
type Extrema struct {
	Peaks   []int
	Troughs []int
}

// FindExtrema scans an oldest-first series for local extrema. A bar is a
// peak when its high strictly exceeds every high within window bars on both
// sides; troughs mirror that on lows. Bars too close to either edge are
// never extrema.
func FindExtrema(bars []market.Bar, window int) Extrema {
	var ext Extrema
	if window < 1 || len(bars) < 2*window+1 {
		return ext
	}

	for i := window; i < len(bars)-window; i++ {
		peak, trough := true, true
		for j := i - window; j <= i+window; j++ {
			if j == i {
				continue
			}
			if bars[j].High >= bars[i].High {
				peak = false
			}
			if bars[j].Low <= bars[i].Low {
				trough = false
			}
		}
		if peak {
			ext.Peaks = append(ext.Peaks, i)
		}
		if trough {
			ext.Troughs = append(ext.Troughs, i)
		}
	}
	return ext
}

// highs and lows pull the anchor prices for a list of extremum indices.
func highs(bars []market.Bar, idx []int) []float64 {
	vals := make([]float64, len(idx))
	for i, j := range idx {
		vals[i] = bars[j].High
	}
	return vals
}

func lows(bars []market.Bar, idx []int) []float64 {
	vals := make([]float64, len(idx))
	for i, j := range idx {
		vals[i] = bars[j].Low
	}
	return vals
}

// slope fits a least-squares line through (index, value) points and returns
// its per-bar slope. Needs at least two points.
func slope(idx []int, vals []float64) float64 {
	n := float64(len(idx))
	if n < 2 {
		return 0
	}
	var sumX, sumY, sumXY, sumXX float64
	for i := range idx {
		x := float64(idx[i])
		y := vals[i]
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	den := n*sumXX - sumX*sumX
	if den == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / den
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func stddev(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	m := mean(vals)
	v := 0.0
	for _, x := range vals {
		d := x - m
		v += d * d
	}
	return math.Sqrt(v / float64(len(vals)))
}

// withinPct reports whether a and b differ by at most tol as a fraction of
// the smaller value.
func withinPct(a, b, tol float64) bool {
	lo := math.Min(a, b)
	if lo == 0 {
		return false
	}
	return math.Abs(a-b)/lo <= tol
}
