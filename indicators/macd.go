package indicators

// MACD periods are the conventional 12/26/9.
const (
	macdFastPeriod   = 12
	macdSlowPeriod   = 26
	macdSignalPeriod = 9
)

// MACD bundles the line, its signal, and their difference. Histogram is
// always Line - Signal; it is never stored independently.
type MACD struct {
	Line      float64
	Signal    float64
	Histogram float64
}

// ComputeMACD returns the 12/26/9 MACD for an oldest-first close series.
// Needs at least 26 closes.
//
// The signal is the 9-period EMA of the full historical MACD-line series,
// rebuilt from every window that has 26 closes. A single-point
// approximation drifts badly once the line changes direction, so the whole
// history is rolled every call.
func ComputeMACD(closes []float64) (MACD, bool) {
	if len(closes) < macdSlowPeriod {
		return MACD{}, false
	}

	// MACD line at each index from the first full slow window onward.
	history := make([]float64, 0, len(closes)-macdSlowPeriod+1)
	for end := macdSlowPeriod; end <= len(closes); end++ {
		window := closes[:end]
		fast := emaSeries(window, macdFastPeriod)
		slow := emaSeries(window, macdSlowPeriod)
		history = append(history, fast-slow)
	}

	line := history[len(history)-1]

	// Signal: EMA(9) over the MACD history. With fewer than 9 points the
	// seed is the mean of what exists.
	signal := emaOverHistory(history, macdSignalPeriod)

	return MACD{
		Line:      round2(line),
		Signal:    round2(signal),
		Histogram: round2(round2(line) - round2(signal)),
	}, true
}

func emaOverHistory(series []float64, period int) float64 {
	if len(series) < period {
		sum := 0.0
		for _, v := range series {
			sum += v
		}
		return sum / float64(len(series))
	}
	return emaSeries(series, period)
}
