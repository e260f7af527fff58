package chartpattern

import "stocksignal/market"

// Triangles and boxes classify the shape of the peak and trough boundary
// lines: a least-squares line through the peak highs and another through
// the trough lows, judged flat, rising, or falling relative to the average
// anchor level.

const rangeConfidence = 0.7

type boundary struct {
	idx   []int
	vals  []float64
	avg   float64
	slope float64
}

func peakBoundary(bars []market.Bar, ext Extrema) (boundary, bool) {
	if len(ext.Peaks) < 2 {
		return boundary{}, false
	}
	vals := highs(bars, ext.Peaks)
	return boundary{ext.Peaks, vals, mean(vals), slope(ext.Peaks, vals)}, true
}

func troughBoundary(bars []market.Bar, ext Extrema) (boundary, bool) {
	if len(ext.Troughs) < 2 {
		return boundary{}, false
	}
	vals := lows(bars, ext.Troughs)
	return boundary{ext.Troughs, vals, mean(vals), slope(ext.Troughs, vals)}, true
}

func (b boundary) flat() bool    { return b.avg > 0 && abs(b.slope) <= FlatSlope*b.avg }
func (b boundary) rising() bool  { return b.avg > 0 && b.slope >= TrendSlope*b.avg }
func (b boundary) falling() bool { return b.avg > 0 && b.slope <= -TrendSlope*b.avg }

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func (b boundary) span() (int, int) { return b.idx[0], b.idx[len(b.idx)-1] }

func detectAscendingTriangle(bars []market.Bar, ext Extrema) *Match {
	if len(bars) < MinDetectorBars {
		return nil
	}
	top, ok := peakBoundary(bars, ext)
	if !ok {
		return nil
	}
	bottom, ok := troughBoundary(bars, ext)
	if !ok {
		return nil
	}
	if !top.flat() || !bottom.rising() {
		return nil
	}

	start, _ := top.span()
	if s, _ := bottom.span(); s < start {
		start = s
	}
	return &Match{
		Kind:             AscendingTriangle,
		Signal:           market.Buy,
		Rank:             RankA,
		ReferenceWinRate: 83,
		Strength:         78,
		Confidence:       rangeConfidence,
		Description:      "ascending triangle: rising floors pressing against a flat ceiling",
		Explanation:      "Each dip has been shallower than the last while the highs keep stalling at the same level. Buyers are getting more eager; this squeeze usually resolves upward through the ceiling.",
		StartIndex:       start,
		EndIndex:         len(bars) - 1,
	}
}

func detectDescendingTriangle(bars []market.Bar, ext Extrema) *Match {
	if len(bars) < MinDetectorBars {
		return nil
	}
	top, ok := peakBoundary(bars, ext)
	if !ok {
		return nil
	}
	bottom, ok := troughBoundary(bars, ext)
	if !ok {
		return nil
	}
	if !bottom.flat() || !top.falling() {
		return nil
	}

	start, _ := top.span()
	if s, _ := bottom.span(); s < start {
		start = s
	}
	return &Match{
		Kind:             DescendingTriangle,
		Signal:           market.Sell,
		Rank:             RankS,
		ReferenceWinRate: 87,
		Strength:         82,
		Confidence:       rangeConfidence,
		Description:      "descending triangle: falling ceilings pressing against a flat floor",
		Explanation:      "Each rally has been weaker than the last while the lows keep landing on the same level. Sellers are getting more aggressive; this squeeze usually resolves downward through the floor.",
		StartIndex:       start,
		EndIndex:         len(bars) - 1,
	}
}

func detectSymmetricalTriangle(bars []market.Bar, ext Extrema) *Match {
	if len(bars) < MinDetectorBars {
		return nil
	}
	top, ok := peakBoundary(bars, ext)
	if !ok {
		return nil
	}
	bottom, ok := troughBoundary(bars, ext)
	if !ok {
		return nil
	}
	if !top.falling() || !bottom.rising() {
		return nil
	}

	start, _ := top.span()
	if s, _ := bottom.span(); s < start {
		start = s
	}
	return &Match{
		Kind:             SymmetricalTriangle,
		Signal:           market.Neutral,
		Rank:             RankD,
		ReferenceWinRate: 55,
		Strength:         50,
		Confidence:       rangeConfidence,
		Description:      "symmetrical triangle: the trading range is narrowing from both sides",
		Explanation:      "Highs are drifting down while lows drift up, coiling the price into a narrowing wedge. A decisive move usually follows, but the shape alone does not say in which direction.",
		StartIndex:       start,
		EndIndex:         len(bars) - 1,
	}
}

func detectBoxRange(bars []market.Bar, ext Extrema) *Match {
	if len(bars) < MinDetectorBars {
		return nil
	}
	top, ok := peakBoundary(bars, ext)
	if !ok {
		return nil
	}
	bottom, ok := troughBoundary(bars, ext)
	if !ok {
		return nil
	}

	if top.avg <= 0 || bottom.avg <= 0 {
		return nil
	}
	if stddev(top.vals)/top.avg > BoxStdDevMax || stddev(bottom.vals)/bottom.avg > BoxStdDevMax {
		return nil
	}

	avgClose := mean(market.Closes(bars))
	if avgClose <= 0 {
		return nil
	}
	height := (top.avg - bottom.avg) / avgClose
	if height < BoxHeightMin || height > BoxHeightMax {
		return nil
	}

	start, _ := top.span()
	if s, _ := bottom.span(); s < start {
		start = s
	}
	return &Match{
		Kind:             BoxRange,
		Signal:           market.Neutral,
		Rank:             RankD,
		ReferenceWinRate: 55,
		Strength:         50,
		Confidence:       rangeConfidence,
		Description:      "box range: the price is bouncing between a steady floor and ceiling",
		Explanation:      "The price has been oscillating inside a fairly fixed band, with neither buyers nor sellers winning ground. Until it escapes the band there is no directional story here.",
		StartIndex:       start,
		EndIndex:         len(bars) - 1,
	}
}
