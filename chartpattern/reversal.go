package chartpattern

import "stocksignal/market"

// Reversal formations anchor on two or three matched extrema plus a
// neckline between them. The formation only fires once the latest close has
// broken through the neckline; a half-formed shape stays silent.

const reversalConfidence = 0.8

// between returns the extremum indices strictly inside (lo, hi).
func between(idx []int, lo, hi int) []int {
	var out []int
	for _, i := range idx {
		if i > lo && i < hi {
			out = append(out, i)
		}
	}
	return out
}

// highestHigh returns the max high among the given bar indices.
func highestHigh(bars []market.Bar, idx []int) float64 {
	best := bars[idx[0]].High
	for _, i := range idx[1:] {
		if bars[i].High > best {
			best = bars[i].High
		}
	}
	return best
}

func lowestLow(bars []market.Bar, idx []int) float64 {
	best := bars[idx[0]].Low
	for _, i := range idx[1:] {
		if bars[i].Low < best {
			best = bars[i].Low
		}
	}
	return best
}

func detectInverseHeadAndShoulders(bars []market.Bar, ext Extrema) *Match {
	if len(bars) < MinDetectorBars || len(ext.Troughs) < 3 {
		return nil
	}
	last := bars[len(bars)-1].Close

	// Most recent qualifying triple wins.
	for i := len(ext.Troughs) - 3; i >= 0; i-- {
		l, h, r := ext.Troughs[i], ext.Troughs[i+1], ext.Troughs[i+2]
		left, head, right := bars[l].Low, bars[h].Low, bars[r].Low

		if head >= left || head >= right {
			continue
		}
		if !withinPct(left, right, ShoulderTolerance) {
			continue
		}
		inner := between(ext.Peaks, l, r)
		if len(inner) == 0 {
			continue
		}
		neckline := highestHigh(bars, inner)
		if last <= neckline {
			continue
		}

		return &Match{
			Kind:             InverseHeadAndShoulders,
			Signal:           market.Buy,
			Rank:             RankS,
			ReferenceWinRate: 89,
			Strength:         85,
			Confidence:       reversalConfidence,
			Description:      "inverse head and shoulders: a three-dip bottom has completed",
			Explanation:      "The price carved out three dips with the middle one deepest, then climbed back above the ridge between them. This shape often marks the end of a decline and the start of a new rise.",
			StartIndex:       l,
			EndIndex:         len(bars) - 1,
		}
	}
	return nil
}

func detectHeadAndShoulders(bars []market.Bar, ext Extrema) *Match {
	if len(bars) < MinDetectorBars || len(ext.Peaks) < 3 {
		return nil
	}
	last := bars[len(bars)-1].Close

	for i := len(ext.Peaks) - 3; i >= 0; i-- {
		l, h, r := ext.Peaks[i], ext.Peaks[i+1], ext.Peaks[i+2]
		left, head, right := bars[l].High, bars[h].High, bars[r].High

		if head <= left || head <= right {
			continue
		}
		if !withinPct(left, right, ShoulderTolerance) {
			continue
		}
		inner := between(ext.Troughs, l, r)
		if len(inner) == 0 {
			continue
		}
		neckline := lowestLow(bars, inner)
		if last >= neckline {
			continue
		}

		return &Match{
			Kind:             HeadAndShoulders,
			Signal:           market.Sell,
			Rank:             RankS,
			ReferenceWinRate: 89,
			Strength:         85,
			Confidence:       reversalConfidence,
			Description:      "head and shoulders: a three-peak top has completed",
			Explanation:      "The price made three peaks with the middle one highest, then fell below the valley floor between them. This shape often marks the end of a rise and the start of a decline.",
			StartIndex:       l,
			EndIndex:         len(bars) - 1,
		}
	}
	return nil
}

func detectDoubleBottom(bars []market.Bar, ext Extrema) *Match {
	if len(bars) < MinDetectorBars || len(ext.Troughs) < 2 {
		return nil
	}
	last := bars[len(bars)-1].Close

	for i := len(ext.Troughs) - 2; i >= 0; i-- {
		a, b := ext.Troughs[i], ext.Troughs[i+1]
		if b-a < MinExtremumGap {
			continue
		}
		if !withinPct(bars[a].Low, bars[b].Low, DoubleTolerance) {
			continue
		}
		inner := between(ext.Peaks, a, b)
		if len(inner) == 0 {
			continue
		}
		neckline := highestHigh(bars, inner)
		if last <= neckline {
			continue
		}

		return &Match{
			Kind:             DoubleBottom,
			Signal:           market.Buy,
			Rank:             RankS,
			ReferenceWinRate: 88,
			Strength:         85,
			Confidence:       reversalConfidence,
			Description:      "double bottom: the price bounced twice off the same floor and broke higher",
			Explanation:      "The price fell to roughly the same level twice and recovered both times, then rose above the bounce between the two dips. Two rejections of the same floor suggest strong buying interest there.",
			StartIndex:       a,
			EndIndex:         len(bars) - 1,
		}
	}
	return nil
}

func detectDoubleTop(bars []market.Bar, ext Extrema) *Match {
	if len(bars) < MinDetectorBars || len(ext.Peaks) < 2 {
		return nil
	}
	last := bars[len(bars)-1].Close

	for i := len(ext.Peaks) - 2; i >= 0; i-- {
		a, b := ext.Peaks[i], ext.Peaks[i+1]
		if b-a < MinExtremumGap {
			continue
		}
		if !withinPct(bars[a].High, bars[b].High, DoubleTolerance) {
			continue
		}
		inner := between(ext.Troughs, a, b)
		if len(inner) == 0 {
			continue
		}
		neckline := lowestLow(bars, inner)
		if last >= neckline {
			continue
		}

		return &Match{
			Kind:             DoubleTop,
			Signal:           market.Sell,
			Rank:             RankB,
			ReferenceWinRate: 73,
			Strength:         70,
			Confidence:       reversalConfidence,
			Description:      "double top: the price stalled twice at the same ceiling and broke lower",
			Explanation:      "The price rose to roughly the same level twice and was turned back both times, then dropped below the dip between the two attempts. Two failures at the same ceiling suggest sellers defend it.",
			StartIndex:       a,
			EndIndex:         len(bars) - 1,
		}
	}
	return nil
}

func detectTripleBottom(bars []market.Bar, ext Extrema) *Match {
	if len(bars) < MinDetectorBars || len(ext.Troughs) < 3 {
		return nil
	}
	last := bars[len(bars)-1].Close

	for i := len(ext.Troughs) - 3; i >= 0; i-- {
		a, b, c := ext.Troughs[i], ext.Troughs[i+1], ext.Troughs[i+2]
		la, lb, lc := bars[a].Low, bars[b].Low, bars[c].Low

		if !withinPct(la, lb, DoubleTolerance) ||
			!withinPct(lb, lc, DoubleTolerance) ||
			!withinPct(la, lc, DoubleTolerance) {
			continue
		}
		inner := between(ext.Peaks, a, c)
		if len(inner) < 2 {
			continue
		}
		neckline := highestHigh(bars, inner)
		if last <= neckline {
			continue
		}

		return &Match{
			Kind:             TripleBottom,
			Signal:           market.Buy,
			Rank:             RankA,
			ReferenceWinRate: 87,
			Strength:         80,
			Confidence:       reversalConfidence,
			Description:      "triple bottom: three bounces off the same floor, then a break higher",
			Explanation:      "The price tested the same floor three times without breaking it, then climbed above the ridges between the tests. Repeated defenses of one level make it a strong base.",
			StartIndex:       a,
			EndIndex:         len(bars) - 1,
		}
	}
	return nil
}
