package chartpattern

import "stocksignal/market"

// Flags split the window in half: a sharp move over the first half (the
// pole) followed by a quiet, slightly counter-sloped drift in the second
// (the flag). Flags are continuation shapes: the expectation is that the
// pole's direction resumes.

const flagConfidence = 0.7

// flagShape checks the second half of the window for a tight, gently
// sloped consolidation and returns its per-bar slope relative to the
// average flag close.
func flagShape(bars []market.Bar) (relSlope float64, ok bool) {
	half := len(bars) / 2
	flag := bars[half:]
	if len(flag) < 3 {
		return 0, false
	}

	idx := make([]int, len(flag))
	closes := make([]float64, len(flag))
	hi, lo := flag[0].High, flag[0].Low
	for i, b := range flag {
		idx[i] = half + i
		closes[i] = b.Close
		if b.High > hi {
			hi = b.High
		}
		if b.Low < lo {
			lo = b.Low
		}
	}

	avg := mean(closes)
	if avg <= 0 {
		return 0, false
	}
	if (hi-lo)/avg > FlagRangeMax {
		return 0, false
	}
	return slope(idx, closes) / avg, true
}

// poleMove is the fractional close-to-close move across the first half of
// the window.
func poleMove(bars []market.Bar) (float64, bool) {
	half := len(bars) / 2
	if half < 3 || bars[0].Close == 0 {
		return 0, false
	}
	return (bars[half-1].Close - bars[0].Close) / bars[0].Close, true
}

func detectBullFlag(bars []market.Bar, ext Extrema) *Match {
	if len(bars) < MinDetectorBars {
		return nil
	}
	pole, ok := poleMove(bars)
	if !ok || pole < FlagPoleMove {
		return nil
	}
	rel, ok := flagShape(bars)
	if !ok || rel > 0 || rel < -FlatSlope {
		return nil
	}

	return &Match{
		Kind:             BullFlag,
		Signal:           market.Buy,
		Rank:             RankC,
		ReferenceWinRate: 54,
		Strength:         60,
		Confidence:       flagConfidence,
		Description:      "bull flag: a sharp rise followed by a quiet sideways drift",
		Explanation:      "The price jumped strongly and has since been resting in a tight, slightly sagging band. Pauses like this after a surge are often just a breather before the rise continues, though they fail about as often as they work.",
		StartIndex:       0,
		EndIndex:         len(bars) - 1,
	}
}

func detectBearFlag(bars []market.Bar, ext Extrema) *Match {
	if len(bars) < MinDetectorBars {
		return nil
	}
	pole, ok := poleMove(bars)
	if !ok || pole > -FlagPoleMove {
		return nil
	}
	rel, ok := flagShape(bars)
	if !ok || rel < 0 || rel > FlatSlope {
		return nil
	}

	return &Match{
		Kind:             BearFlag,
		Signal:           market.Sell,
		Rank:             RankC,
		ReferenceWinRate: 54,
		Strength:         60,
		Confidence:       flagConfidence,
		Description:      "bear flag: a sharp drop followed by a quiet sideways drift",
		Explanation:      "The price fell hard and has since been resting in a tight, slightly rising band. Pauses like this after a slide are often just a breather before the decline continues, though they fail about as often as they work.",
		StartIndex:       0,
		EndIndex:         len(bars) - 1,
	}
}
