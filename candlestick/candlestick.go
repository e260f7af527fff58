// Package candlestick classifies a single daily OHLC bar into a named
// shape with a direction and strength. The description and explanation are
// plain-language strings shown to non-expert readers; downstream layers
// render them verbatim.
package candlestick

import (
	"math"

	"stocksignal/market"
)

// Kind names the shape of a single bar.
type Kind string

const (
	Doji          Kind = "doji"
	StrongBullish Kind = "strong_bullish"
	StrongBearish Kind = "strong_bearish"
	Hammer        Kind = "hammer"
	LowerShadow   Kind = "lower_shadow"
	UpperShadow   Kind = "upper_shadow"
	RejectedRally Kind = "rejected_rally"
	SmallBody     Kind = "small_body"
	NormalBullish Kind = "normal_bullish"
	NormalBearish Kind = "normal_bearish"
)

// Pattern is the classification of one bar.
type Pattern struct {
	Kind        Kind
	Signal      market.Signal
	Strength    int // 0..100
	Description string
	Explanation string
}

// Shape thresholds. A bar with less than dojiRange between high and low is
// a doji regardless of body; a wick at or past wickRatio of the range
// counts as long; a body at or past longBodyRatio of the range counts as
// dominant.
const (
	dojiRange     = 0.01
	wickRatio     = 0.3
	longBodyRatio = 0.6
	thinBodyRatio = 0.2
)

// Classify maps one bar to its Pattern. The branches apply in order; the
// first match wins.
func Classify(bar market.Bar) Pattern {
	rng := bar.High - bar.Low
	if rng < dojiRange {
		return Pattern{
			Kind:        Doji,
			Signal:      market.Neutral,
			Strength:    30,
			Description: "doji: open and close nearly equal",
			Explanation: "Buyers and sellers fought to a standstill today. The market has no clear direction, so it is usually better to wait for the next move before acting.",
		}
	}

	body := math.Abs(bar.Close - bar.Open)
	upperWick := bar.High - math.Max(bar.Open, bar.Close)
	lowerWick := math.Min(bar.Open, bar.Close) - bar.Low
	bodyRatio := body / rng
	longLower := lowerWick >= wickRatio*rng
	longUpper := upperWick >= wickRatio*rng

	if bar.Bullish() {
		return classifyBullish(bodyRatio, longUpper, longLower)
	}
	return classifyBearish(bodyRatio, longUpper, longLower)
}

func classifyBullish(bodyRatio float64, longUpper, longLower bool) Pattern {
	switch {
	case bodyRatio >= longBodyRatio && !longUpper && !longLower:
		return Pattern{
			Kind:        StrongBullish,
			Signal:      market.Buy,
			Strength:    80,
			Description: "strong bullish bar: price climbed steadily all day",
			Explanation: "The price opened low and closed near its high with barely a pause. Buyers were firmly in control, which often carries over into the next few sessions.",
		}
	case longLower && !longUpper:
		return Pattern{
			Kind:        Hammer,
			Signal:      market.Buy,
			Strength:    75,
			Description: "hammer: sold off hard but buyers pushed it back up",
			Explanation: "Sellers drove the price well down during the day, but buyers stepped in and lifted it back above the open. That rejection of lower prices often marks a bottom.",
		}
	case longUpper && !longLower:
		return Pattern{
			Kind:        UpperShadow,
			Signal:      market.Sell,
			Strength:    60,
			Description: "pullback after a rise: gains were partly given back",
			Explanation: "The price pushed noticeably higher during the day but could not hold the top and slipped back before the close. Buyers may be starting to tire.",
		}
	case bodyRatio <= thinBodyRatio:
		return Pattern{
			Kind:        SmallBody,
			Signal:      market.Neutral,
			Strength:    50,
			Description: "small bullish body: a gradual drift upward",
			Explanation: "The price edged up without conviction. A quiet day like this says little on its own; watch whether the next bars confirm the drift.",
		}
	default:
		return Pattern{
			Kind:        NormalBullish,
			Signal:      market.Buy,
			Strength:    55,
			Description: "ordinary bullish bar",
			Explanation: "The price closed above where it opened, a mildly positive day with nothing unusual about its shape.",
		}
	}
}

func classifyBearish(bodyRatio float64, longUpper, longLower bool) Pattern {
	switch {
	case bodyRatio >= longBodyRatio && !longUpper && !longLower:
		return Pattern{
			Kind:        StrongBearish,
			Signal:      market.Sell,
			Strength:    80,
			Description: "strong bearish bar: price fell steadily all day",
			Explanation: "The price opened high and closed near its low with sellers in control throughout. Downward pressure this one-sided often continues for a while.",
		}
	case longLower && !longUpper:
		return Pattern{
			Kind:        LowerShadow,
			Signal:      market.Buy,
			Strength:    65,
			Description: "slipped from the open but found support below",
			Explanation: "The day ended lower than it began, yet the long tail underneath shows buyers absorbed the selling well below the close. The decline may be running out of sellers.",
		}
	case longUpper && !longLower:
		return Pattern{
			Kind:        RejectedRally,
			Signal:      market.Sell,
			Strength:    75,
			Description: "rejected rally: an attempt to rise was sold into",
			Explanation: "The price tried to rally during the day but sellers knocked it back down to close below the open. Failed rallies like this tend to invite more selling.",
		}
	case bodyRatio <= thinBodyRatio:
		return Pattern{
			Kind:        SmallBody,
			Signal:      market.Neutral,
			Strength:    50,
			Description: "small bearish body: a gradual drift downward",
			Explanation: "The price eased down without much force. A quiet day like this says little on its own; watch whether the next bars confirm the drift.",
		}
	default:
		return Pattern{
			Kind:        NormalBearish,
			Signal:      market.Sell,
			Strength:    55,
			Description: "ordinary bearish bar",
			Explanation: "The price closed below where it opened, a mildly negative day with nothing unusual about its shape.",
		}
	}
}
