// Package safety holds the override predicates the recommendation layer
// uses to temper or veto a signal: surge, dangerous, overheated, and
// in-decline checks, each tuned per investment style.
//
// These predicates classify; they never decide an action. Turning "buy plus
// dangerous" into "hold" is the caller's policy.
package safety

import "stocksignal/indicators"

// Style selects a threshold profile.
type Style string

const (
	Conservative Style = "conservative"
	Balanced     Style = "balanced"
	Aggressive   Style = "aggressive"
	Default      Style = "default"
)

// Thresholds tunes the predicates for one style. A SurgeThreshold of
// NoThreshold disables the surge check for that style; SkipOverheatCheck
// does the same for the overheat check.
type Thresholds struct {
	SurgeThreshold      float64
	DeclineThreshold    float64
	DeviationUpperBound float64
	SkipOverheatCheck   bool
}

// NoThreshold disables a rate-based check.
const NoThreshold = 0

// DangerVolatility is the volatility above which an unprofitable company
// reads as dangerous. It is style-independent: losing money on a violently
// moving stock is risky for everyone.
const DangerVolatility = 50.0

// table maps each style to its thresholds. Conservative trips earliest on
// everything; aggressive never trips the surge check and skips the
// overheat check entirely.
var table = map[Style]Thresholds{
	Conservative: {SurgeThreshold: 15, DeclineThreshold: -8, DeviationUpperBound: 10},
	Balanced:     {SurgeThreshold: 20, DeclineThreshold: -10, DeviationUpperBound: indicators.DeviationUpperBound},
	Aggressive:   {SurgeThreshold: NoThreshold, DeclineThreshold: -15, DeviationUpperBound: 25, SkipOverheatCheck: true},
	Default:      {SurgeThreshold: 20, DeclineThreshold: -10, DeviationUpperBound: indicators.DeviationUpperBound},
}

// ThresholdsFor returns the profile for a style; unknown styles fall back
// to Default.
func ThresholdsFor(s Style) Thresholds {
	if t, ok := table[s]; ok {
		return t
	}
	return table[Default]
}

// Override replaces a style's threshold profile. Config loading uses this;
// it is not meant to be called concurrently with evaluation.
func Override(s Style, t Thresholds) {
	table[s] = t
}

// IsSurge reports whether the week-over-week change rate (percent) marks
// the stock as surging for the given style.
func IsSurge(weekChangeRate float64, s Style) bool {
	t := ThresholdsFor(s)
	if t.SurgeThreshold == NoThreshold {
		return false
	}
	return weekChangeRate >= t.SurgeThreshold
}

// IsDangerous reports whether an unprofitable company with high volatility
// should be flagged. Profitable companies never trip this check.
func IsDangerous(isProfitable bool, volatility float64) bool {
	return !isProfitable && volatility > DangerVolatility
}

// IsOverheated reports whether the deviation rate from the moving average
// (percent) marks the stock as extended for the given style.
func IsOverheated(deviationRate float64, s Style) bool {
	t := ThresholdsFor(s)
	if t.SkipOverheatCheck {
		return false
	}
	return deviationRate >= t.DeviationUpperBound
}

// IsInDecline reports whether the week-over-week change rate (percent)
// marks the stock as falling for the given style.
func IsInDecline(weekChangeRate float64, s Style) bool {
	return weekChangeRate <= ThresholdsFor(s).DeclineThreshold
}

// Metrics are the derived scalars the predicates consume. The caller
// computes them from whatever data it holds; the package never sees bars.
type Metrics struct {
	WeekChangeRate float64
	DeviationRate  float64
	Volatility     float64
	IsProfitable   bool
}

// Flags bundles the four predicate results.
type Flags struct {
	IsSurge      bool
	IsDangerous  bool
	IsOverheated bool
	IsInDecline  bool
}

// Evaluate runs every predicate for one style.
func Evaluate(m Metrics, s Style) Flags {
	return Flags{
		IsSurge:      IsSurge(m.WeekChangeRate, s),
		IsDangerous:  IsDangerous(m.IsProfitable, m.Volatility),
		IsOverheated: IsOverheated(m.DeviationRate, s),
		IsInDecline:  IsInDecline(m.WeekChangeRate, s),
	}
}
