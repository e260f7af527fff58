// Package chartpattern detects multi-bar chart formations in a daily bar
// series. Detection anchors on local extrema: each formation is a pure
// predicate over the peak/trough skeleton of the window, and every detector
// shares one extrema pass.
//
// The tolerances below encode chart-reading judgment, not physics. They are
// package-level variables so a caller with different taste can retune them.
package chartpattern

import (
	"sort"

	"stocksignal/market"
)

// Kind names a chart formation.
type Kind string

const (
	InverseHeadAndShoulders Kind = "inverse_head_and_shoulders"
	DoubleBottom            Kind = "double_bottom"
	TripleBottom            Kind = "triple_bottom"
	AscendingTriangle       Kind = "ascending_triangle"
	BullFlag                Kind = "bull_flag"
	DoubleTop               Kind = "double_top"
	HeadAndShoulders        Kind = "head_and_shoulders"
	DescendingTriangle      Kind = "descending_triangle"
	BearFlag                Kind = "bear_flag"
	BoxRange                Kind = "box_range"
	SymmetricalTriangle     Kind = "symmetrical_triangle"
)

// Rank is the fixed confidence tier a formation carries in the chart
// literature, from S (strongest) down to D.
type Rank string

const (
	RankS Rank = "S"
	RankA Rank = "A"
	RankB Rank = "B"
	RankC Rank = "C"
	RankD Rank = "D"
)

// Match is one detected formation. ReferenceWinRate is a literature
// citation attached for context; it is never computed from the input and
// must not be read as a calibrated probability.
type Match struct {
	Kind             Kind
	Signal           market.Signal
	Rank             Rank
	ReferenceWinRate int     // 0..100, fixed per pattern
	Strength         int     // 0..100
	Confidence       float64 // 0.0..1.0
	Description      string
	Explanation      string
	StartIndex       int
	EndIndex         int
}

// Score orders matches: the product of strength and confidence.
func (m Match) Score() float64 { return float64(m.Strength) * m.Confidence }

// Calibration knobs shared by the detectors.
var (
	// ExtremaWindow is how many bars on each side a high/low must dominate
	// to count as an extremum.
	ExtremaWindow = 2

	// ShoulderTolerance bounds how far apart the two shoulders (or outer
	// troughs) of a head-and-shoulders may sit.
	ShoulderTolerance = 0.05

	// DoubleTolerance bounds the gap between the two tops or bottoms of a
	// double/triple formation.
	DoubleTolerance = 0.04

	// MinExtremumGap is the fewest bars allowed between the two anchors of
	// a double top/bottom.
	MinExtremumGap = 5

	// FlatSlope is the per-bar regression slope, as a fraction of the
	// average anchor level, under which a boundary line reads as flat.
	FlatSlope = 0.003

	// TrendSlope is the per-bar slope, as a fraction of the average anchor
	// level, a boundary must exceed to read as rising (or, negated,
	// falling).
	TrendSlope = 0.001

	// FlagPoleMove is the minimum fractional move over the first half of
	// the window for a flag's pole.
	FlagPoleMove = 0.05

	// FlagRangeMax caps the flag body's high-low range as a fraction of
	// its average price.
	FlagRangeMax = 0.10

	// BoxStdDevMax caps the spread of peaks (and troughs) for a box range,
	// as a fraction of their average.
	BoxStdDevMax = 0.03

	// Box height limits as a fraction of the average close.
	BoxHeightMin = 0.03
	BoxHeightMax = 0.15
)

// Window length floors. Detectors need MinDetectorBars to fire; below
// MinWindowBars the whole registry short-circuits.
const (
	MinWindowBars   = 10
	MinDetectorBars = 15
)

// Detector inspects a bar series plus its extrema skeleton and reports a
// match or nil. Detectors are pure and independent; they never see each
// other's results.
type Detector func(bars []market.Bar, ext Extrema) *Match

// registry runs in order. Append here to add a formation; nothing else
// dispatches on kind.
var registry = []Detector{
	detectInverseHeadAndShoulders,
	detectDoubleBottom,
	detectTripleBottom,
	detectAscendingTriangle,
	detectBullFlag,
	detectDoubleTop,
	detectHeadAndShoulders,
	detectDescendingTriangle,
	detectBearFlag,
	detectBoxRange,
	detectSymmetricalTriangle,
}

// Detect runs every registered detector over an oldest-first series and
// returns the formations that fired, strongest first (by Strength ×
// Confidence). Fewer than MinWindowBars yields nil.
func Detect(bars []market.Bar) []Match {
	if len(bars) < MinWindowBars {
		return nil
	}

	ext := FindExtrema(bars, ExtremaWindow)

	var matches []Match
	for _, detect := range registry {
		if m := detect(bars, ext); m != nil {
			matches = append(matches, *m)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score() > matches[j].Score()
	})
	return matches
}
