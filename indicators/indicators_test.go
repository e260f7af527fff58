package indicators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stocksignal/market"
)

// rising returns n closes climbing by step from start.
func rising(start, step float64, n int) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = start + step*float64(i)
	}
	return closes
}

func falling(start, step float64, n int) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = start - step*float64(i)
	}
	return closes
}

func flat(v float64, n int) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = v
	}
	return closes
}

func TestSMA(t *testing.T) {
	closes := []float64{100, 102, 105, 106, 108, 110, 111, 113, 114, 116}

	sma, ok := SMA(closes, 5)
	require.True(t, ok)
	// Last 5 closes: 110,111,113,114,116 => 564/5 = 112.8
	assert.InDelta(t, 112.8, sma, 0.001)

	_, ok = SMA(closes, 11)
	assert.False(t, ok)
	_, ok = SMA(closes, 0)
	assert.False(t, ok)
}

func TestEMAFlatSeriesMatchesSMA(t *testing.T) {
	closes := flat(250, 40)

	ema, okE := EMA(closes, 10)
	sma, okS := SMA(closes, 10)
	require.True(t, okE)
	require.True(t, okS)
	assert.Equal(t, sma, ema)
}

func TestRSIBounds(t *testing.T) {
	up, ok := RSI(rising(100, 1, 20), 14)
	require.True(t, ok)
	assert.Equal(t, 100.0, up)

	down, ok := RSI(falling(100, 1, 20), 14)
	require.True(t, ok)
	assert.InDelta(t, 0.0, down, 0.01)

	mixed := []float64{100, 101, 99, 102, 98, 103, 97, 104, 96, 105, 95, 106, 94, 107, 93}
	rsi, ok := RSI(mixed, 14)
	require.True(t, ok)
	assert.GreaterOrEqual(t, rsi, 0.0)
	assert.LessOrEqual(t, rsi, 100.0)
}

func TestRSIInsufficientData(t *testing.T) {
	_, ok := RSI(rising(100, 1, 14), 14) // needs 15 closes
	assert.False(t, ok)
}

func TestMACDHistogramIsDifference(t *testing.T) {
	closes := append(rising(100, 0.5, 30), falling(115, 0.8, 20)...)

	m, ok := ComputeMACD(closes)
	require.True(t, ok)
	assert.InDelta(t, m.Line-m.Signal, m.Histogram, 1e-9)
}

func TestMACDSignalTracksHistory(t *testing.T) {
	// A long steady climb keeps the line above the signal: the signal is an
	// EMA of the line's history, so it lags the line on a sustained trend.
	m, ok := ComputeMACD(rising(100, 1, 60))
	require.True(t, ok)
	assert.Greater(t, m.Line, m.Signal)
	assert.Greater(t, m.Histogram, 0.0)
}

func TestMACDInsufficientData(t *testing.T) {
	_, ok := ComputeMACD(rising(100, 1, 25))
	assert.False(t, ok)
}

func TestBollinger(t *testing.T) {
	b, ok := ComputeBollinger(flat(100, 25), 20, 2.0)
	require.True(t, ok)
	// Zero variance: every band collapses onto the average.
	assert.Equal(t, 100.0, b.Upper)
	assert.Equal(t, 100.0, b.Middle)
	assert.Equal(t, 100.0, b.Lower)

	b, ok = ComputeBollinger(rising(100, 1, 25), 20, 2.0)
	require.True(t, ok)
	assert.Greater(t, b.Upper, b.Middle)
	assert.Greater(t, b.Middle, b.Lower)
}

func TestDeviationRate(t *testing.T) {
	// 24 closes at 100 then one at 110: SMA(25) = 100.4.
	closes := append(flat(100, 24), 110)
	dev, ok := DeviationRate(closes, 25)
	require.True(t, ok)
	assert.InDelta(t, (110-100.4)/100.4*100, dev, 0.01)

	_, ok = DeviationRate(flat(100, 10), 25)
	assert.False(t, ok)
}

func TestComputeSnapshot(t *testing.T) {
	bars := make([]market.Bar, 40)
	for i := range bars {
		c := 100 + float64(i)
		bars[i] = market.Bar{
			Date:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			Open:  c - 0.5,
			High:  c + 1,
			Low:   c - 1,
			Close: c,
		}
	}

	snap := Compute(bars)
	require.NotNil(t, snap.RSI)
	require.NotNil(t, snap.SMA)
	require.NotNil(t, snap.EMA)
	require.NotNil(t, snap.MACD)
	require.NotNil(t, snap.Bollinger)
	require.NotNil(t, snap.DeviationRate)
	assert.Equal(t, 100.0, *snap.RSI)
}

func TestComputeSnapshotShortSeries(t *testing.T) {
	snap := Compute([]market.Bar{{Close: 100}, {Close: 101}})
	assert.Nil(t, snap.RSI)
	assert.Nil(t, snap.MACD)
	assert.Nil(t, snap.Bollinger)
}

func TestDeterminism(t *testing.T) {
	closes := append(rising(100, 0.7, 40), falling(128, 0.3, 15)...)

	first, ok1 := ComputeMACD(closes)
	second, ok2 := ComputeMACD(closes)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, first, second)
}
