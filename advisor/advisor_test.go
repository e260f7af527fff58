package advisor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stocksignal/market"
)

func trendBars(start, step float64, n int) []market.Bar {
	bars := make([]market.Bar, n)
	for i := range bars {
		c := start + step*float64(i)
		bars[i] = market.Bar{
			Date:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			Open:  c - step*0.8,
			High:  c + 0.2,
			Low:   c - step,
			Close: c,
		}
	}
	return bars
}

func TestAnalyzeEmpty(t *testing.T) {
	_, err := Analyze(nil)
	assert.ErrorIs(t, err, ErrNoBars)
}

func TestAnalyzeUptrend(t *testing.T) {
	report, err := Analyze(trendBars(100, 1, 40))
	require.NoError(t, err)

	require.NotNil(t, report.Indicators.RSI)
	assert.Equal(t, 100.0, *report.Indicators.RSI)
	require.NotNil(t, report.Indicators.MACD)
	assert.NotEmpty(t, report.Combined.Reasons)
	// A 40-bar straight climb reads overbought: not a buy call.
	assert.NotEqual(t, market.Buy, report.Combined.Signal)
}

func TestAnalyzeShortSeriesStillReports(t *testing.T) {
	report, err := Analyze(trendBars(100, 1, 5))
	require.NoError(t, err)

	assert.Nil(t, report.Indicators.RSI)
	assert.Nil(t, report.Indicators.MACD)
	assert.Nil(t, report.Patterns)
	assert.NotEmpty(t, report.Candle.Kind)
}

func TestWeekChangeRate(t *testing.T) {
	bars := trendBars(100, 1, 10)
	// Close 5 bars before the latest: 104 -> 109.
	rate, ok := WeekChangeRate(bars)
	require.True(t, ok)
	assert.InDelta(t, (109.0-104.0)/104.0*100, rate, 0.01)

	_, ok = WeekChangeRate(trendBars(100, 1, 5))
	assert.False(t, ok)
}

func TestVolatility(t *testing.T) {
	bars := []market.Bar{
		{High: 100, Low: 95},
		{High: 130, Low: 90},
		{High: 120, Low: 100},
	}
	vol, ok := Volatility(bars, 3)
	require.True(t, ok)
	assert.InDelta(t, (130.0-90.0)/90.0*100, vol, 0.01)

	_, ok = Volatility(bars, 5)
	assert.False(t, ok)
}

func TestAnalyzeDeterministic(t *testing.T) {
	bars := trendBars(100, 0.5, 35)
	first, err := Analyze(bars)
	require.NoError(t, err)
	second, err := Analyze(bars)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
