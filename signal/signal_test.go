package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stocksignal/candlestick"
	"stocksignal/market"
)

func f(v float64) *float64 { return &v }

func TestCombineStrongBuy(t *testing.T) {
	candle := &candlestick.Pattern{
		Kind:        candlestick.StrongBullish,
		Signal:      market.Buy,
		Strength:    80,
		Description: "strong bullish bar",
	}

	got := Combine(candle, f(25), f(2))

	assert.Equal(t, market.Buy, got.Signal)
	assert.GreaterOrEqual(t, got.Strength, 80)
	assert.Contains(t, got.Reasons, "strong bullish bar")
	assert.Contains(t, got.Reasons, "RSI shows the stock is oversold")
	assert.Contains(t, got.Reasons, "MACD shows rising momentum")
}

func TestCombineStrongSell(t *testing.T) {
	candle := &candlestick.Pattern{
		Kind:        candlestick.StrongBearish,
		Signal:      market.Sell,
		Strength:    80,
		Description: "strong bearish bar",
	}

	got := Combine(candle, f(75), f(-2))

	assert.Equal(t, market.Sell, got.Signal)
	assert.GreaterOrEqual(t, got.Strength, 80)
	assert.Contains(t, got.Reasons, "MACD shows falling momentum")
}

func TestCombineNoInputs(t *testing.T) {
	got := Combine(nil, nil, nil)

	assert.Equal(t, market.Neutral, got.Signal)
	assert.Equal(t, 0, got.Strength)
	assert.Equal(t, []string{"insufficient data to judge a direction"}, got.Reasons)
}

func TestCombineNeutralCandleOnly(t *testing.T) {
	candle := &candlestick.Pattern{
		Kind:     candlestick.Doji,
		Signal:   market.Neutral,
		Strength: 30,
	}

	got := Combine(candle, nil, nil)
	assert.Equal(t, market.Neutral, got.Signal)
	assert.Equal(t, 0, got.Strength)
}

func TestCombineMixedIsNeutral(t *testing.T) {
	// Buy candle against overbought RSI: scores land within the margin.
	candle := &candlestick.Pattern{
		Kind:        candlestick.NormalBullish,
		Signal:      market.Buy,
		Strength:    55,
		Description: "ordinary bullish bar",
	}

	got := Combine(candle, f(75), nil)

	assert.Equal(t, market.Neutral, got.Signal)
	assert.Equal(t, 50, got.Strength)
	assert.NotEmpty(t, got.Reasons)
}

func TestCombineSoftRSINoReason(t *testing.T) {
	// RSI 38 nudges the buy side without adding a reason line.
	got := Combine(nil, f(38), f(0.5))

	assert.Equal(t, market.Buy, got.Signal)
	assert.Empty(t, got.Reasons)
}

func TestCombineSmallHistogramNoMomentumNote(t *testing.T) {
	candle := &candlestick.Pattern{
		Kind:        candlestick.StrongBullish,
		Signal:      market.Buy,
		Strength:    80,
		Description: "strong bullish bar",
	}

	got := Combine(candle, nil, f(0.4))
	assert.Equal(t, market.Buy, got.Signal)
	assert.NotContains(t, got.Reasons, "MACD shows rising momentum")
}
