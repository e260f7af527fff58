package market

// Signal is the direction a pattern or indicator leans.
type Signal string

const (
	Buy     Signal = "buy"
	Sell    Signal = "sell"
	Neutral Signal = "neutral"
)
