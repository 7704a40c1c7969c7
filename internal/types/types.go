package types

// Ticker is a symbol lifted from a "$SYMBOL" mention. Symbol never includes
// the leading dollar sign.
type Ticker struct {
	Symbol string
}

// Variant controls how many tickers a block renders and the character each
// one is prefixed with.
type Variant struct {
	Count  int
	Prefix rune
}

type Block struct {
	Variant
	Header string
	Line   string
}
