/*
Package format renders extracted tickers into the blocks of a movers post.
*/
package format

import (
	"strings"

	"github.com/shanehull/movers/internal/types"
)

const DefaultHeader = "📈 Big Movers of the day (ranked by today's price change)\n\n" +
	"Start tracking these today using our free stock screener: https://base.report/screener?filter_key=IJQVaoxW\n\n"

// BlockSeparator leaves four empty lines between blocks.
const BlockSeparator = "\n\n\n\n\n"

func Header() string {
	return DefaultHeader
}

// DefaultVariants returns the long list, the short list and the hashtag list,
// in that order.
func DefaultVariants() []types.Variant {
	return []types.Variant{
		{Count: 30, Prefix: '$'},
		{Count: 4, Prefix: '$'},
		{Count: 10, Prefix: '#'},
	}
}

// Tickers renders up to count tickers as prefix+symbol tokens separated by a
// single space. Fewer tickers than count is not an error.
func Tickers(tickers []types.Ticker, count int, prefix rune) string {
	if count <= 0 || len(tickers) == 0 {
		return ""
	}
	if count > len(tickers) {
		count = len(tickers)
	}

	var sb strings.Builder
	for i, t := range tickers[:count] {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteRune(prefix)
		sb.WriteString(t.Symbol)
	}
	return sb.String()
}

func Blocks(tickers []types.Ticker, variants []types.Variant) []types.Block {
	blocks := make([]types.Block, 0, len(variants))
	for _, v := range variants {
		blocks = append(blocks, types.Block{
			Variant: v,
			Header:  Header(),
			Line:    Tickers(tickers, v.Count, v.Prefix),
		})
	}
	return blocks
}

// Join concatenates each block's header and ticker line and separates the
// blocks with BlockSeparator.
func Join(blocks []types.Block) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		parts = append(parts, b.Header+b.Line)
	}
	return strings.Join(parts, BlockSeparator)
}

// Assemble builds the full document for the default variants.
func Assemble(tickers []types.Ticker) string {
	return Join(Blocks(tickers, DefaultVariants()))
}
