/*
Package extract finds "$SYMBOL" ticker mentions in free-form text.
*/
package extract

import (
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/shanehull/movers/internal/types"
)

const tickerPattern = `\$([A-Z]+)`

// ErrPattern is returned when the ticker pattern cannot be compiled.
var ErrPattern = errors.New("invalid ticker pattern")

var (
	patternOnce sync.Once
	pattern     *regexp.Regexp
	patternErr  error
)

func compiled() (*regexp.Regexp, error) {
	patternOnce.Do(func() {
		pattern, patternErr = compile(tickerPattern)
	})
	return pattern, patternErr
}

func compile(expr string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrPattern, expr, err)
	}
	return re, nil
}

// Tickers returns every ticker mentioned in text, in order of appearance.
// Repeated mentions are kept. Text without mentions yields an empty slice.
func Tickers(text string) ([]types.Ticker, error) {
	re, err := compiled()
	if err != nil {
		return nil, err
	}
	return scan(re, text), nil
}

func scan(re *regexp.Regexp, text string) []types.Ticker {
	tickers := []types.Ticker{}
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		tickers = append(tickers, types.Ticker{Symbol: m[1]})
	}
	return tickers
}
