package extract

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shanehull/movers/internal/types"
)

func TestTickers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "order of appearance",
			input: "$AAPL $MSFT $GOOGL",
			want:  []string{"AAPL", "MSFT", "GOOGL"},
		},
		{
			name:  "rejects lower case, digits and bare dollar",
			input: "$aapl $123 $ $A",
			want:  []string{"A"},
		},
		{
			name:  "duplicates kept",
			input: "$TSLA up, $NVDA down, $TSLA again",
			want:  []string{"TSLA", "NVDA", "TSLA"},
		},
		{
			name:  "stops at first non upper case letter",
			input: "$BRKb $SPY500 ($QQQ)",
			want:  []string{"BRK", "SPY", "QQQ"},
		},
		{
			name:  "adjacent mentions",
			input: "$AMD$INTC",
			want:  []string{"AMD", "INTC"},
		},
		{
			name:  "no length cap",
			input: "$" + strings.Repeat("X", 64),
			want:  []string{strings.Repeat("X", 64)},
		},
		{
			name:  "non ascii letters do not match",
			input: "$ÄPPL $Ω",
			want:  []string{},
		},
		{
			name:  "no mentions",
			input: "nothing moved today",
			want:  []string{},
		},
		{
			name:  "empty input",
			input: "",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tickers(tt.input)
			require.NoError(t, err)
			require.NotNil(t, got)
			if diff := cmp.Diff(tt.want, symbols(got)); diff != "" {
				t.Errorf("Tickers(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestTickersDeterministic(t *testing.T) {
	input := "$META beat, $AMZN missed, $META guided up"
	first, err := Tickers(input)
	require.NoError(t, err)
	second, err := Tickers(input)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCompileInvalidPattern(t *testing.T) {
	_, err := compile(`\$([A-Z]+`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPattern)
}

func symbols(tickers []types.Ticker) []string {
	out := make([]string, 0, len(tickers))
	for _, t := range tickers {
		out = append(out, t.Symbol)
	}
	return out
}
