package format

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shanehull/movers/internal/types"
)

// DefaultVariantList is DefaultVariants in the form accepted by ParseVariants.
const DefaultVariantList = "30:$,4:$,10:#"

var ErrInvalidVariant = errors.New("invalid variant")

// ParseVariants parses comma-separated count:prefix pairs such as
// "30:$,4:$,10:#". The prefix must be exactly one character.
func ParseVariants(s string) ([]types.Variant, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("%w: no variants given", ErrInvalidVariant)
	}

	var variants []types.Variant
	for _, part := range strings.Split(s, ",") {
		v, err := parseVariant(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}
	return variants, nil
}

func parseVariant(s string) (types.Variant, error) {
	countStr, prefix, ok := strings.Cut(s, ":")
	if !ok {
		return types.Variant{}, fmt.Errorf("%w %q: expected count:prefix", ErrInvalidVariant, s)
	}

	count, err := strconv.Atoi(countStr)
	if err != nil {
		return types.Variant{}, fmt.Errorf("%w %q: bad count: %v", ErrInvalidVariant, s, err)
	}
	if count < 0 {
		return types.Variant{}, fmt.Errorf("%w %q: count must not be negative", ErrInvalidVariant, s)
	}

	if utf8.RuneCountInString(prefix) != 1 {
		return types.Variant{}, fmt.Errorf("%w %q: prefix must be a single character", ErrInvalidVariant, s)
	}
	r, _ := utf8.DecodeRuneInString(prefix)

	return types.Variant{Count: count, Prefix: r}, nil
}
