package codepoint

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/runenames"
)

// variationSelector16 requests emoji-style rendering of the preceding
// scalar. Asset collections exclude it from filenames.
const variationSelector16 = 0xFE0F

// Key is the canonical filename stem for a symbol: its scalar values in
// input order, minus variation selectors, as hyphen-joined lowercase hex.
type Key string

// String returns the key's textual form.
func (k Key) String() string { return string(k) }

var (
	// ErrEmptySymbol reports a symbol with no scalar values at all.
	ErrEmptySymbol = errors.New("empty symbol")
	// ErrOnlySelectors reports a symbol that reduces to nothing once
	// variation selectors are removed.
	ErrOnlySelectors = errors.New("symbol contains only variation selectors")
)

// Resolve maps a symbol to its canonical key. The symbol must be valid
// UTF-8 and must contain at least one scalar other than U+FE0F.
func Resolve(symbol string) (Key, error) {
	if symbol == "" {
		return "", ErrEmptySymbol
	}
	if !utf8.ValidString(symbol) {
		return "", fmt.Errorf("symbol %q is not valid UTF-8", symbol)
	}
	parts := make([]string, 0, utf8.RuneCountInString(symbol))
	for _, r := range symbol {
		if r == variationSelector16 {
			continue
		}
		parts = append(parts, strconv.FormatUint(uint64(r), 16))
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("resolve %q: %w", symbol, ErrOnlySelectors)
	}
	return Key(strings.Join(parts, "-")), nil
}

// DisplayName returns the Unicode character name of the symbol's first
// non-selector scalar, for operator-facing output. Unknown or empty
// symbols yield an empty string.
func DisplayName(symbol string) string {
	for _, r := range symbol {
		if r == variationSelector16 {
			continue
		}
		return runenames.Name(r)
	}
	return ""
}
