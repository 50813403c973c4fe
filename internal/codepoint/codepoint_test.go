package codepoint

import (
	"errors"
	"testing"
)

func TestResolveSingleScalar(t *testing.T) {
	key, err := Resolve("⚡")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if key != "26a1" {
		t.Fatalf("unexpected key: %q", key)
	}
}

func TestResolveStripsVariationSelector(t *testing.T) {
	plain, err := Resolve("⚠")
	if err != nil {
		t.Fatalf("Resolve plain failed: %v", err)
	}
	withSelector, err := Resolve("⚠️")
	if err != nil {
		t.Fatalf("Resolve with selector failed: %v", err)
	}
	if plain != withSelector {
		t.Fatalf("selector changed key: %q vs %q", plain, withSelector)
	}
	if plain != "26a0" {
		t.Fatalf("unexpected key: %q", plain)
	}
}

func TestResolveMultiScalarPreservesOrder(t *testing.T) {
	// French flag: two regional indicator symbols.
	key, err := Resolve("\U0001f1eb\U0001f1f7")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if key != "1f1eb-1f1f7" {
		t.Fatalf("unexpected key: %q", key)
	}

	// Keycap sequence: the embedded U+FE0F is dropped, the combining
	// enclosing keycap survives in position.
	key, err = Resolve("#️⃣")
	if err != nil {
		t.Fatalf("Resolve keycap failed: %v", err)
	}
	if key != "23-20e3" {
		t.Fatalf("unexpected keycap key: %q", key)
	}
}

func TestResolveDeterministic(t *testing.T) {
	symbols := []string{"\U0001f92f", "\U0001f4b0", "⚠️", "\U0001f1eb\U0001f1f7"}
	for _, symbol := range symbols {
		first, err := Resolve(symbol)
		if err != nil {
			t.Fatalf("Resolve %q failed: %v", symbol, err)
		}
		second, err := Resolve(symbol)
		if err != nil {
			t.Fatalf("Resolve %q failed on repeat: %v", symbol, err)
		}
		if first != second {
			t.Fatalf("non-deterministic key for %q: %q vs %q", symbol, first, second)
		}
	}
}

func TestResolveScenarioKeys(t *testing.T) {
	cases := []struct {
		symbol string
		want   Key
	}{
		{"\U0001f92f", "1f92f"},
		{"\U0001f4b0", "1f4b0"},
		{"⚠️", "26a0"},
	}
	for _, tc := range cases {
		key, err := Resolve(tc.symbol)
		if err != nil {
			t.Fatalf("Resolve %q failed: %v", tc.symbol, err)
		}
		if key != tc.want {
			t.Fatalf("Resolve %q = %q, want %q", tc.symbol, key, tc.want)
		}
	}
}

func TestResolveRejectsEmptySymbol(t *testing.T) {
	if _, err := Resolve(""); !errors.Is(err, ErrEmptySymbol) {
		t.Fatalf("expected ErrEmptySymbol, got %v", err)
	}
}

func TestResolveRejectsSelectorOnlySymbol(t *testing.T) {
	if _, err := Resolve("️"); !errors.Is(err, ErrOnlySelectors) {
		t.Fatalf("expected ErrOnlySelectors, got %v", err)
	}
	if _, err := Resolve("️️"); !errors.Is(err, ErrOnlySelectors) {
		t.Fatalf("expected ErrOnlySelectors for repeated selector, got %v", err)
	}
}

func TestResolveRejectsInvalidUTF8(t *testing.T) {
	if _, err := Resolve(string([]byte{0xff, 0xfe})); err == nil {
		t.Fatal("expected error for invalid UTF-8")
	}
}

func TestDisplayName(t *testing.T) {
	if name := DisplayName("⚠️"); name != "WARNING SIGN" {
		t.Fatalf("unexpected name: %q", name)
	}
	if name := DisplayName("️"); name != "" {
		t.Fatalf("expected empty name for selector-only symbol, got %q", name)
	}
}
