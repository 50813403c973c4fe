// Package codepoint derives canonical asset keys from Unicode symbols.
//
// Emoji art collections name their files after the hexadecimal scalar
// values of the emoji they depict, joined with hyphens (for example the
// French flag, two regional indicators, becomes "1f1eb-1f1f7.png").
// Resolve performs that derivation: it walks the symbol's scalar values
// in order, drops variation selector-16 (U+FE0F, a rendering hint that
// upstream collections omit from filenames), and joins the remaining
// values as lowercase hex.
//
// Resolution is a pure function of its input. The same symbol always
// yields the same key, and a symbol with or without a trailing U+FE0F
// yields the same key, so callers can build remote URLs and local paths
// from the result without worrying about presentation variants.
package codepoint
