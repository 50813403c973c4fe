// Package config loads, normalizes, and validates glyphfetch configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// GLYPHFETCH_ASSET_DIR. The Config type centralizes the symbol list, the
// remote collection coordinates (base URL, release tag, sprite size), and
// the local asset directory so the fetch pipeline sees one sanitized view.
//
// Always obtain settings through this package so downstream code receives
// expanded paths, a trimmed base URL, and clear validation errors.
package config
