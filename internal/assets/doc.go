// Package assets keeps a local directory of emoji PNGs in sync with a
// pinned release of a remote art collection.
//
// The Fetcher handles one key at a time: if <asset_dir>/<key>.png exists
// the item is skipped without any network traffic, otherwise the asset is
// downloaded and written atomically (temp file + rename), so an
// interrupted run never leaves a partial PNG under the final name. The
// filesystem itself is the durable record; there is no manifest.
//
// The Runner drives the configured symbol list sequentially, resolving
// each symbol to its key and fetching it, and halts on the first failure.
// Completed files persist across failed runs, so re-running after an
// error only transfers what is still missing. A file lock on the asset
// directory keeps concurrent runs from racing on the same files.
package assets
