// Package preflight provides readiness checks for the asset directory
// and the remote collection host.
//
// The CLI "glyphfetch status" command uses these to display environment
// health before an operator commits to a fetch run. Each check returns a
// Result row rather than an error so all findings render together.
package preflight
