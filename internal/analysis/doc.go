// Package analysis implements the pure scoring core: text normalization,
// pattern insights, text statistics, emotion classification, ensemble
// combination, and rule-based rewrites.
//
// Everything here is a deterministic, total function over its input.
// External model calls live elsewhere; this package only combines their output.
package analysis
