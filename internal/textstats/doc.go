// Package textstats holds the local text statistics used by an analysis:
// significant-word frequency counting and positional alignment of original
// and translated sentences. Everything here is pure and safe for concurrent use.
package textstats
