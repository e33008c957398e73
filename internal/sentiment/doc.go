// Package sentiment scores polarity and subjectivity of English text. The
// default scorer is VADER (via govader); per-sentence scoring returns a typed
// result so callers can tell a neutral score from a failed one.
package sentiment
