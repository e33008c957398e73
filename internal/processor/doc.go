// Package processor contains the analysis pipeline. It translates the input
// text, scores sentiment and subjectivity of the translation, counts
// significant words, aligns original and translated sentences and annotates
// each pair with its own sentiment. This package is the coordinator between
// translation, sentiment and textstats.
package processor
