package textstats

import (
	"regexp"
	"strings"
)

var sentenceDelimRe = regexp.MustCompile(`[.!?]+`)

// SentencePair is an original sentence and the translated sentence at the
// same position
type SentencePair struct {
	Original   string `json:"original"`
	Translated string `json:"translated"`
}

// SplitSentences splits text on runs of '.', '!' or '?', trims each fragment
// and drops the empty ones.
func SplitSentences(text string) []string {
	parts := sentenceDelimRe.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

// Alignment is the outcome of pairing two sentence lists
type Alignment struct {
	Pairs []SentencePair
	// UnmatchedOriginal and UnmatchedTranslated count the trailing sentences
	// of the longer side that got no partner.
	UnmatchedOriginal   int
	UnmatchedTranslated int
}

// Mismatched reports whether the two sides had different sentence counts.
// Pairs after the first merged or split sentence are then off by one.
func (a Alignment) Mismatched() bool {
	return a.UnmatchedOriginal > 0 || a.UnmatchedTranslated > 0
}

// Align pairs the sentences of original and translated by index
func Align(original, translated string) Alignment {
	orig := SplitSentences(original)
	trans := SplitSentences(translated)

	n := min(len(orig), len(trans))
	pairs := make([]SentencePair, n)
	for i := 0; i < n; i++ {
		pairs[i] = SentencePair{Original: orig[i], Translated: trans[i]}
	}

	return Alignment{
		Pairs:               pairs,
		UnmatchedOriginal:   len(orig) - n,
		UnmatchedTranslated: len(trans) - n,
	}
}

// AlignSentences pairs sentences by position up to the shorter side.
// Excess sentences are dropped.
func AlignSentences(original, translated string) []SentencePair {
	return Align(original, translated).Pairs
}
