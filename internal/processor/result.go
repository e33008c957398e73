package processor

import (
	"codeberg.org/snonux/textlens/internal/sentiment"
	"codeberg.org/snonux/textlens/internal/textstats"
)

// SentenceResult is an aligned sentence pair with its sentiment annotation
type SentenceResult struct {
	textstats.SentencePair
	Sentiment sentiment.SentenceSentiment `json:"sentiment"`
}

// SentenceMismatch records how many sentences got no partner during alignment
type SentenceMismatch struct {
	UnmatchedOriginal   int `json:"unmatched_original"`
	UnmatchedTranslated int `json:"unmatched_translated"`
}

// Result is the outcome of one analysis. It is built once and not modified
// afterwards.
type Result struct {
	RequestID string `json:"request_id"`

	Sentiment    float64 `json:"sentiment"`
	Subjectivity float64 `json:"subjectivity"`

	WordFrequency textstats.Frequency `json:"word_frequency"`
	TopWords      textstats.Frequency `json:"top_words"`
	Words         []string            `json:"words"`

	Sentences        []SentenceResult  `json:"sentences"`
	SentenceMismatch *SentenceMismatch `json:"sentence_mismatch,omitempty"`

	OriginalText   string `json:"original_text"`
	TranslatedText string `json:"translated_text"`
	// TranslationError is set when translation failed and TranslatedText is
	// a copy of OriginalText.
	TranslationError string `json:"translation_error,omitempty"`
}

// SentimentLabel labels the overall polarity
func (r *Result) SentimentLabel() sentiment.Label {
	return sentiment.LabelFor(r.Sentiment)
}

// NormalizedSentiment maps the polarity from [-1, 1] onto [0, 1]
func (r *Result) NormalizedSentiment() float64 {
	return (r.Sentiment + 1) / 2
}

// SubjectivityLabel labels the subjectivity as high or low
func (r *Result) SubjectivityLabel() string {
	return sentiment.SubjectivityLabel(r.Subjectivity)
}

// Translated reports whether the translation succeeded
func (r *Result) Translated() bool {
	return r.TranslationError == ""
}
