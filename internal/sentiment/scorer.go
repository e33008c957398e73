package sentiment

import (
	"context"
	"fmt"
	"math"
)

// Polarity thresholds for labelling a score
const (
	PositiveThreshold = 0.05
	NegativeThreshold = -0.05

	// HighSubjectivityThreshold separates opinion-heavy text from factual text
	HighSubjectivityThreshold = 0.5
)

// Score is a sentiment measurement of a text
type Score struct {
	Polarity     float64 `json:"polarity"`     // -1 (negative) .. 1 (positive)
	Subjectivity float64 `json:"subjectivity"` // 0 (objective) .. 1 (subjective)
}

// Scorer measures sentiment of a text
type Scorer interface {
	Score(ctx context.Context, text string) (Score, error)
}

// Label names a polarity
type Label string

const (
	Positive Label = "positive"
	Negative Label = "negative"
	Neutral  Label = "neutral"
)

// LabelFor maps a polarity onto a label
func LabelFor(polarity float64) Label {
	switch {
	case polarity > PositiveThreshold:
		return Positive
	case polarity < NegativeThreshold:
		return Negative
	default:
		return Neutral
	}
}

// Emoji returns the face shown next to a labelled sentence
func (l Label) Emoji() string {
	switch l {
	case Positive:
		return "😊"
	case Negative:
		return "😟"
	default:
		return "😐"
	}
}

// SubjectivityLabel returns "high" or "low"
func SubjectivityLabel(subjectivity float64) string {
	if subjectivity > HighSubjectivityThreshold {
		return "high"
	}
	return "low"
}

// Status tells whether a sentence was scored
type Status string

const (
	NotAttempted Status = "not_attempted"
	Scored       Status = "scored"
	// Fallback means scoring was attempted and failed; no label applies.
	Fallback Status = "fallback"
)

// SentenceSentiment is the result of scoring a single sentence
type SentenceSentiment struct {
	Status   Status  `json:"status"`
	Polarity float64 `json:"polarity"`
	Label    Label   `json:"label,omitempty"`
	Error    string  `json:"error,omitempty"`
}

// HasLabel reports whether the sentence carries a sentiment label
func (s SentenceSentiment) HasLabel() bool {
	return s.Status == Scored
}

// ScoreSentence scores text with scorer. Failures are folded into a Fallback
// result instead of being returned.
func ScoreSentence(ctx context.Context, scorer Scorer, text string) SentenceSentiment {
	score, err := scorer.Score(ctx, text)
	if err != nil {
		return SentenceSentiment{Status: Fallback, Error: err.Error()}
	}
	return SentenceSentiment{
		Status:   Scored,
		Polarity: score.Polarity,
		Label:    LabelFor(score.Polarity),
	}
}

// Validate checks that a score is within bounds
func (s Score) Validate() error {
	if math.IsNaN(s.Polarity) || math.IsNaN(s.Subjectivity) {
		return fmt.Errorf("score is not a number")
	}
	if s.Polarity < -1 || s.Polarity > 1 {
		return fmt.Errorf("polarity %f out of range [-1, 1]", s.Polarity)
	}
	if s.Subjectivity < 0 || s.Subjectivity > 1 {
		return fmt.Errorf("subjectivity %f out of range [0, 1]", s.Subjectivity)
	}
	return nil
}
