package sentiment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jonreiter/govader"
)

// ErrInvalidText is returned for text that cannot be scored
var ErrInvalidText = errors.New("text is not valid UTF-8")

// VaderScorer scores text with the VADER lexicon. Polarity is the compound
// score; subjectivity is the share of non-neutral tokens.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderScorer creates a VADER based scorer
func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score implements Scorer
func (v *VaderScorer) Score(ctx context.Context, text string) (Score, error) {
	if err := ctx.Err(); err != nil {
		return Score{}, err
	}
	if !utf8.ValidString(text) {
		return Score{}, ErrInvalidText
	}

	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return Score{}, nil
	}

	s := v.analyzer.PolarityScores(text)
	return vaderScore(s.Compound, s.Neutral)
}

// vaderScore maps VADER's compound score and neutral share onto a Score
func vaderScore(compound, neutral float64) (Score, error) {
	score := Score{
		Polarity:     clamp(compound, -1, 1),
		Subjectivity: clamp(1-neutral, 0, 1),
	}
	if err := score.Validate(); err != nil {
		return Score{}, fmt.Errorf("invalid VADER score: %w", err)
	}
	return score, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
