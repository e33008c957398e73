package processor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"codeberg.org/snonux/textlens/internal"
	"codeberg.org/snonux/textlens/internal/metrics"
	"codeberg.org/snonux/textlens/internal/sentiment"
	"codeberg.org/snonux/textlens/internal/textstats"
	"codeberg.org/snonux/textlens/internal/translation"
)

// ErrEmptyInput is returned for input that is empty or whitespace only
var ErrEmptyInput = errors.New("input text is empty")

// Options tune an analysis
type Options struct {
	Source string
	Target string
	// TopWords is the number of most frequent words reported separately
	TopWords int
	// MaxSentences is the number of sentence pairs that get a sentiment
	// annotation. Later pairs are left unscored.
	MaxSentences int
}

// DefaultOptions returns the Spanish to English defaults
func DefaultOptions() Options {
	return Options{
		Source:       translation.DefaultSource,
		Target:       translation.DefaultTarget,
		TopWords:     10,
		MaxSentences: 10,
	}
}

// Processor runs analyses. It holds no per-request state and can be shared.
type Processor struct {
	translator translation.Translator
	scorer     sentiment.Scorer
	counter    *textstats.Counter
	opts       Options
	metrics    *metrics.Metrics
}

// NewProcessor creates a new processor. A nil counter uses the default stop
// words; m may be nil.
func NewProcessor(translator translation.Translator, scorer sentiment.Scorer, counter *textstats.Counter, opts Options, m *metrics.Metrics) *Processor {
	if counter == nil {
		counter = textstats.NewCounter(nil)
	}
	if m == nil {
		m = metrics.New(nil)
	}
	return &Processor{
		translator: translator,
		scorer:     scorer,
		counter:    counter,
		opts:       opts,
		metrics:    m,
	}
}

// Options returns the processor options
func (p *Processor) Options() Options {
	return p.opts
}

// Analyze runs the full pipeline over text. A failed translation does not
// fail the analysis: the original text is analyzed instead and the error is
// recorded in the result.
func (p *Processor) Analyze(ctx context.Context, text string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		p.metrics.AnalysesTotal.WithLabelValues("rejected").Inc()
		return nil, ErrEmptyInput
	}

	start := time.Now()
	defer func() {
		p.metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
	}()

	result := &Result{
		RequestID:    internal.NewRequestID(),
		OriginalText: text,
	}
	log := slog.With("request_id", result.RequestID)

	translated, err := p.translator.Translate(ctx, text, p.opts.Source, p.opts.Target)
	if err != nil {
		log.Warn("Translation failed, analyzing original text", "error", err)
		p.metrics.TranslationFailures.Inc()
		result.TranslationError = err.Error()
		translated = text
	}
	result.TranslatedText = translated

	score, err := p.scorer.Score(ctx, translated)
	if err != nil {
		p.metrics.AnalysesTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("sentiment scoring failed: %w", err)
	}
	result.Sentiment = score.Polarity
	result.Subjectivity = score.Subjectivity

	result.WordFrequency, result.Words = p.counter.CountWords(translated)
	result.TopWords = result.WordFrequency.Top(p.opts.TopWords)

	alignment := textstats.Align(text, translated)
	if alignment.Mismatched() {
		log.Warn("Sentence counts differ after translation, alignment may drift",
			"unmatched_original", alignment.UnmatchedOriginal,
			"unmatched_translated", alignment.UnmatchedTranslated,
		)
		result.SentenceMismatch = &SentenceMismatch{
			UnmatchedOriginal:   alignment.UnmatchedOriginal,
			UnmatchedTranslated: alignment.UnmatchedTranslated,
		}
	}
	result.Sentences = p.annotate(ctx, alignment.Pairs)

	p.metrics.AnalysesTotal.WithLabelValues("ok").Inc()
	log.Debug("Analysis finished",
		"words", len(result.Words),
		"sentences", len(result.Sentences),
		"elapsed", time.Since(start),
	)
	return result, nil
}

// annotate scores the first MaxSentences pairs
func (p *Processor) annotate(ctx context.Context, pairs []textstats.SentencePair) []SentenceResult {
	sentences := make([]SentenceResult, len(pairs))
	for i, pair := range pairs {
		sentences[i] = SentenceResult{
			SentencePair: pair,
			Sentiment:    sentiment.SentenceSentiment{Status: sentiment.NotAttempted},
		}
		if i >= p.opts.MaxSentences {
			continue
		}

		s := sentiment.ScoreSentence(ctx, p.scorer, pair.Translated)
		if s.Status == sentiment.Fallback {
			slog.Debug("Sentence scoring failed", "index", i, "error", s.Error)
			p.metrics.SentenceFallbacks.Inc()
		}
		sentences[i].Sentiment = s
	}
	return sentences
}
