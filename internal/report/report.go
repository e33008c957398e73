// Package report renders analysis results as a plain text report or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"codeberg.org/snonux/textlens/internal/processor"
	"codeberg.org/snonux/textlens/internal/sentiment"
	"codeberg.org/snonux/textlens/internal/textstats"
)

const (
	gaugeWidth = 20
	barWidth   = 30
)

// Options controls the text report
type Options struct {
	// MaxSentences caps the number of listed sentence pairs
	MaxSentences int
	// ShowTexts prints the full original and translated texts
	ShowTexts bool
}

// DefaultOptions returns default report options
func DefaultOptions() Options {
	return Options{MaxSentences: 10, ShowTexts: true}
}

// WriteJSON writes the result as indented JSON
func WriteJSON(w io.Writer, result *processor.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}

// WriteText writes a human readable report
func WriteText(w io.Writer, result *processor.Result, opts Options) error {
	var b strings.Builder

	if result.TranslationError != "" {
		fmt.Fprintf(&b, "Error: translation failed: %s\n", result.TranslationError)
		fmt.Fprintf(&b, "       the original text was analyzed instead\n\n")
	}

	b.WriteString("=== Sentiment and Subjectivity ===\n")
	fmt.Fprintf(&b, "Sentiment:    %s %s (%.2f)\n",
		gauge(result.NormalizedSentiment()), sentimentText(result.SentimentLabel()), result.Sentiment)
	fmt.Fprintf(&b, "Subjectivity: %s %s subjectivity (%.2f)\n",
		gauge(result.Subjectivity), result.SubjectivityLabel(), result.Subjectivity)

	b.WriteString("\n=== Most frequent words ===\n")
	writeWords(&b, result.TopWords)

	if opts.ShowTexts {
		b.WriteString("\n=== Translated text ===\n")
		b.WriteString("Original:\n")
		b.WriteString(indent(result.OriginalText))
		b.WriteString("Translated:\n")
		b.WriteString(indent(result.TranslatedText))
	}

	b.WriteString("\n=== Detected sentences ===\n")
	writeSentences(&b, result.Sentences, opts.MaxSentences)

	if m := result.SentenceMismatch; m != nil {
		fmt.Fprintf(&b, "\nNote: sentence counts differ (%d original, %d translated left unmatched); pairs may be shifted.\n",
			m.UnmatchedOriginal, m.UnmatchedTranslated)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func sentimentText(label sentiment.Label) string {
	switch label {
	case sentiment.Positive:
		return "Positive"
	case sentiment.Negative:
		return "Negative"
	default:
		return "Neutral"
	}
}

// gauge draws a [0,1] value as a fixed width bar
func gauge(v float64) string {
	v = max(0, min(1, v))
	filled := int(v*gaugeWidth + 0.5)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", gaugeWidth-filled) + "]"
}

func writeWords(b *strings.Builder, words textstats.Frequency) {
	if len(words) == 0 {
		b.WriteString("No words counted.\n")
		return
	}

	width := 0
	for _, wc := range words {
		width = max(width, len([]rune(wc.Word)))
	}
	top := words[0].Count

	for _, wc := range words {
		bar := wc.Count * barWidth / top
		pad := strings.Repeat(" ", width-len([]rune(wc.Word)))
		fmt.Fprintf(b, "  %s%s %s %d\n", wc.Word, pad, strings.Repeat("█", max(bar, 1)), wc.Count)
	}
}

func writeSentences(b *strings.Builder, sentences []processor.SentenceResult, limit int) {
	if len(sentences) == 0 {
		b.WriteString("No sentences detected.\n")
		return
	}

	if limit > 0 && len(sentences) > limit {
		sentences = sentences[:limit]
	}

	for i, s := range sentences {
		if s.Sentiment.HasLabel() {
			fmt.Fprintf(b, "%d. %s Original: \"%s\"\n", i+1, s.Sentiment.Label.Emoji(), s.Original)
			fmt.Fprintf(b, "   Translation: \"%s\" (Sentiment: %.2f)\n", s.Translated, s.Sentiment.Polarity)
		} else {
			fmt.Fprintf(b, "%d. Original: %s\n", i+1, s.Original)
			fmt.Fprintf(b, "   Translation: %s\n", s.Translated)
		}
		b.WriteString("---\n")
	}
}

func indent(text string) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
