package textstats

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// minWordRunes is the shortest token length that is still counted.
const minWordRunes = 3

var wordRe = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// DefaultStopWords is the built-in stop-word list, mixing Spanish and English
// articles and conjunctions.
var DefaultStopWords = []string{"a", "de", "la", "the", "and", "to", "in", "of", "que", "y"}

// StopWords is a set of lowercase words excluded from counting
type StopWords map[string]struct{}

// NewStopWords builds a stop-word set. Words are lowercased and trimmed;
// blanks are ignored.
func NewStopWords(words ...string) StopWords {
	set := make(StopWords, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}

// Contains reports whether word is a stop word
func (s StopWords) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Words returns the set as a sorted slice
func (s StopWords) Words() []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// WordCount is a single entry of a Frequency
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Frequency is a word count list ordered by descending count. Words with
// equal counts keep the order in which they were first seen.
type Frequency []WordCount

// Top returns at most n leading entries
func (f Frequency) Top(n int) Frequency {
	if n < 0 || n >= len(f) {
		return f
	}
	return f[:n]
}

// Total returns the sum of all counts
func (f Frequency) Total() int {
	total := 0
	for _, wc := range f {
		total += wc.Count
	}
	return total
}

// Count returns the count for word, or zero when it was not counted
func (f Frequency) Count(word string) int {
	for _, wc := range f {
		if wc.Word == word {
			return wc.Count
		}
	}
	return 0
}

// Counter counts significant words
type Counter struct {
	stopWords StopWords
}

// NewCounter creates a counter excluding the given stop words. A nil set
// falls back to DefaultStopWords.
func NewCounter(stopWords StopWords) *Counter {
	if stopWords == nil {
		stopWords = NewStopWords(DefaultStopWords...)
	}
	return &Counter{stopWords: stopWords}
}

// StopWords returns the counter's stop-word set
func (c *Counter) StopWords() StopWords {
	return c.stopWords
}

// CountWords lowercases text, extracts word tokens and counts the ones that
// are longer than two runes and not stop words. It returns the frequency list
// and the filtered tokens in input order.
func (c *Counter) CountWords(text string) (Frequency, []string) {
	tokens := wordRe.FindAllString(strings.ToLower(text), -1)

	filtered := make([]string, 0, len(tokens))
	index := make(map[string]int)
	freq := Frequency{}

	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) < minWordRunes || c.stopWords.Contains(tok) {
			continue
		}
		filtered = append(filtered, tok)

		if i, ok := index[tok]; ok {
			freq[i].Count++
			continue
		}
		index[tok] = len(freq)
		freq = append(freq, WordCount{Word: tok, Count: 1})
	}

	sort.SliceStable(freq, func(i, j int) bool {
		return freq[i].Count > freq[j].Count
	})

	return freq, filtered
}

// CountWords counts with the default stop words
func CountWords(text string) (Frequency, []string) {
	return NewCounter(nil).CountWords(text)
}
