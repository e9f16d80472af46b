package core

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SentimentAnalyzer scores the emotional tone of a message from keyword lists
// and an uppercase-shouting heuristic.
type SentimentAnalyzer struct {
	lexicon Lexicon
}

func NewSentimentAnalyzer(lexicon Lexicon) *SentimentAnalyzer {
	return &SentimentAnalyzer{lexicon: lexicon}
}

// Analyze runs a fixed priority chain: angry > frustrated > satisfied >
// neutral. A message more than half uppercase counts as angry regardless of
// its words.
func (a *SentimentAnalyzer) Analyze(message string) Sentiment {
	text := strings.ToLower(message)

	if containsAny(text, a.lexicon.Angry) || capsRatio(message) > 0.5 {
		return SentimentAngry
	}
	if containsAny(text, a.lexicon.Frustrated) {
		return SentimentFrustrated
	}
	if containsAny(text, a.lexicon.Positive) {
		return SentimentSatisfied
	}

	return SentimentNeutral
}

// capsRatio is the share of uppercase characters over the raw, un-lowercased
// message. The denominator is clamped to 1 so the empty string scores 0.
func capsRatio(message string) float64 {
	upper := 0
	for _, r := range message {
		if unicode.IsUpper(r) {
			upper++
		}
	}
	total := utf8.RuneCountInString(message)
	if total < 1 {
		total = 1
	}
	return float64(upper) / float64(total)
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
