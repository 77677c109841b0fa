package outline

import (
	"regexp"
	"strings"
)

// bodyTextStopRatio is the stopword fraction above which text counts as prose
const bodyTextStopRatio = 0.4

// Numeric section depth checks for level assignment. Each requires whitespace
// right after the numbering, so a deeper dotted prefix fails the shallower
// checks and the most specific depth wins.
var (
	numericH1 = regexp.MustCompile(`^\d+\.\s+`)
	numericH2 = regexp.MustCompile(`^\d+\.\d+\s+`)
	numericH3 = regexp.MustCompile(`^\d+\.\d+\.\d+\s+`)
)

var majorSectionWords = []string{"abstract", "introduction", "conclusion", "references", "bibliography"}

// isLikelyBodyText reports whether text reads as prose rather than a heading.
// The signals are a high stopword ratio, excessive length, and sentence-like
// punctuation density.
func (c *DetectionConfig) isLikelyBodyText(text string) bool {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return true
	}

	stopCount := 0
	for _, w := range words {
		if c.BodyTextIndicators[w] {
			stopCount++
		}
	}
	if float64(stopCount)/float64(len(words)) > bodyTextStopRatio {
		return true
	}

	if len(text) > 150 {
		return true
	}

	// More than one period or more than two commas reads like a full sentence
	if strings.Count(text, ".") > 1 || strings.Count(text, ",") > 2 {
		return true
	}

	return false
}

// containsFalsePositive reports whether text contains any disqualifying marker
func (c *DetectionConfig) containsFalsePositive(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range c.FalsePositives {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// determineLevel assigns a heading level from the raw text, independent of
// which catalog pattern matched. Numeric depth checks run shallowest first and
// each deeper match overrides the previous one.
func determineLevel(text string) HeadingLevel {
	var level HeadingLevel
	if numericH1.MatchString(text) {
		level = LevelH1
	}
	if numericH2.MatchString(text) {
		level = LevelH2
	}
	if numericH3.MatchString(text) {
		level = LevelH3
	}
	if level != "" {
		return level
	}

	lower := strings.ToLower(text)

	if strings.Contains(lower, "chapter") || strings.Contains(lower, "ch.") {
		return LevelH1
	}

	for _, word := range majorSectionWords {
		if strings.Contains(lower, word) {
			return LevelH1
		}
	}

	return LevelH2
}
