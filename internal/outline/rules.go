package outline

import "regexp"

// DetectionConfig holds the immutable rule tables and thresholds the detection
// strategies and filters operate on. The tables are loaded once at construction
// and injected into each component, so tests can run with overridden catalogs.
type DetectionConfig struct {
	// HeadingPatterns is the ordered catalog of heading-shaped patterns.
	// Order matters: the first pattern that matches a fragment wins and no
	// further patterns are tried.
	HeadingPatterns []*regexp.Regexp

	// BodyTextIndicators is the stopword set used by the body-text predicate
	BodyTextIndicators map[string]bool

	// FalsePositives are substrings that disqualify a heading or title
	// candidate (case-insensitive containment, not whole-word)
	FalsePositives []string

	// Font-size thresholds relative to the document mean
	LargeSizeRatio     float64
	VeryLargeSizeRatio float64

	// MinFontConfidence is the exclusive floor for font-strategy candidates
	MinFontConfidence float64

	// IsolationGap is the vertical distance that counts as whitespace
	// separation for the position strategy
	IsolationGap float64

	// MaxScanPages bounds fragment extraction for cost control
	MaxScanPages int
}

// headingPatternSources is the canonical pattern catalog, in priority order.
// All patterns are compiled case-insensitive and anchored at the start.
var headingPatternSources = []string{
	// Numbered sections
	`^\d+\.\s+[A-Za-z]`,       // 1. Introduction
	`^\d+\.\d+\s+[A-Za-z]`,    // 1.1 Overview
	`^\d+\.\d+\.\d+\s+[A-Za-z]`, // 1.1.1 Details
	`^\d+\s+[A-Z][A-Za-z\s]+`, // 1 INTRODUCTION

	// Chapter markers
	`^Chapter\s+\d+`,
	`^CHAPTER\s+\d+`,
	`^Ch\.\s*\d+`,

	// Roman numerals
	`^[IVX]+\.\s+[A-Za-z]`,
	`^[IVX]+\s+[A-Z][A-Za-z\s]+`,

	// Lettered sections
	`^[A-Z]\.\s+[A-Za-z]`,
	`^[A-Z]\)\s+[A-Za-z]`,

	// Academic section names, matched as an entire line
	`^Abstract\s*$`,
	`^Introduction\s*$`,
	`^Conclusion\s*$`,
	`^References\s*$`,
	`^Bibliography\s*$`,
	`^Methodology\s*$`,
	`^Results\s*$`,
	`^Discussion\s*$`,
	`^Summary\s*$`,
	`^Background\s*$`,
	`^Literature Review\s*$`,

	// Business section names
	`^Executive Summary\s*$`,
	`^Overview\s*$`,
	`^Objectives\s*$`,
	`^Goals\s*$`,
	`^Strategy\s*$`,
	`^Implementation\s*$`,

	// Technical section names
	`^Requirements\s*$`,
	`^Specifications\s*$`,
	`^Architecture\s*$`,
	`^Design\s*$`,
	`^Testing\s*$`,
	`^Deployment\s*$`,

	// General shapes
	`^[A-Z][A-Z\s]{4,20}$`,                  // ALL CAPS short titles
	`^[A-Z][a-z]+(\s+[A-Z][a-z]+)*:?\s*$`, // Title Case lines
}

// bodyTextIndicatorWords are common functional and transition words. A high
// ratio of these among a fragment's tokens marks it as prose rather than a
// heading.
var bodyTextIndicatorWords = []string{
	"the", "this", "that", "these", "those", "within", "embedded",
	"useful", "designed", "can", "will", "should", "would", "could",
	"may", "might", "must", "shall", "during", "through", "between",
	"among", "including", "such", "example", "however", "therefore",
	"furthermore", "moreover", "additionally", "consequently",
}

// falsePositiveMarkers are substrings that almost never occur in real headings
// or titles: page furniture, captions, boilerplate, and contact details.
var falsePositiveMarkers = []string{
	"page", "figure", "table", "note", "see", "www", "http", "https",
	"copyright", "rights reserved", "inc", "ltd", "corp", "pdf",
	"document", "file", "email", "@", ".com", ".org", ".edu",
}

// DefaultDetectionConfig returns the canonical detection configuration
func DefaultDetectionConfig() DetectionConfig {
	patterns := make([]*regexp.Regexp, 0, len(headingPatternSources))
	for _, src := range headingPatternSources {
		patterns = append(patterns, regexp.MustCompile(`(?i)`+src))
	}

	indicators := make(map[string]bool, len(bodyTextIndicatorWords))
	for _, w := range bodyTextIndicatorWords {
		indicators[w] = true
	}

	return DetectionConfig{
		HeadingPatterns:    patterns,
		BodyTextIndicators: indicators,
		FalsePositives:     falsePositiveMarkers,
		LargeSizeRatio:     1.1,
		VeryLargeSizeRatio: 1.3,
		MinFontConfidence:  0.4,
		IsolationGap:       10.0,
		MaxScanPages:       50,
	}
}
