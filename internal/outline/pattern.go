package outline

import "strings"

// patternConfidence is fixed for every catalog match; lexical shape is the
// highest-trust signal the pipeline has.
const patternConfidence = 0.9

// PatternStrategy detects headings by matching fragments against an ordered
// catalog of heading-shaped lexical patterns (numbered sections, chapter
// markers, well-known section names, ALL-CAPS and Title-Case lines).
type PatternStrategy struct {
	cfg DetectionConfig
}

// NewPatternStrategy creates a pattern strategy with the given rule tables
func NewPatternStrategy(cfg DetectionConfig) *PatternStrategy {
	return &PatternStrategy{cfg: cfg}
}

// Name returns the strategy tag
func (s *PatternStrategy) Name() StrategyName {
	return StrategyPattern
}

// Detect matches each fragment against the catalog in priority order. The
// first matching pattern wins; the heading level is re-derived from the raw
// text rather than from the pattern that matched.
func (s *PatternStrategy) Detect(fragments []Fragment) []Candidate {
	var candidates []Candidate

	for _, frag := range fragments {
		text := strings.TrimSpace(frag.Text)

		if len(text) < 2 || len(text) > 200 {
			continue
		}

		for _, pattern := range s.cfg.HeadingPatterns {
			if !pattern.MatchString(text) {
				continue
			}

			candidates = append(candidates, Candidate{
				Level:      determineLevel(text),
				Text:       text,
				Page:       frag.Page,
				Confidence: patternConfidence,
				Strategy:   StrategyPattern,
				Size:       frag.Size,
				Position:   frag.Top(),
			})
			break
		}
	}

	return candidates
}
