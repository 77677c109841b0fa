package outline

import "strings"

// FontStrategy detects headings typographically: fragments set noticeably
// larger than the document's mean font size, or bold, are heading candidates.
// Confidence and level follow a fixed precedence over (very large, large,
// bold).
type FontStrategy struct {
	cfg DetectionConfig
}

// NewFontStrategy creates a font strategy with the given thresholds
func NewFontStrategy(cfg DetectionConfig) *FontStrategy {
	return &FontStrategy{cfg: cfg}
}

// Name returns the strategy tag
func (s *FontStrategy) Name() StrategyName {
	return StrategyFont
}

// Detect classifies fragments against size thresholds derived from the mean
// positive font size. Only candidates strictly above the configured confidence
// floor are emitted; the bold-short-text rule lands exactly on the floor and
// is therefore never retained.
func (s *FontStrategy) Detect(fragments []Fragment) []Candidate {
	if len(fragments) == 0 {
		return nil
	}

	avgSize := meanFontSize(fragments)
	if avgSize == 0 {
		return nil
	}

	thresholdLow := avgSize * s.cfg.LargeSizeRatio
	thresholdHigh := avgSize * s.cfg.VeryLargeSizeRatio

	var candidates []Candidate

	for _, frag := range fragments {
		text := strings.TrimSpace(frag.Text)

		if len(text) < 3 || len(text) > 150 {
			continue
		}

		if s.cfg.isLikelyBodyText(text) {
			continue
		}

		isLarge := frag.Size > thresholdLow
		isVeryLarge := frag.Size > thresholdHigh
		isBold := frag.IsBold()

		confidence := 0.0
		level := LevelH3

		switch {
		case isVeryLarge && isBold:
			confidence = 0.8
			level = LevelH1
		case isVeryLarge:
			confidence = 0.7
			level = LevelH2
		case isLarge && isBold:
			confidence = 0.6
			level = LevelH2
		case isLarge:
			confidence = 0.5
			level = LevelH3
		case isBold && len(text) < 50:
			confidence = 0.4
			level = LevelH3
		}

		if confidence <= s.cfg.MinFontConfidence {
			continue
		}

		candidates = append(candidates, Candidate{
			Level:      level,
			Text:       text,
			Page:       frag.Page,
			Confidence: confidence,
			Strategy:   StrategyFont,
			Size:       frag.Size,
			Position:   frag.Top(),
		})
	}

	return candidates
}

// meanFontSize returns the arithmetic mean of all positive font sizes, or 0
// when no fragment carries one
func meanFontSize(fragments []Fragment) float64 {
	var total float64
	var count int

	for _, frag := range fragments {
		if frag.Size > 0 {
			total += frag.Size
			count++
		}
	}

	if count == 0 {
		return 0
	}
	return total / float64(count)
}
