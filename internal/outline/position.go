package outline

import (
	"math"
	"sort"
	"strings"
)

// positionConfidence is the lowest trust tier: vertical isolation alone is
// weak evidence of a heading.
const positionConfidence = 0.3

// maxIsolatedLength caps the text length of spatially detected headings
const maxIsolatedLength = 80

// PositionStrategy detects headings spatially: short text with clear vertical
// whitespace above and below it on the page reads as a standalone line, which
// headings usually are.
type PositionStrategy struct {
	cfg DetectionConfig
}

// NewPositionStrategy creates a position strategy with the given gap threshold
func NewPositionStrategy(cfg DetectionConfig) *PositionStrategy {
	return &PositionStrategy{cfg: cfg}
}

// Name returns the strategy tag
func (s *PositionStrategy) Name() StrategyName {
	return StrategyPosition
}

// Detect partitions fragments by page, orders each page top to bottom, and
// emits an H3 candidate for every fragment isolated from both neighbors.
// The first and last fragments on a page trivially satisfy their open side.
func (s *PositionStrategy) Detect(fragments []Fragment) []Candidate {
	pages := make(map[int][]Fragment)
	var pageNums []int
	for _, frag := range fragments {
		if _, seen := pages[frag.Page]; !seen {
			pageNums = append(pageNums, frag.Page)
		}
		pages[frag.Page] = append(pages[frag.Page], frag)
	}
	sort.Ints(pageNums)

	var candidates []Candidate

	for _, pageNum := range pageNums {
		pageFrags := pages[pageNum]
		sort.SliceStable(pageFrags, func(i, j int) bool {
			return pageFrags[i].Top() < pageFrags[j].Top()
		})

		for i, frag := range pageFrags {
			text := strings.TrimSpace(frag.Text)

			if len(text) < 3 || len(text) > 100 {
				continue
			}

			if s.cfg.isLikelyBodyText(text) {
				continue
			}

			spaceAbove := i == 0 || s.hasVerticalGap(pageFrags[i-1], frag)
			spaceBelow := i == len(pageFrags)-1 || s.hasVerticalGap(frag, pageFrags[i+1])

			if spaceAbove && spaceBelow && len(text) < maxIsolatedLength {
				candidates = append(candidates, Candidate{
					Level:      LevelH3,
					Text:       text,
					Page:       frag.Page,
					Confidence: positionConfidence,
					Strategy:   StrategyPosition,
					Size:       frag.Size,
					Position:   frag.Top(),
				})
			}
		}
	}

	return candidates
}

// hasVerticalGap reports whether two fragments are separated by more than the
// configured gap. Fragments with no geometry never count as separated.
func (s *PositionStrategy) hasVerticalGap(a, b Fragment) bool {
	if a.BBox.IsZero() || b.BBox.IsZero() {
		return false
	}

	gap := math.Abs(a.BBox.Top - b.BBox.Bottom)
	return gap > s.cfg.IsolationGap
}
