package outline

import "strings"

const (
	minTitleLength = 5
	maxTitleLength = 100
)

// titleFromRuns infers a document title from the decoder's raw text runs for
// page 1. All runs tied for the largest font size within plausible title
// length become candidates; boilerplate markers are filtered out and the
// shortest survivor wins, on the intuition that verbose boilerplate tends to
// run longer than a real title. Falls back to the shortest unfiltered
// candidate, then to the sentinel.
func (c *DetectionConfig) titleFromRuns(texts []titleRun) string {
	var largestSize float64
	var candidates []string

	for _, run := range texts {
		text := strings.TrimSpace(run.Text)
		if text == "" || len(text) < minTitleLength || len(text) > maxTitleLength {
			continue
		}

		switch {
		case run.Size > largestSize:
			largestSize = run.Size
			candidates = []string{text}
		case run.Size == largestSize:
			candidates = append(candidates, text)
		}
	}

	if len(candidates) == 0 {
		return TitleSentinel
	}

	var clean []string
	for _, cand := range candidates {
		if !c.containsFalsePositive(cand) {
			clean = append(clean, cand)
		}
	}

	if len(clean) > 0 {
		return shortest(clean)
	}
	return shortest(candidates)
}

// titleRun is the minimal slice of a decoder text run the title scan needs
type titleRun struct {
	Text string
	Size float64
}

// titleFromFragments infers a title from already extracted fragments,
// restricted to page 1. Same largest-font logic as titleFromRuns, but body
// text is additionally excluded and there is no unfiltered fallback.
func (c *DetectionConfig) titleFromFragments(fragments []Fragment) string {
	var firstPage []Fragment
	for _, frag := range fragments {
		if frag.Page == 1 {
			firstPage = append(firstPage, frag)
		}
	}

	if len(firstPage) == 0 {
		return TitleSentinel
	}

	maxSize := firstPage[0].Size
	for _, frag := range firstPage[1:] {
		if frag.Size > maxSize {
			maxSize = frag.Size
		}
	}

	var candidates []string
	for _, frag := range firstPage {
		if frag.Size != maxSize {
			continue
		}
		if len(frag.Text) < minTitleLength || len(frag.Text) > maxTitleLength {
			continue
		}
		if c.isLikelyBodyText(frag.Text) {
			continue
		}
		if c.containsFalsePositive(frag.Text) {
			continue
		}
		candidates = append(candidates, frag.Text)
	}

	if len(candidates) == 0 {
		return TitleSentinel
	}
	return shortest(candidates)
}

// shortest returns the shortest string in a non-empty slice; the earliest one
// wins on ties
func shortest(items []string) string {
	best := items[0]
	for _, item := range items[1:] {
		if len(item) < len(best) {
			best = item
		}
	}
	return best
}
