package outline

import (
	"sort"
	"strings"
)

// dedupeKey identifies duplicate candidates across strategies
type dedupeKey struct {
	text string
	page int
}

// fuseCandidates merges the per-strategy candidate streams into one
// deduplicated list. On a (normalized text, page) collision the candidate with
// the higher confidence wins in place; equal confidence keeps the first seen.
// Input order is therefore significant and follows strategy execution order.
func fuseCandidates(streams ...[]Candidate) []Candidate {
	var merged []Candidate
	index := make(map[dedupeKey]int)

	for _, stream := range streams {
		for _, cand := range stream {
			key := dedupeKey{
				text: strings.ToLower(strings.TrimSpace(cand.Text)),
				page: cand.Page,
			}

			if i, seen := index[key]; seen {
				if cand.Confidence > merged[i].Confidence {
					merged[i] = cand
				}
				continue
			}

			index[key] = len(merged)
			merged = append(merged, cand)
		}
	}

	return merged
}

// filterCandidates removes false positives and body text from the fused
// candidate set and projects the survivors down to plain outline entries,
// ordered by page then vertical position.
func (c *DetectionConfig) filterCandidates(candidates []Candidate) []Entry {
	if len(candidates) == 0 {
		return []Entry{}
	}

	// Rank by confidence so the strongest duplicates of any later-stage
	// normalization survive first
	ranked := make([]Candidate, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Confidence > ranked[j].Confidence
	})

	filtered := make([]filteredEntry, 0, len(ranked))
	for _, cand := range ranked {
		text := strings.TrimSpace(cand.Text)

		if len(text) < 2 || len(text) > 200 {
			continue
		}

		if c.containsFalsePositive(text) {
			continue
		}

		if c.isLikelyBodyText(text) {
			continue
		}

		filtered = append(filtered, filteredEntry{
			entry:    Entry{Level: cand.Level, Text: text, Page: cand.Page},
			position: cand.Position,
		})
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].entry.Page != filtered[j].entry.Page {
			return filtered[i].entry.Page < filtered[j].entry.Page
		}
		return filtered[i].position < filtered[j].position
	})

	entries := make([]Entry, 0, len(filtered))
	for _, fe := range filtered {
		entries = append(entries, fe.entry)
	}

	return entries
}

// filteredEntry pairs an outline entry with the vertical position it is
// ordered by; the position itself is stripped from the output.
type filteredEntry struct {
	entry    Entry
	position float64
}
