package outline

// Strategy is a single independent heading-detection heuristic. Given the full
// fragment set for a document it produces zero or more candidates; it never
// fails, it only degrades to fewer candidates.
type Strategy interface {
	// Name returns the tag recorded on every candidate the strategy emits
	Name() StrategyName

	// Detect scans the fragments and returns heading candidates
	Detect(fragments []Fragment) []Candidate
}

// defaultStrategies returns the three detectors in their contractual execution
// order: pattern, then font, then position. The order is part of the fusion
// contract: equal-confidence duplicates keep the first-seen candidate, so a
// reordering would change results.
func defaultStrategies(cfg DetectionConfig) []Strategy {
	return []Strategy{
		NewPatternStrategy(cfg),
		NewFontStrategy(cfg),
		NewPositionStrategy(cfg),
	}
}
