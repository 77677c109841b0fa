package outline

// HeadingLevel is the coarse three-tier heading hierarchy. Native outlines with
// deeper nesting are clamped to LevelH3.
type HeadingLevel string

const (
	LevelH1 HeadingLevel = "H1"
	LevelH2 HeadingLevel = "H2"
	LevelH3 HeadingLevel = "H3"
)

// IsValid checks if the heading level is valid
func (l HeadingLevel) IsValid() bool {
	switch l {
	case LevelH1, LevelH2, LevelH3:
		return true
	default:
		return false
	}
}

// StrategyName identifies which detection strategy produced a candidate
type StrategyName string

const (
	StrategyPattern  StrategyName = "pattern"
	StrategyFont     StrategyName = "font"
	StrategyPosition StrategyName = "position"
)

// Extraction methods reported in the result
const (
	MethodExistingOutline   = "existing_outline"
	MethodStructureAnalysis = "structure_analysis"
)

// TitleSentinel is returned when no plausible title can be found
const TitleSentinel = "Untitled Document"

// errorTitle is the title used when the document cannot be decoded at all
const errorTitle = "Error extracting title"

// Candidate is a heading hypothesis produced by a single detection strategy.
// Confidence is fixed per strategy tier and is the sole arbitration key during
// deduplication; it never appears in the final output.
type Candidate struct {
	Level      HeadingLevel
	Text       string
	Page       int
	Confidence float64
	Strategy   StrategyName
	Size       float64 // source fragment font size, for tie-breaking
	Position   float64 // vertical top coordinate, for final ordering
}

// Entry is a single externally visible outline entry
type Entry struct {
	Level HeadingLevel `json:"level"`
	Text  string       `json:"text"`
	Page  int          `json:"page"`
}

// Result is the outcome of one extraction. Error is non-empty only for a fatal
// decode failure, in which case the outline is empty and the title is a
// sentinel failure string.
type Result struct {
	Title   string  `json:"title"`
	Outline []Entry `json:"outline"`
	Method  string  `json:"method"`
	Error   string  `json:"error,omitempty"`
}

// Failed reports whether the extraction ended in a fatal decode failure
func (r *Result) Failed() bool {
	return r.Error != ""
}
