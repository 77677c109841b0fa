package pdf

// TextRun is one positioned run of text as reported by the decoder, with
// geometry converted to top-down page coordinates (smaller Top means closer to
// the top edge of the page).
type TextRun struct {
	Text   string
	Font   string
	Size   float64
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Bookmark is one entry of a document's native outline, flattened depth-first
type Bookmark struct {
	Level int // 1-based nesting depth
	Title string
	Page  int // 1-based
}

// FileInfo represents information about a PDF file found during a directory
// search
type FileInfo struct {
	Path         string `json:"path"`
	Name         string `json:"name"`
	Size         int64  `json:"size"`
	ModifiedTime string `json:"modified_time"`
}
