package outline

import "strings"

// Style flag bits, matching the conventional text-render flag layout where
// bit 1 marks italic and bit 4 marks bold.
const (
	FlagItalic = 1 << 1
	FlagBold   = 1 << 4
)

// BoundingBox is a text run's rectangle in top-down page coordinates:
// Top < Bottom, and smaller Top means closer to the top edge of the page.
type BoundingBox struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// IsZero reports whether the box carries no geometry
func (b BoundingBox) IsZero() bool {
	return b.Left == 0 && b.Top == 0 && b.Right == 0 && b.Bottom == 0
}

// Fragment is one run of text with uniform formatting, as reported by the
// decoder. Fragments are immutable once constructed and only exist for the
// duration of a single extraction.
type Fragment struct {
	Text       string
	Page       int // 1-based
	FontName   string
	Size       float64
	StyleFlags int
	BBox       BoundingBox
	Color      int
}

// IsBold reports whether the bold style bit is set
func (f Fragment) IsBold() bool {
	return f.StyleFlags&FlagBold != 0
}

// IsItalic reports whether the italic style bit is set
func (f Fragment) IsItalic() bool {
	return f.StyleFlags&FlagItalic != 0
}

// Top returns the vertical top coordinate, or 0 when the box is empty
func (f Fragment) Top() float64 {
	if f.BBox.IsZero() {
		return 0
	}
	return f.BBox.Top
}

// StyleFlagsFromFont synthesizes a style-flag bitmask from a font name.
// PDF text runs rarely carry explicit style bits; bold and italic variants are
// encoded in the font name instead (e.g. "Helvetica-BoldOblique").
func StyleFlagsFromFont(fontName string) int {
	name := strings.ToLower(fontName)
	flags := 0
	if strings.Contains(name, "bold") {
		flags |= FlagBold
	}
	if strings.Contains(name, "italic") || strings.Contains(name, "oblique") {
		flags |= FlagItalic
	}
	return flags
}
