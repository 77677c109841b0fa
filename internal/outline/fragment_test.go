package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyleFlagsFromFont(t *testing.T) {
	tests := []struct {
		name     string
		fontName string
		bold     bool
		italic   bool
	}{
		{"plain font", "Helvetica", false, false},
		{"bold suffix", "Helvetica-Bold", true, false},
		{"italic suffix", "Times-Italic", false, true},
		{"oblique counts as italic", "Courier-Oblique", false, true},
		{"bold oblique", "Helvetica-BoldOblique", true, true},
		{"bold italic", "Times-BoldItalic", true, true},
		{"case insensitive", "ARIAL-BOLD", true, false},
		{"embedded subset prefix", "ABCDEF+Calibri-Bold", true, false},
		{"empty name", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frag := Fragment{StyleFlags: StyleFlagsFromFont(tt.fontName)}
			assert.Equal(t, tt.bold, frag.IsBold())
			assert.Equal(t, tt.italic, frag.IsItalic())
		})
	}
}

func TestBoundingBoxIsZero(t *testing.T) {
	assert.True(t, BoundingBox{}.IsZero())
	assert.False(t, BoundingBox{Top: 10, Bottom: 22}.IsZero())
	assert.False(t, BoundingBox{Left: 1}.IsZero())
}

func TestFragmentTop(t *testing.T) {
	withBox := Fragment{BBox: BoundingBox{Left: 72, Top: 100, Right: 400, Bottom: 112}}
	assert.Equal(t, 100.0, withBox.Top())

	noBox := Fragment{}
	assert.Equal(t, 0.0, noBox.Top())
}
