package pdf

import (
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenBookmarks(t *testing.T) {
	tree := []pdfcpu.Bookmark{
		{
			Title:    "Chapter 1",
			PageFrom: 1,
			Kids: []pdfcpu.Bookmark{
				{Title: "Section 1.1", PageFrom: 2},
				{
					Title:    "Section 1.2",
					PageFrom: 5,
					Kids: []pdfcpu.Bookmark{
						{Title: "Subsection 1.2.1", PageFrom: 6},
					},
				},
			},
		},
		{Title: "Chapter 2", PageFrom: 10},
	}

	var flat []Bookmark
	flattenBookmarks(tree, 1, &flat)

	require.Len(t, flat, 5)

	// Depth-first order with nesting depth recorded as the level
	assert.Equal(t, Bookmark{Level: 1, Title: "Chapter 1", Page: 1}, flat[0])
	assert.Equal(t, Bookmark{Level: 2, Title: "Section 1.1", Page: 2}, flat[1])
	assert.Equal(t, Bookmark{Level: 2, Title: "Section 1.2", Page: 5}, flat[2])
	assert.Equal(t, Bookmark{Level: 3, Title: "Subsection 1.2.1", Page: 6}, flat[3])
	assert.Equal(t, Bookmark{Level: 1, Title: "Chapter 2", Page: 10}, flat[4])
}

func TestFlattenBookmarksEmpty(t *testing.T) {
	var flat []Bookmark
	flattenBookmarks(nil, 1, &flat)
	assert.Empty(t, flat)
}
