package pdf

import (
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Bookmarks returns the document's native outline flattened depth-first, with
// each entry's level set to its 1-based nesting depth. This is a best-effort
// probe: documents without bookmarks, and any read or parse failure, yield an
// empty result rather than an error.
func (d *Document) Bookmarks() []Bookmark {
	f, err := os.Open(d.path)
	if err != nil {
		return nil
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	bms, err := api.Bookmarks(f, conf)
	if err != nil {
		return nil
	}

	var flat []Bookmark
	flattenBookmarks(bms, 1, &flat)
	return flat
}

// flattenBookmarks walks the bookmark tree depth-first, recording nesting
// depth as the level
func flattenBookmarks(bms []pdfcpu.Bookmark, level int, out *[]Bookmark) {
	for _, bm := range bms {
		*out = append(*out, Bookmark{
			Level: level,
			Title: bm.Title,
			Page:  bm.PageFrom,
		})
		if len(bm.Kids) > 0 {
			flattenBookmarks(bm.Kids, level+1, out)
		}
	}
}
