package pdf

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
)

// defaultPageHeight is the US Letter fallback used when a page carries no
// usable MediaBox.
const defaultPageHeight = 792.0

// defaultRunHeight approximates a text run's height when the decoder reports
// no font size.
const defaultRunHeight = 12.0

// Document is an open PDF handle. It owns the underlying file and must be
// closed by the caller.
type Document struct {
	path   string
	file   *os.File
	reader *pdf.Reader
}

// Open opens the PDF at path for reading
func Open(path string) (*Document, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	return &Document{
		path:   path,
		file:   f,
		reader: reader,
	}, nil
}

// Path returns the file path the document was opened from
func (d *Document) Path() string {
	return d.path
}

// PageCount returns the number of pages in the document
func (d *Document) PageCount() int {
	return d.reader.NumPage()
}

// Close releases the underlying file handle
func (d *Document) Close() error {
	if d.file != nil {
		return d.file.Close()
	}
	return nil
}

// TextRuns returns the positioned text runs for a page (1-based). The decoder
// reports bottom-up PDF coordinates; they are converted to top-down page
// coordinates here so callers can sort top to bottom with plain ascending
// order. Parses of malformed pages can panic inside the decoder, so this is
// guarded and surfaces a per-page error instead.
func (d *Document) TextRuns(pageNum int) (runs []TextRun, err error) {
	defer func() {
		if r := recover(); r != nil {
			runs = nil
			err = fmt.Errorf("failed to read page %d: %v", pageNum, r)
		}
	}()

	if pageNum < 1 || pageNum > d.reader.NumPage() {
		return nil, fmt.Errorf("invalid page number %d (document has %d pages)", pageNum, d.reader.NumPage())
	}

	page := d.reader.Page(pageNum)
	if page.V.IsNull() {
		return nil, nil
	}

	height := pageHeight(page)
	content := page.Content()

	for _, text := range content.Text {
		runHeight := text.FontSize
		if runHeight == 0 {
			runHeight = defaultRunHeight
		}

		runs = append(runs, TextRun{
			Text:   text.S,
			Font:   text.Font,
			Size:   text.FontSize,
			Left:   text.X,
			Top:    height - (text.Y + runHeight),
			Right:  text.X + text.W,
			Bottom: height - text.Y,
		})
	}

	return runs, nil
}

// pageHeight reads the page's MediaBox height, falling back to US Letter when
// the box is absent or degenerate. MediaBox may be inherited from the page
// tree, which the decoder does not resolve; the fallback covers that case.
func pageHeight(page pdf.Page) float64 {
	box := page.V.Key("MediaBox")
	if box.IsNull() || box.Len() < 4 {
		return defaultPageHeight
	}

	height := box.Index(3).Float64() - box.Index(1).Float64()
	if height <= 0 {
		return defaultPageHeight
	}
	return height
}
