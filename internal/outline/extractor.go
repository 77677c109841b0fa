package outline

import (
	"fmt"
	"log"
	"strings"

	"github.com/docsift/pdfoutline/internal/pdf"
)

// Source is the decoder-side view of an open document: page count, positioned
// text runs per page, and the native bookmark outline. *pdf.Document satisfies
// it.
type Source interface {
	PageCount() int
	TextRuns(pageNum int) ([]pdf.TextRun, error)
	Bookmarks() []pdf.Bookmark
}

// Extractor infers a hierarchical outline (title plus nested headings with
// page numbers) from a PDF whose structural metadata may be absent,
// incomplete, or untrustworthy. A substantial native outline is used directly;
// otherwise three independent heuristic strategies run over the document's
// formatted fragments and their results are fused into one ranked outline.
type Extractor struct {
	cfg        DetectionConfig
	strategies []Strategy
	debug      bool
}

// NewExtractor creates an extractor with the canonical detection rules
func NewExtractor(debug bool) *Extractor {
	return NewExtractorWithConfig(DefaultDetectionConfig(), debug)
}

// NewExtractorWithConfig creates an extractor with custom detection rules
func NewExtractorWithConfig(cfg DetectionConfig, debug bool) *Extractor {
	return &Extractor{
		cfg:        cfg,
		strategies: defaultStrategies(cfg),
		debug:      debug,
	}
}

// Extract opens the PDF at path and infers its outline. A fatal decode
// failure is reported through the result's Error field with an empty outline;
// Extract itself never returns a Go error.
func (e *Extractor) Extract(path string) *Result {
	if e.debug {
		log.Printf("processing PDF: %s", path)
	}

	doc, err := pdf.Open(path)
	if err != nil {
		return failedResult(err.Error())
	}
	defer doc.Close()

	return e.ExtractFromDocument(doc)
}

// ExtractFromDocument infers the outline for an already open document
func (e *Extractor) ExtractFromDocument(doc Source) (result *Result) {
	defer func() {
		if r := recover(); r != nil {
			result = failedResult(fmt.Sprintf("extraction failed: %v", r))
		}
	}()

	// A substantial native outline short-circuits the heuristic pipeline.
	// One or two entries is too sparse to be useful and is treated as no
	// outline at all.
	if existing := e.existingOutline(doc); len(existing) > 2 {
		if e.debug {
			log.Printf("using existing PDF outline (%d entries)", len(existing))
		}
		return &Result{
			Title:   e.titleFromFirstPage(doc),
			Outline: existing,
			Method:  MethodExistingOutline,
		}
	}

	fragments := e.extractFragments(doc)
	entries := e.detectHeadings(fragments)

	if e.debug {
		log.Printf("found %d headings using multi-strategy detection", len(entries))
	}

	return &Result{
		Title:   e.cfg.titleFromFragments(fragments),
		Outline: entries,
		Method:  MethodStructureAnalysis,
	}
}

// existingOutline reads the document's native bookmarks, clamping nesting
// deeper than three levels to H3. Best effort: any probe failure yields an
// empty outline and the heuristic pipeline runs instead.
func (e *Extractor) existingOutline(doc Source) []Entry {
	bookmarks := doc.Bookmarks()
	if len(bookmarks) == 0 {
		return nil
	}

	entries := make([]Entry, 0, len(bookmarks))
	for _, bm := range bookmarks {
		level := bm.Level
		if level > 3 {
			level = 3
		}
		entries = append(entries, Entry{
			Level: HeadingLevel(fmt.Sprintf("H%d", level)),
			Text:  strings.TrimSpace(bm.Title),
			Page:  bm.Page,
		})
	}

	return entries
}

// titleFromFirstPage infers the document title from the raw text runs of
// page 1
func (e *Extractor) titleFromFirstPage(doc Source) string {
	if doc.PageCount() == 0 {
		return TitleSentinel
	}

	runs, err := doc.TextRuns(1)
	if err != nil {
		if e.debug {
			log.Printf("error extracting title: %v", err)
		}
		return TitleSentinel
	}

	texts := make([]titleRun, 0, len(runs))
	for _, run := range runs {
		texts = append(texts, titleRun{Text: run.Text, Size: run.Size})
	}

	return e.cfg.titleFromRuns(texts)
}

// extractFragments builds the fragment set for the heuristic pipeline,
// bounded to the first MaxScanPages pages for cost control. Pages that fail
// to decode contribute no fragments and do not fail the extraction.
func (e *Extractor) extractFragments(doc Source) []Fragment {
	pageCount := doc.PageCount()
	if pageCount > e.cfg.MaxScanPages {
		pageCount = e.cfg.MaxScanPages
	}

	var fragments []Fragment

	for pageNum := 1; pageNum <= pageCount; pageNum++ {
		runs, err := doc.TextRuns(pageNum)
		if err != nil {
			if e.debug {
				log.Printf("error processing page %d: %v", pageNum, err)
			}
			continue
		}

		for _, run := range runs {
			text := strings.TrimSpace(run.Text)
			if text == "" || len(text) <= 1 {
				continue
			}

			fragments = append(fragments, Fragment{
				Text:       text,
				Page:       pageNum,
				FontName:   run.Font,
				Size:       run.Size,
				StyleFlags: StyleFlagsFromFont(run.Font),
				BBox: BoundingBox{
					Left:   run.Left,
					Top:    run.Top,
					Right:  run.Right,
					Bottom: run.Bottom,
				},
			})
		}
	}

	return fragments
}

// detectHeadings runs the detection strategies in their contractual order and
// fuses their candidates into the final filtered outline
func (e *Extractor) detectHeadings(fragments []Fragment) []Entry {
	if len(fragments) == 0 {
		return []Entry{}
	}

	streams := make([][]Candidate, 0, len(e.strategies))
	for _, strategy := range e.strategies {
		streams = append(streams, strategy.Detect(fragments))
	}

	fused := fuseCandidates(streams...)
	return e.cfg.filterCandidates(fused)
}

// failedResult builds the fixed failure shape: sentinel title, empty outline,
// error message
func failedResult(msg string) *Result {
	return &Result{
		Title:   errorTitle,
		Outline: []Entry{},
		Error:   msg,
	}
}
