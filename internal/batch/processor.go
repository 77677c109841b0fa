// Package batch processes every PDF in a directory through the outline
// extractor and writes per-file and aggregate reports.
package batch

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/docsift/pdfoutline/internal/config"
	"github.com/docsift/pdfoutline/internal/outline"
	"github.com/docsift/pdfoutline/internal/pdf"
	"github.com/docsift/pdfoutline/internal/report"
)

// Report filenames written into the output directory
const (
	batchReportJSON = "batch_report.json"
	batchReportHTML = "batch_report.html"
	batchSummaryCSV = "batch_summary.csv"
)

// Processor runs outline extraction over a directory of PDFs
type Processor struct {
	extractor *outline.Extractor
	search    *pdf.Search
	outputDir string
	debug     bool
}

// NewProcessor creates a batch processor from the application configuration
func NewProcessor(cfg *config.Config) *Processor {
	return &Processor{
		extractor: outline.NewExtractor(cfg.IsDebug()),
		search:    pdf.NewSearch(cfg.MaxFileSize),
		outputDir: cfg.OutputDir,
		debug:     cfg.IsDebug(),
	}
}

// ProcessDirectory extracts outlines from every PDF under directory,
// writes a per-file JSON result next to the batch reports, and returns the
// aggregate report. Individual extraction failures are recorded in the
// report, not returned as errors.
func (p *Processor) ProcessDirectory(directory string) (*report.BatchReport, error) {
	files, err := p.search.FindPDFs(directory, "")
	if err != nil {
		return nil, fmt.Errorf("failed to scan directory: %w", err)
	}

	if err := os.MkdirAll(p.outputDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	log.Printf("found %d PDF files in %s", len(files), directory)

	results := make([]report.FileReport, 0, len(files))
	for i, file := range files {
		log.Printf("processing [%d/%d]: %s", i+1, len(files), file.Name)
		results = append(results, p.processFile(file))
	}

	batch := &report.BatchReport{
		Results: results,
		Summary: report.NewSummary(results),
	}

	if err := p.writeReports(batch); err != nil {
		return nil, err
	}

	log.Printf("batch complete: %d successful, %d failed, %d headings total",
		batch.Summary.Successful, batch.Summary.Failed, batch.Summary.TotalHeadingsFound)

	return batch, nil
}

// processFile extracts one document and writes its standalone JSON result
func (p *Processor) processFile(file pdf.FileInfo) report.FileReport {
	start := time.Now()
	result := p.extractor.Extract(file.Path)
	elapsed := time.Since(start).Seconds()

	fileReport := report.FileReport{
		Result: *result,
		Metadata: report.FileMetadata{
			Filename:       file.Name,
			FileSize:       file.Size,
			ProcessingTime: elapsed,
			Success:        !result.Failed(),
		},
	}

	outPath := filepath.Join(p.outputDir, outlineFilename(file.Name))
	if err := report.WriteJSON(outPath, result); err != nil {
		log.Printf("failed to write result for %s: %v", file.Name, err)
	} else if p.debug {
		log.Printf("wrote %s", outPath)
	}

	return fileReport
}

// writeReports renders the aggregate report in all three formats
func (p *Processor) writeReports(batch *report.BatchReport) error {
	jsonPath := filepath.Join(p.outputDir, batchReportJSON)
	if err := report.WriteJSON(jsonPath, batch); err != nil {
		return fmt.Errorf("failed to write batch JSON report: %w", err)
	}

	htmlPath := filepath.Join(p.outputDir, batchReportHTML)
	if err := report.WriteHTML(htmlPath, batch); err != nil {
		return fmt.Errorf("failed to write batch HTML report: %w", err)
	}

	csvPath := filepath.Join(p.outputDir, batchSummaryCSV)
	if err := report.WriteCSV(csvPath, batch); err != nil {
		return fmt.Errorf("failed to write batch CSV summary: %w", err)
	}

	return nil
}

// outlineFilename maps "report.pdf" to "report_outline.json"
func outlineFilename(pdfName string) string {
	stem := strings.TrimSuffix(pdfName, filepath.Ext(pdfName))
	return stem + "_outline.json"
}
