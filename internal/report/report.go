// Package report renders batch extraction results as JSON, HTML, and CSV
// reports.
package report

import (
	"time"

	"github.com/docsift/pdfoutline/internal/outline"
)

// FileMetadata describes how a single document was processed
type FileMetadata struct {
	Filename       string  `json:"filename"`
	FileSize       int64   `json:"file_size"`
	ProcessingTime float64 `json:"processing_time"` // seconds
	Success        bool    `json:"success"`
}

// FileReport is one document's extraction result plus processing metadata
type FileReport struct {
	outline.Result
	Metadata FileMetadata `json:"metadata"`
}

// Summary aggregates a whole batch run
type Summary struct {
	TotalFiles          int     `json:"total_files"`
	Successful          int     `json:"successful"`
	Failed              int     `json:"failed"`
	TotalHeadingsFound  int     `json:"total_headings_found"`
	AverageHeadings     float64 `json:"average_headings_per_document"`
	ProcessingDate      string  `json:"processing_date"`
}

// BatchReport is the complete output of a batch run
type BatchReport struct {
	Results []FileReport `json:"results"`
	Summary Summary      `json:"summary"`
}

// NewSummary computes batch statistics from per-file reports
func NewSummary(results []FileReport) Summary {
	summary := Summary{
		TotalFiles:     len(results),
		ProcessingDate: time.Now().Format("2006-01-02 15:04:05"),
	}

	totalHeadings := 0
	for _, r := range results {
		if r.Metadata.Success {
			summary.Successful++
			totalHeadings += len(r.Outline)
		} else {
			summary.Failed++
		}
	}

	summary.TotalHeadingsFound = totalHeadings

	divisor := summary.Successful
	if divisor == 0 {
		divisor = 1
	}
	summary.AverageHeadings = float64(totalHeadings) / float64(divisor)

	return summary
}
