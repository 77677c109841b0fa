package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// csvHeader is the column layout of the batch summary CSV
var csvHeader = []string{
	"Filename", "Title", "Success", "Headings_Found", "File_Size", "Processing_Time", "Method",
}

// WriteCSV writes a one-row-per-document batch summary to path
func WriteCSV(path string, batch *BatchReport) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV report: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, result := range batch.Results {
		record := []string{
			result.Metadata.Filename,
			result.Title,
			strconv.FormatBool(result.Metadata.Success),
			strconv.Itoa(len(result.Outline)),
			strconv.FormatInt(result.Metadata.FileSize, 10),
			strconv.FormatFloat(result.Metadata.ProcessingTime, 'f', 2, 64),
			result.Method,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}
