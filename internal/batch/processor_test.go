package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsift/pdfoutline/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.PDFDirectory = t.TempDir()
	cfg.OutputDir = filepath.Join(t.TempDir(), "out")
	return cfg
}

func TestNewProcessor(t *testing.T) {
	p := NewProcessor(testConfig(t))
	require.NotNil(t, p)
}

func TestProcessDirectoryEmpty(t *testing.T) {
	cfg := testConfig(t)
	p := NewProcessor(cfg)

	batch, err := p.ProcessDirectory(cfg.PDFDirectory)
	require.NoError(t, err)
	require.NotNil(t, batch)

	assert.Equal(t, 0, batch.Summary.TotalFiles)
	assert.Empty(t, batch.Results)

	// Aggregate reports are written even for an empty batch
	for _, name := range []string{batchReportJSON, batchReportHTML, batchSummaryCSV} {
		if _, err := os.Stat(filepath.Join(cfg.OutputDir, name)); err != nil {
			t.Errorf("expected report %s to exist: %v", name, err)
		}
	}
}

func TestProcessDirectoryRecordsFailures(t *testing.T) {
	cfg := testConfig(t)
	p := NewProcessor(cfg)

	// A garbage PDF fails extraction but must not fail the batch
	garbage := filepath.Join(cfg.PDFDirectory, "broken.pdf")
	require.NoError(t, os.WriteFile(garbage, []byte("not a real PDF"), 0o644))

	batch, err := p.ProcessDirectory(cfg.PDFDirectory)
	require.NoError(t, err)
	require.Len(t, batch.Results, 1)

	result := batch.Results[0]
	assert.Equal(t, "broken.pdf", result.Metadata.Filename)
	assert.False(t, result.Metadata.Success)
	assert.True(t, result.Failed())
	assert.Equal(t, 1, batch.Summary.Failed)
	assert.Equal(t, 0, batch.Summary.Successful)

	// The per-file result is still written
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "broken_outline.json")); err != nil {
		t.Errorf("expected per-file result to exist: %v", err)
	}
}

func TestProcessDirectoryNonExistent(t *testing.T) {
	p := NewProcessor(testConfig(t))

	_, err := p.ProcessDirectory("/nonexistent/directory")
	assert.Error(t, err)
}

func TestOutlineFilename(t *testing.T) {
	assert.Equal(t, "report_outline.json", outlineFilename("report.pdf"))
	assert.Equal(t, "annual.2024_outline.json", outlineFilename("annual.2024.pdf"))
	assert.Equal(t, "noext_outline.json", outlineFilename("noext"))
}
