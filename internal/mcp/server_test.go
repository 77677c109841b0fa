package mcp

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/docsift/pdfoutline/internal/config"
	"github.com/docsift/pdfoutline/internal/outline"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.PDFDirectory = t.TempDir()
	return cfg
}

func TestNewServer(t *testing.T) {
	cfg := testConfig(t)

	server, err := NewServer(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if server == nil {
		t.Fatal("server should not be nil")
	}
	if server.config != cfg {
		t.Error("server config not set correctly")
	}
	if server.mcpServer == nil {
		t.Error("mcpServer should be initialized")
	}
	if server.extractor == nil {
		t.Error("extractor should be initialized")
	}
}

func TestNewServerNilConfig(t *testing.T) {
	if _, err := NewServer(nil); err == nil {
		t.Error("expected error for nil config")
	}
}

func TestServer_HandleValidateFile(t *testing.T) {
	cfg := testConfig(t)

	// Not a real PDF, so validation should fail
	testFile := filepath.Join(cfg.PDFDirectory, "test.pdf")
	if err := os.WriteFile(testFile, make([]byte, 1024), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	server, err := NewServer(cfg)
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{
				"path": testFile,
			},
		},
	}

	result, err := server.handleValidateFile(context.Background(), request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, "PDF validation failed") {
		t.Errorf("expected validation to fail, got: %s", resultText)
	}
}

func TestServer_HandleValidateFileMissingPath(t *testing.T) {
	server, err := NewServer(testConfig(t))
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{},
		},
	}

	result, err := server.handleValidateFile(context.Background(), request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if result == nil || !result.IsError {
		t.Error("expected an error result for missing path argument")
	}
}

func TestServer_HandleSearchDirectory(t *testing.T) {
	cfg := testConfig(t)

	for _, name := range []string{"doc1.pdf", "doc2.pdf", "report.txt"} {
		path := filepath.Join(cfg.PDFDirectory, name)
		if err := os.WriteFile(path, make([]byte, 1024), 0o644); err != nil {
			t.Fatalf("failed to create test file %s: %v", name, err)
		}
	}

	server, err := NewServer(cfg)
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{
				"directory": cfg.PDFDirectory,
				"query":     "",
			},
		},
	}

	result, err := server.handleSearchDirectory(context.Background(), request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, "Found 2 PDF file(s)") {
		t.Errorf("expected 2 PDFs found, got: %s", resultText)
	}
	if !strings.Contains(resultText, "doc1.pdf") || !strings.Contains(resultText, "doc2.pdf") {
		t.Errorf("expected both PDF names in result, got: %s", resultText)
	}
}

func TestServer_HandleSearchDirectoryEmpty(t *testing.T) {
	cfg := testConfig(t)

	server, err := NewServer(cfg)
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{},
		},
	}

	result, err := server.handleSearchDirectory(context.Background(), request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, "No PDF files found") {
		t.Errorf("expected no files message, got: %s", resultText)
	}
}

func TestFormatOutlineResult(t *testing.T) {
	server, err := NewServer(testConfig(t))
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}

	result := &outline.Result{
		Title:  "Sample Title",
		Method: outline.MethodStructureAnalysis,
		Outline: []outline.Entry{
			{Level: outline.LevelH1, Text: "Introduction", Page: 1},
			{Level: outline.LevelH2, Text: "1.1 Scope", Page: 2},
			{Level: outline.LevelH3, Text: "1.1.1 Terms", Page: 2},
		},
	}

	text := server.formatOutlineResult("/tmp/sample.pdf", result)

	for _, want := range []string{
		"Title: Sample Title",
		"Headings: 3",
		"H1 Introduction (page 1)",
		"  H2 1.1 Scope (page 2)",
		"    H3 1.1.1 Terms (page 2)",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in output, got:\n%s", want, text)
		}
	}
}

func TestFormatOutlineResultFailure(t *testing.T) {
	server, err := NewServer(testConfig(t))
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}

	result := &outline.Result{
		Title:   "Error extracting title",
		Outline: []outline.Entry{},
		Error:   "failed to open PDF",
	}

	text := server.formatOutlineResult("/tmp/broken.pdf", result)
	if !strings.Contains(text, "failed to open PDF") {
		t.Errorf("expected failure message, got: %s", text)
	}
}

// extractTextFromResult pulls the first text content block out of a tool result
func extractTextFromResult(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}

	for _, content := range result.Content {
		if textContent, ok := content.(mcp.TextContent); ok {
			return textContent.Text
		}
		if textContentPtr, ok := content.(*mcp.TextContent); ok {
			return textContentPtr.Text
		}
	}

	return ""
}
