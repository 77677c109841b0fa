package pdf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenNonExistent(t *testing.T) {
	if _, err := Open("/nonexistent/document.pdf"); err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestOpenGarbage(t *testing.T) {
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "garbage.pdf")
	if err := os.WriteFile(testFile, []byte("not a PDF at all"), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	if _, err := Open(testFile); err == nil {
		t.Error("expected error for non-PDF content")
	}
}

func TestBookmarksBestEffortOnGarbage(t *testing.T) {
	// Bookmarks never fails; an unreadable file yields an empty set
	d := &Document{path: "/nonexistent/document.pdf"}
	if bookmarks := d.Bookmarks(); len(bookmarks) != 0 {
		t.Errorf("expected no bookmarks, got %d", len(bookmarks))
	}
}
