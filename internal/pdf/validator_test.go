package pdf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateFileEmptyPath(t *testing.T) {
	v := NewValidator(1024 * 1024)

	if err := v.ValidateFile(""); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestValidateFileNonExistent(t *testing.T) {
	v := NewValidator(1024 * 1024)

	if err := v.ValidateFile("/nonexistent/file.pdf"); err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestValidateFileRejectsGarbage(t *testing.T) {
	v := NewValidator(1024 * 1024)

	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "garbage.pdf")
	if err := os.WriteFile(testFile, []byte("this is not a PDF"), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	if err := v.ValidateFile(testFile); err == nil {
		t.Error("expected structural validation to fail for non-PDF content")
	}

	if v.IsValidPDF(testFile) {
		t.Error("IsValidPDF should be false for non-PDF content")
	}
}

func TestValidateFileInfo(t *testing.T) {
	v := NewValidator(100)
	tempDir := t.TempDir()

	writeFile := func(name string, size int) string {
		path := filepath.Join(tempDir, name)
		if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
			t.Fatalf("failed to create test file %s: %v", name, err)
		}
		return path
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"valid small pdf", writeFile("ok.pdf", 50), false},
		{"wrong extension", writeFile("notes.txt", 50), true},
		{"empty file", writeFile("empty.pdf", 0), true},
		{"over size limit", writeFile("big.pdf", 200), true},
		{"directory", tempDir, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := os.Stat(tt.path)
			if err != nil {
				t.Fatalf("stat failed: %v", err)
			}

			err = v.ValidateFileInfo(tt.path, info)
			if tt.wantErr && err == nil {
				t.Error("expected error but got none")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
