// Package extract turns a PDF or DOCX document into an ordered sequence of
// trimmed, non-empty text lines. Binary-format parsing is delegated to the
// document libraries; callers only see "path in, lines out".
package extract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for any extension other than .pdf/.docx.
var ErrUnsupportedFormat = errors.New("unsupported format (supported: .pdf, .docx)")

// SupportedExtensions lists the file extensions this tool can read.
var SupportedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
}

// IsSupportedExtension checks if a filename has a readable extension.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// FromFile reads the document at path and returns its textual content as
// trimmed non-empty lines in document order. The path is checked before any
// extraction so a missing file fails fast.
func FromFile(path string) ([]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("input file %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".pdf":
		return extractPDF(path)
	case ".docx":
		return extractDOCX(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// splitLines breaks a block of extracted text on newlines, trimming each
// line and dropping empty ones.
func splitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
