package parser

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ErrNoText reports a document that produced no extractable text.
var ErrNoText = errors.New("no extractable text")

// Extractor converts raw document bytes into ordered per-page text.
type Extractor interface {
	Extract(r io.Reader, filename string) ([]string, error)
}

// Options tune extractor construction.
type Options struct {
	FallbackPdftotext bool
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the appropriate extractor for a filename.
func ForFile(filename string, opts Options) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextParser{}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".pdf":
		return &PDFParser{FallbackPdftotext: opts.FallbackPdftotext}, nil
	case ".docx":
		return &DOCXParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// ExtractPages picks an extractor for filename and runs it. It returns
// ErrNoText when every page is blank.
func ExtractPages(r io.Reader, filename string, opts Options) ([]string, error) {
	ex, err := ForFile(filename, opts)
	if err != nil {
		return nil, err
	}
	pages, err := ex.Extract(r, filename)
	if err != nil {
		return nil, err
	}
	if !HasText(pages) {
		return nil, fmt.Errorf("%s: %w", filename, ErrNoText)
	}
	return pages, nil
}

// HasText reports whether any page carries non-whitespace text.
func HasText(pages []string) bool {
	for _, p := range pages {
		if strings.TrimSpace(p) != "" {
			return true
		}
	}
	return false
}
