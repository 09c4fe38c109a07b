// Package output names and delivers rendered judgments.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/judgest/internal/doctree"
	"github.com/dgallion1/judgest/internal/render"
)

// FallbackName is used when the case number is unknown.
const FallbackName = "judgment_output"

// SuggestedFilename derives a filename from the case number and date,
// e.g. CIVIL_APPEAL_NO_1234_OF_2025_14-08-2025.html.
func SuggestedFilename(m doctree.Metadata, ext string) string {
	name := sanitize(m.CaseNumber)
	if name == "" {
		return FallbackName + ext
	}
	if m.JudgmentDate != "" {
		name += "_" + m.JudgmentDate
	}
	return name + ext
}

// sanitize keeps letters, digits and hyphens, collapsing everything else
// into single underscores.
func sanitize(s string) string {
	var b strings.Builder
	pending := false
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') || ch == '-' {
			if pending && b.Len() > 0 {
				b.WriteRune('_')
			}
			pending = false
			b.WriteRune(ch)
		} else {
			pending = true
		}
	}
	return b.String()
}

// Package is a rendered document ready for delivery.
type Package struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Pack renders j with r and names the result.
func Pack(j *doctree.Judgment, r render.Renderer) (*Package, error) {
	data, err := r.Render(j)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", r.Extension(), err)
	}
	return &Package{
		Filename:    SuggestedFilename(j.Metadata, r.Extension()),
		ContentType: r.ContentType(),
		Data:        data,
	}, nil
}

// Writer writes packages to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// Write stores pkg under its filename and returns the full path.
func (w *Writer) Write(pkg *Package) (string, error) {
	path := filepath.Join(w.OutputDir, filepath.Base(pkg.Filename))
	if err := os.WriteFile(path, pkg.Data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}
