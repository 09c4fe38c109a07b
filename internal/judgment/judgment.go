// Package judgment assembles the structural parse of a court judgment:
// page text is normalized into lines, then metadata, index and body are
// extracted independently.
package judgment

import (
	"io"

	"github.com/dgallion1/judgest/internal/body"
	"github.com/dgallion1/judgest/internal/citation"
	"github.com/dgallion1/judgest/internal/config"
	"github.com/dgallion1/judgest/internal/doctree"
	"github.com/dgallion1/judgest/internal/inline"
	"github.com/dgallion1/judgest/internal/lines"
	"github.com/dgallion1/judgest/internal/metadata"
	"github.com/dgallion1/judgest/internal/parser"
	"github.com/dgallion1/judgest/internal/toc"
)

// Options carry the heuristic tuning used by each extractor.
type Options struct {
	Metadata   metadata.Options
	Index      toc.Limits
	Thresholds citation.Thresholds
	HideHeader bool // clears Metadata.ShowJudgmentHeader
	Extract    parser.Options
}

// DefaultOptions returns the standard tuning.
func DefaultOptions() Options {
	return Options{
		Metadata:   metadata.DefaultOptions(),
		Index:      toc.DefaultLimits(),
		Thresholds: citation.DefaultThresholds(),
	}
}

// FromRules maps configured tuning onto parse options.
func FromRules(r config.Rules) Options {
	return Options{
		Metadata: metadata.Options{MaxJudges: r.Bench.MaxJudges},
		Index: toc.Limits{
			MaxItems:     r.Index.MaxItems,
			ScanLimit:    r.Index.ScanLimit,
			HeaderMaxLen: r.Index.HeaderMaxLen,
		},
		Thresholds: citation.Thresholds{
			MinSignals:   r.Citation.MinSignals,
			ShortSignals: r.Citation.ShortSignals,
			ShortLength:  r.Citation.ShortLength,
		},
	}
}

// FromConfig applies the service settings on top of the configured rules.
func FromConfig(cfg config.Config, r config.Rules) Options {
	opts := FromRules(r)
	opts.HideHeader = !cfg.ShowJudgmentHeader
	opts.Extract.FallbackPdftotext = cfg.PDFFallbackPdftotext
	return opts
}

// Parse builds a Judgment from ordered page text. Empty input yields an
// empty Judgment with default metadata.
func Parse(pages []string, opts Options) *doctree.Judgment {
	if opts.Thresholds == (citation.Thresholds{}) {
		opts.Thresholds = citation.DefaultThresholds()
	}
	ls := lines.Normalize(pages)
	j := &doctree.Judgment{
		Metadata: metadata.Extract(ls, opts.Metadata),
		Index:    toc.Extract(ls, opts.Index),
		Body: body.Parse(ls, body.Hooks{
			IsCitation: citation.New(opts.Thresholds).IsCitation,
			Format:     inline.Format,
		}),
	}
	if opts.HideHeader {
		j.Metadata.ShowJudgmentHeader = false
	}
	return j
}

// ParseReader extracts page text from r, choosing the extractor by
// filename, and parses it. It returns parser.ErrNoText when the document
// has no text.
func ParseReader(r io.Reader, filename string, opts Options) (*doctree.Judgment, error) {
	pages, err := parser.ExtractPages(r, filename, opts.Extract)
	if err != nil {
		return nil, err
	}
	return Parse(pages, opts), nil
}
