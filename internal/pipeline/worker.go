package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgallion1/judgest/internal/doctree"
	"github.com/dgallion1/judgest/internal/judgment"
	"github.com/dgallion1/judgest/internal/output"
	"github.com/dgallion1/judgest/internal/parser"
	"github.com/dgallion1/judgest/internal/render"
)

// Result is the outcome of one conversion.
type Result struct {
	Pages    int
	Judgment *doctree.Judgment
	Package  *output.Package
}

// Convert runs extract, parse and render over an uploaded file. onPhase,
// when non-nil, is told as each phase begins.
func Convert(data []byte, filename, format string, opts judgment.Options, onPhase func(JobStatus)) (*Result, error) {
	phase := func(s JobStatus) {
		if onPhase != nil {
			onPhase(s)
		}
	}

	r, err := render.ForFormat(format)
	if err != nil {
		return nil, err
	}

	phase(StatusExtracting)
	pages, err := parser.ExtractPages(bytes.NewReader(data), filename, opts.Extract)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	phase(StatusParsing)
	j := judgment.Parse(pages, opts)

	phase(StatusRendering)
	pkg, err := output.Pack(j, r)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return &Result{Pages: len(pages), Judgment: j, Package: pkg}, nil
}

// Worker processes a single conversion job.
type Worker struct {
	opts  judgment.Options
	stats *Stats
	log   *slog.Logger
}

func NewWorker(opts judgment.Options, stats *Stats, log *slog.Logger) *Worker {
	return &Worker{opts: opts, stats: stats, log: log}
}

// Process runs the conversion for a job and records its latency.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename, "format", job.Format)

	if err := ctx.Err(); err != nil {
		job.Fail("cancelled", err.Error())
		return
	}

	opts := w.opts
	opts.HideHeader = opts.HideHeader || job.HideHeader

	start := time.Now()
	current := StatusQueued
	res, err := Convert(job.FileData(), job.Filename, job.Format, opts, func(s JobStatus) {
		current = s
		job.SetStatus(s, string(s))
	})
	if err != nil {
		log.Error("conversion failed", "phase", current, "error", err)
		if w.stats != nil {
			w.stats.Fail(job.Format)
		}
		job.Fail(string(current), err.Error())
		return
	}

	elapsed := time.Since(start)
	if w.stats != nil {
		w.stats.Record(job.Format, elapsed.Milliseconds())
	}
	job.SetCounts(res.Pages, len(res.Judgment.Paragraphs()))
	job.SetResult(res.Package)
	job.SetStatus(StatusCompleted, "done")
	log.Info("conversion complete",
		"pages", res.Pages,
		"paragraphs", len(res.Judgment.Paragraphs()),
		"bytes", len(res.Package.Data),
		"duration_ms", elapsed.Milliseconds(),
	)
}
