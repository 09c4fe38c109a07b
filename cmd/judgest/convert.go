package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dgallion1/judgest/internal/config"
	"github.com/dgallion1/judgest/internal/judgment"
	"github.com/dgallion1/judgest/internal/output"
	"github.com/dgallion1/judgest/internal/parser"
	"github.com/dgallion1/judgest/internal/pipeline"
	"github.com/dgallion1/judgest/internal/render"
)

// Flag variables.
var (
	flagFormat      string
	flagOut         string
	flagRules       string
	flagNoHeader    bool
	flagNoPdftotext bool
	flagVerbose     bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert a judgment file to the specified output format",
	Long: `Convert extracts the text of a judgment (PDF, DOCX, HTML, Markdown or text),
parses its structure and writes the rendered document to the output directory
under a name derived from the case number and judgment date.

Examples:
  judgest convert judgment.pdf
  judgest convert judgment.pdf --format json --out ./out
  judgest convert judgment.docx --format md --no-header
  judgest convert judgment.pdf --rules rules.yaml --verbose`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&flagFormat, "format", "html", "Output format: "+strings.Join(render.Formats, ", "))
	convertCmd.Flags().StringVar(&flagOut, "out", "", "Output directory (default: current directory)")
	convertCmd.Flags().StringVar(&flagRules, "rules", "", "YAML file overriding heuristic rules")
	convertCmd.Flags().BoolVar(&flagNoHeader, "no-header", false, "Hide the judgment header in the rendered output")
	convertCmd.Flags().BoolVar(&flagNoPdftotext, "no-pdftotext", false, "Do not fall back to the pdftotext command for PDFs")
	convertCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log progress to stderr")
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func runConvert(cmd *cobra.Command, args []string) error {
	path := args[0]
	log := newLogger(flagVerbose)

	if !parser.IsSupportedExtension(path) {
		return fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
	if _, err := render.ForFormat(flagFormat); err != nil {
		return err
	}

	rules, err := config.LoadRules(flagRules)
	if err != nil {
		return err
	}
	cfg := config.Config{
		ShowJudgmentHeader:   !flagNoHeader,
		PDFFallbackPdftotext: !flagNoPdftotext,
	}
	opts := judgment.FromConfig(cfg, rules)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	writer, err := output.New(flagOut)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	start := time.Now()
	res, err := pipeline.Convert(data, filepath.Base(path), flagFormat, opts, func(s pipeline.JobStatus) {
		log.Debug("phase", "file", path, "phase", s)
	})
	if err != nil {
		return err
	}
	m := res.Judgment.Metadata
	log.Info("parsed judgment",
		"pages", res.Pages,
		"paragraphs", len(res.Judgment.Paragraphs()),
		"index_items", len(res.Judgment.Index),
		"case_number", m.CaseNumber,
		"judgment_date", m.JudgmentDate,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	warnMissing(log, res.Pages, m.CaseNumber, m.JudgmentDate)

	out, err := writer.Write(res.Package)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Written: %s\n", out)
	return nil
}

// warnMissing flags header fields the heuristics could not find.
func warnMissing(log *slog.Logger, pages int, caseNumber, date string) {
	var missing []string
	if caseNumber == "" {
		missing = append(missing, "case_number")
	}
	if date == "" {
		missing = append(missing, "judgment_date")
	}
	if len(missing) > 0 {
		log.Warn("metadata not found, using fallback filename parts",
			"fields", strings.Join(missing, ","),
			"pages", pages,
		)
	}
}
