package judgment

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/dgallion1/judgest/internal/config"
	"github.com/dgallion1/judgest/internal/doctree"
	"github.com/dgallion1/judgest/internal/parser"
)

const samplePage1 = `2025 INSC 1001
REPORTABLE
IN THE SUPREME COURT OF INDIA
CIVIL APPELLATE JURISDICTION
CIVIL APPEAL NO. 1234 OF 2025
RAMESH SINGH ...APPELLANT(S)
VERSUS
STATE OF PUNJAB ...RESPONDENT(S)
INDEX
A. FACTS ........ 1
B. ANALYSIS ........ 2
J U D G M E N T
SUDHANSHU DHULIA, J.
Printed For: Test User
(Page 1 of 2)`

const samplePage2 = `1. The appeal is allowed.
I. First reason follows.
continues here.
2. See State of Punjab v. Singh, (2019) 5 SCC 123.
B. ANALYSIS
3. Costs awarded.
Page 2 of 2
........................J.
(SUDHANSHU DHULIA)
New Delhi;
14th August, 2025`

func TestParse_Sample(t *testing.T) {
	j := Parse([]string{samplePage1, samplePage2}, DefaultOptions())

	m := j.Metadata
	if m.CitationNumber != "2025 INSC 1001" || m.CaseNumber != "CIVIL APPEAL NO. 1234 OF 2025" {
		t.Errorf("unexpected header: %+v", m)
	}
	if m.Petitioner != "RAMESH SINGH" || m.Respondent != "STATE OF PUNJAB" {
		t.Errorf("unexpected parties: %q v. %q", m.Petitioner, m.Respondent)
	}
	if m.JudgmentDate != "14-08-2025" {
		t.Errorf("expected date 14-08-2025, got %q", m.JudgmentDate)
	}
	if !m.ShowJudgmentHeader {
		t.Error("expected header shown by default")
	}

	// Unmarked lines up to the first paragraph are plain entries.
	if len(j.Index) != 4 {
		t.Fatalf("expected 4 index items, got %+v", j.Index)
	}
	if j.Index[0] != (doctree.IndexItem{Text: "A. FACTS", Tier: doctree.TierMain}) ||
		j.Index[1] != (doctree.IndexItem{Text: "B. ANALYSIS", Tier: doctree.TierMain}) {
		t.Errorf("unexpected index: %+v", j.Index)
	}
	if j.Index[3].Tier != doctree.TierPlain {
		t.Errorf("expected plain tier, got %+v", j.Index[3])
	}

	kinds := make([]string, len(j.Body))
	for i, n := range j.Body {
		kinds[i] = n.Kind()
	}
	if got := strings.Join(kinds, ","); got != "paragraph,paragraph,section,paragraph" {
		t.Fatalf("unexpected body kinds %q", got)
	}

	ps := j.Paragraphs()
	if ps[0].Number != "1" || len(ps[0].SubItems) != 1 {
		t.Errorf("paragraph 1: %+v", ps[0])
	}
	if ps[0].SubItems[0].Text != "First reason follows. continues here." {
		t.Errorf("sub-item text: %q", ps[0].SubItems[0].Text)
	}
	if ps[0].IsCitation {
		t.Error("expected paragraph 1 to be narrative")
	}
	if !ps[1].IsCitation {
		t.Error("expected paragraph 2 to be a citation")
	}
	// The signature block folds into the last paragraph.
	if !strings.HasPrefix(ps[2].Text, "Costs awarded. ") || ps[2].IsCitation {
		t.Errorf("paragraph 3: %+v", ps[2])
	}
	for _, p := range ps {
		if strings.Contains(p.Text, "Page 2 of 2") || strings.Contains(p.Text, "Printed For") {
			t.Errorf("page noise leaked into %q", p.Text)
		}
	}
}

func TestParse_EmptyInput(t *testing.T) {
	j := Parse(nil, DefaultOptions())
	if len(j.Index) != 0 || len(j.Body) != 0 {
		t.Errorf("expected empty judgment, got %+v", j)
	}
	if !j.Metadata.ShowJudgmentHeader {
		t.Error("expected default metadata")
	}
}

func TestParse_HideHeader(t *testing.T) {
	opts := DefaultOptions()
	opts.HideHeader = true
	j := Parse([]string{"1. Leave granted."}, opts)
	if j.Metadata.ShowJudgmentHeader {
		t.Error("expected header hidden")
	}
}

func TestParse_ZeroOptionsUseDefaults(t *testing.T) {
	// One signal in long text is narrative under default thresholds.
	long := "1. " + strings.Repeat("The tribunal considered the evidence at length. ", 6) + "See AIR 2020 SC 123."
	j := Parse([]string{long}, Options{})
	if ps := j.Paragraphs(); len(ps) != 1 || ps[0].IsCitation {
		t.Errorf("expected one narrative paragraph, got %+v", ps)
	}
}

func TestParseReader_Text(t *testing.T) {
	j, err := ParseReader(strings.NewReader(samplePage1+"\f"+samplePage2), "judgment.txt", DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(j.Paragraphs()) != 3 {
		t.Errorf("expected 3 paragraphs, got %d", len(j.Paragraphs()))
	}
}

func TestParseReader_NoText(t *testing.T) {
	_, err := ParseReader(strings.NewReader("\n\n"), "blank.txt", DefaultOptions())
	if !errors.Is(err, parser.ErrNoText) {
		t.Fatalf("expected ErrNoText, got %v", err)
	}
}

func TestJudgment_JSONShape(t *testing.T) {
	j := Parse([]string{samplePage1, samplePage2}, DefaultOptions())
	data, err := json.Marshal(j)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded struct {
		Metadata map[string]any `json:"metadata"`
		Index    []any          `json:"index"`
		Body     []struct {
			Kind string          `json:"kind"`
			Node json.RawMessage `json:"node"`
		} `json:"body"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Metadata["judgment_date"] != "14-08-2025" {
		t.Errorf("unexpected metadata: %v", decoded.Metadata)
	}
	if len(decoded.Body) != 4 || decoded.Body[2].Kind != "section" {
		t.Errorf("unexpected body: %+v", decoded.Body)
	}
}

func TestFromRules(t *testing.T) {
	r := config.DefaultRules()
	r.Bench.MaxJudges = 1
	r.Citation.ShortLength = 10
	opts := FromRules(r)
	if opts.Metadata.MaxJudges != 1 || opts.Thresholds.ShortLength != 10 || opts.Index.MaxItems != 25 {
		t.Errorf("unexpected options: %+v", opts)
	}
	// A short single-signal paragraph is narrative once short_length drops.
	j := Parse([]string{"1. See AIR 2020 SC 123."}, opts)
	if ps := j.Paragraphs(); ps[0].IsCitation {
		t.Error("expected narrative under short_length 10")
	}
}

func TestFromConfig(t *testing.T) {
	cfg := config.Config{ShowJudgmentHeader: false, PDFFallbackPdftotext: true}
	opts := FromConfig(cfg, config.DefaultRules())
	if !opts.HideHeader {
		t.Error("expected header hidden when SHOW_JUDGMENT_HEADER is false")
	}
	if !opts.Extract.FallbackPdftotext {
		t.Error("expected pdftotext fallback enabled")
	}
	if opts.Index != DefaultOptions().Index {
		t.Errorf("expected default index limits, got %+v", opts.Index)
	}
}
