package body

import (
	"html/template"
	"strings"
	"testing"

	"github.com/dgallion1/judgest/internal/doctree"
)

func paragraphs(t *testing.T, nodes []doctree.BodyNode) []*doctree.Paragraph {
	t.Helper()
	var out []*doctree.Paragraph
	for _, n := range nodes {
		if p, ok := n.(*doctree.Paragraph); ok {
			out = append(out, p)
		}
	}
	return out
}

func TestParse_EndToEnd(t *testing.T) {
	lines := []string{
		"1. The appeal is allowed.",
		"I. First reason follows.",
		"continues here.",
		"2. Costs awarded.",
	}
	nodes := Parse(lines, Hooks{})
	if len(nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(nodes))
	}
	ps := paragraphs(t, nodes)
	if len(ps) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(ps))
	}

	p1 := ps[0]
	if p1.Number != "1" || p1.Text != "The appeal is allowed." {
		t.Errorf("paragraph 1: got number %q text %q", p1.Number, p1.Text)
	}
	if len(p1.SubItems) != 1 {
		t.Fatalf("expected 1 sub-item, got %d", len(p1.SubItems))
	}
	sub := p1.SubItems[0]
	if sub.Tier != doctree.TierRoman || sub.Marker != "I" {
		t.Errorf("expected roman sub-item I, got %q %q", sub.Tier, sub.Marker)
	}
	if sub.Text != "First reason follows. continues here." {
		t.Errorf("sub-item text: got %q", sub.Text)
	}

	p2 := ps[1]
	if p2.Number != "2" || len(p2.SubItems) != 0 || p2.IsCitation {
		t.Errorf("paragraph 2: got %+v", p2)
	}
}

func TestParse_SectionHeaders(t *testing.T) {
	lines := []string{
		"A. FACTS",
		"1. The appellant was employed.",
		"B. ANALYSIS",
		"2. We have heard counsel.",
	}
	nodes := Parse(lines, Hooks{})
	// Body starts at the first "1." so the header above it is not seen.
	kinds := make([]string, len(nodes))
	for i, n := range nodes {
		kinds[i] = n.Kind()
	}
	want := "paragraph,section,paragraph"
	if got := strings.Join(kinds, ","); got != want {
		t.Fatalf("expected kinds %q, got %q", want, got)
	}
	if h := nodes[1].(doctree.SectionHeader); h.Text != "B. ANALYSIS" {
		t.Errorf("expected header %q, got %q", "B. ANALYSIS", h.Text)
	}
}

func TestParse_MixedTiersAreSiblings(t *testing.T) {
	lines := []string{
		"1. The following issues arise:",
		"I. whether the suit was barred;",
		"a. whether notice was served;",
		"ii. whether costs follow.",
	}
	ps := paragraphs(t, Parse(lines, Hooks{}))
	if len(ps) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(ps))
	}
	subs := ps[0].SubItems
	wantTiers := []doctree.Tier{doctree.TierRoman, doctree.TierLetter, doctree.TierSmallRoman}
	if len(subs) != len(wantTiers) {
		t.Fatalf("expected %d sub-items, got %d", len(wantTiers), len(subs))
	}
	for i, tier := range wantTiers {
		if subs[i].Tier != tier {
			t.Errorf("sub[%d]: expected tier %q, got %q", i, tier, subs[i].Tier)
		}
	}
}

func TestParse_PlainContinuationJoinsParagraph(t *testing.T) {
	lines := []string{"1. The appellant", "", "was employed", "as a clerk."}
	ps := paragraphs(t, Parse(lines, Hooks{}))
	if len(ps) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(ps))
	}
	if ps[0].Text != "The appellant was employed as a clerk." {
		t.Errorf("got %q", ps[0].Text)
	}
}

func TestParse_EmptyMarkers(t *testing.T) {
	lines := []string{"1.", "a.", "2."}
	ps := paragraphs(t, Parse(lines, Hooks{}))
	if len(ps) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(ps))
	}
	if ps[0].Text != "" || len(ps[0].SubItems) != 1 || ps[0].SubItems[0].Text != "" {
		t.Errorf("expected empty paragraph with one empty sub-item, got %+v", ps[0])
	}
}

func TestParse_NumberingPreserved(t *testing.T) {
	lines := []string{"1. one", "3. three", "3. again", "2. two"}
	ps := paragraphs(t, Parse(lines, Hooks{}))
	var got []string
	for _, p := range ps {
		got = append(got, p.Number)
	}
	if strings.Join(got, ",") != "1,3,3,2" {
		t.Errorf("expected numbering preserved, got %v", got)
	}
}

func TestParse_StrayLinesSkipped(t *testing.T) {
	lines := []string{"JUDGMENT", "Some preamble", "1. Leave granted."}
	nodes := Parse(lines, Hooks{})
	if len(nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(nodes))
	}
}

func TestParse_NoMarkers(t *testing.T) {
	if nodes := Parse([]string{"just text", "more text"}, Hooks{}); len(nodes) != 0 {
		t.Errorf("expected no nodes, got %d", len(nodes))
	}
	if nodes := Parse(nil, Hooks{}); len(nodes) != 0 {
		t.Errorf("expected no nodes for nil input, got %d", len(nodes))
	}
}

func TestParse_CitationParagraph(t *testing.T) {
	lines := []string{
		"1. We have considered the matter.",
		"2. See State of Punjab v. Singh, (2019) 5 SCC 123.",
	}
	ps := paragraphs(t, Parse(lines, Hooks{}))
	if len(ps) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(ps))
	}
	if ps[0].IsCitation {
		t.Error("expected narrative paragraph 1")
	}
	if !ps[1].IsCitation {
		t.Error("expected citation paragraph 2")
	}
	if !strings.Contains(string(ps[1].HTML), `class="case-citation"`) {
		t.Errorf("expected formatted citation, got %s", ps[1].HTML)
	}
}

func TestParse_CustomHooks(t *testing.T) {
	hooks := Hooks{
		IsCitation: func(string) bool { return true },
		Format:     func(s string) template.HTML { return template.HTML("<b>" + s + "</b>") },
	}
	ps := paragraphs(t, Parse([]string{"1. text"}, hooks))
	if !ps[0].IsCitation || ps[0].HTML != "<b>text</b>" {
		t.Errorf("expected hooks to apply, got %+v", ps[0])
	}
}

func TestClassify_Precedence(t *testing.T) {
	tests := []struct {
		line   string
		kind   Kind
		marker string
	}{
		{"IV. Fourth", KindRoman, "IV"},
		{"i. first", KindLetter, "i"},
		{"iii. third", KindSmallRoman, "iii"},
		{"b. second", KindLetter, "b"},
		{"12. twelve", KindNumbered, "12"},
		{"plain line", KindNone, ""},
	}
	for _, tt := range tests {
		m, ok := Classify(tt.line)
		if ok != (tt.kind != KindNone) || m.Kind != tt.kind || m.Marker != tt.marker {
			t.Errorf("Classify(%q): expected kind %d marker %q, got %+v ok=%v", tt.line, tt.kind, tt.marker, m, ok)
		}
	}
}

func TestStartIndex(t *testing.T) {
	tests := []struct {
		lines []string
		want  int
	}{
		{[]string{"x", "5. five", "1. one"}, 2},
		{[]string{"x", "5. five"}, 1},
		{[]string{"x", "y"}, 0},
		{[]string{"x", "10. ten"}, 1},
	}
	for _, tt := range tests {
		if got := StartIndex(tt.lines); got != tt.want {
			t.Errorf("StartIndex(%q): expected %d, got %d", tt.lines, tt.want, got)
		}
	}
}

func TestScanContinuation(t *testing.T) {
	lines := []string{"a. start", "one", "", "two", "b. next"}
	text, next := scanContinuation(lines, 1, isMarker)
	if text != "one two" || next != 4 {
		t.Errorf("expected (%q, 4), got (%q, %d)", "one two", text, next)
	}
}
