package toc

import (
	"fmt"
	"testing"

	"github.com/dgallion1/judgest/internal/doctree"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		line   string
		want   doctree.Tier
		wantOK bool
	}{
		{"A. FACTS", doctree.TierMain, true},
		{"I. Introduction", doctree.TierMain, true},
		{"II. Jurisdiction", doctree.TierRoman, true},
		{"a. Facts", doctree.TierLetter, true},
		{"i. Background", doctree.TierLetter, true},
		{"ii. Background", doctree.TierSmallRoman, true},
		{"(i) Background", doctree.TierPlain, true},
		{"Facts", "", false},
		{"For the reasons above", "", false},
	}
	for _, tt := range tests {
		got, ok := Classify(tt.line)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Classify(%q): expected (%q, %v), got (%q, %v)", tt.line, tt.want, tt.wantOK, got, ok)
		}
	}
}

func TestStripPageRef(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"A. FACTS ........ 3", "A. FACTS"},
		{"B. ANALYSIS...12", "B. ANALYSIS"},
		{"C. CONCLUSION", "C. CONCLUSION"},
	}
	for _, tt := range tests {
		if got := StripPageRef(tt.in); got != tt.want {
			t.Errorf("StripPageRef(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestExtract_IndexBlock(t *testing.T) {
	lines := []string{
		"IN THE SUPREME COURT OF INDIA",
		"INDEX",
		"A. FACTS ........ 2",
		"II. Jurisdiction ........ 4",
		"a. Facts in brief",
		"For the Appellant",
		"1. Leave granted.",
		"B. NOT IN INDEX",
	}
	got := Extract(lines, DefaultLimits())
	want := []doctree.IndexItem{
		{Text: "A. FACTS", Tier: doctree.TierMain},
		{Text: "II. Jurisdiction", Tier: doctree.TierRoman},
		{Text: "a. Facts in brief", Tier: doctree.TierLetter},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item[%d]: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestExtract_NoIndexHeader(t *testing.T) {
	lines := []string{"A. FACTS", "1. Leave granted."}
	if got := Extract(lines, DefaultLimits()); len(got) != 0 {
		t.Errorf("expected no items without an INDEX header, got %+v", got)
	}
}

func TestExtract_LongIndexLineIsNotHeader(t *testing.T) {
	lines := []string{"The index of cases relied upon is annexed", "A. FACTS"}
	if got := Extract(lines, DefaultLimits()); len(got) != 0 {
		t.Errorf("expected long line not to open the index, got %+v", got)
	}
}

func TestExtract_Capped(t *testing.T) {
	lines := []string{"INDEX"}
	for i := 0; i < 40; i++ {
		lines = append(lines, fmt.Sprintf("Heading number %d", i))
	}
	got := Extract(lines, DefaultLimits())
	if len(got) != 25 {
		t.Fatalf("expected 25 items, got %d", len(got))
	}
	if got[0].Text != "Heading number 0" || got[24].Text != "Heading number 24" {
		t.Errorf("expected first 25 items in order, got %q .. %q", got[0].Text, got[24].Text)
	}
}

func TestExtract_CustomLimits(t *testing.T) {
	lines := []string{"INDEX", "A. ONE", "B. TWO", "C. THREE", "D. FOUR"}
	got := Extract(lines, Limits{MaxItems: 2, ScanLimit: 3, HeaderMaxLen: 25})
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
}
