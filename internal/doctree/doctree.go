package doctree

import (
	"encoding/json"
	"html/template"
	"strings"
)

// Judgment is the root of a parsed court judgment.
type Judgment struct {
	Metadata Metadata    // Case header fields
	Index    []IndexItem // Table of contents, document order
	Body     []BodyNode  // Section headers and numbered paragraphs, document order
}

// Metadata is the case header. Every field defaults to empty when no heuristic matched.
type Metadata struct {
	CitationNumber     string   `json:"citation_number"`
	Reportable         bool     `json:"reportable"`
	CourtName          string   `json:"court_name"`
	Jurisdiction       string   `json:"jurisdiction"`
	CaseNumber         string   `json:"case_number"`
	JudgmentDate       string   `json:"judgment_date"` // DD-MM-YYYY or empty
	Petitioner         string   `json:"petitioner"`
	Respondent         string   `json:"respondent"`
	Bench              []string `json:"bench"`
	PrimaryJudge       string   `json:"primary_judge"`
	ConvenienceNote    string   `json:"convenience_note"`
	ShowJudgmentHeader bool     `json:"show_judgment_header"`
}

// NewMetadata returns metadata with its defaults applied.
func NewMetadata() Metadata {
	return Metadata{ShowJudgmentHeader: true}
}

// BenchInfo joins the bench names with line breaks for display.
func (m Metadata) BenchInfo() string {
	return strings.Join(m.Bench, "\n")
}

// Tier tags the marker convention of an index entry or sub-item.
type Tier string

const (
	TierMain       Tier = "main"
	TierRoman      Tier = "roman"
	TierLetter     Tier = "letter"
	TierSmallRoman Tier = "smallRoman"
	TierPlain      Tier = "plain"
)

// IndexItem is one table-of-contents entry.
type IndexItem struct {
	Text string `json:"text"`
	Tier Tier   `json:"tier"`
}

// BodyNode is either a SectionHeader or a *Paragraph.
type BodyNode interface {
	Kind() string
	bodyNode()
}

// SectionHeader is a lettered heading such as "A. FACTS".
type SectionHeader struct {
	Text string `json:"text"`
}

func (SectionHeader) Kind() string { return "section" }
func (SectionHeader) bodyNode()    {}

// Paragraph is a top-level numbered paragraph. Sub-items are flat: they
// belong to the paragraph, never to each other.
type Paragraph struct {
	Number     string        `json:"number"` // numeral text as written
	Text       string        `json:"text"`   // merged plain text
	HTML       template.HTML `json:"html"`   // inline-formatted, HTML-safe text
	IsCitation bool          `json:"is_citation"`
	SubItems   []SubItem     `json:"sub_items"`
}

func (*Paragraph) Kind() string { return "paragraph" }
func (*Paragraph) bodyNode()    {}

// SubItem is a roman, letter or small-roman point within a paragraph.
type SubItem struct {
	Tier       Tier          `json:"tier"`
	Marker     string        `json:"marker"`
	Text       string        `json:"text"`
	HTML       template.HTML `json:"html"`
	IsCitation bool          `json:"is_citation"`
}

// Paragraphs returns the numbered paragraphs of the body in order.
func (j *Judgment) Paragraphs() []*Paragraph {
	var out []*Paragraph
	for _, n := range j.Body {
		if p, ok := n.(*Paragraph); ok {
			out = append(out, p)
		}
	}
	return out
}

// MarshalJSON tags every body node with its kind.
func (j *Judgment) MarshalJSON() ([]byte, error) {
	type taggedNode struct {
		Kind string `json:"kind"`
		Node any    `json:"node"`
	}
	body := make([]taggedNode, 0, len(j.Body))
	for _, n := range j.Body {
		body = append(body, taggedNode{Kind: n.Kind(), Node: n})
	}
	index := j.Index
	if index == nil {
		index = []IndexItem{}
	}
	return json.Marshal(struct {
		Metadata Metadata     `json:"metadata"`
		Index    []IndexItem  `json:"index"`
		Body     []taggedNode `json:"body"`
	}{j.Metadata, index, body})
}
