package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/dgallion1/judgest/internal/doctree"
)

// PDFRenderer lays a judgment out as an A4 PDF. Citation paragraphs are
// set in grey italics and indented.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

var indexIndent = map[doctree.Tier]float64{
	doctree.TierMain:       0,
	doctree.TierRoman:      6,
	doctree.TierLetter:     12,
	doctree.TierSmallRoman: 18,
	doctree.TierPlain:      6,
}

// Render converts the judgment into PDF bytes.
func (r *PDFRenderer) Render(j *doctree.Judgment) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetTitle(Title(j.Metadata), true)
	pdf.AddPage()
	// Core fonts are cp1252; translate curly quotes and dashes.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	left, _, _, _ := pdf.GetMargins()

	m := j.Metadata
	if m.ShowJudgmentHeader {
		renderHeader(pdf, tr, m)
	}

	if len(j.Index) > 0 {
		pdf.SetFont("Times", "B", 13)
		pdf.MultiCell(0, 7, "INDEX", "", "L", false)
		pdf.SetFont("Times", "", 11)
		for _, item := range j.Index {
			pdf.SetX(left + indexIndent[item.Tier])
			pdf.MultiCell(0, 5.5, tr(item.Text), "", "L", false)
		}
		pdf.Ln(4)
	}

	if m.ConvenienceNote != "" {
		pdf.SetFont("Times", "I", 11)
		pdf.MultiCell(0, 5.5, tr(m.ConvenienceNote), "", "L", false)
		pdf.Ln(3)
	}

	for _, n := range j.Body {
		switch node := n.(type) {
		case doctree.SectionHeader:
			pdf.Ln(3)
			pdf.SetFont("Times", "B", 13)
			pdf.MultiCell(0, 7, tr(node.Text), "", "L", false)
			pdf.Ln(1)
		case *doctree.Paragraph:
			renderParagraph(pdf, tr, left, node)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

func (r *PDFRenderer) ContentType() string {
	return "application/pdf"
}

func renderHeader(pdf *gofpdf.Fpdf, tr func(string) string, m doctree.Metadata) {
	pdf.SetFont("Times", "B", 10)
	if m.CitationNumber != "" {
		pdf.MultiCell(0, 5, tr(m.CitationNumber), "", "R", false)
	}
	if m.Reportable {
		pdf.MultiCell(0, 5, "REPORTABLE", "", "R", false)
	}
	if m.CourtName != "" {
		pdf.SetFont("Times", "B", 15)
		pdf.MultiCell(0, 8, tr(m.CourtName), "", "C", false)
	}
	pdf.SetFont("Times", "", 11)
	if m.Jurisdiction != "" {
		pdf.MultiCell(0, 6, tr(m.Jurisdiction), "", "C", false)
	}
	if line := caseLine(m); line != "" {
		pdf.MultiCell(0, 6, tr(line), "", "C", false)
	}
	if m.Petitioner != "" || m.Respondent != "" {
		pdf.Ln(2)
		pdf.SetFont("Times", "B", 12)
		pdf.MultiCell(0, 6, tr(m.Petitioner), "", "C", false)
		pdf.SetFont("Times", "I", 11)
		pdf.MultiCell(0, 6, "v.", "", "C", false)
		pdf.SetFont("Times", "B", 12)
		pdf.MultiCell(0, 6, tr(m.Respondent), "", "C", false)
	}
	if len(m.Bench) > 0 {
		pdf.Ln(2)
		pdf.SetFont("Times", "", 10)
		pdf.MultiCell(0, 5, tr(m.BenchInfo()), "", "C", false)
	}
	if m.PrimaryJudge != "" {
		pdf.SetFont("Times", "B", 11)
		pdf.MultiCell(0, 6, tr(m.PrimaryJudge), "", "L", false)
	}
	pdf.Ln(6)
}

func renderParagraph(pdf *gofpdf.Fpdf, tr func(string) string, left float64, p *doctree.Paragraph) {
	indent, style := 0.0, ""
	if p.IsCitation {
		indent, style = 10, "I"
		pdf.SetTextColor(90, 90, 90)
	}
	pdf.SetFont("Times", style, 11)
	pdf.SetX(left + indent)
	pdf.MultiCell(0, 5.5, tr(p.Number+". "+p.Text), "", "J", false)

	for _, s := range p.SubItems {
		subStyle := ""
		if s.IsCitation {
			subStyle = "I"
		}
		pdf.SetFont("Times", subStyle, 11)
		pdf.SetX(left + indent + 8)
		pdf.MultiCell(0, 5.5, tr(s.Marker+". "+s.Text), "", "J", false)
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(2)
}
