package parser

import (
	"strings"
	"testing"
)

func TestHTMLParser_BlocksBecomeLines(t *testing.T) {
	input := `<html><head><title>t</title><style>p{}</style></head><body>
<nav>Home | About</nav>
<p>IN THE SUPREME COURT OF INDIA</p>
<div><p>1. The appeal is allowed.</p><p>2. Costs<br>awarded.</p></div>
<script>var x = 1;</script>
<footer>Printed by site</footer>
</body></html>`
	p := &HTMLParser{}
	pages, err := p.Extract(strings.NewReader(input), "j.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
	want := "IN THE SUPREME COURT OF INDIA\n1. The appeal is allowed.\n2. Costs\nawarded."
	if pages[0] != want {
		t.Errorf("expected %q, got %q", want, pages[0])
	}
}

func TestHTMLParser_LooseText(t *testing.T) {
	input := `<body><div>REPORTABLE</div><div>1. Leave granted.</div></body>`
	p := &HTMLParser{}
	pages, err := p.Extract(strings.NewReader(input), "j.htm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pages[0] != "REPORTABLE\n1. Leave granted." {
		t.Errorf("got %q", pages[0])
	}
}

func TestHTMLParser_KeepsCaptionHeader(t *testing.T) {
	input := `<body>
<header><p>IN THE SUPREME COURT OF INDIA</p><p>CIVIL APPEAL NO. 42 OF 2024</p></header>
<p>1. Leave granted.</p>
<footer>Page 1</footer>
</body>`
	p := &HTMLParser{}
	pages, err := p.Extract(strings.NewReader(input), "j.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "IN THE SUPREME COURT OF INDIA\nCIVIL APPEAL NO. 42 OF 2024\n1. Leave granted."
	if pages[0] != want {
		t.Errorf("expected %q, got %q", want, pages[0])
	}
}
