package parser

import "io"

// TextParser handles plain text files. Form feeds separate pages.
type TextParser struct{}

func (p *TextParser) Extract(r io.Reader, filename string) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return splitPages(string(data)), nil
}
