package render

import (
	"encoding/json"
	"fmt"

	"github.com/dgallion1/judgest/internal/doctree"
)

// JSONRenderer emits the parsed structure as indented JSON.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

func (r *JSONRenderer) Render(j *doctree.Judgment) ([]byte, error) {
	data, err := json.MarshalIndent(j, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

func (r *JSONRenderer) ContentType() string {
	return "application/json"
}
