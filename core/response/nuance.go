package response

import (
	"encoding/json"
	"fmt"
)

// Interpretation is a Nuance NLU result: the recognized intent and the
// concepts extracted from the utterance, keyed by concept name.
type Interpretation struct {
	Literal    string               `json:"literal"`
	Intent     string               `json:"intent,omitempty"`
	Confidence float64              `json:"confidence,omitempty"`
	Concepts   map[string][]Concept `json:"concepts,omitempty"`
}

// Concept is one span of the utterance mapped to a concept value.
type Concept struct {
	Literal string   `json:"literal"`
	Value   string   `json:"value"`
	Ranges  [][2]int `json:"ranges,omitempty"` // [start, end) character offsets into the literal
}

// Value returns the value of the first concept with the given name, or "".
func (i *Interpretation) Value(name string) string {
	if cs := i.Concepts[name]; len(cs) > 0 {
		return cs[0].Value
	}
	return ""
}

// ParseInterpretation parses a JSON Nuance NLU response body.
func ParseInterpretation(body []byte) (*Interpretation, error) {
	var response Interpretation
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse nuance interpretation: %w", err)
	}
	return &response, nil
}
