package response

import (
	"encoding/xml"
	"fmt"
)

// QueryResult is the subset of a WolframAlpha query result the assistant
// reads back: the spelling corrections applied to the question.
type QueryResult struct {
	XMLName  xml.Name     `xml:"queryresult"`
	Success  bool         `xml:"success,attr"`
	Warnings []SpellCheck `xml:"warnings>spellcheck"`
}

// SpellCheck reports that WolframAlpha interpreted Word as Suggestion. Text is
// the human-readable notice.
type SpellCheck struct {
	Word       string `xml:"word,attr"`
	Suggestion string `xml:"suggestion,attr"`
	Text       string `xml:"text,attr"`
}

// ParseQueryResult parses an XML WolframAlpha query result body.
func ParseQueryResult(body []byte) (*QueryResult, error) {
	var response QueryResult
	if err := xml.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse wolframalpha result: %w", err)
	}
	return &response, nil
}
