package response

import (
	"encoding/json"
	"fmt"
)

// EmotionAnalysis is a BeyondVerbal analysis of a recorded utterance, split
// into timed segments.
type EmotionAnalysis struct {
	RecordingID string    `json:"recordingId,omitempty"`
	Segments    []Segment `json:"segments"`
}

// Segment is one timed slice of the recording. Offset and Duration are in
// milliseconds.
type Segment struct {
	Offset   float64  `json:"offset"`
	Duration float64  `json:"duration"`
	Analysis Analysis `json:"analysis"`
}

// End returns the offset at which the segment finishes.
func (s Segment) End() float64 {
	return s.Offset + s.Duration
}

type Analysis struct {
	Temper  Dimension `json:"Temper"`
	Valence Dimension `json:"Valence"`
	Arousal Dimension `json:"Arousal"`
	Mood    Mood      `json:"Mood"`
}

// Dimension is a scored emotional axis with its coarse group, e.g. "low".
type Dimension struct {
	Value string `json:"Value"`
	Group string `json:"Group"`
}

type Mood struct {
	Composite MoodPair `json:"Composite"`
}

type MoodPair struct {
	Primary   Phrase `json:"Primary"`
	Secondary Phrase `json:"Secondary"`
}

type Phrase struct {
	Phrase string `json:"Phrase"`
}

// ParseEmotionAnalysis parses a JSON BeyondVerbal analysis body.
func ParseEmotionAnalysis(body []byte) (*EmotionAnalysis, error) {
	var response EmotionAnalysis
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse emotion analysis: %w", err)
	}
	return &response, nil
}
