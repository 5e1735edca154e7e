package response_test

import (
	"testing"

	"github.com/tailored-agentic-units/speechgate/core/response"
)

func TestParseInterpretation(t *testing.T) {
	body := `{
		"literal": "turn on the kitchen lights",
		"intent": "lights_on",
		"confidence": 0.92,
		"concepts": {
			"room": [{"literal": "kitchen", "value": "KITCHEN", "ranges": [[12, 19]]}]
		}
	}`

	resp, err := response.ParseInterpretation([]byte(body))
	if err != nil {
		t.Fatalf("ParseInterpretation failed: %v", err)
	}

	if resp.Intent != "lights_on" {
		t.Errorf("got intent %q, want %q", resp.Intent, "lights_on")
	}
	if got := resp.Value("room"); got != "KITCHEN" {
		t.Errorf("got room %q, want %q", got, "KITCHEN")
	}
	if got := resp.Value("time"); got != "" {
		t.Errorf("got time %q, want empty string", got)
	}

	c := resp.Concepts["room"][0]
	if len(c.Ranges) != 1 || c.Ranges[0] != [2]int{12, 19} {
		t.Errorf("got ranges %v, want [[12 19]]", c.Ranges)
	}
	if resp.Literal[c.Ranges[0][0]:c.Ranges[0][1]] != c.Literal {
		t.Errorf("range does not address %q in %q", c.Literal, resp.Literal)
	}
}

func TestParseInterpretation_InvalidJSON(t *testing.T) {
	if _, err := response.ParseInterpretation([]byte("{invalid")); err == nil {
		t.Error("expected error for invalid JSON, got nil")
	}
}

func TestParseEmotionAnalysis(t *testing.T) {
	body := `{
		"recordingId": "rec-1",
		"segments": [
			{
				"offset": 0,
				"duration": 10000,
				"analysis": {
					"Temper": {"Value": "21.5", "Group": "low"},
					"Valence": {"Value": "40.0", "Group": "neutral"},
					"Arousal": {"Value": "66.2", "Group": "high"},
					"Mood": {"Composite": {"Primary": {"Phrase": "Creativeness"}, "Secondary": {"Phrase": "Passion"}}}
				}
			},
			{"offset": 10000, "duration": 5000, "analysis": {}}
		]
	}`

	resp, err := response.ParseEmotionAnalysis([]byte(body))
	if err != nil {
		t.Fatalf("ParseEmotionAnalysis failed: %v", err)
	}

	if len(resp.Segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(resp.Segments))
	}
	first := resp.Segments[0]
	if first.Analysis.Arousal.Group != "high" {
		t.Errorf("got arousal group %q, want high", first.Analysis.Arousal.Group)
	}
	if first.Analysis.Mood.Composite.Primary.Phrase != "Creativeness" {
		t.Errorf("got primary mood %q, want Creativeness", first.Analysis.Mood.Composite.Primary.Phrase)
	}
	if got := resp.Segments[1].End(); got != 15000 {
		t.Errorf("got end %v, want 15000", got)
	}
}

func TestParseEmotionAnalysis_InvalidJSON(t *testing.T) {
	if _, err := response.ParseEmotionAnalysis([]byte(`{"segments": "none"}`)); err == nil {
		t.Error("expected error for mistyped segments, got nil")
	}
}

func TestParseQueryResult(t *testing.T) {
	body := `<?xml version="1.0" encoding="UTF-8"?>
<queryresult success="true" error="false" numpods="2">
	<warnings count="1">
		<spellcheck word="pluto" suggestion="Pluto" text="Interpreting &quot;pluto&quot; as &quot;Pluto&quot;"/>
	</warnings>
</queryresult>`

	resp, err := response.ParseQueryResult([]byte(body))
	if err != nil {
		t.Fatalf("ParseQueryResult failed: %v", err)
	}

	if !resp.Success {
		t.Error("got success false, want true")
	}
	if len(resp.Warnings) != 1 {
		t.Fatalf("got %d spellchecks, want 1", len(resp.Warnings))
	}

	sc := resp.Warnings[0]
	if sc.Word != "pluto" || sc.Suggestion != "Pluto" {
		t.Errorf("got %q -> %q, want pluto -> Pluto", sc.Word, sc.Suggestion)
	}
	if sc.Text != `Interpreting "pluto" as "Pluto"` {
		t.Errorf("got text %q", sc.Text)
	}
}

func TestParseQueryResult_InvalidXML(t *testing.T) {
	if _, err := response.ParseQueryResult([]byte("<queryresult")); err == nil {
		t.Error("expected error for invalid XML, got nil")
	}
}
