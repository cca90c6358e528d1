package model

import (
	"encoding/json"
	"testing"
)

// Persisted answers keep the original wire shape: raw scalars, not
// tagged objects.
func TestAnswerSerializesAsRawScalar(t *testing.T) {
	t.Parallel()

	fb := Feedback{
		ID: "fb-1",
		DynamicRatings: map[string]Answer{
			"f1": NumberAnswer(3),
			"f2": OptionAnswer("Good"),
			"f3": BoolAnswer(true),
		},
	}
	raw, err := json.Marshal(fb)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var generic struct {
		DynamicRatings map[string]any `json:"dynamicRatings"`
	}
	if err := json.Unmarshal(raw, &generic); err != nil {
		t.Fatalf("unmarshal generic: %v", err)
	}
	if v, ok := generic.DynamicRatings["f1"].(float64); !ok || v != 3 {
		t.Fatalf("f1 = %v (%T), want 3", generic.DynamicRatings["f1"], generic.DynamicRatings["f1"])
	}
	if v, ok := generic.DynamicRatings["f2"].(string); !ok || v != "Good" {
		t.Fatalf("f2 = %v, want Good", generic.DynamicRatings["f2"])
	}
	if v, ok := generic.DynamicRatings["f3"].(bool); !ok || !v {
		t.Fatalf("f3 = %v, want true", generic.DynamicRatings["f3"])
	}

	var back Feedback
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := back.DynamicRatings["f1"]; got.Kind != AnswerNumber || got.Number != 3 {
		t.Fatalf("f1 reloaded = %+v", got)
	}
	if got := back.DynamicRatings["f3"]; got.Kind != AnswerBool || !got.Bool {
		t.Fatalf("f3 reloaded = %+v", got)
	}
}

func TestAnswerZeroAndString(t *testing.T) {
	t.Parallel()

	if !NumberAnswer(0).Zero() || NumberAnswer(2).Zero() {
		t.Fatal("numeric Zero misbehaves")
	}
	if !TextAnswer("").Zero() || TextAnswer("x").Zero() {
		t.Fatal("text Zero misbehaves")
	}
	if got := NumberAnswer(3).String(); got != "3" {
		t.Fatalf("String = %q, want 3", got)
	}
	if got := NumberAnswer(3.5).String(); got != "3.5" {
		t.Fatalf("String = %q, want 3.5", got)
	}
	if got := BoolAnswer(true).String(); got != "true" {
		t.Fatalf("String = %q, want true", got)
	}
}

func TestCampaignDeadlineDate(t *testing.T) {
	t.Parallel()

	c := Campaign{Deadline: "2026-09-07"}
	d, ok := c.DeadlineDate()
	if !ok || d.Year() != 2026 || d.Month() != 9 || d.Day() != 7 {
		t.Fatalf("DeadlineDate = %v, ok=%v", d, ok)
	}

	for _, bad := range []string{"", "soon", "07/09/2026"} {
		c := Campaign{Deadline: bad}
		if _, ok := c.DeadlineDate(); ok {
			t.Fatalf("DeadlineDate(%q) ok = true", bad)
		}
	}
}
