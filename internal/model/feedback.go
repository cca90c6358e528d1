package model

import (
	"encoding/json"
	"strconv"
	"time"
)

type AnswerKind int

const (
	AnswerNumber AnswerKind = iota
	AnswerText
	AnswerOption
	AnswerBool
)

// Answer is a single response to a campaign field. It serializes as
// the raw scalar so persisted slots keep the original wire shape
// (numbers for ratings, strings for text and options, booleans for
// yes/no).
type Answer struct {
	Kind   AnswerKind
	Number float64
	Text   string
	Bool   bool
}

func NumberAnswer(v float64) Answer { return Answer{Kind: AnswerNumber, Number: v} }
func TextAnswer(v string) Answer    { return Answer{Kind: AnswerText, Text: v} }
func OptionAnswer(v string) Answer  { return Answer{Kind: AnswerOption, Text: v} }
func BoolAnswer(v bool) Answer      { return Answer{Kind: AnswerBool, Bool: v} }

// Zero reports whether the answer is empty for required-field checks:
// a zero rating, blank text, or no selection.
func (a Answer) Zero() bool {
	switch a.Kind {
	case AnswerNumber:
		return a.Number == 0
	case AnswerText, AnswerOption:
		return a.Text == ""
	}
	return false
}

// String renders the answer the way the export expects: numbers
// without a trailing decimal, booleans as true/false.
func (a Answer) String() string {
	switch a.Kind {
	case AnswerNumber:
		return strconv.FormatFloat(a.Number, 'f', -1, 64)
	case AnswerBool:
		return strconv.FormatBool(a.Bool)
	default:
		return a.Text
	}
}

func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case AnswerNumber:
		return json.Marshal(a.Number)
	case AnswerBool:
		return json.Marshal(a.Bool)
	default:
		return json.Marshal(a.Text)
	}
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case float64:
		*a = NumberAnswer(v)
	case bool:
		*a = BoolAnswer(v)
	case string:
		*a = TextAnswer(v)
	default:
		*a = TextAnswer("")
	}
	return nil
}

// Feedback is one submitted evaluation. Records are append-only; a
// deleted campaign leaves its feedback (and the campaign linkage
// inside the submission key) untouched.
type Feedback struct {
	ID             string            `json:"id"`
	Course         string            `json:"course"`
	Instructor     string            `json:"instructor"`
	Rating         float64           `json:"rating"`
	DynamicRatings map[string]Answer `json:"dynamicRatings,omitempty"`
	Remarks        string            `json:"remarks,omitempty"`
	Timestamp      time.Time         `json:"timestamp"`
}
