package service

import (
	"errors"
	"testing"

	"edu_feedback_backend/internal/model"
	"edu_feedback_backend/internal/util"
)

func TestSubmissionKeyNormalization(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	got := e.submission.Key("C1", "Data Base Systems", "Dr Abhinav")
	want := "fb-c1-data-base-systems-dr-abhinav"
	if got != want {
		t.Fatalf("key = %q, want %q", got, want)
	}
	// Triples that normalize alike are indistinguishable.
	if other := e.submission.Key("c1", "data  base systems", "DR ABHINAV"); other != got {
		t.Fatalf("normalized keys differ: %q vs %q", other, got)
	}
}

func TestSubmitRecordsCountLedgerAndSession(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	campaign := ratingCampaign("c1")
	key := e.submission.Key("c1", "DBMS", "Abhinav")
	input := SubmissionInput{
		Course:     "DBMS",
		Instructor: "Abhinav",
		Rating:     3,
		Answers:    map[string]model.Answer{"q1": model.NumberAnswer(3)},
		Remarks:    "Good pacing",
	}

	if e.submission.AlreadySubmitted(e.sess, key) {
		t.Fatal("fresh session reports key as submitted")
	}
	if err := e.submission.Submit(e.sess, campaign, key, input); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if !e.submission.AlreadySubmitted(e.sess, key) {
		t.Fatal("AlreadySubmitted = false after submit")
	}
	if got := e.feedbacks.Count(key); got != 1 {
		t.Fatalf("aggregate count = %d, want 1", got)
	}

	ledger := e.feedbacks.All()
	if len(ledger) != 1 {
		t.Fatalf("ledger = %d records, want 1", len(ledger))
	}
	fb := ledger[0]
	if fb.Course != "DBMS" || fb.Instructor != "Abhinav" || fb.Rating != 3 {
		t.Fatalf("record = %+v", fb)
	}
	if fb.ID == "" || fb.Timestamp.IsZero() {
		t.Fatalf("record missing generated id or timestamp: %+v", fb)
	}
}

// Submit itself is not re-entrant-safe: a repeated submit for the
// same key is accepted and counted again. Dedup is the caller's
// contract via AlreadySubmitted.
func TestSubmitDoesNotDedupItself(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	campaign := ratingCampaign("c2")
	key := e.submission.Key("c2", "OS", "Raghavendra")
	input := SubmissionInput{
		Course:     "OS",
		Instructor: "Raghavendra",
		Answers:    map[string]model.Answer{"q1": model.NumberAnswer(2)},
	}

	for i := 0; i < 2; i++ {
		if e.submission.AlreadySubmitted(e.sess, key) && i == 1 {
			// The caller contract: this is where the presentation
			// layer must stop. The engine keeps going if it doesn't.
			break
		}
		if err := e.submission.Submit(e.sess, campaign, key, input); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}
	if got := e.feedbacks.Count(key); got != 1 {
		t.Fatalf("count with a well-behaved caller = %d, want 1", got)
	}

	// A misbehaving caller that skips the check gets counted twice.
	if err := e.submission.Submit(e.sess, campaign, key, input); err != nil {
		t.Fatalf("repeat submit: %v", err)
	}
	if got := e.feedbacks.Count(key); got != 2 {
		t.Fatalf("count after skipped check = %d, want 2", got)
	}
	if got := len(e.sess.Submitted); got != 1 {
		t.Fatalf("submitted set size = %d, want 1 (set union)", got)
	}
}

func TestSubmitRejectsMissingRequiredRatings(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	campaign := &model.Campaign{
		ID: "c3",
		Fields: []model.Field{
			{ID: "q1", Type: model.FieldRating, Required: true},
			{ID: "q2", Type: model.FieldText, Required: true},
			{ID: "q3", Type: model.FieldText, Required: false},
		},
	}
	key := e.submission.Key("c3", "CIS", "Ganesh")

	cases := []struct {
		name    string
		answers map[string]model.Answer
		wantErr bool
	}{
		{"all required answered", map[string]model.Answer{
			"q1": model.NumberAnswer(4),
			"q2": model.TextAnswer("clear lectures"),
		}, false},
		{"zero rating", map[string]model.Answer{
			"q1": model.NumberAnswer(0),
			"q2": model.TextAnswer("x"),
		}, true},
		{"missing text", map[string]model.Answer{
			"q1": model.NumberAnswer(4),
		}, true},
		{"optional may be absent", map[string]model.Answer{
			"q1": model.NumberAnswer(1),
			"q2": model.TextAnswer("ok"),
		}, false},
	}
	for _, tc := range cases {
		err := e.submission.Submit(e.sess, campaign, key, SubmissionInput{
			Course: "CIS", Instructor: "Ganesh", Answers: tc.answers,
		})
		if tc.wantErr && !errors.Is(err, util.ErrMissingRatings) {
			t.Fatalf("%s: err = %v, want ErrMissingRatings", tc.name, err)
		}
		if !tc.wantErr && err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
	}
}

func TestSubmitWithoutSchemaNeedsHeadlineRating(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	key := e.submission.Key("c4", "AIML", "Sai")
	err := e.submission.Submit(e.sess, nil, key, SubmissionInput{Course: "AIML", Instructor: "Sai"})
	if !errors.Is(err, util.ErrMissingRatings) {
		t.Fatalf("err = %v, want ErrMissingRatings", err)
	}
	if err := e.submission.Submit(e.sess, nil, key, SubmissionInput{Course: "AIML", Instructor: "Sai", Rating: 4}); err != nil {
		t.Fatalf("submit with headline rating: %v", err)
	}
}

// Without an explicit rating the first numeric answer in schema order
// becomes the headline rating.
func TestHeadlineRatingDerivedInSchemaOrder(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	campaign := &model.Campaign{
		ID: "c5",
		Fields: []model.Field{
			{ID: "remark", Type: model.FieldText, Required: false},
			{ID: "r1", Type: model.FieldRating, Required: true},
			{ID: "r2", Type: model.FieldRating, Required: true},
		},
	}
	key := e.submission.Key("c5", "FSAD", "Ramu")
	err := e.submission.Submit(e.sess, campaign, key, SubmissionInput{
		Course:     "FSAD",
		Instructor: "Ramu",
		Answers: map[string]model.Answer{
			"remark": model.TextAnswer("solid"),
			"r1":     model.NumberAnswer(2),
			"r2":     model.NumberAnswer(4),
		},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if got := e.feedbacks.All()[0].Rating; got != 2 {
		t.Fatalf("derived rating = %v, want 2 (first numeric in schema order)", got)
	}
}

// Two sessions are independent: one student's submitted set never
// leaks into another's.
func TestSessionsAreIndependent(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	campaign := ratingCampaign("c6")
	key := e.submission.Key("c6", "DBMS", "Abhinav")
	input := SubmissionInput{
		Course: "DBMS", Instructor: "Abhinav",
		Answers: map[string]model.Answer{"q1": model.NumberAnswer(3)},
	}

	anya := &model.Session{}
	ben := &model.Session{}
	if err := e.submission.Submit(anya, campaign, key, input); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !e.submission.AlreadySubmitted(anya, key) {
		t.Fatal("submitting session lost its key")
	}
	if e.submission.AlreadySubmitted(ben, key) {
		t.Fatal("other session sees a key it never used")
	}
	if got := e.feedbacks.Count(key); got != 1 {
		t.Fatalf("aggregate count = %d, want 1", got)
	}
}
