package session

import (
	"math"
	"testing"
)

func testPool(n int) []Question {
	pool := make([]Question, n)
	for i := range pool {
		pool[i] = Question{
			ID:      string(rune('A' + i%26)),
			Prompt:  "prompt",
			Options: []string{"one", "two", "three", "four"},
			Answer:  i % 4,
		}
	}
	return pool
}

// twoQuestionPool returns the fixed two-question pool used by the
// scoring scenarios: Q1 correct option 0, Q2 correct option 1.
func twoQuestionPool() []Question {
	return []Question{
		{ID: "q1", Prompt: "first", Options: []string{"a", "b", "c"}, Answer: 0},
		{ID: "q2", Prompt: "second", Options: []string{"a", "b", "c"}, Answer: 1},
	}
}

func checkCounters(t *testing.T, s *Session) {
	t.Helper()

	if s.Correct+s.Wrong != s.Completed {
		t.Errorf("Correct(%d) + Wrong(%d) != Completed(%d)", s.Correct, s.Wrong, s.Completed)
	}

	answered := 0
	for _, q := range s.Questions {
		if q.Attempt.Answered {
			answered++
			if q.Attempt.Choice < 0 {
				t.Error("answered attempt has Choice == -1")
			}
		} else if q.Attempt.Choice != -1 {
			t.Errorf("unanswered attempt has Choice = %d, want -1", q.Attempt.Choice)
		}
	}
	if answered != s.Completed {
		t.Errorf("answered count = %d, Completed = %d", answered, s.Completed)
	}

	want := pointsPerSession * float64(s.Correct) / float64(len(s.Questions))
	if math.Abs(s.Points-want) > 1e-9 {
		t.Errorf("Points = %v, want %v", s.Points, want)
	}
}

func TestNew_CopiesPool(t *testing.T) {
	pool := twoQuestionPool()
	s := New(pool, 0)

	s.Questions[0].Options[0] = "mutated"
	s.Questions[0].Prompt = "mutated"

	for _, q := range pool {
		if q.Prompt == "mutated" {
			t.Error("session mutation reached the raw pool prompt")
		}
		for _, opt := range q.Options {
			if opt == "mutated" {
				t.Error("session mutation reached the raw pool options")
			}
		}
	}
}

func TestNew_EmptyPool(t *testing.T) {
	s := New(nil, 10)

	if !s.Empty() {
		t.Error("expected Empty() for nil pool")
	}
	if s.Current() != nil {
		t.Error("expected nil Current() for empty session")
	}
	if s.Finished() {
		t.Error("empty session must not report Finished")
	}
	if s.Advance() || s.Retreat() {
		t.Error("navigation must be a no-op on an empty session")
	}
	if s.RecordAnswer(0) {
		t.Error("RecordAnswer must be a no-op on an empty session")
	}
}

func TestNew_FreshState(t *testing.T) {
	s := New(testPool(5), 0)

	if s.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", s.Cursor)
	}
	if s.Review {
		t.Error("new quiz session must not be in review mode")
	}
	if s.Correct != 0 || s.Wrong != 0 || s.Completed != 0 || s.Points != 0 {
		t.Error("aggregates must start at zero")
	}
	for i, q := range s.Questions {
		if q.Attempt.Answered || q.Attempt.Choice != -1 {
			t.Errorf("question %d: attempt not fresh: %+v", i, q.Attempt)
		}
		if q.Prior != nil {
			t.Errorf("question %d: unexpected prior attempt", i)
		}
	}
	if s.ID == "" {
		t.Error("expected a session ID")
	}
}

func TestRecordAnswer_Scoring(t *testing.T) {
	s := New(twoQuestionPool(), 2)
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}

	// Answer whichever question is first correctly, the second wrongly.
	first := s.Current()
	if !s.RecordAnswer(first.Answer) {
		t.Fatal("expected first RecordAnswer to apply")
	}
	if !first.Attempt.Correct {
		t.Error("expected first attempt to be correct")
	}
	if s.Correct != 1 || s.Completed != 1 {
		t.Errorf("aggregates after first answer: correct=%d completed=%d", s.Correct, s.Completed)
	}
	if math.Abs(s.Points-50.0) > 1e-9 {
		t.Errorf("Points = %v, want 50.0", s.Points)
	}
	checkCounters(t, s)

	if !s.Advance() {
		t.Fatal("expected Advance after answering")
	}
	second := s.Current()
	wrong := (second.Answer + 1) % len(second.Options)
	if !s.RecordAnswer(wrong) {
		t.Fatal("expected second RecordAnswer to apply")
	}
	if second.Attempt.Correct {
		t.Error("expected second attempt to be wrong")
	}
	if s.Wrong != 1 || s.Completed != 2 {
		t.Errorf("aggregates after second answer: wrong=%d completed=%d", s.Wrong, s.Completed)
	}
	if math.Abs(s.Points-50.0) > 1e-9 {
		t.Errorf("Points = %v, want 50.0 (wrong answer must not change score)", s.Points)
	}
	checkCounters(t, s)

	// All answered, at last question: completion is observable, the
	// cursor stays put.
	if !s.Finished() {
		t.Error("expected Finished with all questions answered")
	}
	if s.Advance() {
		t.Error("Advance at last question must not move the cursor")
	}
	if s.Cursor != 1 {
		t.Errorf("Cursor = %d, want 1", s.Cursor)
	}
}

func TestRecordAnswer_AnswerOnce(t *testing.T) {
	s := New(twoQuestionPool(), 2)
	q := s.Current()

	if !s.RecordAnswer(q.Answer) {
		t.Fatal("expected first RecordAnswer to apply")
	}
	before := *q
	card := s.Scorecard()

	if s.RecordAnswer((q.Answer + 1) % len(q.Options)) {
		t.Error("second RecordAnswer on the same question must be a no-op")
	}
	if q.Attempt != before.Attempt {
		t.Errorf("attempt changed: %+v -> %+v", before.Attempt, q.Attempt)
	}
	if s.Scorecard() != card {
		t.Errorf("aggregates changed: %+v -> %+v", card, s.Scorecard())
	}
}

func TestRecordAnswer_FullCorrectCapsAtHundred(t *testing.T) {
	s := New(testPool(7), 0)
	for {
		q := s.Current()
		s.RecordAnswer(q.Answer)
		if !s.Advance() {
			break
		}
	}

	if !s.Finished() {
		t.Fatal("expected session to finish")
	}
	if s.Points > pointsPerSession+1e-9 {
		t.Errorf("Points = %v, want <= 100", s.Points)
	}
	if math.Abs(s.Points-pointsPerSession) > 1e-9 {
		t.Errorf("Points = %v, want 100 for an all-correct pass", s.Points)
	}
	checkCounters(t, s)
}

func TestNavigation_GatedOnAnswer(t *testing.T) {
	s := New(testPool(3), 0)

	if s.CanAdvance() {
		t.Error("must not advance past an unanswered question")
	}
	if s.Advance() {
		t.Error("Advance must refuse while unanswered")
	}
	if s.Retreat() {
		t.Error("Retreat at the first question must not move")
	}

	s.RecordAnswer(s.Current().Answer)
	if !s.Advance() {
		t.Error("expected Advance after answering")
	}
	if !s.Retreat() {
		t.Error("Retreat must always be allowed off the first question")
	}
	if s.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", s.Cursor)
	}
}

func TestJump_Bounds(t *testing.T) {
	s := New(testPool(3), 0)

	if s.Jump(-1) || s.Jump(3) {
		t.Error("Jump out of range must refuse")
	}
	if !s.Jump(2) {
		t.Error("Jump in range must move")
	}
	if s.Cursor != 2 {
		t.Errorf("Cursor = %d, want 2", s.Cursor)
	}
}

func TestScorecard_Summary(t *testing.T) {
	s := New(twoQuestionPool(), 2)
	s.RecordAnswer(s.Current().Answer)

	card := s.Scorecard()
	if card.Total != 2 || card.Correct != 1 || card.Completed != 1 {
		t.Errorf("unexpected scorecard: %+v", card)
	}
	if card.FormatPoints() != "50.00" {
		t.Errorf("FormatPoints = %q, want 50.00", card.FormatPoints())
	}
	if card.Summary() == "" || card.FinalSummary() == "" {
		t.Error("expected non-empty summary lines")
	}
}
