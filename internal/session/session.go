package session

import "github.com/google/uuid"

// pointsPerSession is the score pool one session distributes evenly
// across its questions.
const pointsPerSession = 100.0

// SessionQuestion pairs a question copy with its session-scoped state.
type SessionQuestion struct {
	Question

	// Attempt is the live answer state for this session.
	Attempt Attempt

	// Prior holds the attempt from the pass that preceded a review
	// session, so review rendering can show the original outcome while
	// Attempt stays untouched. Nil outside review sessions.
	Prior *Attempt

	// Order is the display permutation of option indices for this
	// session. Order[i] is the original index of the option shown in
	// position i.
	Order []int
}

// Session is one run-through of an ordered set of questions with live
// scoring. All mutation happens through its methods, synchronously on
// one goroutine; there is never more than one active session.
type Session struct {
	// ID is a unique identifier for this session. Display state such
	// as option ordering is scoped to it.
	ID string

	// Questions holds the session's questions in presentation order.
	Questions []*SessionQuestion

	// Cursor is the index of the question currently shown.
	Cursor int

	// Review marks a non-scoring replay of a completed session. While
	// set, answers are ignored and navigation is not gated on answer
	// state.
	Review bool

	// Running aggregates, accumulated by RecordAnswer and never
	// recomputed from scratch.
	Correct   int
	Wrong     int
	Completed int
	Points    float64
}

// New builds a session from a raw question pool. The pool is deep
// copied, uniformly shuffled, and truncated to at most limit questions
// (limit <= 0 means no cap). An empty pool yields a valid zero-length
// session, not an error.
func New(pool []Question, limit int) *Session {
	qs := make([]*SessionQuestion, len(pool))
	for i, q := range pool {
		qs[i] = &SessionQuestion{Question: q.clone()}
	}

	shuffleQuestions(qs)
	if limit > 0 && limit < len(qs) {
		qs = qs[:limit]
	}

	return build(qs, false)
}

// build finishes session initialization: fresh attempts, fresh display
// orders, cursor and aggregates at zero. Callers have already selected
// the exact question set and order.
func build(qs []*SessionQuestion, review bool) *Session {
	for _, q := range qs {
		q.Attempt = newAttempt()
		q.Order = displayOrder(len(q.Options))
	}
	return &Session{
		ID:        uuid.New().String(),
		Questions: qs,
		Review:    review,
	}
}

// Len returns the number of questions in the session.
func (s *Session) Len() int {
	return len(s.Questions)
}

// Empty reports the degenerate no-questions state.
func (s *Session) Empty() bool {
	return len(s.Questions) == 0
}

// Current returns the question under the cursor, or nil for an empty
// session.
func (s *Session) Current() *SessionQuestion {
	if s.Empty() {
		return nil
	}
	return s.Questions[s.Cursor]
}

// RecordAnswer records an answer for the current question, given as an
// index into the question's original option order. It is the single
// point of score mutation. Returns false without touching any state
// when the session is in review mode, the question is already answered,
// or the session is empty: those are expected interactions, not errors.
func (s *Session) RecordAnswer(choice int) bool {
	q := s.Current()
	if q == nil || s.Review || q.Attempt.Answered {
		return false
	}

	q.Attempt = Attempt{
		Answered: true,
		Choice:   choice,
		Correct:  choice == q.Answer,
	}

	if q.Attempt.Correct {
		s.Correct++
		s.Points += pointsPerSession / float64(len(s.Questions))
	} else {
		s.Wrong++
	}
	s.Completed++
	return true
}

// CanAdvance reports whether the cursor may move forward: always in
// review mode, otherwise only once the current question is answered.
func (s *Session) CanAdvance() bool {
	q := s.Current()
	if q == nil {
		return false
	}
	return s.Review || q.Attempt.Answered
}

// Advance moves the cursor forward one question and reports whether it
// moved. It refuses to move past the last question or past an
// unanswered question outside review mode; at the last question the
// caller observes Finished to decide on the completion transition.
func (s *Session) Advance() bool {
	if !s.CanAdvance() || s.AtLast() {
		return false
	}
	s.Cursor++
	return true
}

// Retreat moves the cursor back one question and reports whether it
// moved. Always allowed regardless of mode or answer state.
func (s *Session) Retreat() bool {
	if s.Empty() || s.AtFirst() {
		return false
	}
	s.Cursor--
	return true
}

// AtFirst reports whether the cursor is on the first question.
func (s *Session) AtFirst() bool {
	return s.Cursor == 0
}

// AtLast reports whether the cursor is on the last question.
func (s *Session) AtLast() bool {
	return !s.Empty() && s.Cursor == len(s.Questions)-1
}

// Finished reports whether every question has been answered in a
// scoring session. It is a pure function of aggregate state, recomputed
// whenever asked, never a latched event. Always false in review mode.
func (s *Session) Finished() bool {
	return !s.Review && !s.Empty() && s.Completed == len(s.Questions)
}

// Jump moves the cursor to index i if it is in range. Used by review
// navigation; scoring sessions only ever move through Advance/Retreat.
func (s *Session) Jump(i int) bool {
	if i < 0 || i >= len(s.Questions) {
		return false
	}
	s.Cursor = i
	return true
}
