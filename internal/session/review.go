package session

import "errors"

// ErrNothingToReview is returned by ReviewWrong when the session has no
// incorrectly answered questions. Surfaced as a notice, never a crash;
// the caller must not enter review mode on it.
var ErrNothingToReview = errors.New("no wrong answers to review")

// ReviewAll derives a review session covering every question of s in
// its presentation order. Each question keeps a copy of its original
// attempt in Prior for correctness display; the live attempt is reset
// so review state never aliases the scored pass.
func (s *Session) ReviewAll() *Session {
	return reviewFrom(s.Questions)
}

// ReviewWrong derives a review session covering only the questions that
// were answered incorrectly. Returns ErrNothingToReview when that
// subset is empty, leaving s untouched.
func (s *Session) ReviewWrong() (*Session, error) {
	var wrong []*SessionQuestion
	for _, q := range s.Questions {
		if q.Attempt.Answered && !q.Attempt.Correct {
			wrong = append(wrong, q)
		}
	}
	if len(wrong) == 0 {
		return nil, ErrNothingToReview
	}
	return reviewFrom(wrong), nil
}

// reviewFrom copies the given questions into a fresh review session.
// No shuffle and no truncation: the caller has already chosen the exact
// subset and order. Display orders are regenerated because the copies
// belong to a new session.
func reviewFrom(qs []*SessionQuestion) *Session {
	copies := make([]*SessionQuestion, len(qs))
	for i, q := range qs {
		prior := q.Attempt
		if !prior.Answered && q.Prior != nil {
			// Reviewing a review: carry the scored pass forward.
			prior = *q.Prior
		}
		copies[i] = &SessionQuestion{
			Question: q.Question.clone(),
			Prior:    &prior,
		}
	}
	return build(copies, true)
}
