package session

// Attempt records the answer state of one question within one session.
// An unanswered attempt always has Choice == -1 and Correct == false.
// Once Answered is set it never reverts within the same session.
type Attempt struct {
	// Answered reports whether the question has been answered.
	Answered bool

	// Choice is the chosen option's index in the question's original
	// option order (not display order), or -1 when unanswered.
	Choice int

	// Correct reports whether the chosen option was the right one.
	// Only meaningful when Answered is true.
	Correct bool
}

// newAttempt returns a fresh unanswered attempt.
func newAttempt() Attempt {
	return Attempt{Choice: -1}
}
