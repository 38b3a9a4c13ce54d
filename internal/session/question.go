package session

// Question is a single multiple-choice question as loaded from a bank.
// It is immutable once loaded: sessions work on copies, never on the
// pool the loader returned, so a pool can seed any number of sessions.
type Question struct {
	// ID identifies the question within its bank. Optional; used to
	// look up external explanation files.
	ID string

	// Prompt is the question text.
	Prompt string

	// Options holds the answer options in their original order. The
	// order carries no meaning; display order is randomized per session.
	Options []string

	// Answer is the index of the correct option in Options.
	Answer int

	// Explanation is optional embedded explanation text, used as a
	// fallback when no external explanation file exists.
	Explanation string
}

// clone returns a deep copy of the question.
func (q Question) clone() Question {
	opts := make([]string, len(q.Options))
	copy(opts, q.Options)
	q.Options = opts
	return q
}
