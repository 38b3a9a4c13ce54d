package session

import "fmt"

// Scorecard is a read-only snapshot of a session's aggregates, built on
// every render and on completion. Point rounding happens here, for
// display only; the accumulated total is never rounded.
type Scorecard struct {
	Correct   int
	Wrong     int
	Completed int
	Total     int
	Points    float64
}

// Scorecard returns the current aggregate snapshot.
func (s *Session) Scorecard() Scorecard {
	return Scorecard{
		Correct:   s.Correct,
		Wrong:     s.Wrong,
		Completed: s.Completed,
		Total:     len(s.Questions),
		Points:    s.Points,
	}
}

// FormatPoints renders the point total with two decimals.
func (c Scorecard) FormatPoints() string {
	return fmt.Sprintf("%.2f", c.Points)
}

// Summary renders the running score line shown under each question.
func (c Scorecard) Summary() string {
	return fmt.Sprintf("Correct: %d   Wrong: %d   Score: %s   (%d/%d answered)",
		c.Correct, c.Wrong, c.FormatPoints(), c.Completed, c.Total)
}

// FinalSummary renders the end-of-session line for the completion
// overlay.
func (c Scorecard) FinalSummary() string {
	return fmt.Sprintf("Final score: %s   (%d correct / %d wrong)",
		c.FormatPoints(), c.Correct, c.Wrong)
}
