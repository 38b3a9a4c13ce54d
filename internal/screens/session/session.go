package session

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/yuwei/qdrill/internal/explain"
	"github.com/yuwei/qdrill/internal/router"
	"github.com/yuwei/qdrill/internal/screen"
	sess "github.com/yuwei/qdrill/internal/session"
	"github.com/yuwei/qdrill/internal/ui/layout"
)

// SessionScreen implements screen.Screen for an active quiz session.
// All session mutation happens here, synchronously on the update loop;
// the explanation fetch is the only asynchronous edge.
type SessionScreen struct {
	sess    *sess.Session
	fetcher *explain.Fetcher
	explDir string

	// highlight is the highlighted display position on the current
	// question.
	highlight int

	// showEnd is true while the completion overlay is displayed.
	showEnd bool
	endSel  int

	// notice is a transient non-blocking message shown in the overlay
	// (e.g. nothing to review).
	notice string

	// Explanation display state for the current question.
	explOpen    bool
	explLoading bool
	explText    string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.StatusProvider = (*SessionScreen)(nil)

// endChoices are the completion overlay entries, in display order.
var endChoices = []string{"Review all questions", "Review wrong answers", "Finish"}

// New creates a session screen over an already-built session.
func New(s *sess.Session, fetcher *explain.Fetcher, explDir string) *SessionScreen {
	return &SessionScreen{
		sess:    s,
		fetcher: fetcher,
		explDir: explDir,
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	return nil
}

func (s *SessionScreen) Title() string {
	if s.sess.Review {
		return "Review"
	}
	return "Quiz"
}

func (s *SessionScreen) Status() string {
	if s.sess.Empty() {
		return ""
	}
	if s.sess.Review {
		return "review mode"
	}
	card := s.sess.Scorecard()
	return "score " + card.FormatPoints()
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.showEnd {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Select"},
		}
	}
	if s.sess.Empty() {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Options"},
		{Key: "Enter", Description: "Answer"},
		{Key: "←→", Description: "Navigate"},
		{Key: "E", Description: "Explanation"},
	}
	if s.sess.Finished() {
		hints = append(hints, layout.KeyHint{Key: "F", Description: "Finish"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case explanationMsg:
		// Applied to whatever question is current; a result landing
		// after navigation still writes to the visible target.
		s.explLoading = false
		s.explText = explain.Resolve(msg.Text, msg.Err, s.currentEmbedded())
		return s, nil

	case tea.KeyMsg:
		if s.showEnd {
			return s.handleEndKey(msg)
		}
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	q := s.sess.Current()
	if q == nil {
		return s, nil
	}

	switch key := msg.String(); key {
	case "up", "k":
		if s.highlight > 0 {
			s.highlight--
		}
	case "down", "j":
		if s.highlight < len(q.Options)-1 {
			s.highlight++
		}
	case "enter":
		s.answer(q, s.highlight)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		pos := int(key[0] - '1')
		if pos < len(q.Options) {
			s.answer(q, pos)
		}
	case "right", "l", "n":
		if s.sess.Advance() {
			s.resetQuestionView()
		} else if s.sess.Finished() {
			s.openEndOverlay()
		}
	case "left", "h", "p":
		if s.sess.Retreat() {
			s.resetQuestionView()
		}
	case "f":
		if s.sess.Finished() {
			s.openEndOverlay()
		}
	case "e":
		return s, s.toggleExplanation(q)
	}
	return s, nil
}

// answer records an answer given as a display position. Ignored in
// review mode and on already-answered questions.
func (s *SessionScreen) answer(q *sess.SessionQuestion, pos int) {
	if pos < 0 || pos >= len(q.Order) {
		return
	}
	s.sess.RecordAnswer(q.Order[pos])
}

func (s *SessionScreen) handleEndKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if s.endSel > 0 {
			s.endSel--
		}
	case "down", "j":
		if s.endSel < len(endChoices)-1 {
			s.endSel++
		}
	case "esc":
		s.showEnd = false
		s.notice = ""
	case "enter":
		switch s.endSel {
		case 0:
			s.startReview(s.sess.ReviewAll())
		case 1:
			r, err := s.sess.ReviewWrong()
			if err != nil {
				// Non-blocking: the overlay stays up, mode unchanged.
				s.notice = "All answers correct. Nothing to review."
				return s, nil
			}
			s.startReview(r)
		case 2:
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

// startReview swaps the active session for a review session derived
// from it. The old session is fully replaced; only one session is ever
// active.
func (s *SessionScreen) startReview(r *sess.Session) {
	s.sess = r
	s.showEnd = false
	s.notice = ""
	s.resetQuestionView()
}

func (s *SessionScreen) openEndOverlay() {
	s.showEnd = true
	s.endSel = 0
	s.notice = ""
}

// resetQuestionView clears per-question display state after the cursor
// moves.
func (s *SessionScreen) resetQuestionView() {
	s.highlight = 0
	s.explOpen = false
	s.explLoading = false
	s.explText = ""
}

// toggleExplanation opens or closes the explanation panel. Opening
// always re-fetches; there is no caching and no in-flight dedup.
func (s *SessionScreen) toggleExplanation(q *sess.SessionQuestion) tea.Cmd {
	if s.explOpen {
		s.explOpen = false
		s.explText = ""
		return nil
	}

	s.explOpen = true
	if s.explDir == "" || q.ID == "" {
		// Nothing external to fetch; resolve the fallback right away.
		s.explText = explain.Resolve("", explain.ErrNotFound, q.Explanation)
		return nil
	}

	s.explLoading = true
	fetcher, dir, id := s.fetcher, s.explDir, q.ID
	return func() tea.Msg {
		text, err := fetcher.Fetch(context.Background(), dir, id)
		return explanationMsg{Text: text, Err: err}
	}
}

// currentEmbedded returns the embedded explanation of the current
// question, if any.
func (s *SessionScreen) currentEmbedded() string {
	if q := s.sess.Current(); q != nil {
		return q.Explanation
	}
	return ""
}
