package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/yuwei/qdrill/internal/session"
	"github.com/yuwei/qdrill/internal/ui/components"
	"github.com/yuwei/qdrill/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.sess.Empty() {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Subtitle.Render("No questions available for this selection.\n\nPress Esc to go back."))
	}
	if s.showEnd {
		return s.renderEndOverlay(width, height)
	}
	return s.renderQuestion(width, height)
}

func (s *SessionScreen) renderQuestion(width, height int) string {
	q := s.sess.Current()
	var b strings.Builder

	// Progress / score line.
	var info string
	if s.sess.Review {
		info = theme.Notice.Render("  Review mode") +
			theme.Hint.Render(fmt.Sprintf("   question %d of %d", s.sess.Cursor+1, s.sess.Len()))
	} else {
		info = theme.Body.Render("  " + s.sess.Scorecard().Summary())
	}
	b.WriteString(info)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Prompt.
	prompt := fmt.Sprintf("Q%d. %s", s.sess.Cursor+1, q.Prompt)
	b.WriteString(theme.Body.Bold(true).Width(width - 4).Render("  " + prompt))
	b.WriteString("\n\n")

	// Options in display order.
	b.WriteString(s.optionList(q).View())

	// Outcome line.
	if line := s.outcomeLine(q); line != "" {
		b.WriteString("\n" + line + "\n")
	}

	// Explanation panel.
	if s.explOpen {
		b.WriteString("\n")
		if s.explLoading {
			b.WriteString(theme.Hint.Render("  Loading explanation..."))
		} else {
			b.WriteString(theme.Card.Width(max(width-8, 10)).Render(s.explText))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// optionList builds the option display for the current question from
// session state.
func (s *SessionScreen) optionList(q *sess.SessionQuestion) components.OptionList {
	opts := make([]string, len(q.Order))
	for i, orig := range q.Order {
		opts[i] = q.Options[orig]
	}

	list := components.OptionList{
		Options:   opts,
		Highlight: s.highlight,
		ChosenPos: -1,
	}

	switch {
	case s.sess.Review && q.Prior != nil && q.Prior.Answered:
		list.Revealed = true
		list.Highlight = -1
		list.CorrectPos = displayPos(q.Order, q.Answer)
		if !q.Prior.Correct {
			list.ChosenPos = displayPos(q.Order, q.Prior.Choice)
		}
	case q.Attempt.Answered:
		list.Revealed = true
		list.Highlight = -1
		list.CorrectPos = displayPos(q.Order, q.Answer)
		if !q.Attempt.Correct {
			list.ChosenPos = displayPos(q.Order, q.Attempt.Choice)
		}
	}
	return list
}

// outcomeLine renders the per-question verdict once an outcome exists.
func (s *SessionScreen) outcomeLine(q *sess.SessionQuestion) string {
	attempt := q.Attempt
	if s.sess.Review {
		if q.Prior == nil {
			return ""
		}
		attempt = *q.Prior
	}
	if !attempt.Answered {
		return ""
	}
	if attempt.Correct {
		return theme.Correct.Render("  Correct")
	}
	return theme.Incorrect.Render("  Wrong. The highlighted option is the right one.")
}

func (s *SessionScreen) renderEndOverlay(width, height int) string {
	card := s.sess.Scorecard()

	var b strings.Builder
	b.WriteString(theme.Title.Render("Session complete!"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(card.FinalSummary()))
	b.WriteString("\n\n")

	for i, label := range endChoices {
		if i == s.endSel {
			b.WriteString(theme.Selected.Render("  ▸ " + label))
		} else {
			b.WriteString(theme.Unselected.Render("    " + label))
		}
		b.WriteString("\n")
	}

	if s.notice != "" {
		b.WriteString("\n" + theme.Notice.Render(s.notice))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Render(b.String()))
}

// displayPos maps an original option index to its display position.
func displayPos(order []int, orig int) int {
	for pos, idx := range order {
		if idx == orig {
			return pos
		}
	}
	return -1
}
