package components

import (
	"fmt"

	"github.com/yuwei/qdrill/internal/ui/theme"
)

// OptionList renders a question's options in their display order, with
// correctness styling once the outcome is revealed. It holds no state
// of its own; the session screen rebuilds it from session state on
// every render.
type OptionList struct {
	// Options are the display-ordered option strings.
	Options []string

	// Highlight is the highlighted position, or -1 for none.
	Highlight int

	// Revealed enables correctness styling.
	Revealed bool

	// CorrectPos is the display position of the correct option.
	// Only used when Revealed.
	CorrectPos int

	// ChosenPos is the display position of the chosen option, or -1
	// when nothing was chosen. Only used when Revealed.
	ChosenPos int
}

// View renders the option list.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		prefix := "  "
		if i == o.Highlight && !o.Revealed {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		switch {
		case o.Revealed && i == o.CorrectPos:
			s += theme.Correct.Render(line)
		case o.Revealed && i == o.ChosenPos:
			s += theme.Incorrect.Render(line)
		case o.Revealed:
			s += theme.Hint.Render(line)
		case i == o.Highlight:
			s += theme.Selected.Render(line)
		default:
			s += theme.Unselected.Render(line)
		}
		s += "\n"
	}
	return s
}
