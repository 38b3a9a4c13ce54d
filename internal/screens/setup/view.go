package setup

import (
	"strings"

	"github.com/yuwei/qdrill/internal/ui/theme"
)

func (s *SetupScreen) View(width, height int) string {
	if s.errMsg != "" {
		hint := "Pick a subject to try again."
		if s.step == stepCatalog {
			hint = "Check the bank directory and restart."
		}
		card := theme.Card.Width(min(width-4, 72)).Render(
			theme.Incorrect.Render(s.errMsg) + "\n" +
				theme.Hint.Render(hint))
		if s.step == stepCatalog {
			return card
		}
		return card + "\n\n" + s.stepView()
	}
	return s.stepView()
}

func (s *SetupScreen) stepView() string {
	var b strings.Builder

	switch s.step {
	case stepCatalog:
		b.WriteString(theme.Hint.Render("  Reading question bank..."))

	case stepSubject:
		b.WriteString(theme.Subtitle.Render("  Subject"))
		b.WriteString("\n\n")
		b.WriteString(s.menu.View())

	case stepUnit:
		b.WriteString(s.breadcrumb())
		b.WriteString(theme.Subtitle.Render("  Unit"))
		b.WriteString("\n\n")
		b.WriteString(s.menu.View())

	case stepChapter:
		b.WriteString(s.breadcrumb())
		b.WriteString(theme.Subtitle.Render("  Chapter"))
		b.WriteString("\n\n")
		b.WriteString(s.menu.View())

	case stepQuantity:
		b.WriteString(s.breadcrumb())
		b.WriteString(theme.Subtitle.Render("  How many questions?"))
		b.WriteString("\n\n  ")
		b.WriteString(s.input.View())
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("  Leave empty for the default."))

	case stepLoading:
		b.WriteString(theme.Hint.Render("  Loading questions..."))
	}

	return b.String()
}

// breadcrumb shows the selection made so far.
func (s *SetupScreen) breadcrumb() string {
	parts := []string{}
	if s.sel.Subject != "" {
		parts = append(parts, s.sel.Subject)
	}
	if s.sel.Unit != "" {
		parts = append(parts, s.sel.Unit)
	}
	if s.sel.Chapter != "" {
		parts = append(parts, s.sel.Chapter)
	}
	if len(parts) == 0 {
		return ""
	}
	return theme.Hint.Render("  "+strings.Join(parts, " › ")) + "\n\n"
}
