package setup

import (
	"github.com/yuwei/qdrill/internal/bank"
	"github.com/yuwei/qdrill/internal/session"
)

// setupLoadedMsg delivers the catalog and saved preferences at screen
// init.
type setupLoadedMsg struct {
	Catalog      *bank.Catalog
	LastSubject  string
	LastQuantity string
	Err          error
}

// Selection-step messages emitted by the menus.
type subjectPickedMsg struct{ Name string }
type unitPickedMsg struct{ Name string }
type chapterPickedMsg struct{ Name string }

// poolReadyMsg delivers the result of the one-shot pool load that
// starts a session.
type poolReadyMsg struct {
	Pool     []session.Question
	Source   bank.Source
	Quantity int
	Err      error
}
