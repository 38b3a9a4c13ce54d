package setup

import (
	"context"
	"strconv"

	tea "charm.land/bubbletea/v2"

	"github.com/yuwei/qdrill/internal/bank"
	"github.com/yuwei/qdrill/internal/explain"
	"github.com/yuwei/qdrill/internal/router"
	"github.com/yuwei/qdrill/internal/screen"
	sessscreen "github.com/yuwei/qdrill/internal/screens/session"
	sess "github.com/yuwei/qdrill/internal/session"
	"github.com/yuwei/qdrill/internal/store"
	"github.com/yuwei/qdrill/internal/ui/components"
	"github.com/yuwei/qdrill/internal/ui/layout"
)

// step tracks where the user is in the selection flow.
type step int

const (
	stepCatalog step = iota // catalog still loading
	stepSubject
	stepUnit
	stepChapter
	stepQuantity
	stepLoading // pool load in flight
)

const defaultQuantity = 10

// SetupScreen walks the user through picking a subject, a unit and
// chapter where the subject has them, and a question count, then loads
// the pool and pushes a session screen.
type SetupScreen struct {
	loader  *bank.Loader
	prefs   store.PrefRepo
	fetcher *explain.Fetcher

	catalog *bank.Catalog
	step    step
	sel     bank.Selection
	menu    components.Menu
	input   components.TextInput
	errMsg  string

	// savedQuantity is the count restored from preferences, used as
	// the input default.
	savedQuantity int
}

func New(loader *bank.Loader, prefs store.PrefRepo, fetcher *explain.Fetcher) *SetupScreen {
	return &SetupScreen{loader: loader, prefs: prefs, fetcher: fetcher}
}

func (s *SetupScreen) Init() tea.Cmd {
	loader, prefs := s.loader, s.prefs
	return func() tea.Msg {
		ctx := context.Background()
		catalog, err := loader.Catalog(ctx)
		if err != nil {
			return setupLoadedMsg{Err: err}
		}
		msg := setupLoadedMsg{Catalog: catalog}
		if prefs != nil {
			msg.LastSubject, _ = prefs.Get(ctx, store.PrefSubject)
			msg.LastQuantity, _ = prefs.Get(ctx, store.PrefQuantity)
		}
		return msg
	}
}

func (s *SetupScreen) Title() string {
	return "New Session"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	switch s.step {
	case stepQuantity:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case stepSubject:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
		}
	case stepUnit, stepChapter:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return nil
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case setupLoadedMsg:
		if msg.Err != nil {
			s.errMsg = "Could not read the question bank: " + msg.Err.Error()
			return s, nil
		}
		s.catalog = msg.Catalog
		s.defaultSel(msg.LastSubject)
		if q, err := strconv.Atoi(msg.LastQuantity); err == nil && q > 0 {
			s.savedQuantity = q
		}
		s.enterSubjectStep()
		return s, nil

	case poolReadyMsg:
		if msg.Err != nil {
			s.errMsg = "Could not load questions: " + msg.Err.Error()
			s.enterSubjectStep()
			return s, nil
		}
		scr := sessscreen.New(sess.New(msg.Pool, msg.Quantity), s.fetcher, msg.Source.Explanations)
		save := s.savePrefs(msg.Quantity)
		return s, func() tea.Msg {
			save()
			return router.PushScreenMsg{Screen: scr}
		}

	case subjectPickedMsg:
		s.errMsg = ""
		s.sel = bank.Selection{Subject: msg.Name}
		subj := s.catalog.Subject(msg.Name)
		if subj != nil && len(subj.Units) > 0 {
			s.enterUnitStep(subj)
			return s, nil
		}
		s.enterQuantityStep()
		return s, s.input.Init()

	case unitPickedMsg:
		s.sel.Unit = msg.Name
		subj := s.catalog.Subject(s.sel.Subject)
		if subj != nil {
			for i := range subj.Units {
				if subj.Units[i].Name == msg.Name {
					s.enterChapterStep(&subj.Units[i])
					break
				}
			}
		}
		return s, nil

	case chapterPickedMsg:
		s.sel.Chapter = msg.Name
		s.enterQuantityStep()
		return s, s.input.Init()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *SetupScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if msg.String() == "esc" {
		s.back()
		return s, nil
	}

	switch s.step {
	case stepSubject, stepUnit, stepChapter:
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd

	case stepQuantity:
		if msg.String() == "enter" {
			return s, s.startLoad()
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// back steps the flow one level up. Esc on the subject list is a no-op
// so the screen stays the stack bottom.
func (s *SetupScreen) back() {
	switch s.step {
	case stepUnit:
		s.enterSubjectStep()
	case stepChapter:
		subj := s.catalog.Subject(s.sel.Subject)
		if subj != nil {
			s.enterUnitStep(subj)
		} else {
			s.enterSubjectStep()
		}
	case stepQuantity:
		subj := s.catalog.Subject(s.sel.Subject)
		if subj != nil && len(subj.Units) > 0 {
			for i := range subj.Units {
				if subj.Units[i].Name == s.sel.Unit {
					s.enterChapterStep(&subj.Units[i])
					return
				}
			}
		}
		s.enterSubjectStep()
	}
}

func (s *SetupScreen) enterSubjectStep() {
	items := make([]components.MenuItem, 0, len(s.catalog.Subjects))
	for _, subj := range s.catalog.Subjects {
		name := subj.Name
		items = append(items, components.MenuItem{
			Label: name,
			Action: func() tea.Cmd {
				return func() tea.Msg { return subjectPickedMsg{Name: name} }
			},
		})
	}
	s.menu = components.NewMenu(items)
	for i, subj := range s.catalog.Subjects {
		if subj.Name == s.sel.Subject {
			s.menu.Selected = i
			break
		}
	}
	s.step = stepSubject
}

func (s *SetupScreen) enterUnitStep(subj *bank.Subject) {
	items := make([]components.MenuItem, 0, len(subj.Units))
	for _, u := range subj.Units {
		name := u.Name
		items = append(items, components.MenuItem{
			Label: name,
			Action: func() tea.Cmd {
				return func() tea.Msg { return unitPickedMsg{Name: name} }
			},
		})
	}
	s.menu = components.NewMenu(items)
	s.step = stepUnit
}

func (s *SetupScreen) enterChapterStep(u *bank.Unit) {
	items := make([]components.MenuItem, 0, len(u.Chapters))
	for _, ch := range u.Chapters {
		name := ch.Name
		items = append(items, components.MenuItem{
			Label: name,
			Action: func() tea.Cmd {
				return func() tea.Msg { return chapterPickedMsg{Name: name} }
			},
		})
	}
	s.menu = components.NewMenu(items)
	s.step = stepChapter
}

func (s *SetupScreen) enterQuantityStep() {
	def := defaultQuantity
	if s.savedQuantity > 0 {
		def = s.savedQuantity
	}
	s.input = components.NewTextInput(strconv.Itoa(def), true, 3)
	s.step = stepQuantity
}

// quantity returns the entered question count, falling back to the
// placeholder default when the field is empty.
func (s *SetupScreen) quantity() int {
	if q, err := s.input.NumericValue(); err == nil && q > 0 {
		return q
	}
	if s.savedQuantity > 0 {
		return s.savedQuantity
	}
	return defaultQuantity
}

func (s *SetupScreen) startLoad() tea.Cmd {
	s.step = stepLoading
	s.errMsg = ""
	loader, sel, qty := s.loader, s.sel, s.quantity()
	return func() tea.Msg {
		pool, src, err := loader.Load(context.Background(), sel)
		if err != nil {
			return poolReadyMsg{Err: err}
		}
		return poolReadyMsg{Pool: pool, Source: src, Quantity: qty}
	}
}

// savePrefs returns a closure recording the last selection; failures
// are ignored so a read-only database never blocks a session.
func (s *SetupScreen) savePrefs(qty int) func() {
	if s.prefs == nil {
		return func() {}
	}
	prefs, subject := s.prefs, s.sel.Subject
	return func() {
		ctx := context.Background()
		_ = prefs.Set(ctx, store.PrefSubject, subject)
		_ = prefs.Set(ctx, store.PrefQuantity, strconv.Itoa(qty))
	}
}

// defaultSel preselects the subject saved from the previous run when it
// still exists in the catalog.
func (s *SetupScreen) defaultSel(last string) {
	if last == "" || s.catalog == nil {
		return
	}
	if s.catalog.Subject(last) != nil {
		s.sel.Subject = last
	}
}
