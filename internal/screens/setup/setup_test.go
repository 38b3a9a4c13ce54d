package setup

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/yuwei/qdrill/internal/bank"
	"github.com/yuwei/qdrill/internal/explain"
	"github.com/yuwei/qdrill/internal/router"
	sessscreen "github.com/yuwei/qdrill/internal/screens/session"
	"github.com/yuwei/qdrill/internal/store"
)

const testCatalog = `{
  "subjects": [
    {"name": "Civil Law", "file": "civil.json"},
    {
      "name": "Criminal Law",
      "explanations": "criminal-expl",
      "units": [
        {
          "name": "General Part",
          "chapters": [
            {"name": "Principles", "file": "criminal.json", "id_prefix": "cr1-"}
          ]
        }
      ]
    }
  ]
}`

const testPool = `[
  {"id": "cv-1", "question": "first", "options": ["a", "b"], "answer": 0},
  {"id": "cv-2", "question": "second", "options": ["a", "b"], "answer": 1},
  {"id": "cr1-1", "question": "third", "options": ["a", "b"], "answer": 0}
]`

type memPrefs struct {
	values map[string]string
}

func newMemPrefs() *memPrefs {
	return &memPrefs{values: map[string]string{}}
}

func (m *memPrefs) Get(_ context.Context, key string) (string, error) {
	v, ok := m.values[key]
	if !ok {
		return "", store.ErrNotFound
	}
	return v, nil
}

func (m *memPrefs) Set(_ context.Context, key, value string) error {
	m.values[key] = value
	return nil
}

func writeBank(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"catalog.json":  testCatalog,
		"civil.json":    testPool,
		"criminal.json": testPool,
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// loadedScreen builds a setup screen and delivers its init message.
func loadedScreen(t *testing.T, prefs *memPrefs) *SetupScreen {
	t.Helper()
	dir := writeBank(t)
	s := New(bank.NewLoader(dir), prefs, explain.NewFetcher(dir))
	msg := s.Init()()
	loaded, ok := msg.(setupLoadedMsg)
	if !ok {
		t.Fatalf("init message: %T", msg)
	}
	if loaded.Err != nil {
		t.Fatalf("init: %v", loaded.Err)
	}
	s.Update(loaded)
	return s
}

// runCmd executes a command and returns the message it produced.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func TestInitRestoresPreferences(t *testing.T) {
	prefs := newMemPrefs()
	prefs.values[store.PrefSubject] = "Criminal Law"
	prefs.values[store.PrefQuantity] = "25"

	s := loadedScreen(t, prefs)

	if s.step != stepSubject {
		t.Fatalf("step = %d, want subject menu", s.step)
	}
	if got := s.menu.Items[s.menu.Selected].Label; got != "Criminal Law" {
		t.Errorf("preselected subject = %q", got)
	}
	if s.savedQuantity != 25 {
		t.Errorf("saved quantity = %d, want 25", s.savedQuantity)
	}
}

func TestSubjectWithoutUnitsSkipsToQuantity(t *testing.T) {
	s := loadedScreen(t, newMemPrefs())

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	for _, msg := range runCmd(cmd) {
		s.Update(msg)
	}

	if s.step != stepQuantity {
		t.Fatalf("step = %d, want quantity input", s.step)
	}
	if s.sel.Subject != "Civil Law" {
		t.Errorf("subject = %q", s.sel.Subject)
	}
}

func TestUnitChapterFlowAndBack(t *testing.T) {
	s := loadedScreen(t, newMemPrefs())

	s.Update(keyPress('j'))
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	for _, msg := range runCmd(cmd) {
		s.Update(msg)
	}
	if s.step != stepUnit {
		t.Fatalf("step = %d, want unit menu", s.step)
	}

	_, cmd = s.Update(specialKey(tea.KeyEnter))
	for _, msg := range runCmd(cmd) {
		s.Update(msg)
	}
	if s.step != stepChapter {
		t.Fatalf("step = %d, want chapter menu", s.step)
	}

	_, cmd = s.Update(specialKey(tea.KeyEnter))
	for _, msg := range runCmd(cmd) {
		s.Update(msg)
	}
	if s.step != stepQuantity {
		t.Fatalf("step = %d, want quantity input", s.step)
	}
	if s.sel != (bank.Selection{Subject: "Criminal Law", Unit: "General Part", Chapter: "Principles"}) {
		t.Errorf("selection = %+v", s.sel)
	}

	s.Update(specialKey(tea.KeyEscape))
	if s.step != stepChapter {
		t.Errorf("after esc step = %d, want chapter menu", s.step)
	}
	s.Update(specialKey(tea.KeyEscape))
	if s.step != stepUnit {
		t.Errorf("after esc step = %d, want unit menu", s.step)
	}
	s.Update(specialKey(tea.KeyEscape))
	if s.step != stepSubject {
		t.Errorf("after esc step = %d, want subject menu", s.step)
	}
	s.Update(specialKey(tea.KeyEscape))
	if s.step != stepSubject {
		t.Errorf("esc on subject menu moved to step %d", s.step)
	}
}

func TestStartSessionPushesScreenAndSavesPrefs(t *testing.T) {
	prefs := newMemPrefs()
	s := loadedScreen(t, prefs)

	// Civil Law, two questions.
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	for _, msg := range runCmd(cmd) {
		s.Update(msg)
	}
	s.Update(keyPress('2'))
	_, cmd = s.Update(specialKey(tea.KeyEnter))
	if s.step != stepLoading {
		t.Fatalf("step = %d, want loading", s.step)
	}

	var pushed *sessscreen.SessionScreen
	for _, msg := range runCmd(cmd) {
		_, next := s.Update(msg)
		for _, inner := range runCmd(next) {
			if push, ok := inner.(router.PushScreenMsg); ok {
				pushed, _ = push.Screen.(*sessscreen.SessionScreen)
			}
		}
	}
	if pushed == nil {
		t.Fatal("no session screen pushed")
	}

	if prefs.values[store.PrefSubject] != "Civil Law" {
		t.Errorf("saved subject = %q", prefs.values[store.PrefSubject])
	}
	if prefs.values[store.PrefQuantity] != "2" {
		t.Errorf("saved quantity = %q", prefs.values[store.PrefQuantity])
	}
}

func TestEmptyQuantityFallsBackToDefault(t *testing.T) {
	s := loadedScreen(t, newMemPrefs())

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	for _, msg := range runCmd(cmd) {
		s.Update(msg)
	}

	if got := s.quantity(); got != defaultQuantity {
		t.Errorf("quantity = %d, want %d", got, defaultQuantity)
	}
}

func TestLoadFailureReturnsToMenu(t *testing.T) {
	s := loadedScreen(t, newMemPrefs())
	s.step = stepLoading

	s.Update(poolReadyMsg{Err: bank.ErrNotFound})

	if s.step != stepSubject {
		t.Fatalf("step = %d, want subject menu", s.step)
	}
	if !strings.Contains(s.View(80, 24), "Could not load questions") {
		t.Error("error message not shown")
	}
}
