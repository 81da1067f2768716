package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tikzgo/tikzgo/pkg/errors"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestTemplateByName(t *testing.T) {
	for _, name := range templateNames() {
		tmpl, err := templateByName(name)
		if err != nil {
			t.Errorf("templateByName(%q): %v", name, err)
			continue
		}
		if tmpl.Body == "" {
			t.Errorf("template %q has empty body", name)
		}
		if tmpl.Description == "" {
			t.Errorf("template %q has empty description", name)
		}
	}
}

func TestTemplateByNameUnknown(t *testing.T) {
	_, err := templateByName("nope")
	if !errors.Is(err, errors.ErrCodeInvalidTemplate) {
		t.Errorf("err = %v, want INVALID_TEMPLATE code", err)
	}
}

func TestTemplatePickerNavigation(t *testing.T) {
	m := NewTemplateListModel(templates)
	if m.Cursor != 0 {
		t.Fatalf("initial cursor = %d", m.Cursor)
	}

	next, _ := m.Update(keyMsg("down"))
	m = next.(TemplateListModel)
	if m.Cursor != 1 {
		t.Errorf("cursor after down = %d, want 1", m.Cursor)
	}

	next, _ = m.Update(keyMsg("up"))
	m = next.(TemplateListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor after up = %d, want 0", m.Cursor)
	}

	// Up at the top stays put.
	next, _ = m.Update(keyMsg("up"))
	m = next.(TemplateListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor clamped = %d, want 0", m.Cursor)
	}

	next, _ = m.Update(keyMsg("enter"))
	m = next.(TemplateListModel)
	if m.Selected == nil || m.Selected.Name != templates[0].Name {
		t.Errorf("selection = %+v", m.Selected)
	}
}

func TestTemplatePickerQuitWithoutSelection(t *testing.T) {
	m := NewTemplateListModel(templates)
	next, _ := m.Update(keyMsg("q"))
	m = next.(TemplateListModel)
	if m.Selected != nil {
		t.Errorf("quit should not select, got %+v", m.Selected)
	}
}
