package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func (f *linkForm) setValues(title, url, author string) {
	f.inputs[fieldTitle].SetValue(title)
	f.inputs[fieldURL].SetValue(url)
	f.inputs[fieldAuthor].SetValue(author)
}

func TestLinkForm_FocusCycles(t *testing.T) {
	f := newLinkForm()
	if f.focused != fieldAuthor {
		t.Fatalf("initial focus = %d, want author", f.focused)
	}

	f.update(tea.KeyMsg{Type: tea.KeyTab})
	f.update(tea.KeyMsg{Type: tea.KeyTab})
	if f.focused != fieldURL {
		t.Errorf("focus = %d, want url", f.focused)
	}
	f.update(tea.KeyMsg{Type: tea.KeyTab})
	if f.focused != fieldAuthor {
		t.Errorf("focus = %d, want wrap to author", f.focused)
	}
	f.update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if f.focused != fieldURL {
		t.Errorf("focus = %d, want wrap back to url", f.focused)
	}
}

func TestLinkForm_ValuesOrder(t *testing.T) {
	f := newLinkForm()
	for _, r := range "me" {
		f.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	f.update(tea.KeyMsg{Type: tea.KeyTab})
	f.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Go")})

	title, url, author := f.values()
	if title != "Go" || url != "" || author != "me" {
		t.Errorf("values = (%q, %q, %q)", title, url, author)
	}
}
