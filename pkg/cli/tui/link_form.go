package tui

import (
	"strings"

	"social-news-go/pkg/models"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldAuthor = iota
	fieldTitle
	fieldURL
	fieldCount
)

// linkForm is the add-link form: author, title and URL inputs. The news
// model owns at most one at a time.
type linkForm struct {
	inputs     [fieldCount]textinput.Model
	labels     [fieldCount]string
	focused    int
	err        error
	submitting bool
}

func newLinkForm() *linkForm {
	author := textinput.New()
	author.Placeholder = "Your Name"
	author.CharLimit = models.MaxAuthorLength
	author.Width = 60

	title := textinput.New()
	title.Placeholder = "Page Title"
	title.CharLimit = models.MaxTitleLength
	title.Width = 60

	url := textinput.New()
	url.Placeholder = "URL"
	url.CharLimit = models.MaxURLLength
	url.Width = 60

	f := &linkForm{
		inputs: [fieldCount]textinput.Model{author, title, url},
		labels: [fieldCount]string{"Author:", "Title:", "URL:"},
	}
	f.focusField(fieldAuthor)
	return f
}

// values returns the raw title, url and author as typed.
func (f *linkForm) values() (title, url, author string) {
	return f.inputs[fieldTitle].Value(), f.inputs[fieldURL].Value(), f.inputs[fieldAuthor].Value()
}

func (f *linkForm) focusField(i int) tea.Cmd {
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
	f.focused = (i + fieldCount) % fieldCount
	return f.inputs[f.focused].Focus()
}

// update handles navigation keys and routes everything else, including
// cursor blink messages, to the focused input. Enter and Esc are handled by
// the owner.
func (f *linkForm) update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			return f.focusField(f.focused + 1)
		case "shift+tab", "up":
			return f.focusField(f.focused - 1)
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)
	return cmd
}

func (f *linkForm) view() string {
	var b strings.Builder
	b.WriteString(boldStyle.Render("Add New Link"))
	b.WriteString("\n\n")

	for i := range f.inputs {
		label := fieldLabelStyle.Render(f.labels[i])
		if i == f.focused && !f.submitting {
			label = selectedStyle.Render("→ ") + label
		} else {
			label = "  " + label
		}
		b.WriteString(label)
		b.WriteString("\n  ")
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}

	if f.err != nil {
		b.WriteString("\n")
		b.WriteString(renderInlineError(f.err))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if f.submitting {
		b.WriteString(infoStyle.Render("Adding link..."))
	} else {
		b.WriteString(helpStyle.Render(LinkFormHelpContent()))
	}

	return formStyle.Render(b.String())
}
