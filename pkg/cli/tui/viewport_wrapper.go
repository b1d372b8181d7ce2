package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"social-news-go/pkg/cli/logger"
)

// inputCapturer is implemented by models that sometimes need every key,
// e.g. while a text field has focus.
type inputCapturer interface {
	CapturingInput() bool
}

// ViewportWrapper wraps a model with viewport and common command support
type ViewportWrapper struct {
	model    tea.Model
	viewport viewport.Model
	width    int
	height   int
	config   ViewportConfig

	// Common commands
	showHelp    bool
	helpContent string
}

// ViewportConfig configures the wrapper behavior
type ViewportConfig struct {
	Title        string
	ShowHeader   bool
	ShowFooter   bool
	HeaderHeight int           // Fixed header height (0 = auto)
	FooterHeight int           // Fixed footer height (0 = auto)
	UseViewport  bool          // Enable scrolling (false = simple responsive)
	MinWidth     int           // Minimum terminal width
	MinHeight    int           // Minimum terminal height
	EnableHelp   bool          // Enable '?' for help
	HelpContent  func() string // Function to generate help text
}

// NewViewportWrapper creates a new wrapper around a model
func NewViewportWrapper(model tea.Model, config ViewportConfig) *ViewportWrapper {
	vp := viewport.New(0, 0)

	return &ViewportWrapper{
		model:    model,
		viewport: vp,
		config:   config,
		width:    80, // Default
		height:   24, // Default
	}
}

func (w *ViewportWrapper) Init() tea.Cmd {
	if w.model == nil {
		return nil
	}
	return w.model.Init()
}

// capturing reports whether the wrapped model wants raw key input.
func (w *ViewportWrapper) capturing() bool {
	c, ok := w.model.(inputCapturer)
	return ok && c.CapturingInput()
}

func (w *ViewportWrapper) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		logger.Log("ViewportWrapper.Update: WindowSizeMsg, width=%d, height=%d", msg.Width, msg.Height)
		w.width = msg.Width
		w.height = msg.Height

		if w.config.MinWidth > 0 && w.width < w.config.MinWidth {
			w.width = w.config.MinWidth
		}
		if w.config.MinHeight > 0 && w.height < w.config.MinHeight {
			w.height = w.config.MinHeight
		}
		w.calculateLayout()

		var cmd tea.Cmd
		if w.model != nil {
			w.model, cmd = w.model.Update(tea.WindowSizeMsg{Width: w.width, Height: w.height})
		}
		return w, cmd

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" {
			return w, tea.Quit
		}

		if w.showHelp {
			switch key {
			case "?", "esc", "q":
				w.showHelp = false
			}
			return w, nil
		}

		if !w.capturing() {
			switch {
			case key == "?" && w.config.EnableHelp:
				w.showHelp = true
				if w.config.HelpContent != nil {
					w.helpContent = w.config.HelpContent()
				}
				return w, nil
			case handleQuitKeys(key):
				logger.Log("ViewportWrapper.Update: quit key pressed")
				return w, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	if w.model != nil {
		w.model, cmd = w.model.Update(msg)
	}

	// Scroll keys only reach the viewport while nobody is typing.
	if w.config.UseViewport {
		if _, isKey := msg.(tea.KeyMsg); !isKey || !w.capturing() {
			var vpCmd tea.Cmd
			w.viewport, vpCmd = w.viewport.Update(msg)
			cmd = tea.Batch(cmd, vpCmd)
		}
	}

	return w, cmd
}

func (w *ViewportWrapper) View() string {
	if w.showHelp {
		return w.renderHelpOverlay()
	}

	content := ""
	if w.model != nil {
		content = w.model.View()
	}

	if w.config.UseViewport {
		w.calculateLayout()
		w.viewport.SetContent(content)
		content = w.viewport.View()
	}

	var parts []string
	if w.config.ShowHeader {
		parts = append(parts, w.renderHeader())
	}
	parts = append(parts, content)
	if w.config.ShowFooter {
		parts = append(parts, w.renderFooter())
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (w *ViewportWrapper) calculateLayout() {
	headerH := w.config.HeaderHeight
	if headerH == 0 && w.config.ShowHeader {
		headerH = 3 // Default header height
	}

	footerH := w.config.FooterHeight
	if footerH == 0 && w.config.ShowFooter {
		footerH = 1 // Default footer height
	}

	if w.width <= 0 {
		w.width = 80
	}
	if w.height <= 0 {
		w.height = 24
	}

	contentH := w.height - headerH - footerH
	if contentH < 1 {
		contentH = 1
	}

	w.viewport.Width = w.width
	w.viewport.Height = contentH
}

func (w *ViewportWrapper) renderHeader() string {
	var b strings.Builder

	if w.config.Title != "" {
		b.WriteString(renderTitle(w.config.Title))
	}
	if w.config.EnableHelp {
		b.WriteString(helpStyle.Render("Press '?' for help"))
	}

	return b.String()
}

func (w *ViewportWrapper) renderFooter() string {
	shortcuts := []string{}

	if w.capturing() {
		shortcuts = append(shortcuts, "ctrl+c quit")
	} else {
		if w.config.EnableHelp {
			shortcuts = append(shortcuts, "? help")
		}
		shortcuts = append(shortcuts, "q quit")
	}

	return helpStyle.Render(strings.Join(shortcuts, " • "))
}

func (w *ViewportWrapper) renderHelpOverlay() string {
	helpText := w.helpContent
	if helpText == "" {
		helpText = "No help available"
	}

	overlayStyle := lipgloss.NewStyle().
		Width(w.width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Padding(1, 2)

	title := titleStyle.Render("Keyboard Shortcuts")
	closeHint := helpStyle.Render("Press '?' or Esc to close")

	return overlayStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left, title, "", helpText, "", closeHint),
	)
}
