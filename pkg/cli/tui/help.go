package tui

import (
	"fmt"
	"strings"
)

// HelpItem represents a single keyboard shortcut and its description
type HelpItem struct {
	Key         string
	Description string
}

// NewsHelpContent returns help for the news list
func NewsHelpContent() string {
	items := []HelpItem{
		{"a", "Add a link"},
		{"↑ / ↓ / PgUp / PgDn", "Scroll the list"},
		{"?", "Toggle help"},
		{"q / Esc", "Quit"},
		{"Ctrl+C", "Force quit"},
	}
	return renderHelpItems(items)
}

// LinkFormHelpContent returns the one-line hint shown under the add-link form
func LinkFormHelpContent() string {
	return "[Tab] Next field  [Enter] Add link  [Esc] Cancel"
}

// renderHelpItems formats help items into a readable string
func renderHelpItems(items []HelpItem) string {
	var b strings.Builder
	for _, item := range items {
		keyStyle := boldStyle.Foreground(colorPrimary)
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			keyStyle.Render(item.Key),
			item.Description))
	}
	return b.String()
}
