package tui

import (
	"fmt"
	"strings"

	"social-news-go/pkg/cli/links"
	"social-news-go/pkg/models"
	"social-news-go/pkg/workflow"
)

// renderLoadingState renders a standard loading message
func renderLoadingState(message string) string {
	return infoStyle.Render(message) + "\n"
}

// renderInlineError renders an error message inline
func renderInlineError(err error) string {
	if err == nil {
		return ""
	}
	return renderError(err.Error())
}

// renderLinkEntry renders one link of the list: index and title on the
// first line, URL and author indented below.
func renderLinkEntry(index int, link models.Link, width int) string {
	urlWidth := width - 4
	if urlWidth < 20 {
		urlWidth = 20
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n",
		linkIndexStyle.Render(fmt.Sprintf("%3d.", index+1)),
		linkTitleStyle.Render(link.Title),
	))
	b.WriteString(fmt.Sprintf("     %s\n", linkURLStyle.Render(links.TruncateURL(link.URL, urlWidth))))
	b.WriteString(fmt.Sprintf("     %s\n", linkAuthorStyle.Render("by "+link.Author)))
	return b.String()
}

// renderLinkList renders every link in order, or an empty-state line.
func renderLinkList(items []models.Link, width int) string {
	if len(items) == 0 {
		return mutedStyle.Render("No links yet.") + "\n"
	}

	var b strings.Builder
	for i, link := range items {
		b.WriteString(renderLinkEntry(i, link, width))
	}
	return b.String()
}

// renderBanner renders a transient submission banner.
func renderBanner(banner workflow.Banner) string {
	switch banner.Kind {
	case workflow.BannerFailure:
		return failureBannerStyle.Render(banner.Text)
	default:
		return successBannerStyle.Render(banner.Text)
	}
}

// renderOfflineNotice renders the notice shown below the list in offline mode.
func renderOfflineNotice() string {
	return warningStyle.Render(workflow.OfflineNotice)
}

// handleQuitKeys checks if a key should quit the current view
func handleQuitKeys(key string) bool {
	switch key {
	case "ctrl+c", "q", "esc":
		return true
	}
	return false
}
