package links

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"social-news-go/pkg/models"
	"social-news-go/pkg/workflow"
)

// FormatTableOutput formats links as a table for CLI output
func FormatTableOutput(links []models.Link) string {
	if len(links) == 0 {
		return "No links found.\n"
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(renderHeader())
	b.WriteString("\n\n")

	w := tabwriter.NewWriter(&b, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "#\tTitle\tURL\tAuthor")
	fmt.Fprintln(w, strings.Repeat("─", 3)+"\t"+strings.Repeat("─", 40)+"\t"+strings.Repeat("─", 50)+"\t"+strings.Repeat("─", 16))

	for i, link := range links {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			i+1,
			TruncateText(link.Title, 40),
			TruncateURL(link.URL, 50),
			TruncateText(link.Author, 16),
		)
	}

	w.Flush()
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Total: %d link(s)\n", len(links)))

	return b.String()
}

// FormatBanner formats a submission banner for CLI output
func FormatBanner(banner workflow.Banner) string {
	switch banner.Kind {
	case workflow.BannerSuccess:
		return fmt.Sprintf("✓ %s\n", banner.Text)
	case workflow.BannerFailure:
		return fmt.Sprintf("❌ %s\n", banner.Text)
	default:
		return banner.Text + "\n"
	}
}

// FormatLinkDetails formats a single link as labelled fields
func FormatLinkDetails(link models.Link) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("  Title:  %s\n", link.Title))
	b.WriteString(fmt.Sprintf("  URL:    %s\n", link.URL))
	b.WriteString(fmt.Sprintf("  Author: %s\n", link.Author))
	return b.String()
}

// FormatOfflineNotice formats the offline-mode notice shown below the table
func FormatOfflineNotice() string {
	return fmt.Sprintf("\n(%s)\n", workflow.OfflineNotice)
}

// FormatErrorMessage formats an error message consistently
func FormatErrorMessage(err error) string {
	return fmt.Sprintf("❌ Error: %v\n", err)
}

func renderHeader() string {
	return "Social News"
}

// WriteTo writes formatted output, ignoring write errors on a terminal.
func WriteTo(w io.Writer, content string) {
	fmt.Fprint(w, content)
}
