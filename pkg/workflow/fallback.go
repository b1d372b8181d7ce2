package workflow

import "social-news-go/pkg/models"

// fallbackLinks seed the store when the news feed is unreachable.
var fallbackLinks = []models.Link{
	{Title: "Wikipedia", URL: "http://wikipedia.org", Author: "Sophie"},
	{Title: "Hacker News", URL: "https://news.ycombinator.com", Author: "Baptiste"},
	{Title: "Reddit", URL: "https://reddit.com", Author: "Thomas"},
	{Title: "Boing Boing", URL: "https://boingboing.net", Author: "Daniel"},
}

// FallbackLinks returns a copy of the offline placeholder links in order.
func FallbackLinks() []models.Link {
	return append([]models.Link(nil), fallbackLinks...)
}
