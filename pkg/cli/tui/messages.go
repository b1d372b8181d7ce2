package tui

import "social-news-go/pkg/models"

// feedLoadedMsg is emitted when the initial news fetch settles.
type feedLoadedMsg struct {
	links []models.Link
	err   error
}

// submitResultMsg is emitted when a link submission settles.
type submitResultMsg struct {
	local  models.Link
	echoed *models.Link
	err    error
}

// bannerExpiredMsg removes the banner with the given id.
type bannerExpiredMsg struct {
	id string
}
