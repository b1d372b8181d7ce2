package store

import "social-news-go/pkg/models"

// LinkStore is the ordered, in-memory collection of every known link.
// Insertion order is display order. Entries are never deduplicated.
//
// A LinkStore is not safe for concurrent use; it is owned by one event loop.
type LinkStore struct {
	links []models.Link
}

// NewLinkStore returns an empty store.
func NewLinkStore() *LinkStore {
	return &LinkStore{}
}

// Add appends link to the end of the sequence.
func (s *LinkStore) Add(link models.Link) {
	s.links = append(s.links, link)
}

// AddToTop inserts link at index 0, shifting every other entry back by one.
func (s *LinkStore) AddToTop(link models.Link) {
	s.links = append(s.links, models.Link{})
	copy(s.links[1:], s.links)
	s.links[0] = link
}

// Links returns the current sequence. The slice is shared with the store.
func (s *LinkStore) Links() []models.Link {
	return s.links
}

// Len returns the number of stored links.
func (s *LinkStore) Len() int {
	return len(s.links)
}
