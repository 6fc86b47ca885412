package models

import "time"

// Link is a bookmarked URL owned by exactly one user. OwnerID is set at
// creation and never changes; every store operation is scoped by it.
type Link struct {
	ID        int       `json:"id"`
	OwnerID   int       `json:"-"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"-"`
}
