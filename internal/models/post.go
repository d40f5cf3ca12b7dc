package models

import "time"

// Post is a blog entry owned by exactly one user. OwnerID is immutable after
// creation; Author is joined in on reads and omitted on writes.
type Post struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	OwnerID   string       `json:"ownerId"`
	CreatedAt time.Time    `json:"createdAt"`
	Author    *UserSummary `json:"author,omitempty"`
}
