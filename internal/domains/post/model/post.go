package model

import (
	"time"

	"github.com/google/uuid"
)

// Post is the central entity: a short text published by one author,
// optionally assigned to a group.
//
// Invariants:
//   - ID is assigned at creation and monotonically increasing, so it
//     doubles as the creation-order key.
//   - Author is immutable after creation; Group may be added, changed
//     or cleared by an edit.
//   - PubDate is set once at creation.
type Post struct {
	ID      int64     `json:"id"`
	Text    string    `json:"text"`
	Author  AuthorRef `json:"author"`
	Group   *GroupRef `json:"group"` // nil for ungrouped posts
	PubDate time.Time `json:"pub_date"`
}

// AuthorRef is the denormalized author view carried on a post.
type AuthorRef struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// GroupRef is the denormalized group view carried on a post.
type GroupRef struct {
	ID    uuid.UUID `json:"id"`
	Slug  string    `json:"slug"`
	Title string    `json:"title"`
}
