package model

import (
	"time"

	"github.com/google/uuid"
)

// Group is a named category posts can be assigned to.
// The slug is URL-safe, globally unique and immutable.
// Groups are created administratively (seeding), never through the
// public surface.
type Group struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
