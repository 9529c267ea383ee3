package model

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account entity. Usernames are unique and
// immutable; posts reference users as their author.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
