// Package guard classifies each request as anonymous, authenticated
// non-owner, or owning author, and answers with an explicit decision
// instead of exception-style control flow.
package guard

import (
	"github.com/google/uuid"
)

// Action is the operation being authorized.
type Action int

const (
	ActionViewListing Action = iota
	ActionCreatePost
	ActionEditPost
)

// DecisionKind is the three-way outcome of an authorization check.
type DecisionKind int

const (
	// Allow lets the request through.
	Allow DecisionKind = iota

	// RedirectToLogin bounces an anonymous request to the login page
	// with a next= return parameter.
	RedirectToLogin

	// RedirectToDetail bounces an authenticated non-author off the edit
	// page to the read-only detail view. Deliberately not a 403: the
	// original application silently denies by redirecting.
	RedirectToDetail
)

// Decision is the guard's answer. PostID is set for RedirectToDetail.
type Decision struct {
	Kind   DecisionKind
	PostID int64
}

// Identity is the authenticated principal. nil means anonymous.
type Identity struct {
	UserID   uuid.UUID
	Username string
}

// PostRef is the minimal post view the guard needs for ownership checks.
type PostRef struct {
	ID       int64
	AuthorID uuid.UUID
}

// Authorize decides whether identity may perform action.
// For ActionEditPost, post must be the target post.
func Authorize(action Action, identity *Identity, post *PostRef) Decision {
	switch action {
	case ActionViewListing:
		// Public listings are open to everyone, anonymous included
		return Decision{Kind: Allow}

	case ActionCreatePost:
		if identity == nil {
			return Decision{Kind: RedirectToLogin}
		}
		return Decision{Kind: Allow}

	case ActionEditPost:
		if identity == nil {
			return Decision{Kind: RedirectToLogin}
		}
		if post == nil || identity.UserID != post.AuthorID {
			var id int64
			if post != nil {
				id = post.ID
			}
			return Decision{Kind: RedirectToDetail, PostID: id}
		}
		return Decision{Kind: Allow}
	}

	return Decision{Kind: RedirectToLogin}
}
