package guard

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize_ViewListing(t *testing.T) {
	// Listings are public for everyone
	assert.Equal(t, Allow, Authorize(ActionViewListing, nil, nil).Kind)

	identity := &Identity{UserID: uuid.New(), Username: "leo"}
	assert.Equal(t, Allow, Authorize(ActionViewListing, identity, nil).Kind)
}

func TestAuthorize_CreatePost(t *testing.T) {
	t.Run("anonymous is sent to login", func(t *testing.T) {
		decision := Authorize(ActionCreatePost, nil, nil)
		assert.Equal(t, RedirectToLogin, decision.Kind)
	})

	t.Run("any authenticated user may create", func(t *testing.T) {
		identity := &Identity{UserID: uuid.New(), Username: "leo"}
		decision := Authorize(ActionCreatePost, identity, nil)
		assert.Equal(t, Allow, decision.Kind)
	})
}

func TestAuthorize_EditPost(t *testing.T) {
	authorID := uuid.New()
	post := &PostRef{ID: 42, AuthorID: authorID}

	t.Run("anonymous is sent to login", func(t *testing.T) {
		decision := Authorize(ActionEditPost, nil, post)
		assert.Equal(t, RedirectToLogin, decision.Kind)
	})

	t.Run("author is allowed", func(t *testing.T) {
		identity := &Identity{UserID: authorID, Username: "leo"}
		decision := Authorize(ActionEditPost, identity, post)
		assert.Equal(t, Allow, decision.Kind)
	})

	t.Run("non-author is sent to the detail view, not rejected", func(t *testing.T) {
		identity := &Identity{UserID: uuid.New(), Username: "other"}
		decision := Authorize(ActionEditPost, identity, post)
		assert.Equal(t, RedirectToDetail, decision.Kind)
		assert.Equal(t, int64(42), decision.PostID)
	})
}
