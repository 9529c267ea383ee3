package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	groupModel "microblog-backend/internal/domains/group/model"
	groupRepo "microblog-backend/internal/domains/group/repository"
	"microblog-backend/internal/domains/post/model"
	"microblog-backend/internal/domains/post/repository"
	userModel "microblog-backend/internal/domains/user/model"
	userRepo "microblog-backend/internal/domains/user/repository"
)

const testPageSize = 10

type queryFixture struct {
	posts  *repository.MemoryPostRepository
	groups groupRepo.GroupRepository
	users  userRepo.UserRepository
	query  QueryService

	author *userModel.User
	group  *groupModel.Group
}

func newQueryFixture(t *testing.T) *queryFixture {
	t.Helper()
	ctx := context.Background()

	f := &queryFixture{
		posts:  repository.NewMemoryPostRepository(),
		groups: groupRepo.NewMemoryGroupRepository(),
		users:  userRepo.NewMemoryUserRepository(),
	}

	f.author = &userModel.User{
		ID:        uuid.New(),
		Username:  "leo",
		Email:     "leo@example.com",
		CreatedAt: time.Now(),
	}
	require.NoError(t, f.users.Create(ctx, f.author))

	f.group = &groupModel.Group{
		ID:          uuid.New(),
		Slug:        "nature",
		Title:       "Nature",
		Description: "Posts about the outdoors",
		CreatedAt:   time.Now(),
	}
	require.NoError(t, f.groups.Create(ctx, f.group))

	f.query = NewQueryService(f.posts, f.groups, f.users, testPageSize, nil)
	return f
}

// seedPosts creates n posts by the fixture author, each a minute newer
// than the previous one.
func (f *queryFixture) seedPosts(t *testing.T, n int, group *model.GroupRef) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < n; i++ {
		post := &model.Post{
			Text:    fmt.Sprintf("post number %d", i+1),
			Author:  model.AuthorRef{ID: f.author.ID, Username: f.author.Username},
			Group:   group,
			PubDate: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, f.posts.Create(ctx, post))
	}
}

func TestListPosts_FirstPageIsFullAndNewestFirst(t *testing.T) {
	f := newQueryFixture(t)
	f.seedPosts(t, 13, nil)

	res, err := f.query.ListPosts(context.Background(), model.AllPosts(), 1)
	require.NoError(t, err)

	require.Len(t, res.Posts, testPageSize)
	assert.Equal(t, "post number 13", res.Posts[0].Text)
	assert.Equal(t, "post number 4", res.Posts[9].Text)

	assert.Equal(t, 13, res.Pagination.Total)
	assert.Equal(t, 2, res.Pagination.TotalPages)
	assert.True(t, res.Pagination.HasNext)
	assert.False(t, res.Pagination.HasPrev)
}

func TestListPosts_LastPageHoldsTheRemainder(t *testing.T) {
	f := newQueryFixture(t)
	f.seedPosts(t, 13, nil)

	res, err := f.query.ListPosts(context.Background(), model.AllPosts(), 2)
	require.NoError(t, err)

	require.Len(t, res.Posts, 3)
	assert.Equal(t, "post number 3", res.Posts[0].Text)
	assert.Equal(t, "post number 1", res.Posts[2].Text)
	assert.False(t, res.Pagination.HasNext)
	assert.True(t, res.Pagination.HasPrev)
}

func TestListPosts_PagePastTheEndIsEmptyNotAnError(t *testing.T) {
	f := newQueryFixture(t)
	f.seedPosts(t, 13, nil)

	res, err := f.query.ListPosts(context.Background(), model.AllPosts(), 3)
	require.NoError(t, err)

	assert.Empty(t, res.Posts)
	assert.Equal(t, 13, res.Pagination.Total)
	assert.Equal(t, 2, res.Pagination.TotalPages)
}

func TestListPosts_PageBelowOneIsRejected(t *testing.T) {
	f := newQueryFixture(t)
	f.seedPosts(t, 3, nil)

	for _, page := range []int{0, -1} {
		_, err := f.query.ListPosts(context.Background(), model.AllPosts(), page)
		assert.ErrorIs(t, err, model.ErrInvalidPage)
	}
}

func TestListPosts_EmptyListingStillHasOnePage(t *testing.T) {
	f := newQueryFixture(t)

	res, err := f.query.ListPosts(context.Background(), model.AllPosts(), 1)
	require.NoError(t, err)

	assert.Empty(t, res.Posts)
	assert.Equal(t, 0, res.Pagination.Total)
	assert.Equal(t, 1, res.Pagination.TotalPages)
	assert.False(t, res.Pagination.HasNext)
}

func TestListPosts_TiedPubDatesFallBackToNewestID(t *testing.T) {
	f := newQueryFixture(t)
	ctx := context.Background()
	when := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		post := &model.Post{
			Text:    fmt.Sprintf("tied %d", i+1),
			Author:  model.AuthorRef{ID: f.author.ID, Username: f.author.Username},
			PubDate: when,
		}
		require.NoError(t, f.posts.Create(ctx, post))
	}

	res, err := f.query.ListPosts(ctx, model.AllPosts(), 1)
	require.NoError(t, err)

	require.Len(t, res.Posts, 3)
	assert.Equal(t, "tied 3", res.Posts[0].Text)
	assert.Equal(t, "tied 1", res.Posts[2].Text)
}

func TestListPosts_GroupScopeExcludesUngroupedPosts(t *testing.T) {
	f := newQueryFixture(t)
	groupRef := &model.GroupRef{ID: f.group.ID, Slug: f.group.Slug, Title: f.group.Title}
	f.seedPosts(t, 2, groupRef)
	f.seedPosts(t, 5, nil)

	res, err := f.query.ListPosts(context.Background(), model.PostsInGroup("nature"), 1)
	require.NoError(t, err)

	require.Len(t, res.Posts, 2)
	for _, p := range res.Posts {
		require.NotNil(t, p.Group)
		assert.Equal(t, "nature", p.Group.Slug)
	}

	require.NotNil(t, res.Group)
	assert.Equal(t, "Nature", res.Group.Title)
	assert.Nil(t, res.Author)
}

func TestListPosts_UnknownGroupSlugIsNotFound(t *testing.T) {
	f := newQueryFixture(t)

	_, err := f.query.ListPosts(context.Background(), model.PostsInGroup("no-such-group"), 1)
	assert.ErrorIs(t, err, groupModel.ErrGroupNotFound)
}

func TestListPosts_AuthorScopeCarriesThePostCount(t *testing.T) {
	f := newQueryFixture(t)
	f.seedPosts(t, 4, nil)

	other := &userModel.User{ID: uuid.New(), Username: "maria", Email: "maria@example.com"}
	require.NoError(t, f.users.Create(context.Background(), other))
	require.NoError(t, f.posts.Create(context.Background(), &model.Post{
		Text:    "someone else's post",
		Author:  model.AuthorRef{ID: other.ID, Username: other.Username},
		PubDate: time.Now(),
	}))

	res, err := f.query.ListPosts(context.Background(), model.PostsByAuthor("leo"), 1)
	require.NoError(t, err)

	require.Len(t, res.Posts, 4)
	require.NotNil(t, res.Author)
	assert.Equal(t, "leo", res.Author.Username)
	assert.Equal(t, 4, res.Author.PostCount)
	assert.Nil(t, res.Group)
}

func TestListPosts_UnknownUsernameIsNotFound(t *testing.T) {
	f := newQueryFixture(t)

	_, err := f.query.ListPosts(context.Background(), model.PostsByAuthor("nobody"), 1)
	assert.ErrorIs(t, err, userModel.ErrUserNotFound)
}

func TestGetPost_ReturnsDetailWithAuthorCount(t *testing.T) {
	f := newQueryFixture(t)
	f.seedPosts(t, 3, nil)

	res, err := f.query.GetPost(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, int64(2), res.Post.ID)
	assert.Equal(t, "post number 2", res.Post.Text)
	assert.Equal(t, 3, res.AuthorPostCount)
}

func TestGetPost_UnknownIDIsNotFound(t *testing.T) {
	f := newQueryFixture(t)

	_, err := f.query.GetPost(context.Background(), 999)
	assert.ErrorIs(t, err, model.ErrPostNotFound)
}
