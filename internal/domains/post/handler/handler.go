package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	groupModel "microblog-backend/internal/domains/group/model"
	groupService "microblog-backend/internal/domains/group/service"
	"microblog-backend/internal/domains/post/guard"
	"microblog-backend/internal/domains/post/model"
	"microblog-backend/internal/domains/post/service"
	userModel "microblog-backend/internal/domains/user/model"
	"microblog-backend/internal/shared/middleware"
	"microblog-backend/internal/shared/response"
)

type PostHandler struct {
	query     service.QueryService
	mutation  service.MutationService
	groups    groupService.ServiceInterface
	loginPath string
}

func NewPostHandler(
	query service.QueryService,
	mutation service.MutationService,
	groups groupService.ServiceInterface,
	loginPath string,
) *PostHandler {
	return &PostHandler{
		query:     query,
		mutation:  mutation,
		groups:    groups,
		loginPath: loginPath,
	}
}

// =====================================================
// LISTING PAGES (public)
// =====================================================

// Index handles GET /
func (h *PostHandler) Index(c *gin.Context) {
	h.listing(c, model.AllPosts())
}

// GroupPosts handles GET /group/:slug/
func (h *PostHandler) GroupPosts(c *gin.Context) {
	h.listing(c, model.PostsInGroup(c.Param("slug")))
}

// Profile handles GET /profile/:username/
func (h *PostHandler) Profile(c *gin.Context) {
	h.listing(c, model.PostsByAuthor(c.Param("username")))
}

func (h *PostHandler) listing(c *gin.Context, scope model.Scope) {
	page, err := parsePage(c)
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, model.ErrCodeInvalidPage, "Invalid page number")
		return
	}

	res, err := h.query.ListPosts(c.Request.Context(), scope, page)
	if err != nil {
		h.respondListError(c, err)
		return
	}

	meta := res.Pagination
	response.SuccessWithMeta(c, http.StatusOK, res, &response.Meta{
		Page:       meta.Page,
		PageSize:   meta.PageSize,
		Total:      meta.Total,
		TotalPages: meta.TotalPages,
	})
}

// PostDetail handles GET /posts/:id/
func (h *PostHandler) PostDetail(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		response.NotFound(c, "Post not found")
		return
	}

	res, err := h.query.GetPost(c.Request.Context(), id)
	if err != nil {
		h.respondListError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res)
}

// =====================================================
// CREATE (authenticated)
// =====================================================

// CreateForm handles GET /create/
func (h *PostHandler) CreateForm(c *gin.Context) {
	decision := guard.Authorize(guard.ActionCreatePost, identityOf(c), nil)
	if decision.Kind == guard.RedirectToLogin {
		h.redirectToLogin(c)
		return
	}

	ctx, err := h.formContext(c, model.PostForm{})
	if err != nil {
		response.InternalServerError(c, "Failed to load form")
		return
	}

	response.Success(c, http.StatusOK, ctx)
}

// Create handles POST /create/
// On success the author is sent to their profile listing.
func (h *PostHandler) Create(c *gin.Context) {
	identity := identityOf(c)
	decision := guard.Authorize(guard.ActionCreatePost, identity, nil)
	if decision.Kind == guard.RedirectToLogin {
		h.redirectToLogin(c)
		return
	}

	var form model.PostForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	_, err := h.mutation.CreatePost(c.Request.Context(), identity.UserID, form)
	if err != nil {
		h.respondFormError(c, form, err)
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/profile/%s/", identity.Username))
}

// =====================================================
// EDIT (owning author only)
// =====================================================

// EditForm handles GET /posts/:id/edit/
func (h *PostHandler) EditForm(c *gin.Context) {
	post, ok := h.authorizeEdit(c)
	if !ok {
		return
	}

	form := model.PostForm{Text: post.Post.Text}
	if post.Post.Group != nil {
		form.Group = post.Post.Group.Slug
	}

	ctx, err := h.formContext(c, form)
	if err != nil {
		response.InternalServerError(c, "Failed to load form")
		return
	}

	response.Success(c, http.StatusOK, ctx)
}

// Edit handles POST /posts/:id/edit/
// On success the author is sent to the post's detail view.
func (h *PostHandler) Edit(c *gin.Context) {
	post, ok := h.authorizeEdit(c)
	if !ok {
		return
	}

	var form model.PostForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	identity := identityOf(c)
	res, err := h.mutation.EditPost(c.Request.Context(), identity.UserID, post.Post.ID, form)
	if err != nil {
		// The service re-checks authorship; a mismatch surfaces as a
		// redirect to the detail view, same as the guard's answer
		if errors.Is(err, model.ErrNotAuthor) {
			c.Redirect(http.StatusFound, detailPath(post.Post.ID))
			return
		}
		h.respondFormError(c, form, err)
		return
	}

	c.Redirect(http.StatusFound, detailPath(res.ID))
}

// authorizeEdit loads the target post and runs the three-way guard:
// anonymous -> login, non-author -> detail, author -> allowed.
func (h *PostHandler) authorizeEdit(c *gin.Context) (*model.PostDetailResponse, bool) {
	id, ok := parsePostID(c)
	if !ok {
		response.NotFound(c, "Post not found")
		return nil, false
	}

	// The login gate comes before post resolution, so an anonymous
	// request for an unknown id still gets the login redirect, not a 404
	identity := identityOf(c)
	if identity == nil {
		h.redirectToLogin(c)
		return nil, false
	}

	post, err := h.query.GetPost(c.Request.Context(), id)
	if err != nil {
		h.respondListError(c, err)
		return nil, false
	}

	decision := guard.Authorize(guard.ActionEditPost, identity, &guard.PostRef{
		ID:       post.Post.ID,
		AuthorID: post.Post.Author.ID,
	})

	switch decision.Kind {
	case guard.RedirectToLogin:
		h.redirectToLogin(c)
		return nil, false
	case guard.RedirectToDetail:
		c.Redirect(http.StatusFound, detailPath(decision.PostID))
		return nil, false
	}

	return post, true
}

// =====================================================
// HELPERS
// =====================================================

func (h *PostHandler) formContext(c *gin.Context, form model.PostForm) (*model.FormContext, error) {
	groups, err := h.groups.ListGroups(c.Request.Context())
	if err != nil {
		return nil, err
	}

	choices := make([]model.GroupInfo, 0, len(groups))
	for _, g := range groups {
		choices = append(choices, model.GroupInfo{
			Slug:        g.Slug,
			Title:       g.Title,
			Description: g.Description,
		})
	}

	return &model.FormContext{Form: form, Groups: choices}, nil
}

// redirectToLogin bounces to the login page with the original path in
// next= so the client can return after authenticating.
func (h *PostHandler) redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, h.loginPath+"?next="+c.Request.URL.Path)
}

func (h *PostHandler) respondListError(c *gin.Context, err error) {
	var postErr *model.PostError
	if errors.As(err, &postErr) {
		switch postErr.Code {
		case model.ErrCodePostNotFound:
			response.ErrorResponse(c, http.StatusNotFound, postErr.Code, postErr.Message)
		case model.ErrCodeInvalidPage:
			response.ErrorResponse(c, http.StatusBadRequest, postErr.Code, postErr.Message)
		default:
			response.InternalServerError(c, postErr.Message)
		}
		return
	}

	switch {
	case errors.Is(err, groupModel.ErrGroupNotFound):
		response.NotFound(c, "Group not found")
	case errors.Is(err, userModel.ErrUserNotFound):
		response.NotFound(c, "User not found")
	default:
		response.InternalServerError(c, "Something went wrong")
	}
}

// respondFormError re-surfaces a validation failure with the submitted
// input preserved, so the client can re-render the form.
func (h *PostHandler) respondFormError(c *gin.Context, form model.PostForm, err error) {
	var postErr *model.PostError
	if errors.As(err, &postErr) {
		switch postErr.Code {
		case model.ErrCodeTextRequired, model.ErrCodeUnknownGroup:
			response.ErrorWithDetails(c, http.StatusBadRequest, postErr.Code, postErr.Message, gin.H{
				"form": form,
			})
			return
		case model.ErrCodePostNotFound:
			response.ErrorResponse(c, http.StatusNotFound, postErr.Code, postErr.Message)
			return
		}
	}

	response.InternalServerError(c, "Something went wrong")
}

func identityOf(c *gin.Context) *guard.Identity {
	identity := middleware.CurrentIdentity(c)
	if identity == nil {
		return nil
	}
	return &guard.Identity{UserID: identity.UserID, Username: identity.Username}
}

// parsePage reads ?page=N; missing means page 1.
func parsePage(c *gin.Context) (int, error) {
	raw := c.Query("page")
	if raw == "" {
		return 1, nil
	}

	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, model.ErrInvalidPage
	}

	return page, nil
}

// parsePostID reads the :id path param. A non-numeric id behaves like
// an unknown path.
func parsePostID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func detailPath(id int64) string {
	return fmt.Sprintf("/posts/%d/", id)
}
