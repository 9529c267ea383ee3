package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// PostForm is the create/edit form: free text plus an optional group
// slug. The form fully replaces the prior values on edit; submitting
// an empty group clears the post's group.
type PostForm struct {
	Text  string `json:"text" form:"text"`
	Group string `json:"group" form:"group"`
}

func (f PostForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Text,
			validation.By(notBlank),
		),
	)
}

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return ErrTextRequired
	}
	return nil
}

// =====================================================
// RESPONSE DTOs
// =====================================================

// PostResponse is the rendered view of a single post.
type PostResponse struct {
	ID      int64     `json:"id"`
	Text    string    `json:"text"`
	Author  AuthorRef `json:"author"`
	Group   *GroupRef `json:"group"`
	PubDate time.Time `json:"pub_date"`
}

func ToPostResponse(p *Post) PostResponse {
	return PostResponse{
		ID:      p.ID,
		Text:    p.Text,
		Author:  p.Author,
		Group:   p.Group,
		PubDate: p.PubDate,
	}
}

// PostDetailResponse is the single-post page context. Mirrors what the
// detail template shows: the post plus the author's total post count.
type PostDetailResponse struct {
	Post            PostResponse `json:"post"`
	AuthorPostCount int          `json:"author_post_count"`
}

// ListPostsResponse is the listing page context. Group and Author are
// populated for group- and author-scoped listings respectively.
type ListPostsResponse struct {
	Posts      []PostResponse `json:"posts"`
	Group      *GroupInfo     `json:"group,omitempty"`
	Author     *AuthorInfo    `json:"author,omitempty"`
	Pagination PaginationMeta `json:"pagination"`
}

// GroupInfo is the group header of a group listing page.
type GroupInfo struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AuthorInfo is the profile header of an author listing page.
type AuthorInfo struct {
	Username  string `json:"username"`
	PostCount int    `json:"post_count"`
}

// PaginationMeta describes how a listing was sliced.
type PaginationMeta struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// NewPaginationMeta computes the page count as ceil(total/pageSize),
// never below 1 even for an empty listing.
func NewPaginationMeta(page, pageSize, total int) PaginationMeta {
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	return PaginationMeta{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// FormContext is what the create/edit pages render: the current form
// values plus the available group choices.
type FormContext struct {
	Form   PostForm    `json:"form"`
	Groups []GroupInfo `json:"groups"`
}
