package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodePostNotFound = "PST001"
	ErrCodeTextRequired = "PST002"
	ErrCodeUnknownGroup = "PST003"
	ErrCodeNotAuthor    = "PST004"
	ErrCodeInvalidPage  = "PST005"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrTextRequired = errors.New("text must not be empty")
	ErrUnknownGroup = errors.New("group does not exist")
	ErrNotAuthor    = errors.New("only the author may edit this post")
	ErrInvalidPage  = errors.New("page number must be 1 or greater")
)

// PostError carries a stable code alongside the underlying error so
// handlers can map it without string matching.
type PostError struct {
	Code    string
	Message string
	Err     error
}

func (e *PostError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *PostError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewPostNotFoundError() *PostError {
	return &PostError{
		Code:    ErrCodePostNotFound,
		Message: "Post not found",
		Err:     ErrPostNotFound,
	}
}

func NewTextRequiredError() *PostError {
	return &PostError{
		Code:    ErrCodeTextRequired,
		Message: "Text is required",
		Err:     ErrTextRequired,
	}
}

func NewUnknownGroupError(slug string) *PostError {
	return &PostError{
		Code:    ErrCodeUnknownGroup,
		Message: fmt.Sprintf("Group %q does not exist", slug),
		Err:     ErrUnknownGroup,
	}
}

func NewNotAuthorError() *PostError {
	return &PostError{
		Code:    ErrCodeNotAuthor,
		Message: "Only the author may edit this post",
		Err:     ErrNotAuthor,
	}
}

func NewInvalidPageError() *PostError {
	return &PostError{
		Code:    ErrCodeInvalidPage,
		Message: "Invalid page number",
		Err:     ErrInvalidPage,
	}
}
