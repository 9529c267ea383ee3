package model

import "errors"

// Error codes
const (
	ErrCodeGroupNotFound = "GRP001"
	ErrCodeSlugTaken     = "GRP002"
)

var (
	ErrGroupNotFound = errors.New("group not found")
	ErrSlugTaken     = errors.New("group slug already taken")
)
