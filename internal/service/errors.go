package service

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrPostIDRequired = errors.New("post id is required")
)
