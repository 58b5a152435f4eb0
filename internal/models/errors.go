package models

import "errors"

// Sentinel errors shared between repositories, services and handlers.
// Handlers map these onto HTTP status codes; anything else is a 500.
var (
	ErrTemplateNotFound   = errors.New("template not found")
	ErrDuplicateSlug      = errors.New("a template with this name already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
