package models

import "time"

// Template represents a reusable email template with named placeholders
type Template struct {
	ID           int       `json:"id"`
	Slug         string    `json:"slug"`
	Name         string    `json:"name"`
	Content      string    `json:"content"`
	Placeholders []string  `json:"placeholders"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
}

// CreateTemplateRequest represents a request to create a template
type CreateTemplateRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=255"`
	Content string `json:"content" validate:"required,min=1"`
}

// UpdateTemplateRequest represents a partial update request.
// Empty fields are left unchanged.
type UpdateTemplateRequest struct {
	Name    string `json:"name,omitempty" validate:"omitempty,max=255"`
	Content string `json:"content,omitempty"`
}

// RenderedTemplate is the public view of a template after placeholder
// substitution and markdown rendering
type RenderedTemplate struct {
	Name         string   `json:"name"`
	Content      string   `json:"content"`
	HTML         string   `json:"html"`
	Placeholders []string `json:"placeholders"`
}
