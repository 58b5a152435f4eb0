package models

import "time"

// AuditAction represents the kind of template mutation being recorded
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

// AuditLogEntry represents an append-only record of a template mutation.
// Entries are never updated or deleted.
type AuditLogEntry struct {
	ID           int         `json:"id"`
	Action       AuditAction `json:"action"`
	TemplateID   int         `json:"template_id"`
	TemplateName string      `json:"template_name"`
	Details      string      `json:"details"`
	CreatedAt    time.Time   `json:"created_at"`
}
