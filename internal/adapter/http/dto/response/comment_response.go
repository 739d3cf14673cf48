package response

import (
	"time"

	"auditqc/internal/domain/entities"
)

type CommentResponse struct {
	ID           string    `json:"id"`
	AuditID      string    `json:"audit_id"`
	AuditIDCamel string    `json:"auditId"`
	StepID       string    `json:"step_id"`
	StepIDCamel  string    `json:"stepId"`
	UserID       string    `json:"user_id"`
	Content      string    `json:"content"`
	Version      int       `json:"version"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromComment(c entities.AuditReviewComment) CommentResponse {
	return CommentResponse{
		ID:           c.ID,
		AuditID:      c.AuditID,
		AuditIDCamel: c.AuditID,
		StepID:       c.StepID,
		StepIDCamel:  c.StepID,
		UserID:       c.UserID,
		Content:      c.Content,
		Version:      c.Version,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
