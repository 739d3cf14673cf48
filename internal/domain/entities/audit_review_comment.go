package entities

import "time"

// AuditReviewComment is a threaded remark attached to one review step.
//
// Version starts at 1 and increases monotonically on the backend. Any update
// must carry the version the client last observed; the backend rejects stale
// versions instead of silently overwriting concurrent edits.
type AuditReviewComment struct {
	ID        string    `json:"id"`
	AuditID   string    `json:"audit_id"`
	StepID    string    `json:"step_id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
