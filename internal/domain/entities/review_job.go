package entities

import "time"

// ReviewProgress is a transient projection of an audit review used only to
// observe the asynchronous report-generation job. It is never cached.
type ReviewProgress struct {
	AuditID       string      `json:"audit_id"`
	AuditReviewID string      `json:"audit_review_id"`
	Status        AuditStatus `json:"status"`
	Message       string      `json:"message,omitempty"`
	ReviewReady   bool        `json:"review_ready"`
}

// SendForReviewResult is the immediate answer to a send-for-review request.
// AuditReviewID is the handle callers use to drive the polling loop;
// ReviewReady is false while report generation is still running.
type SendForReviewResult = ReviewProgress

// CompleteReviewResult is the answer to finalizing a review.
type CompleteReviewResult struct {
	AuditID string      `json:"audit_id"`
	Status  AuditStatus `json:"status"`
	Message string      `json:"message,omitempty"`
}

// StatusChange reports a manual status override.
type StatusChange struct {
	AuditID   string      `json:"audit_id"`
	OldStatus AuditStatus `json:"old_status"`
	NewStatus AuditStatus `json:"new_status"`
}

// ReviewJob is the registry record kept for every review submitted through
// this service. The registry is observability for operators; losing a write
// never fails the user-facing operation.
type ReviewJob struct {
	ID            string      `json:"id"`
	AuditID       string      `json:"audit_id"`
	AuditReviewID string      `json:"audit_review_id"`
	Status        AuditStatus `json:"status"`
	Message       string      `json:"message,omitempty"`
	ReviewReady   bool        `json:"review_ready"`
	SubmittedAt   time.Time   `json:"submitted_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
