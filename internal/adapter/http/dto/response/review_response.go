package response

import (
	"time"

	"auditqc/internal/domain/entities"
)

// Response DTOs emit both the snake_case schema and the camelCase spellings
// the legacy UI still reads. The duplication is deliberate; drop the camel
// aliases only once no consumer reads them anymore.

type ReviewProgressResponse struct {
	AuditID            string `json:"audit_id"`
	AuditIDCamel       string `json:"auditId"`
	AuditReviewID      string `json:"audit_review_id"`
	AuditReviewIDCamel string `json:"auditReviewId"`
	Status             string `json:"status"`
	Message            string `json:"message,omitempty"`
	ReviewReady        bool   `json:"review_ready"`
	ReviewReadyCamel   bool   `json:"reviewReady"`
}

func FromReviewProgress(p entities.ReviewProgress) ReviewProgressResponse {
	return ReviewProgressResponse{
		AuditID:            p.AuditID,
		AuditIDCamel:       p.AuditID,
		AuditReviewID:      p.AuditReviewID,
		AuditReviewIDCamel: p.AuditReviewID,
		Status:             string(p.Status),
		Message:            p.Message,
		ReviewReady:        p.ReviewReady,
		ReviewReadyCamel:   p.ReviewReady,
	}
}

type CompleteReviewResponse struct {
	AuditID      string `json:"audit_id"`
	AuditIDCamel string `json:"auditId"`
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
}

func FromCompleteReview(r entities.CompleteReviewResult) CompleteReviewResponse {
	return CompleteReviewResponse{
		AuditID:      r.AuditID,
		AuditIDCamel: r.AuditID,
		Status:       string(r.Status),
		Message:      r.Message,
	}
}

type StatusChangeResponse struct {
	AuditID        string `json:"audit_id"`
	AuditIDCamel   string `json:"auditId"`
	OldStatus      string `json:"old_status"`
	OldStatusCamel string `json:"oldStatus"`
	NewStatus      string `json:"new_status"`
	NewStatusCamel string `json:"newStatus"`
}

func FromStatusChange(c entities.StatusChange) StatusChangeResponse {
	return StatusChangeResponse{
		AuditID:        c.AuditID,
		AuditIDCamel:   c.AuditID,
		OldStatus:      string(c.OldStatus),
		OldStatusCamel: string(c.OldStatus),
		NewStatus:      string(c.NewStatus),
		NewStatusCamel: string(c.NewStatus),
	}
}

type ReviewJobResponse struct {
	ID            string    `json:"id"`
	AuditID       string    `json:"audit_id"`
	AuditReviewID string    `json:"audit_review_id"`
	Status        string    `json:"status"`
	Message       string    `json:"message,omitempty"`
	ReviewReady   bool      `json:"review_ready"`
	SubmittedAt   time.Time `json:"submitted_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromReviewJob(j entities.ReviewJob) ReviewJobResponse {
	return ReviewJobResponse{
		ID:            j.ID,
		AuditID:       j.AuditID,
		AuditReviewID: j.AuditReviewID,
		Status:        string(j.Status),
		Message:       j.Message,
		ReviewReady:   j.ReviewReady,
		SubmittedAt:   j.SubmittedAt,
		UpdatedAt:     j.UpdatedAt,
	}
}

func FromReviewJobs(jobs []entities.ReviewJob) []ReviewJobResponse {
	out := make([]ReviewJobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromReviewJob(j))
	}
	return out
}
