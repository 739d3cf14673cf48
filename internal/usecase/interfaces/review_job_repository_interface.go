package interfaces

import (
	"context"

	"auditqc/internal/domain/entities"
)

// IReviewJobRepository abstracts DynamoDB persistence for the review-job
// registry.
//
// The registry is operator-facing observability: every submitted review job
// and its last observed progress is recorded so stuck reviews can be audited.
// Writes are best-effort from the caller's point of view.
type IReviewJobRepository interface {
	Create(ctx context.Context, job entities.ReviewJob) (entities.ReviewJob, error)
	GetByReviewID(ctx context.Context, auditReviewID string) (entities.ReviewJob, error)
	UpdateProgress(ctx context.Context, auditReviewID string, progress entities.ReviewProgress) (entities.ReviewJob, error)
	ListByAuditID(ctx context.Context, auditID string) ([]entities.ReviewJob, error)
}
