package interfaces

import (
	"context"

	"auditqc/internal/domain/entities"
)

// IQCGateway abstracts the upstream QC backend.
//
// Every call performs network I/O with the bearer credential carried by ctx;
// a missing credential short-circuits with pkg.ErrUnauthorized before any
// request is issued.
type IQCGateway interface {
	// Review job lifecycle.
	SendForReview(ctx context.Context, auditID string) (entities.SendForReviewResult, error)
	GetReviewProgress(ctx context.Context, auditReviewID string) (entities.ReviewProgress, error)
	CompleteReview(ctx context.Context, auditID string) (entities.CompleteReviewResult, error)
	UpdateStatus(ctx context.Context, auditID string, requested entities.AuditStatus) (entities.StatusChange, error)

	// Shared sub-resources.
	CreateComment(ctx context.Context, draft entities.CommentDraft) (entities.AuditReviewComment, error)
	UpdateComment(ctx context.Context, patch entities.CommentPatch) (entities.AuditReviewComment, error)
	UpdateFinding(ctx context.Context, patch entities.FindingPatch) (entities.Finding, error)

	// Reads.
	GetAuditReview(ctx context.Context, auditID string) (entities.AuditReview, error)
	ListAuditReviews(ctx context.Context, filters []entities.ListFilter) ([]entities.AuditReview, error)
	ListFacilities(ctx context.Context, filters []entities.ListFilter) ([]entities.Facility, error)
	ListProjects(ctx context.Context, filters []entities.ListFilter) ([]entities.Project, error)
	ListUsers(ctx context.Context, filters []entities.ListFilter) ([]entities.User, error)
}
