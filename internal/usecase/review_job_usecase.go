package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"auditqc/internal/cache"
	"auditqc/internal/domain/entities"
	"auditqc/internal/platform/logging"
	"auditqc/internal/usecase/interfaces"
	"auditqc/pkg"
)

var (
	ErrInvalidAuditID       = fmt.Errorf("%w: auditId is required", pkg.ErrValidation)
	ErrInvalidAuditReviewID = fmt.Errorf("%w: auditReviewId is required", pkg.ErrValidation)
	ErrInvalidStatus        = fmt.Errorf("%w: status is required", pkg.ErrValidation)
	ErrJobNotFound          = fmt.Errorf("%w: review job", pkg.ErrNotFound)
)

// auditReviewPrefix covers both the entity keys ("audit-review:...") and the
// list keys ("audit-reviews:..."), so one invalidation call clears both.
const auditReviewPrefix = "audit-review"

// IReviewJobUseCase drives the asynchronous "send for review" job.
//
// Report generation is not guaranteed to finish within one request timeout,
// so SendForReview hands back an auditReviewId handle and the caller drives
// the polling loop (PollReview directly, or WaitForReview with an interval
// and a cancellable ctx).
type IReviewJobUseCase interface {
	SendForReview(ctx context.Context, auditID string) (entities.SendForReviewResult, error)
	PollReview(ctx context.Context, auditReviewID string) (entities.ReviewProgress, error)
	WaitForReview(ctx context.Context, auditReviewID string, interval time.Duration) (entities.ReviewProgress, error)
	CompleteReview(ctx context.Context, auditID string) (entities.CompleteReviewResult, error)
	UpdateStatus(ctx context.Context, auditID string, requested entities.AuditStatus) (entities.StatusChange, error)
	ListJobs(ctx context.Context, auditID string) ([]entities.ReviewJob, error)
	GetJob(ctx context.Context, auditReviewID string) (entities.ReviewJob, error)
}

type ReviewJobUseCase struct {
	gateway  interfaces.IQCGateway
	registry interfaces.IReviewJobRepository
	cache    *cache.Store
	logger   *logrus.Logger
}

var _ IReviewJobUseCase = (*ReviewJobUseCase)(nil)

func NewReviewJobUseCase(gateway interfaces.IQCGateway, registry interfaces.IReviewJobRepository, cacheStore *cache.Store, logger *logrus.Logger) *ReviewJobUseCase {
	return &ReviewJobUseCase{gateway: gateway, registry: registry, cache: cacheStore, logger: logger}
}

func (u *ReviewJobUseCase) SendForReview(ctx context.Context, auditID string) (entities.SendForReviewResult, error) {
	auditID = strings.TrimSpace(auditID)
	if auditID == "" {
		return entities.SendForReviewResult{}, ErrInvalidAuditID
	}

	res, err := u.gateway.SendForReview(ctx, auditID)
	if err != nil {
		logging.LogError(u.logger, "reviewjob", "SendForReview", auditID, nil, err)
		return entities.SendForReviewResult{}, err
	}

	u.recordSubmission(ctx, res)
	u.invalidate(ctx)

	logging.LogInfo(u.logger, "reviewjob", "SendForReview", "review submitted", map[string]any{
		"audit_id":        res.AuditID,
		"audit_review_id": res.AuditReviewID,
		"status":          string(res.Status),
	})
	return res, nil
}

func (u *ReviewJobUseCase) PollReview(ctx context.Context, auditReviewID string) (entities.ReviewProgress, error) {
	auditReviewID = strings.TrimSpace(auditReviewID)
	if auditReviewID == "" {
		return entities.ReviewProgress{}, ErrInvalidAuditReviewID
	}

	progress, err := u.gateway.GetReviewProgress(ctx, auditReviewID)
	if err != nil {
		return entities.ReviewProgress{}, err
	}

	u.recordProgress(ctx, auditReviewID, progress)
	if progress.ReviewReady || progress.Status.IsTerminal() {
		u.invalidate(ctx)
	}
	return progress, nil
}

// WaitForReview polls until the review is ready or its status turns terminal,
// sleeping interval between polls. Cancellation of ctx stops the loop
// immediately; there is no background work to orphan.
func (u *ReviewJobUseCase) WaitForReview(ctx context.Context, auditReviewID string, interval time.Duration) (entities.ReviewProgress, error) {
	if interval <= 0 {
		return entities.ReviewProgress{}, fmt.Errorf("%w: poll interval must be positive", pkg.ErrValidation)
	}
	for {
		progress, err := u.PollReview(ctx, auditReviewID)
		if err != nil {
			return entities.ReviewProgress{}, err
		}
		if progress.ReviewReady || progress.Status.IsTerminal() {
			return progress, nil
		}
		select {
		case <-ctx.Done():
			return progress, ctx.Err()
		case <-time.After(interval):
		}
	}
}

func (u *ReviewJobUseCase) CompleteReview(ctx context.Context, auditID string) (entities.CompleteReviewResult, error) {
	auditID = strings.TrimSpace(auditID)
	if auditID == "" {
		return entities.CompleteReviewResult{}, ErrInvalidAuditID
	}

	res, err := u.gateway.CompleteReview(ctx, auditID)
	if err != nil {
		logging.LogError(u.logger, "reviewjob", "CompleteReview", auditID, nil, err)
		return entities.CompleteReviewResult{}, err
	}

	u.invalidate(ctx)
	logging.LogInfo(u.logger, "reviewjob", "CompleteReview", "review completed", map[string]any{
		"audit_id": res.AuditID,
		"status":   string(res.Status),
	})
	return res, nil
}

// UpdateStatus is the operator override. It forwards any requested status
// without consulting the automatic transition graph; legality of manual
// corrections is enforced by the backend.
func (u *ReviewJobUseCase) UpdateStatus(ctx context.Context, auditID string, requested entities.AuditStatus) (entities.StatusChange, error) {
	auditID = strings.TrimSpace(auditID)
	if auditID == "" {
		return entities.StatusChange{}, ErrInvalidAuditID
	}
	if strings.TrimSpace(string(requested)) == "" {
		return entities.StatusChange{}, ErrInvalidStatus
	}

	change, err := u.gateway.UpdateStatus(ctx, auditID, requested)
	if err != nil {
		logging.LogError(u.logger, "reviewjob", "UpdateStatus", auditID, nil, err)
		return entities.StatusChange{}, err
	}

	u.invalidate(ctx)
	logging.LogInfo(u.logger, "reviewjob", "UpdateStatus", "status overridden", map[string]any{
		"audit_id":   change.AuditID,
		"old_status": string(change.OldStatus),
		"new_status": string(change.NewStatus),
	})
	return change, nil
}

func (u *ReviewJobUseCase) ListJobs(ctx context.Context, auditID string) ([]entities.ReviewJob, error) {
	auditID = strings.TrimSpace(auditID)
	if auditID == "" {
		return nil, ErrInvalidAuditID
	}
	if u.registry == nil {
		return nil, nil
	}
	return u.registry.ListByAuditID(ctx, auditID)
}

// GetJob looks up the registry record for one submitted review.
func (u *ReviewJobUseCase) GetJob(ctx context.Context, auditReviewID string) (entities.ReviewJob, error) {
	auditReviewID = strings.TrimSpace(auditReviewID)
	if auditReviewID == "" {
		return entities.ReviewJob{}, ErrInvalidAuditReviewID
	}
	if u.registry == nil {
		return entities.ReviewJob{}, ErrJobNotFound
	}
	job, err := u.registry.GetByReviewID(ctx, auditReviewID)
	if err != nil {
		return entities.ReviewJob{}, err
	}
	if job.AuditReviewID == "" {
		return entities.ReviewJob{}, ErrJobNotFound
	}
	return job, nil
}

// recordSubmission writes the registry record. Registry writes are
// observability, never a reason to fail the user operation.
func (u *ReviewJobUseCase) recordSubmission(ctx context.Context, res entities.SendForReviewResult) {
	if u.registry == nil {
		return
	}
	now := time.Now().UTC()
	job := entities.ReviewJob{
		ID:            uuid.NewString(),
		AuditID:       res.AuditID,
		AuditReviewID: res.AuditReviewID,
		Status:        res.Status,
		Message:       res.Message,
		ReviewReady:   res.ReviewReady,
		SubmittedAt:   now,
		UpdatedAt:     now,
	}
	if _, err := u.registry.Create(ctx, job); err != nil {
		logging.LogError(u.logger, "reviewjob", "recordSubmission", res.AuditReviewID, nil, err)
	}
}

func (u *ReviewJobUseCase) recordProgress(ctx context.Context, auditReviewID string, progress entities.ReviewProgress) {
	if u.registry == nil {
		return
	}
	if _, err := u.registry.UpdateProgress(ctx, auditReviewID, progress); err != nil {
		logging.LogError(u.logger, "reviewjob", "recordProgress", auditReviewID, nil, err)
	}
}

// invalidate runs before results are returned to callers, so any read issued
// after a mutation response refetches.
func (u *ReviewJobUseCase) invalidate(ctx context.Context) {
	if u.cache == nil {
		return
	}
	u.cache.Invalidate(ctx, auditReviewPrefix)
}
