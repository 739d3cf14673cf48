package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"auditqc/internal/cache"
	"auditqc/internal/domain/entities"
	"auditqc/internal/platform/logging"
	"auditqc/internal/usecase/interfaces"
	"auditqc/pkg"
)

var (
	ErrInvalidStepID    = fmt.Errorf("%w: stepId is required", pkg.ErrValidation)
	ErrInvalidContent   = fmt.Errorf("%w: content is required", pkg.ErrValidation)
	ErrInvalidCommentID = fmt.Errorf("%w: commentId is required", pkg.ErrValidation)
	ErrInvalidVersion   = fmt.Errorf("%w: version must be at least 1", pkg.ErrValidation)
)

// ICommentUseCase applies version-checked updates to step comments.
//
// Every update carries the version the caller last observed. A stale version
// surfaces pkg.ErrConflict untouched so the caller re-fetches and re-renders
// instead of retrying blindly. Optimistic versioning is the only concurrency
// safety this system has for comments.
type ICommentUseCase interface {
	CreateComment(ctx context.Context, draft entities.CommentDraft) (entities.AuditReviewComment, error)
	UpdateComment(ctx context.Context, patch entities.CommentPatch) (entities.AuditReviewComment, error)
}

type CommentUseCase struct {
	gateway interfaces.IQCGateway
	cache   *cache.Store
	logger  *logrus.Logger
}

var _ ICommentUseCase = (*CommentUseCase)(nil)

func NewCommentUseCase(gateway interfaces.IQCGateway, cacheStore *cache.Store, logger *logrus.Logger) *CommentUseCase {
	return &CommentUseCase{gateway: gateway, cache: cacheStore, logger: logger}
}

func (u *CommentUseCase) CreateComment(ctx context.Context, draft entities.CommentDraft) (entities.AuditReviewComment, error) {
	draft.AuditID = strings.TrimSpace(draft.AuditID)
	draft.StepID = strings.TrimSpace(draft.StepID)
	draft.Content = strings.TrimSpace(draft.Content)
	if draft.AuditID == "" {
		return entities.AuditReviewComment{}, ErrInvalidAuditID
	}
	if draft.StepID == "" {
		return entities.AuditReviewComment{}, ErrInvalidStepID
	}
	if draft.Content == "" {
		return entities.AuditReviewComment{}, ErrInvalidContent
	}

	comment, err := u.gateway.CreateComment(ctx, draft)
	if err != nil {
		logging.LogError(u.logger, "comment", "CreateComment", draft.AuditID, nil, err)
		return entities.AuditReviewComment{}, err
	}

	u.invalidate(ctx)
	return comment, nil
}

func (u *CommentUseCase) UpdateComment(ctx context.Context, patch entities.CommentPatch) (entities.AuditReviewComment, error) {
	patch.CommentID = strings.TrimSpace(patch.CommentID)
	patch.AuditID = strings.TrimSpace(patch.AuditID)
	patch.StepID = strings.TrimSpace(patch.StepID)
	patch.Content = strings.TrimSpace(patch.Content)
	if patch.CommentID == "" {
		return entities.AuditReviewComment{}, ErrInvalidCommentID
	}
	if patch.AuditID == "" {
		return entities.AuditReviewComment{}, ErrInvalidAuditID
	}
	if patch.StepID == "" {
		return entities.AuditReviewComment{}, ErrInvalidStepID
	}
	if patch.Content == "" {
		return entities.AuditReviewComment{}, ErrInvalidContent
	}
	if patch.Version < 1 {
		return entities.AuditReviewComment{}, ErrInvalidVersion
	}

	comment, err := u.gateway.UpdateComment(ctx, patch)
	if err != nil {
		// Conflicts are expected during concurrent editing; not a system fault.
		if !errors.Is(err, pkg.ErrConflict) {
			logging.LogError(u.logger, "comment", "UpdateComment", patch.CommentID, nil, err)
		}
		return entities.AuditReviewComment{}, err
	}

	u.invalidate(ctx)
	return comment, nil
}

func (u *CommentUseCase) invalidate(ctx context.Context) {
	if u.cache == nil {
		return
	}
	u.cache.Invalidate(ctx, auditReviewPrefix)
}
