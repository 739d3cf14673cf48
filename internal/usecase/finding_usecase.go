package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"

	"auditqc/internal/cache"
	"auditqc/internal/domain/entities"
	"auditqc/internal/platform/logging"
	"auditqc/internal/usecase/interfaces"
	"auditqc/pkg"
)

var (
	ErrInvalidQuestionCode = fmt.Errorf("%w: questionCode is required", pkg.ErrValidation)
	ErrEmptyFindingPatch   = fmt.Errorf("%w: at least one field must be provided", pkg.ErrValidation)
	ErrInvalidQuantity     = fmt.Errorf("%w: quantity must be a finite non-negative number", pkg.ErrValidation)
)

// IFindingUseCase applies sparse patches to audit findings. Only supplied
// fields travel on the wire; the backend leaves omitted fields untouched.
type IFindingUseCase interface {
	UpdateFinding(ctx context.Context, patch entities.FindingPatch) (entities.Finding, error)
}

type FindingUseCase struct {
	gateway interfaces.IQCGateway
	cache   *cache.Store
	logger  *logrus.Logger
}

var _ IFindingUseCase = (*FindingUseCase)(nil)

func NewFindingUseCase(gateway interfaces.IQCGateway, cacheStore *cache.Store, logger *logrus.Logger) *FindingUseCase {
	return &FindingUseCase{gateway: gateway, cache: cacheStore, logger: logger}
}

func (u *FindingUseCase) UpdateFinding(ctx context.Context, patch entities.FindingPatch) (entities.Finding, error) {
	patch.AuditID = strings.TrimSpace(patch.AuditID)
	patch.QuestionCode = strings.TrimSpace(patch.QuestionCode)
	if patch.AuditID == "" {
		return entities.Finding{}, ErrInvalidAuditID
	}
	if patch.QuestionCode == "" {
		return entities.Finding{}, ErrInvalidQuestionCode
	}
	if !patch.HasChanges() {
		return entities.Finding{}, ErrEmptyFindingPatch
	}
	if patch.Quantity != nil {
		q := *patch.Quantity
		if math.IsNaN(q) || math.IsInf(q, 0) || q < 0 {
			return entities.Finding{}, ErrInvalidQuantity
		}
	}

	finding, err := u.gateway.UpdateFinding(ctx, patch)
	if err != nil {
		logging.LogError(u.logger, "finding", "UpdateFinding", patch.AuditID+"/"+patch.QuestionCode, nil, err)
		return entities.Finding{}, err
	}

	if u.cache != nil {
		u.cache.Invalidate(ctx, auditReviewPrefix)
	}
	return finding, nil
}
