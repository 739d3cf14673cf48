package usecase

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"auditqc/internal/cache"
	"auditqc/internal/domain/entities"
	"auditqc/internal/usecase/interfaces"
)

const defaultStaleTime = 5 * time.Minute

// IQueryUseCase serves the read views. Every read goes through the cache
// store: list views tolerate brief staleness (bounded by the stale time),
// while mutations force invalidation through the shared key prefixes.
type IQueryUseCase interface {
	GetAuditReview(ctx context.Context, auditID string) (entities.AuditReview, error)
	ListAuditReviews(ctx context.Context, filters []entities.ListFilter) ([]entities.AuditReview, error)
	ListFacilities(ctx context.Context, filters []entities.ListFilter) ([]entities.Facility, error)
	ListProjects(ctx context.Context, filters []entities.ListFilter) ([]entities.Project, error)
	ListUsers(ctx context.Context, filters []entities.ListFilter) ([]entities.User, error)
}

type QueryUseCase struct {
	gateway   interfaces.IQCGateway
	cache     *cache.Store
	staleTime time.Duration
	logger    *logrus.Logger
}

var _ IQueryUseCase = (*QueryUseCase)(nil)

// NewQueryUseCase reads CACHE_STALE_SECONDS (default 300) for the stale time.
func NewQueryUseCase(gateway interfaces.IQCGateway, cacheStore *cache.Store, logger *logrus.Logger) *QueryUseCase {
	staleTime := defaultStaleTime
	if v := strings.TrimSpace(os.Getenv("CACHE_STALE_SECONDS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			staleTime = time.Duration(n) * time.Second
		}
	}
	return &QueryUseCase{gateway: gateway, cache: cacheStore, staleTime: staleTime, logger: logger}
}

// NewQueryUseCaseWithStaleTime is the test-friendly constructor.
func NewQueryUseCaseWithStaleTime(gateway interfaces.IQCGateway, cacheStore *cache.Store, staleTime time.Duration, logger *logrus.Logger) *QueryUseCase {
	return &QueryUseCase{gateway: gateway, cache: cacheStore, staleTime: staleTime, logger: logger}
}

func cacheFilters(filters []entities.ListFilter) []cache.Filter {
	out := make([]cache.Filter, 0, len(filters))
	for _, f := range filters {
		out = append(out, cache.Filter{Field: f.Field, Value: f.Value})
	}
	return out
}

func (u *QueryUseCase) GetAuditReview(ctx context.Context, auditID string) (entities.AuditReview, error) {
	auditID = strings.TrimSpace(auditID)
	if auditID == "" {
		return entities.AuditReview{}, ErrInvalidAuditID
	}
	key := cache.NewKey("audit-review", cache.Filter{Field: "auditId", Value: auditID})
	return cache.Get(ctx, u.cache, key, u.staleTime, func(ctx context.Context) (entities.AuditReview, error) {
		review, err := u.gateway.GetAuditReview(ctx, auditID)
		if err != nil {
			return entities.AuditReview{}, err
		}
		// The displayed total must reflect the findings just fetched. A
		// findings-free payload keeps the backend's advisory total.
		if len(review.Findings) > 0 {
			review.TotalCost = review.ReportTotal()
		}
		return review, nil
	})
}

func (u *QueryUseCase) ListAuditReviews(ctx context.Context, filters []entities.ListFilter) ([]entities.AuditReview, error) {
	key := cache.NewKey("audit-reviews", cacheFilters(filters)...)
	return cache.Get(ctx, u.cache, key, u.staleTime, func(ctx context.Context) ([]entities.AuditReview, error) {
		return u.gateway.ListAuditReviews(ctx, filters)
	})
}

func (u *QueryUseCase) ListFacilities(ctx context.Context, filters []entities.ListFilter) ([]entities.Facility, error) {
	key := cache.NewKey("facilities", cacheFilters(filters)...)
	return cache.Get(ctx, u.cache, key, u.staleTime, func(ctx context.Context) ([]entities.Facility, error) {
		return u.gateway.ListFacilities(ctx, filters)
	})
}

func (u *QueryUseCase) ListProjects(ctx context.Context, filters []entities.ListFilter) ([]entities.Project, error) {
	key := cache.NewKey("projects", cacheFilters(filters)...)
	return cache.Get(ctx, u.cache, key, u.staleTime, func(ctx context.Context) ([]entities.Project, error) {
		return u.gateway.ListProjects(ctx, filters)
	})
}

func (u *QueryUseCase) ListUsers(ctx context.Context, filters []entities.ListFilter) ([]entities.User, error) {
	key := cache.NewKey("users", cacheFilters(filters)...)
	return cache.Get(ctx, u.cache, key, u.staleTime, func(ctx context.Context) ([]entities.User, error) {
		return u.gateway.ListUsers(ctx, filters)
	})
}
