package upstream

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"auditqc/internal/domain/entities"
	"auditqc/internal/usecase/interfaces"
	"auditqc/pkg"
)

// IsMockEnabled reports whether the in-memory gateway replaces the real
// backend for local runs.
func IsMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("UPSTREAM_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

// MockGateway is an in-memory stand-in for the QC backend used for local
// runs without upstream connectivity. A submitted review becomes ready after
// two polls; comments track versions so the conflict path is exercisable.
type MockGateway struct {
	mu       sync.Mutex
	polls    map[string]int
	audits   map[string]string
	comments map[string]entities.AuditReviewComment
}

var _ interfaces.IQCGateway = (*MockGateway)(nil)

func NewMockGateway() *MockGateway {
	return &MockGateway{
		polls:    make(map[string]int),
		audits:   make(map[string]string),
		comments: make(map[string]entities.AuditReviewComment),
	}
}

func (g *MockGateway) SendForReview(ctx context.Context, auditID string) (entities.SendForReviewResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	reviewID := "rev-" + uuid.NewString()
	g.audits[reviewID] = auditID
	g.polls[reviewID] = 0
	return entities.SendForReviewResult{
		AuditID:       auditID,
		AuditReviewID: reviewID,
		Status:        entities.StatusDraftReportInReview,
		Message:       "report generation started",
		ReviewReady:   false,
	}, nil
}

func (g *MockGateway) GetReviewProgress(ctx context.Context, auditReviewID string) (entities.ReviewProgress, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	auditID, ok := g.audits[auditReviewID]
	if !ok {
		return entities.ReviewProgress{}, fmt.Errorf("%w: review %s", pkg.ErrNotFound, auditReviewID)
	}
	g.polls[auditReviewID]++
	if g.polls[auditReviewID] < 2 {
		return entities.ReviewProgress{
			AuditID:       auditID,
			AuditReviewID: auditReviewID,
			Status:        entities.StatusDraftReportInReview,
			Message:       "report generation running",
		}, nil
	}
	return entities.ReviewProgress{
		AuditID:       auditID,
		AuditReviewID: auditReviewID,
		Status:        entities.StatusFinalReportSentToClient,
		Message:       "report ready",
		ReviewReady:   true,
	}, nil
}

func (g *MockGateway) CompleteReview(ctx context.Context, auditID string) (entities.CompleteReviewResult, error) {
	return entities.CompleteReviewResult{
		AuditID: auditID,
		Status:  entities.StatusFinalReportSentToClient,
		Message: "final report sent",
	}, nil
}

func (g *MockGateway) UpdateStatus(ctx context.Context, auditID string, requested entities.AuditStatus) (entities.StatusChange, error) {
	return entities.StatusChange{
		AuditID:   auditID,
		OldStatus: entities.StatusDraftReportPendingReview,
		NewStatus: requested,
	}, nil
}

func (g *MockGateway) CreateComment(ctx context.Context, draft entities.CommentDraft) (entities.AuditReviewComment, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	now := time.Now().UTC()
	c := entities.AuditReviewComment{
		ID:        uuid.NewString(),
		AuditID:   draft.AuditID,
		StepID:    draft.StepID,
		UserID:    "mock-user",
		Content:   draft.Content,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	g.comments[c.ID] = c
	return c, nil
}

func (g *MockGateway) UpdateComment(ctx context.Context, patch entities.CommentPatch) (entities.AuditReviewComment, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	c, ok := g.comments[patch.CommentID]
	if !ok {
		return entities.AuditReviewComment{}, fmt.Errorf("%w: comment %s", pkg.ErrNotFound, patch.CommentID)
	}
	if patch.Version < c.Version {
		return entities.AuditReviewComment{}, fmt.Errorf("%w: comment version %d is behind %d", pkg.ErrConflict, patch.Version, c.Version)
	}
	c.Content = patch.Content
	c.Version++
	c.UpdatedAt = time.Now().UTC()
	g.comments[c.ID] = c
	return c, nil
}

func (g *MockGateway) UpdateFinding(ctx context.Context, patch entities.FindingPatch) (entities.Finding, error) {
	f := entities.Finding{
		QuestionCode:    patch.QuestionCode,
		IncludeInReport: true,
		UpdatedAt:       time.Now().UTC(),
	}
	if patch.Quantity != nil {
		f.Quantity = *patch.Quantity
	}
	f.Notes = patch.Notes
	f.Photos = patch.Photos
	return f, nil
}

func (g *MockGateway) GetAuditReview(ctx context.Context, auditID string) (entities.AuditReview, error) {
	now := time.Now().UTC()
	notes := "mock finding"
	a := entities.AuditReview{
		AuditID: auditID,
		Status:  entities.StatusDraftReportPendingReview,
		Findings: []entities.Finding{
			{QuestionCode: "Q1", Quantity: 2, Cost: 10, TotalCost: 20, Notes: &notes, IncludeInReport: true, UpdatedAt: now},
			{QuestionCode: "Q2", Quantity: 1, Cost: 5, TotalCost: 5, UpdatedAt: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	a.TotalCost = a.ReportTotal()
	return a, nil
}

func (g *MockGateway) ListAuditReviews(ctx context.Context, filters []entities.ListFilter) ([]entities.AuditReview, error) {
	a, _ := g.GetAuditReview(ctx, "audit-1")
	return []entities.AuditReview{a}, nil
}

func (g *MockGateway) ListFacilities(ctx context.Context, filters []entities.ListFilter) ([]entities.Facility, error) {
	return []entities.Facility{{ID: "fac-1", Name: "Mock Facility", ProjectID: "proj-1"}}, nil
}

func (g *MockGateway) ListProjects(ctx context.Context, filters []entities.ListFilter) ([]entities.Project, error) {
	return []entities.Project{{ID: "proj-1", Name: "Mock Project"}}, nil
}

func (g *MockGateway) ListUsers(ctx context.Context, filters []entities.ListFilter) ([]entities.User, error) {
	return []entities.User{{ID: "user-1", Name: "Mock Reviewer", Email: "reviewer@example.com"}}, nil
}
