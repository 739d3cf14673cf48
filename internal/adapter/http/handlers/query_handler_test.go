package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"auditqc/internal/adapter/http/handlers/mocks"
	"auditqc/internal/domain/entities"
	"auditqc/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newQueryRouter(h *QueryHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/audits/:audit_id/review-detail", h.GetAuditReview)
	r.GET("/v1/audit-reviews", h.ListAuditReviews)
	r.GET("/v1/facilities", h.ListFacilities)
	r.GET("/v1/projects", h.ListProjects)
	r.GET("/v1/users", h.ListUsers)
	return r
}

func TestQueryHandler_GetAuditReview(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQueryUseCase(ctrl)
		r := newQueryRouter(NewQueryHandler(uc))

		uc.EXPECT().GetAuditReview(gomock.Any(), "a-1").Return(entities.AuditReview{
			AuditID: "a-1",
			Status:  entities.StatusDraftReportInReview,
			Findings: []entities.Finding{
				{QuestionCode: "Q1", TotalCost: 100, IncludeInReport: true},
			},
			TotalCost: 100,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/audits/a-1/review-detail", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["audit_id"] != "a-1" || body["auditId"] != "a-1" {
			t.Fatalf("missing id spellings: %v", body)
		}
		if body["total_cost"] != float64(100) {
			t.Fatalf("unexpected total: %v", body)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQueryUseCase(ctrl)
		r := newQueryRouter(NewQueryHandler(uc))

		uc.EXPECT().GetAuditReview(gomock.Any(), "a-0").Return(entities.AuditReview{}, &pkg.UpstreamStatusError{
			StatusCode: http.StatusNotFound,
			Message:    "no such audit",
			Kind:       pkg.ErrNotFound,
		})

		req := httptest.NewRequest(http.MethodGet, "/v1/audits/a-0/review-detail", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestQueryHandler_ListAuditReviews(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQueryUseCase(ctrl)
	r := newQueryRouter(NewQueryHandler(uc))

	uc.EXPECT().ListAuditReviews(gomock.Any(), []entities.ListFilter{
		{Field: "status", Value: "completed"},
		{Field: "facility_id", Value: "f-1"},
	}).Return([]entities.AuditReview{{AuditID: "a-1"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/audit-reviews?status=completed&facility_id=f-1&unknown=ignored", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(body) != 1 || body[0]["audit_id"] != "a-1" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestQueryHandler_Directories(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQueryUseCase(ctrl)
	r := newQueryRouter(NewQueryHandler(uc))

	uc.EXPECT().ListFacilities(gomock.Any(), gomock.Nil()).Return([]entities.Facility{{ID: "f-1", Name: "Plant North"}}, nil)
	uc.EXPECT().ListProjects(gomock.Any(), gomock.Nil()).Return([]entities.Project{{ID: "p-1", Name: "2026 inspections"}}, nil)
	uc.EXPECT().ListUsers(gomock.Any(), []entities.ListFilter{{Field: "role", Value: "reviewer"}}).Return([]entities.User{{ID: "u-1", Name: "Dana"}}, nil)

	for _, target := range []string{"/v1/facilities", "/v1/projects", "/v1/users?role=reviewer"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", target, w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: invalid body: %v", target, err)
		}
		if len(body) != 1 {
			t.Fatalf("%s: unexpected body: %v", target, body)
		}
	}
}
