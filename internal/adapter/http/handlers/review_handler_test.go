package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"auditqc/internal/adapter/http/handlers/mocks"
	"auditqc/internal/domain/entities"
	"auditqc/internal/usecase"
	"auditqc/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestReviewHandler_SendForReview(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewJobUseCase(ctrl)
		h := NewReviewHandler(uc)

		uc.EXPECT().SendForReview(gomock.Any(), "a-1").Return(entities.SendForReviewResult{
			AuditID:       "a-1",
			AuditReviewID: "rev-9",
			Status:        entities.StatusDraftReportInReview,
		}, nil)

		r := gin.New()
		r.POST("/v1/audits/:audit_id/review", h.SendForReview)

		req := httptest.NewRequest(http.MethodPost, "/v1/audits/a-1/review", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["audit_review_id"] != "rev-9" || body["auditReviewId"] != "rev-9" {
			t.Fatalf("missing review id spellings: %v", body)
		}
	})

	t.Run("validation error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewJobUseCase(ctrl)
		h := NewReviewHandler(uc)

		uc.EXPECT().SendForReview(gomock.Any(), gomock.Any()).Return(entities.SendForReviewResult{}, usecase.ErrInvalidAuditID)

		r := gin.New()
		r.POST("/v1/audits/:audit_id/review", h.SendForReview)

		req := httptest.NewRequest(http.MethodPost, "/v1/audits/%20/review", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unauthorized maps to 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewJobUseCase(ctrl)
		h := NewReviewHandler(uc)

		uc.EXPECT().SendForReview(gomock.Any(), "a-1").Return(entities.SendForReviewResult{}, fmt.Errorf("%w: session expired", pkg.ErrUnauthorized))

		r := gin.New()
		r.POST("/v1/audits/:audit_id/review", h.SendForReview)

		req := httptest.NewRequest(http.MethodPost, "/v1/audits/a-1/review", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("transport failure maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewJobUseCase(ctrl)
		h := NewReviewHandler(uc)

		uc.EXPECT().SendForReview(gomock.Any(), "a-1").Return(entities.SendForReviewResult{}, fmt.Errorf("%w: connection refused", pkg.ErrBadGateway))

		r := gin.New()
		r.POST("/v1/audits/:audit_id/review", h.SendForReview)

		req := httptest.NewRequest(http.MethodPost, "/v1/audits/a-1/review", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestReviewHandler_PollReview(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewJobUseCase(ctrl)
		h := NewReviewHandler(uc)

		uc.EXPECT().PollReview(gomock.Any(), "rev-9").Return(entities.ReviewProgress{
			AuditID:       "a-1",
			AuditReviewID: "rev-9",
			Status:        entities.StatusDraftReportInReview,
			ReviewReady:   true,
		}, nil)

		r := gin.New()
		r.GET("/v1/reviews/:review_id", h.PollReview)

		req := httptest.NewRequest(http.MethodGet, "/v1/reviews/rev-9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["review_ready"] != true {
			t.Fatalf("expected review_ready true: %v", body)
		}
	})

	t.Run("unknown review maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewJobUseCase(ctrl)
		h := NewReviewHandler(uc)

		uc.EXPECT().PollReview(gomock.Any(), "rev-0").Return(entities.ReviewProgress{}, &pkg.UpstreamStatusError{
			StatusCode: http.StatusNotFound,
			Message:    "no such review",
			Kind:       pkg.ErrNotFound,
		})

		r := gin.New()
		r.GET("/v1/reviews/:review_id", h.PollReview)

		req := httptest.NewRequest(http.MethodGet, "/v1/reviews/rev-0", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestReviewHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewJobUseCase(ctrl)
		h := NewReviewHandler(uc)

		r := gin.New()
		r.PATCH("/v1/audits/:audit_id/status", h.UpdateStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/audits/a-1/status", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("legacy newStatus spelling accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewJobUseCase(ctrl)
		h := NewReviewHandler(uc)

		uc.EXPECT().UpdateStatus(gomock.Any(), "a-1", entities.StatusCompleted).Return(entities.StatusChange{
			AuditID:   "a-1",
			OldStatus: entities.StatusDraftReportInReview,
			NewStatus: entities.StatusCompleted,
		}, nil)

		r := gin.New()
		r.PATCH("/v1/audits/:audit_id/status", h.UpdateStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/audits/a-1/status", bytes.NewBufferString(`{"newStatus":"completed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestReviewHandler_ListJobs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIReviewJobUseCase(ctrl)
	h := NewReviewHandler(uc)

	uc.EXPECT().ListJobs(gomock.Any(), "a-1").Return([]entities.ReviewJob{{ID: "j-1", AuditID: "a-1"}}, nil)

	r := gin.New()
	r.GET("/v1/audits/:audit_id/jobs", h.ListJobs)

	req := httptest.NewRequest(http.MethodGet, "/v1/audits/a-1/jobs", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(body) != 1 || body[0]["id"] != "j-1" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestReviewHandler_GetJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewJobUseCase(ctrl)
		h := NewReviewHandler(uc)

		uc.EXPECT().GetJob(gomock.Any(), "rev-1").
			Return(entities.ReviewJob{ID: "j-1", AuditID: "a-1", AuditReviewID: "rev-1"}, nil)

		r := gin.New()
		r.GET("/v1/reviews/:review_id/job", h.GetJob)

		req := httptest.NewRequest(http.MethodGet, "/v1/reviews/rev-1/job", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["id"] != "j-1" || body["audit_id"] != "a-1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewJobUseCase(ctrl)
		h := NewReviewHandler(uc)

		uc.EXPECT().GetJob(gomock.Any(), "rev-missing").Return(entities.ReviewJob{}, usecase.ErrJobNotFound)

		r := gin.New()
		r.GET("/v1/reviews/:review_id/job", h.GetJob)

		req := httptest.NewRequest(http.MethodGet, "/v1/reviews/rev-missing/job", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapCoreError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "validation", err: usecase.ErrInvalidAuditID, status: http.StatusBadRequest, code: "VALIDATION_ERROR"},
		{name: "unauthorized", err: fmt.Errorf("%w: no credential", pkg.ErrUnauthorized), status: http.StatusUnauthorized, code: "UNAUTHORIZED"},
		{name: "conflict", err: fmt.Errorf("%w: behind", pkg.ErrConflict), status: http.StatusConflict, code: "VERSION_CONFLICT"},
		{name: "not found", err: fmt.Errorf("%w: gone", pkg.ErrNotFound), status: http.StatusNotFound, code: "NOT_FOUND"},
		{name: "bad gateway", err: fmt.Errorf("%w: refused", pkg.ErrBadGateway), status: http.StatusBadGateway, code: "BAD_GATEWAY"},
		{name: "unknown", err: errors.New("wat"), status: http.StatusInternalServerError, code: "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := mapCoreError(tc.err)
			if appErr.HTTPStatus != tc.status {
				t.Fatalf("HTTPStatus = %d, want %d", appErr.HTTPStatus, tc.status)
			}
			if appErr.Code != tc.code {
				t.Fatalf("Code = %q, want %q", appErr.Code, tc.code)
			}
		})
	}

	t.Run("upstream status error keeps its message", func(t *testing.T) {
		appErr := mapCoreError(&pkg.UpstreamStatusError{StatusCode: 503, Message: "maintenance window", Kind: pkg.ErrUpstream})
		if appErr.HTTPStatus != http.StatusServiceUnavailable {
			t.Fatalf("HTTPStatus = %d, want 503", appErr.HTTPStatus)
		}
		if appErr.Message != "maintenance window" {
			t.Fatalf("Message = %q", appErr.Message)
		}
	})
}
