package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "auditqc/internal/adapter/http/dto/request"
	response "auditqc/internal/adapter/http/dto/response"
	"auditqc/internal/domain/entities"
	"auditqc/internal/usecase"
	"auditqc/pkg"
)

var errInvalidStatusPayload = pkg.NewDomainErrorSimple("INVALID_STATUS_INPUT", "Invalid status payload", http.StatusBadRequest)

// ReviewHandler handles the review job lifecycle: submit, poll, complete,
// and the operator status override.
type ReviewHandler struct {
	usecase usecase.IReviewJobUseCase
}

func NewReviewHandler(uc usecase.IReviewJobUseCase) *ReviewHandler {
	return &ReviewHandler{usecase: uc}
}

// SendForReview submits an audit for QC review.
//
// @Summary  Send an audit for review
// @Tags     reviews
// @Produce  json
// @Param    audit_id path string true "Audit ID"
// @Success  202 {object} response.ReviewProgressResponse
// @Router   /audits/{audit_id}/review [post]
// @Security Bearer
func (h *ReviewHandler) SendForReview(c *gin.Context) {
	res, err := h.usecase.SendForReview(c.Request.Context(), c.Param("audit_id"))
	if err != nil {
		appErr := mapCoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusAccepted, response.FromReviewProgress(res))
}

// PollReview reports the current progress of a submitted review.
//
// @Summary  Poll review progress
// @Tags     reviews
// @Produce  json
// @Param    review_id path string true "Audit review ID"
// @Success  200 {object} response.ReviewProgressResponse
// @Router   /reviews/{review_id} [get]
// @Security Bearer
func (h *ReviewHandler) PollReview(c *gin.Context) {
	progress, err := h.usecase.PollReview(c.Request.Context(), c.Param("review_id"))
	if err != nil {
		appErr := mapCoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReviewProgress(progress))
}

// CompleteReview finalizes a review and triggers final report generation.
//
// @Summary  Complete a review
// @Tags     reviews
// @Produce  json
// @Param    audit_id path string true "Audit ID"
// @Success  200 {object} response.CompleteReviewResponse
// @Router   /audits/{audit_id}/review/complete [post]
// @Security Bearer
func (h *ReviewHandler) CompleteReview(c *gin.Context) {
	res, err := h.usecase.CompleteReview(c.Request.Context(), c.Param("audit_id"))
	if err != nil {
		appErr := mapCoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCompleteReview(res))
}

// UpdateStatus is the operator override for an audit status.
//
// @Summary  Override audit status
// @Tags     reviews
// @Accept   json
// @Produce  json
// @Param    audit_id path string true "Audit ID"
// @Param    payload body request.UpdateStatusRequest true "Requested status"
// @Success  200 {object} response.StatusChangeResponse
// @Router   /audits/{audit_id}/status [patch]
// @Security Bearer
func (h *ReviewHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}

	change, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("audit_id"), entities.AuditStatus(payload.ResolveStatus()))
	if err != nil {
		appErr := mapCoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStatusChange(change))
}

// ListJobs returns the registry records for an audit.
//
// @Summary  List submitted review jobs
// @Tags     reviews
// @Produce  json
// @Param    audit_id path string true "Audit ID"
// @Success  200 {array} response.ReviewJobResponse
// @Router   /audits/{audit_id}/jobs [get]
// @Security Bearer
func (h *ReviewHandler) ListJobs(c *gin.Context) {
	jobs, err := h.usecase.ListJobs(c.Request.Context(), c.Param("audit_id"))
	if err != nil {
		appErr := mapCoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReviewJobs(jobs))
}

// GetJob returns the registry record for a single submitted review.
//
// @Summary  Get a submitted review job
// @Tags     reviews
// @Produce  json
// @Param    review_id path string true "Audit review ID"
// @Success  200 {object} response.ReviewJobResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /reviews/{review_id}/job [get]
// @Security Bearer
func (h *ReviewHandler) GetJob(c *gin.Context) {
	job, err := h.usecase.GetJob(c.Request.Context(), c.Param("review_id"))
	if err != nil {
		appErr := mapCoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReviewJob(job))
}
