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

var errInvalidCommentPayload = pkg.NewDomainErrorSimple("INVALID_COMMENT_INPUT", "Invalid comment payload", http.StatusBadRequest)

type CommentHandler struct {
	usecase usecase.ICommentUseCase
}

func NewCommentHandler(uc usecase.ICommentUseCase) *CommentHandler {
	return &CommentHandler{usecase: uc}
}

// CreateComment posts a remark on one review step.
//
// @Summary  Create a step comment
// @Tags     comments
// @Accept   json
// @Produce  json
// @Param    audit_id path string true "Audit ID"
// @Param    step_id path string true "Step ID"
// @Param    payload body request.CreateCommentRequest true "Comment content"
// @Success  201 {object} response.CommentResponse
// @Router   /audits/{audit_id}/steps/{step_id}/comments [post]
// @Security Bearer
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var payload request.CreateCommentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCommentPayload.HTTPStatus, errInvalidCommentPayload.ToHTTPError())
		return
	}

	comment, err := h.usecase.CreateComment(c.Request.Context(), entities.CommentDraft{
		AuditID: c.Param("audit_id"),
		StepID:  c.Param("step_id"),
		Content: payload.ResolveContent(),
	})
	if err != nil {
		appErr := mapCoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromComment(comment))
}

// UpdateComment edits a remark, guarded by the version the client last read.
//
// @Summary  Update a step comment
// @Tags     comments
// @Accept   json
// @Produce  json
// @Param    audit_id path string true "Audit ID"
// @Param    step_id path string true "Step ID"
// @Param    comment_id path string true "Comment ID"
// @Param    payload body request.UpdateCommentRequest true "Edited content plus observed version"
// @Success  200 {object} response.CommentResponse
// @Failure  409 {object} pkg.HTTPError "Version conflict; reload the comment"
// @Router   /audits/{audit_id}/steps/{step_id}/comments/{comment_id} [put]
// @Security Bearer
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	var payload request.UpdateCommentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCommentPayload.HTTPStatus, errInvalidCommentPayload.ToHTTPError())
		return
	}

	comment, err := h.usecase.UpdateComment(c.Request.Context(), entities.CommentPatch{
		CommentID: c.Param("comment_id"),
		AuditID:   c.Param("audit_id"),
		StepID:    c.Param("step_id"),
		Content:   payload.ResolveContent(),
		Version:   payload.Version,
	})
	if err != nil {
		appErr := mapCoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromComment(comment))
}
