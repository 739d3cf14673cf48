package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "auditqc/internal/adapter/http/dto/request"
	response "auditqc/internal/adapter/http/dto/response"
	"auditqc/internal/usecase"
	"auditqc/pkg"
)

var errInvalidFindingPayload = pkg.NewDomainErrorSimple("INVALID_FINDING_INPUT", "Invalid finding payload", http.StatusBadRequest)

type FindingHandler struct {
	usecase usecase.IFindingUseCase
}

func NewFindingHandler(uc usecase.IFindingUseCase) *FindingHandler {
	return &FindingHandler{usecase: uc}
}

// UpdateFinding applies a sparse patch to one finding. Fields left out of the
// body are not touched on the backend.
//
// @Summary  Patch a finding
// @Tags     findings
// @Accept   json
// @Produce  json
// @Param    audit_id path string true "Audit ID"
// @Param    question_code path string true "Question code identifying the finding"
// @Param    payload body request.UpdateFindingRequest true "Fields to change"
// @Success  200 {object} response.FindingResponse
// @Router   /audits/{audit_id}/findings/{question_code} [patch]
// @Security Bearer
func (h *FindingHandler) UpdateFinding(c *gin.Context) {
	var payload request.UpdateFindingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFindingPayload.HTTPStatus, errInvalidFindingPayload.ToHTTPError())
		return
	}

	finding, err := h.usecase.UpdateFinding(c.Request.Context(), payload.ToPatch(c.Param("audit_id"), c.Param("question_code")))
	if err != nil {
		appErr := mapCoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFinding(finding))
}
