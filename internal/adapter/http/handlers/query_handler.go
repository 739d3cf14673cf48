package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	response "auditqc/internal/adapter/http/dto/response"
	"auditqc/internal/domain/entities"
	"auditqc/internal/usecase"
)

// QueryHandler serves the cached read side: review details and the
// facility, project and user directories.

type QueryHandler struct {
	usecase usecase.IQueryUseCase
}

func NewQueryHandler(uc usecase.IQueryUseCase) *QueryHandler {
	return &QueryHandler{usecase: uc}
}

// queryFilters turns the whitelisted query params into list filters. Unknown
// params are ignored rather than rejected so clients can evolve ahead of us.
func queryFilters(c *gin.Context, fields ...string) []entities.ListFilter {
	var filters []entities.ListFilter
	for _, field := range fields {
		if v := strings.TrimSpace(c.Query(field)); v != "" {
			filters = append(filters, entities.ListFilter{Field: field, Value: v})
		}
	}
	return filters
}

// GetAuditReview returns the full review detail for one audit.
//
// @Summary  Get an audit review
// @Tags     queries
// @Produce  json
// @Param    audit_id path string true "Audit ID"
// @Success  200 {object} response.AuditReviewResponse
// @Router   /audits/{audit_id}/review-detail [get]
// @Security Bearer
func (h *QueryHandler) GetAuditReview(c *gin.Context) {
	review, err := h.usecase.GetAuditReview(c.Request.Context(), c.Param("audit_id"))
	if err != nil {
		appErr := mapCoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAuditReview(review))
}

// ListAuditReviews lists reviews, optionally narrowed by status, facility or
// project.
//
// @Summary  List audit reviews
// @Tags     queries
// @Produce  json
// @Param    status query string false "Filter by review status"
// @Param    facility_id query string false "Filter by facility"
// @Param    project_id query string false "Filter by project"
// @Success  200 {array} response.AuditReviewResponse
// @Router   /audit-reviews [get]
// @Security Bearer
func (h *QueryHandler) ListAuditReviews(c *gin.Context) {
	reviews, err := h.usecase.ListAuditReviews(c.Request.Context(), queryFilters(c, "status", "facility_id", "project_id"))
	if err != nil {
		appErr := mapCoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAuditReviews(reviews))
}

// ListFacilities lists the facility directory.
//
// @Summary  List facilities
// @Tags     queries
// @Produce  json
// @Param    project_id query string false "Filter by project"
// @Success  200 {array} response.FacilityResponse
// @Router   /facilities [get]
// @Security Bearer
func (h *QueryHandler) ListFacilities(c *gin.Context) {
	rows, err := h.usecase.ListFacilities(c.Request.Context(), queryFilters(c, "project_id"))
	if err != nil {
		appErr := mapCoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFacilities(rows))
}

// ListProjects lists the project directory.
//
// @Summary  List projects
// @Tags     queries
// @Produce  json
// @Success  200 {array} response.ProjectResponse
// @Router   /projects [get]
// @Security Bearer
func (h *QueryHandler) ListProjects(c *gin.Context) {
	rows, err := h.usecase.ListProjects(c.Request.Context(), queryFilters(c))
	if err != nil {
		appErr := mapCoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProjects(rows))
}

// ListUsers lists the user directory.
//
// @Summary  List users
// @Tags     queries
// @Produce  json
// @Param    role query string false "Filter by role"
// @Success  200 {array} response.UserResponse
// @Router   /users [get]
// @Security Bearer
func (h *QueryHandler) ListUsers(c *gin.Context) {
	rows, err := h.usecase.ListUsers(c.Request.Context(), queryFilters(c, "role"))
	if err != nil {
		appErr := mapCoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUsers(rows))
}
