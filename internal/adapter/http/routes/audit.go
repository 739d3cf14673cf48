package routes

import (
	"auditqc/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAudits       = "/audits"
	PathReviews      = "/reviews"
	PathAuditReviews = "/audit-reviews"
	PathFacilities   = "/facilities"
	PathProjects     = "/projects"
	PathUsers        = "/users"
)

func addAuditRoutes(rg *gin.RouterGroup, reviewHandler *handlers.ReviewHandler, commentHandler *handlers.CommentHandler, findingHandler *handlers.FindingHandler, queryHandler *handlers.QueryHandler) {
	audits := rg.Group(PathAudits)
	{
		audits.POST("/:audit_id/review", reviewHandler.SendForReview)
		audits.POST("/:audit_id/review/complete", reviewHandler.CompleteReview)
		audits.PATCH("/:audit_id/status", reviewHandler.UpdateStatus)
		audits.GET("/:audit_id/jobs", reviewHandler.ListJobs)

		audits.POST("/:audit_id/steps/:step_id/comments", commentHandler.CreateComment)
		audits.PUT("/:audit_id/steps/:step_id/comments/:comment_id", commentHandler.UpdateComment)

		audits.PATCH("/:audit_id/findings/:question_code", findingHandler.UpdateFinding)

		audits.GET("/:audit_id/review-detail", queryHandler.GetAuditReview)
	}

	reviews := rg.Group(PathReviews)
	{
		reviews.GET("/:review_id", reviewHandler.PollReview)
		reviews.GET("/:review_id/job", reviewHandler.GetJob)
	}

	rg.GET(PathAuditReviews, queryHandler.ListAuditReviews)
	rg.GET(PathFacilities, queryHandler.ListFacilities)
	rg.GET(PathProjects, queryHandler.ListProjects)
	rg.GET(PathUsers, queryHandler.ListUsers)
}
