package response

import (
	"time"

	"auditqc/internal/domain/entities"
)

type PhotoResponse struct {
	URL             string `json:"url"`
	Caption         string `json:"caption,omitempty"`
	IncludeInReport bool   `json:"include_in_report"`
}

type FindingResponse struct {
	QuestionCode      string          `json:"question_code"`
	QuestionCodeCamel string          `json:"questionCode"`
	Quantity          float64         `json:"quantity"`
	Cost              float64         `json:"cost"`
	TotalCost         float64         `json:"total_cost"`
	TotalCostCamel    float64         `json:"totalCost"`
	Notes             *string         `json:"notes,omitempty"`
	Photos            []PhotoResponse `json:"photos,omitempty"`
	IncludeInReport   bool            `json:"include_in_report"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func FromFinding(f entities.Finding) FindingResponse {
	resp := FindingResponse{
		QuestionCode:      f.QuestionCode,
		QuestionCodeCamel: f.QuestionCode,
		Quantity:          f.Quantity,
		Cost:              f.Cost,
		TotalCost:         f.TotalCost,
		TotalCostCamel:    f.TotalCost,
		Notes:             f.Notes,
		IncludeInReport:   f.IncludeInReport,
		UpdatedAt:         f.UpdatedAt,
	}
	for _, p := range f.Photos {
		resp.Photos = append(resp.Photos, PhotoResponse{
			URL:             p.URL,
			Caption:         p.Caption,
			IncludeInReport: p.IncludeInReport,
		})
	}
	return resp
}

type AuditReviewResponse struct {
	AuditID        string            `json:"audit_id"`
	AuditIDCamel   string            `json:"auditId"`
	Status         string            `json:"status"`
	Findings       []FindingResponse `json:"findings"`
	TotalCost      float64           `json:"total_cost"`
	TotalCostCamel float64           `json:"totalCost"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func FromAuditReview(a entities.AuditReview) AuditReviewResponse {
	resp := AuditReviewResponse{
		AuditID:        a.AuditID,
		AuditIDCamel:   a.AuditID,
		Status:         string(a.Status),
		Findings:       make([]FindingResponse, 0, len(a.Findings)),
		TotalCost:      a.TotalCost,
		TotalCostCamel: a.TotalCost,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
	for _, f := range a.Findings {
		resp.Findings = append(resp.Findings, FromFinding(f))
	}
	return resp
}

func FromAuditReviews(reviews []entities.AuditReview) []AuditReviewResponse {
	out := make([]AuditReviewResponse, 0, len(reviews))
	for _, a := range reviews {
		out = append(out, FromAuditReview(a))
	}
	return out
}
