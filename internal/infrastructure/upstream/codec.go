package upstream

import (
	"time"

	"auditqc/internal/domain/entities"
)

// Wire types for the QC backend.
//
// The backend's schema is snake_case, but older endpoints still emit the
// camelCase spellings the legacy UI consumed. Decoding covers both spellings
// and resolves them to a single canonical domain field; requests are always
// encoded snake_case. Missing optional fields decode to nil, never an error.

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstBool(values ...*bool) bool {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return false
}

type wireReviewProgress struct {
	AuditID            string `json:"audit_id"`
	AuditIDCamel       string `json:"auditId"`
	AuditReviewID      string `json:"audit_review_id"`
	AuditReviewIDCamel string `json:"auditReviewId"`
	Status             string `json:"status"`
	Message            string `json:"message"`
	ReviewReady        *bool  `json:"review_ready"`
	ReviewReadyCamel   *bool  `json:"reviewReady"`
}

func (w wireReviewProgress) toDomain() entities.ReviewProgress {
	return entities.ReviewProgress{
		AuditID:       firstNonEmpty(w.AuditID, w.AuditIDCamel),
		AuditReviewID: firstNonEmpty(w.AuditReviewID, w.AuditReviewIDCamel),
		Status:        entities.AuditStatus(w.Status),
		Message:       w.Message,
		ReviewReady:   firstBool(w.ReviewReady, w.ReviewReadyCamel),
	}
}

type wireCompleteResult struct {
	AuditID      string `json:"audit_id"`
	AuditIDCamel string `json:"auditId"`
	Status       string `json:"status"`
	Message      string `json:"message"`
}

func (w wireCompleteResult) toDomain() entities.CompleteReviewResult {
	return entities.CompleteReviewResult{
		AuditID: firstNonEmpty(w.AuditID, w.AuditIDCamel),
		Status:  entities.AuditStatus(w.Status),
		Message: w.Message,
	}
}

type wireStatusChange struct {
	AuditID        string `json:"audit_id"`
	AuditIDCamel   string `json:"auditId"`
	OldStatus      string `json:"old_status"`
	OldStatusCamel string `json:"oldStatus"`
	NewStatus      string `json:"new_status"`
	NewStatusCamel string `json:"newStatus"`
}

func (w wireStatusChange) toDomain() entities.StatusChange {
	return entities.StatusChange{
		AuditID:   firstNonEmpty(w.AuditID, w.AuditIDCamel),
		OldStatus: entities.AuditStatus(firstNonEmpty(w.OldStatus, w.OldStatusCamel)),
		NewStatus: entities.AuditStatus(firstNonEmpty(w.NewStatus, w.NewStatusCamel)),
	}
}

type wireComment struct {
	ID           string     `json:"id"`
	AuditID      string     `json:"audit_id"`
	AuditIDCamel string     `json:"auditId"`
	StepID       string     `json:"step_id"`
	StepIDCamel  string     `json:"stepId"`
	UserID       string     `json:"user_id"`
	UserIDCamel  string     `json:"userId"`
	Content      string     `json:"content"`
	Version      int        `json:"version"`
	CreatedAt    *time.Time `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

func (w wireComment) toDomain() entities.AuditReviewComment {
	c := entities.AuditReviewComment{
		ID:      w.ID,
		AuditID: firstNonEmpty(w.AuditID, w.AuditIDCamel),
		StepID:  firstNonEmpty(w.StepID, w.StepIDCamel),
		UserID:  firstNonEmpty(w.UserID, w.UserIDCamel),
		Content: w.Content,
		Version: w.Version,
	}
	if w.CreatedAt != nil {
		c.CreatedAt = *w.CreatedAt
	}
	if w.UpdatedAt != nil {
		c.UpdatedAt = *w.UpdatedAt
	}
	return c
}

type wirePhoto struct {
	URL                  string `json:"url"`
	Caption              string `json:"caption"`
	IncludeInReport      *bool  `json:"include_in_report"`
	IncludeInReportCamel *bool  `json:"includeInReport"`
}

func (w wirePhoto) toDomain() entities.FindingPhoto {
	return entities.FindingPhoto{
		URL:             w.URL,
		Caption:         w.Caption,
		IncludeInReport: firstBool(w.IncludeInReport, w.IncludeInReportCamel),
	}
}

type wireFinding struct {
	QuestionCode         string      `json:"question_code"`
	QuestionCodeCamel    string      `json:"questionCode"`
	Quantity             float64     `json:"quantity"`
	Cost                 float64     `json:"cost"`
	TotalCost            *float64    `json:"total_cost"`
	TotalCostCamel       *float64    `json:"totalCost"`
	Notes                *string     `json:"notes"`
	Photos               []wirePhoto `json:"photos"`
	IncludeInReport      *bool       `json:"include_in_report"`
	IncludeInReportCamel *bool       `json:"includeInReport"`
	UpdatedAt            *time.Time  `json:"updated_at"`
}

func (w wireFinding) toDomain() entities.Finding {
	f := entities.Finding{
		QuestionCode:    firstNonEmpty(w.QuestionCode, w.QuestionCodeCamel),
		Quantity:        w.Quantity,
		Cost:            w.Cost,
		Notes:           w.Notes,
		IncludeInReport: firstBool(w.IncludeInReport, w.IncludeInReportCamel),
	}
	if w.TotalCost != nil {
		f.TotalCost = *w.TotalCost
	} else if w.TotalCostCamel != nil {
		f.TotalCost = *w.TotalCostCamel
	}
	if w.UpdatedAt != nil {
		f.UpdatedAt = *w.UpdatedAt
	}
	if w.Photos != nil {
		f.Photos = make([]entities.FindingPhoto, 0, len(w.Photos))
		for _, p := range w.Photos {
			f.Photos = append(f.Photos, p.toDomain())
		}
	}
	return f
}

type wireAuditReview struct {
	AuditID        string        `json:"audit_id"`
	AuditIDCamel   string        `json:"auditId"`
	Status         string        `json:"status"`
	Findings       []wireFinding `json:"findings"`
	TotalCost      *float64      `json:"total_cost"`
	TotalCostCamel *float64      `json:"totalCost"`
	CreatedAt      *time.Time    `json:"created_at"`
	UpdatedAt      *time.Time    `json:"updated_at"`
}

func (w wireAuditReview) toDomain() entities.AuditReview {
	a := entities.AuditReview{
		AuditID: firstNonEmpty(w.AuditID, w.AuditIDCamel),
		Status:  entities.AuditStatus(w.Status),
	}
	if w.Findings != nil {
		a.Findings = make([]entities.Finding, 0, len(w.Findings))
		for _, f := range w.Findings {
			a.Findings = append(a.Findings, f.toDomain())
		}
	}
	if w.CreatedAt != nil {
		a.CreatedAt = *w.CreatedAt
	}
	if w.UpdatedAt != nil {
		a.UpdatedAt = *w.UpdatedAt
	}
	// The stored total is advisory; the fresh findings are authoritative.
	a.TotalCost = a.ReportTotal()
	if len(a.Findings) == 0 {
		if w.TotalCost != nil {
			a.TotalCost = *w.TotalCost
		} else if w.TotalCostCamel != nil {
			a.TotalCost = *w.TotalCostCamel
		}
	}
	return a
}

type wireFacility struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	ProjectID string     `json:"project_id"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func (w wireFacility) toDomain() entities.Facility {
	f := entities.Facility{ID: w.ID, Name: w.Name, ProjectID: w.ProjectID}
	if w.UpdatedAt != nil {
		f.UpdatedAt = *w.UpdatedAt
	}
	return f
}

type wireProject struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func (w wireProject) toDomain() entities.Project {
	p := entities.Project{ID: w.ID, Name: w.Name}
	if w.UpdatedAt != nil {
		p.UpdatedAt = *w.UpdatedAt
	}
	return p
}

type wireUser struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func (w wireUser) toDomain() entities.User {
	u := entities.User{ID: w.ID, Name: w.Name, Email: w.Email}
	if w.UpdatedAt != nil {
		u.UpdatedAt = *w.UpdatedAt
	}
	return u
}

// listEnvelope tolerates both list field spellings the backend has used.
type listEnvelope[T any] struct {
	Data  []T `json:"data"`
	Items []T `json:"items"`
}

func (l listEnvelope[T]) rows() []T {
	if len(l.Data) > 0 {
		return l.Data
	}
	return l.Items
}

/* Request bodies (always canonical snake_case). */

type wireCommentCreateRequest struct {
	Content string `json:"content"`
}

type wireCommentUpdateRequest struct {
	Content string `json:"content"`
	Version int    `json:"version"`
}

type wireStatusUpdateRequest struct {
	Status string `json:"status"`
}

// wireFindingPatchRequest is a sparse patch: nil fields never appear on the
// wire. Photos is a slice pointer so an explicit empty list (clear all
// photos) survives encoding while an absent list is omitted.
type wireFindingPatchRequest struct {
	Quantity *float64          `json:"quantity,omitempty"`
	Notes    *string           `json:"notes,omitempty"`
	Photos   *[]wirePatchPhoto `json:"photos,omitempty"`
}

type wirePatchPhoto struct {
	URL             string `json:"url"`
	Caption         string `json:"caption,omitempty"`
	IncludeInReport bool   `json:"include_in_report"`
}

func toWireFindingPatch(p entities.FindingPatch) wireFindingPatchRequest {
	req := wireFindingPatchRequest{Quantity: p.Quantity, Notes: p.Notes}
	if p.Photos != nil {
		photos := make([]wirePatchPhoto, 0, len(p.Photos))
		for _, ph := range p.Photos {
			photos = append(photos, wirePatchPhoto{
				URL:             ph.URL,
				Caption:         ph.Caption,
				IncludeInReport: ph.IncludeInReport,
			})
		}
		req.Photos = &photos
	}
	return req
}
