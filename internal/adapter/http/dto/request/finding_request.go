package request

import (
	"auditqc/internal/domain/entities"
)

type PhotoPayload struct {
	URL             string `json:"url" binding:"required"`
	Caption         string `json:"caption"`
	IncludeInReport bool   `json:"include_in_report"`
}

// UpdateFindingRequest is a sparse finding patch: absent fields stay absent
// all the way to the backend. Photos distinguishes "not supplied" (null)
// from "clear the list" (empty array) via the slice pointer.
type UpdateFindingRequest struct {
	Quantity *float64        `json:"quantity"`
	Notes    *string         `json:"notes"`
	Photos   *[]PhotoPayload `json:"photos"`
}

func (r UpdateFindingRequest) ToPatch(auditID, questionCode string) entities.FindingPatch {
	patch := entities.FindingPatch{
		AuditID:      auditID,
		QuestionCode: questionCode,
		Quantity:     r.Quantity,
		Notes:        r.Notes,
	}
	if r.Photos != nil {
		photos := make([]entities.FindingPhoto, 0, len(*r.Photos))
		for _, p := range *r.Photos {
			photos = append(photos, entities.FindingPhoto{
				URL:             p.URL,
				Caption:         p.Caption,
				IncludeInReport: p.IncludeInReport,
			})
		}
		patch.Photos = photos
	}
	return patch
}
