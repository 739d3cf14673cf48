package entities

import "time"

// FindingPhoto is one attachment reference carried by a finding.
type FindingPhoto struct {
	URL             string `json:"url"`
	Caption         string `json:"caption,omitempty"`
	IncludeInReport bool   `json:"include_in_report"`
}

// Finding is one inspection line item inside an audit review.
//
// Cost and TotalCost are derived server-side (quantity x unit cost); this
// service never recomputes them, it only re-fetches.
type Finding struct {
	QuestionCode    string         `json:"question_code"`
	Quantity        float64        `json:"quantity"`
	Cost            float64        `json:"cost"`
	TotalCost       float64        `json:"total_cost"`
	Notes           *string        `json:"notes,omitempty"`
	Photos          []FindingPhoto `json:"photos,omitempty"`
	IncludeInReport bool           `json:"include_in_report"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// AuditReview is one audit under QC review. The QC backend owns it; instances
// held here are cache-layer snapshots tagged with a fetch time and treated as
// advisory until the next successful fetch or mutation response.
type AuditReview struct {
	AuditID   string      `json:"audit_id"`
	Status    AuditStatus `json:"status"`
	Findings  []Finding   `json:"findings"`
	TotalCost float64     `json:"total_cost"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// ReportTotal sums the total cost of findings flagged for the report.
// The displayed total must always reflect the latest fetched findings, so
// callers recompute from Findings instead of trusting a stored TotalCost.
func (a AuditReview) ReportTotal() float64 {
	total := 0.0
	for _, f := range a.Findings {
		if f.IncludeInReport {
			total += f.TotalCost
		}
	}
	return total
}
