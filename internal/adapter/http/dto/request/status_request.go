package request

import "strings"

// UpdateStatusRequest is the manual status override payload. Older UI builds
// sent newStatus, current ones send status; both spellings are accepted and
// resolved to one value.
type UpdateStatusRequest struct {
	Status    string `json:"status"`
	NewStatus string `json:"newStatus"`
}

func (r UpdateStatusRequest) ResolveStatus() string {
	if v := strings.TrimSpace(r.Status); v != "" {
		return v
	}
	return strings.TrimSpace(r.NewStatus)
}
