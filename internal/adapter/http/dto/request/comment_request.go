package request

import "strings"

// CreateCommentRequest is the body for posting a step comment. Audit and
// step identifiers travel in the path.
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// UpdateCommentRequest carries the edited content plus the version the
// client last observed. The backend rejects versions behind its current one.
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
	Version int    `json:"version" binding:"required"`
}

func (r CreateCommentRequest) ResolveContent() string {
	return strings.TrimSpace(r.Content)
}

func (r UpdateCommentRequest) ResolveContent() string {
	return strings.TrimSpace(r.Content)
}
