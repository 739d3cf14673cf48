package entities

// CommentDraft is the command for creating a step comment.
type CommentDraft struct {
	AuditID string
	StepID  string
	Content string
}

// CommentPatch is the command for updating a step comment. Version must be
// the version the caller last observed; the backend rejects anything older
// than its current version.
type CommentPatch struct {
	CommentID string
	AuditID   string
	StepID    string
	Content   string
	Version   int
}

// FindingPatch is a sparse update to one finding. Nil fields are omitted from
// the wire request entirely, so the backend leaves them untouched. A full
// replace would silently discard concurrent edits to unrelated fields, which
// is exactly what this shape exists to prevent.
type FindingPatch struct {
	AuditID      string
	QuestionCode string
	Quantity     *float64
	Notes        *string
	Photos       []FindingPhoto
}

// HasChanges reports whether at least one patchable field is supplied.
func (p FindingPatch) HasChanges() bool {
	return p.Quantity != nil || p.Notes != nil || p.Photos != nil
}

// ListFilter narrows a cached list query. Field names feed the cache key in
// stable order.
type ListFilter struct {
	Field string
	Value string
}
