package entities

import (
	"fmt"

	"auditqc/pkg"
)

// AuditStatus tags where an audit sits in the QC workflow.
//
// Domain notes:
//   - The QC backend is the source of truth for status values. Unknown strings
//     returned by it are preserved as-is so the service stays usable while the
//     backend enum evolves; they are never coerced to a known value.
//   - Only the automatic workflow edges are enforced locally. The manual
//     override path is unchecked here; legality of operator corrections is a
//     backend concern.

type AuditStatus string

const (
	StatusDraftReportPendingReview AuditStatus = "draft_report_pending_review"
	StatusDraftReportInReview      AuditStatus = "draft_report_in_review"
	StatusFinalReportSentToClient  AuditStatus = "final_report_sent_to_client"
	StatusCompleted                AuditStatus = "completed"
)

// automaticTransitions is the complete set of workflow-driven edges.
// sendForReview drives pending -> in_review; completeReview drives
// in_review -> sent_to_client, with completed as the alternate terminal.
var automaticTransitions = map[AuditStatus][]AuditStatus{
	StatusDraftReportPendingReview: {StatusDraftReportInReview},
	StatusDraftReportInReview:      {StatusFinalReportSentToClient, StatusCompleted},
}

// CanTransition reports whether requested is reachable from current through
// an automatic workflow edge.
func CanTransition(current, requested AuditStatus) bool {
	for _, next := range automaticTransitions[current] {
		if next == requested {
			return true
		}
	}
	return false
}

// TransitionError reports an automatic transition outside the workflow graph.
type TransitionError struct {
	From AuditStatus
	To   AuditStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("illegal status transition from %q to %q", e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return pkg.ErrValidation }

// ApplyTransition returns requested when it is a legal automatic edge from
// current, and a *TransitionError otherwise.
func ApplyTransition(current, requested AuditStatus) (AuditStatus, error) {
	if !CanTransition(current, requested) {
		return current, &TransitionError{From: current, To: requested}
	}
	return requested, nil
}

// IsTerminal reports whether no automatic edge leaves the status. Unknown
// statuses are treated as terminal so polling loops stop instead of spinning
// on a value this build does not understand.
func (s AuditStatus) IsTerminal() bool {
	return len(automaticTransitions[s]) == 0
}
