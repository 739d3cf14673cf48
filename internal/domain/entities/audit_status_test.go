package entities

import (
	"errors"
	"testing"

	"auditqc/pkg"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name    string
		from    AuditStatus
		to      AuditStatus
		allowed bool
	}{
		{name: "pending to in review", from: StatusDraftReportPendingReview, to: StatusDraftReportInReview, allowed: true},
		{name: "in review to sent to client", from: StatusDraftReportInReview, to: StatusFinalReportSentToClient, allowed: true},
		{name: "in review to completed", from: StatusDraftReportInReview, to: StatusCompleted, allowed: true},
		{name: "pending skips review", from: StatusDraftReportPendingReview, to: StatusFinalReportSentToClient, allowed: false},
		{name: "no backwards edge", from: StatusDraftReportInReview, to: StatusDraftReportPendingReview, allowed: false},
		{name: "sent to client is terminal", from: StatusFinalReportSentToClient, to: StatusCompleted, allowed: false},
		{name: "completed is terminal", from: StatusCompleted, to: StatusDraftReportPendingReview, allowed: false},
		{name: "self loop", from: StatusDraftReportInReview, to: StatusDraftReportInReview, allowed: false},
		{name: "unknown source", from: AuditStatus("archived"), to: StatusDraftReportInReview, allowed: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanTransition(tc.from, tc.to); got != tc.allowed {
				t.Fatalf("CanTransition(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.allowed)
			}
		})
	}
}

func TestApplyTransition(t *testing.T) {
	t.Run("legal edge", func(t *testing.T) {
		got, err := ApplyTransition(StatusDraftReportPendingReview, StatusDraftReportInReview)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != StatusDraftReportInReview {
			t.Fatalf("expected %q, got %q", StatusDraftReportInReview, got)
		}
	})

	t.Run("illegal edge keeps current", func(t *testing.T) {
		got, err := ApplyTransition(StatusDraftReportPendingReview, StatusCompleted)
		if err == nil {
			t.Fatalf("expected error")
		}
		if got != StatusDraftReportPendingReview {
			t.Fatalf("status changed on illegal transition: %q", got)
		}

		var te *TransitionError
		if !errors.As(err, &te) {
			t.Fatalf("expected TransitionError, got %T", err)
		}
		if te.From != StatusDraftReportPendingReview || te.To != StatusCompleted {
			t.Fatalf("unexpected edge in error: %+v", te)
		}
		if !errors.Is(err, pkg.ErrValidation) {
			t.Fatalf("TransitionError should unwrap to ErrValidation")
		}
	})
}

func TestAuditStatus_IsTerminal(t *testing.T) {
	cases := []struct {
		status   AuditStatus
		terminal bool
	}{
		{StatusDraftReportPendingReview, false},
		{StatusDraftReportInReview, false},
		{StatusFinalReportSentToClient, true},
		{StatusCompleted, true},
		{AuditStatus("some_future_status"), true},
		{AuditStatus(""), true},
	}

	for _, tc := range cases {
		if got := tc.status.IsTerminal(); got != tc.terminal {
			t.Fatalf("IsTerminal(%q) = %v, want %v", tc.status, got, tc.terminal)
		}
	}
}
