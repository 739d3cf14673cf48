package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"auditqc/internal/domain/entities"
	mock_interfaces "auditqc/internal/usecase/interfaces/mocks"
	"auditqc/pkg"

	"go.uber.org/mock/gomock"
)

func TestCommentUseCase_CreateComment(t *testing.T) {
	t.Run("missing step id", func(t *testing.T) {
		uc := NewCommentUseCase(nil, nil, nil)
		_, err := uc.CreateComment(context.Background(), entities.CommentDraft{
			AuditID: "a-1",
			StepID:  "   ",
			Content: "looks off",
		})
		if !errors.Is(err, ErrInvalidStepID) {
			t.Fatalf("expected ErrInvalidStepID, got %v", err)
		}
	})

	t.Run("missing content", func(t *testing.T) {
		uc := NewCommentUseCase(nil, nil, nil)
		_, err := uc.CreateComment(context.Background(), entities.CommentDraft{
			AuditID: "a-1",
			StepID:  "s-2",
			Content: "  \t ",
		})
		if !errors.Is(err, ErrInvalidContent) {
			t.Fatalf("expected ErrInvalidContent, got %v", err)
		}
	})

	t.Run("success trims input", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIQCGateway(ctrl)
		uc := NewCommentUseCase(gateway, nil, nil)

		gateway.EXPECT().CreateComment(gomock.Any(), entities.CommentDraft{
			AuditID: "a-1",
			StepID:  "s-2",
			Content: "rust on the flange",
		}).Return(entities.AuditReviewComment{ID: "c-1", Version: 1}, nil)

		comment, err := uc.CreateComment(context.Background(), entities.CommentDraft{
			AuditID: " a-1 ",
			StepID:  " s-2 ",
			Content: "  rust on the flange  ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if comment.ID != "c-1" || comment.Version != 1 {
			t.Fatalf("unexpected comment: %+v", comment)
		}
	})
}

func TestCommentUseCase_UpdateComment(t *testing.T) {
	valid := entities.CommentPatch{
		CommentID: "c-1",
		AuditID:   "a-1",
		StepID:    "s-2",
		Content:   "edited",
		Version:   3,
	}

	t.Run("missing comment id", func(t *testing.T) {
		uc := NewCommentUseCase(nil, nil, nil)
		patch := valid
		patch.CommentID = ""
		if _, err := uc.UpdateComment(context.Background(), patch); !errors.Is(err, ErrInvalidCommentID) {
			t.Fatalf("expected ErrInvalidCommentID, got %v", err)
		}
	})

	t.Run("version below one", func(t *testing.T) {
		uc := NewCommentUseCase(nil, nil, nil)
		patch := valid
		patch.Version = 0
		if _, err := uc.UpdateComment(context.Background(), patch); !errors.Is(err, ErrInvalidVersion) {
			t.Fatalf("expected ErrInvalidVersion, got %v", err)
		}
	})

	t.Run("version conflict surfaces untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIQCGateway(ctrl)
		uc := NewCommentUseCase(gateway, nil, nil)

		conflict := &pkg.UpstreamStatusError{StatusCode: 409, Message: "comment version is behind", Kind: pkg.ErrConflict}
		gateway.EXPECT().UpdateComment(gomock.Any(), valid).Return(entities.AuditReviewComment{}, conflict)

		_, err := uc.UpdateComment(context.Background(), valid)
		if !errors.Is(err, pkg.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
		var se *pkg.UpstreamStatusError
		if !errors.As(err, &se) || se.Message != "comment version is behind" {
			t.Fatalf("conflict detail lost: %v", err)
		}
	})

	t.Run("other gateway errors propagate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIQCGateway(ctrl)
		uc := NewCommentUseCase(gateway, nil, nil)

		gateway.EXPECT().UpdateComment(gomock.Any(), valid).Return(entities.AuditReviewComment{}, fmt.Errorf("%w: timeout", pkg.ErrBadGateway))

		if _, err := uc.UpdateComment(context.Background(), valid); !errors.Is(err, pkg.ErrBadGateway) {
			t.Fatalf("expected ErrBadGateway, got %v", err)
		}
	})

	t.Run("success bumps version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIQCGateway(ctrl)
		uc := NewCommentUseCase(gateway, nil, nil)

		gateway.EXPECT().UpdateComment(gomock.Any(), valid).Return(entities.AuditReviewComment{ID: "c-1", Content: "edited", Version: 4}, nil)

		comment, err := uc.UpdateComment(context.Background(), valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if comment.Version != 4 {
			t.Fatalf("expected version 4, got %d", comment.Version)
		}
	})
}
