package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/caredent/caredent/internal/pkg/goerror"
	"github.com/caredent/caredent/internal/pkg/jwt"
)

type EmailChangeInput struct {
	CurrentPassword string `validate:"required"`
	NewEmail        string `validate:"required,email"`
}

func (s *Usecase) EmailChange(ctx context.Context, in EmailChangeInput) error {
	ctx, span := s.startSpan(ctx, "EmailChange")
	defer span.End()

	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserByEmail(ctx, clm.UserEmail)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "authenticated user no longer exists", "user_id", clm.UserID)
		return goerror.NewBusiness("User not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "user_id", clm.UserID, "error", err)
		return goerror.NewServer(err)
	}

	if !s.bcrypt.Verify(user.Password, in.CurrentPassword) {
		slog.WarnContext(ctx, "current password not match", "user_id", user.ID)
		return goerror.NewBusiness("Current password is incorrect", goerror.CodeUnauthorized)
	}

	newEmail := strings.TrimSpace(strings.ToLower(in.NewEmail))
	if err := s.repoDB.UpdateEmail(ctx, user.ID, newEmail); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			slog.WarnContext(ctx, "email already in use", "user_id", user.ID, "email", newEmail)
			return goerror.NewBusiness("Email already in use", goerror.CodeConflict)
		}

		slog.ErrorContext(ctx, "failed to repo update email", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
