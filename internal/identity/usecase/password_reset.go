package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/caredent/caredent/internal/pkg/goerror"
)

type PasswordResetInput struct {
	Email       string `validate:"required,email"`
	NewPassword string `validate:"required,password"`
}

// PasswordReset replaces the account password addressed by email. It does not
// consult verification state; clients are expected to call it right after a
// successful OTP verification.
func (s *Usecase) PasswordReset(ctx context.Context, in PasswordResetInput) error {
	ctx, span := s.startSpan(ctx, "PasswordReset")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	hashed, err := s.bcrypt.Hash(in.NewPassword)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash new password", "error", err)
		return goerror.NewServer(err)
	}

	email := strings.TrimSpace(strings.ToLower(in.Email))
	rows, err := s.repoDB.UpdatePasswordByEmail(ctx, email, string(hashed))
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo update password", "email", email, "error", err)
		return goerror.NewServer(err)
	}

	if rows == 0 {
		slog.WarnContext(ctx, "password reset for unknown email", "email", email)
		return goerror.NewBusiness("User not found", goerror.CodeNotFound)
	}

	return nil
}
