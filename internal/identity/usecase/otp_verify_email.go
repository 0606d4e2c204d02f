package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"strings"

	"github.com/caredent/caredent/internal/identity/entity"
	"github.com/caredent/caredent/internal/pkg/goerror"
)

type OtpVerifyEmailInput struct {
	Email string `validate:"required,email"`
	Otp   string `validate:"required,len=6,numeric"`
}

// OtpVerifyEmail checks the submitted code against the live one for the email
// channel. A match consumes the code; absent and mismatched codes produce the
// same response so callers cannot probe which identifiers hold live codes.
func (s *Usecase) OtpVerifyEmail(ctx context.Context, in OtpVerifyEmailInput) error {
	ctx, span := s.startSpan(ctx, "OtpVerifyEmail")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	email := strings.TrimSpace(strings.ToLower(in.Email))
	return s.verifyCode(ctx, entity.OTPChannelEmail.Key(email), in.Otp)
}

func (s *Usecase) verifyCode(ctx context.Context, key, submitted string) error {
	stored, err := s.codeStore.Get(ctx, key)
	if err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("Invalid or expired OTP", goerror.CodeInvalidInput)
		}

		slog.ErrorContext(ctx, "failed to read otp code", "key", key, "error", err)
		return goerror.NewServer(err)
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(submitted)) != 1 {
		return goerror.NewBusiness("Invalid or expired OTP", goerror.CodeInvalidInput)
	}

	// Single use: a second verification with the same code must fail.
	if err := s.codeStore.Del(ctx, key); err != nil {
		slog.ErrorContext(ctx, "failed to delete otp code", "key", key, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
