package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/caredent/caredent/internal/identity/entity"
	"github.com/caredent/caredent/internal/pkg/goerror"
)

type OtpRequestEmailInput struct {
	Email string `validate:"required,email"`
}

// OtpRequestEmail issues a fresh code for the account behind the email address
// and delivers it over email. The code is stored before the send so a delivery
// failure never strands the caller; the stored code stays valid for a retry.
func (s *Usecase) OtpRequestEmail(ctx context.Context, in OtpRequestEmailInput) error {
	ctx, span := s.startSpan(ctx, "OtpRequestEmail")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	email := strings.TrimSpace(strings.ToLower(in.Email))
	if _, err := s.repoDB.GetUserByEmail(ctx, email); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			slog.WarnContext(ctx, "otp requested for unknown email", "email", email)
			return goerror.NewBusiness("Email not found", goerror.CodeNotFound)
		}

		slog.ErrorContext(ctx, "failed to repo get user by email", "email", email, "error", err)
		return goerror.NewServer(err)
	}

	code, err := s.otp.Generate()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate otp code", "error", err)
		return goerror.NewServer(err)
	}

	key := entity.OTPChannelEmail.Key(email)
	ttl := s.cfg.GetSecond("modules.identity.otp_ttl_seconds")
	if err := s.codeStore.Set(ctx, key, code, ttl); err != nil {
		slog.ErrorContext(ctx, "failed to store otp code", "key", key, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.notifier.SendOTPEmail(ctx, email, code); err != nil {
		slog.ErrorContext(ctx, "failed to send otp email", "email", email, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
