package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/caredent/caredent/internal/identity/entity"
	"github.com/caredent/caredent/internal/pkg/goerror"
)

type OtpRequestSMSInput struct {
	Phone string `validate:"required,phone"`
}

// OtpRequestSMS is the SMS counterpart of OtpRequestEmail. The two channels
// keep independent store keys, so a live email code is untouched by an SMS
// issuance for the same person.
func (s *Usecase) OtpRequestSMS(ctx context.Context, in OtpRequestSMSInput) error {
	ctx, span := s.startSpan(ctx, "OtpRequestSMS")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	phone := strings.TrimSpace(in.Phone)
	if _, err := s.repoDB.GetUserByPhone(ctx, phone); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			slog.WarnContext(ctx, "otp requested for unknown phone", "phone", phone)
			return goerror.NewBusiness("Phone number not found", goerror.CodeNotFound)
		}

		slog.ErrorContext(ctx, "failed to repo get user by phone", "phone", phone, "error", err)
		return goerror.NewServer(err)
	}

	code, err := s.otp.Generate()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate otp code", "error", err)
		return goerror.NewServer(err)
	}

	key := entity.OTPChannelSMS.Key(phone)
	ttl := s.cfg.GetSecond("modules.identity.otp_ttl_seconds")
	if err := s.codeStore.Set(ctx, key, code, ttl); err != nil {
		slog.ErrorContext(ctx, "failed to store otp code", "key", key, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.notifier.SendOTPSMS(ctx, phone, code); err != nil {
		slog.ErrorContext(ctx, "failed to send otp sms", "phone", phone, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
