package usecase

import (
	"context"
	"strings"

	"github.com/caredent/caredent/internal/identity/entity"
	"github.com/caredent/caredent/internal/pkg/goerror"
)

type OtpVerifySMSInput struct {
	Phone string `validate:"required,phone"`
	Otp   string `validate:"required,len=6,numeric"`
}

func (s *Usecase) OtpVerifySMS(ctx context.Context, in OtpVerifySMSInput) error {
	ctx, span := s.startSpan(ctx, "OtpVerifySMS")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	phone := strings.TrimSpace(in.Phone)
	return s.verifyCode(ctx, entity.OTPChannelSMS.Key(phone), in.Otp)
}
