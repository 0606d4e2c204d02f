package inbound

import (
	"context"

	"github.com/caredent/caredent/internal/identity/usecase"
	"github.com/caredent/caredent/internal/pkg/router"
)

type uc interface {
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)

	OtpRequestEmail(ctx context.Context, in usecase.OtpRequestEmailInput) error
	OtpRequestSMS(ctx context.Context, in usecase.OtpRequestSMSInput) error
	OtpVerifyEmail(ctx context.Context, in usecase.OtpVerifyEmailInput) error
	OtpVerifySMS(ctx context.Context, in usecase.OtpVerifySMSInput) error

	PasswordReset(ctx context.Context, in usecase.PasswordResetInput) error
	PasswordChange(ctx context.Context, in usecase.PasswordChangeInput) error
	EmailChange(ctx context.Context, in usecase.EmailChangeInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Authentication
	r.POST("/api/v1/identity/login", end.Login)

	// Password Recovery (public)
	r.POST("/api/v1/identity/password/forgot", end.PasswordForgot)
	r.POST("/api/v1/identity/password/forgot/sms", end.PasswordForgotSMS)
	r.POST("/api/v1/identity/password/verify-otp", end.PasswordVerifyOTP)
	r.POST("/api/v1/identity/password/verify-otp/sms", end.PasswordVerifyOTPSMS)
	r.POST("/api/v1/identity/password/reset", end.PasswordReset)

	// Account Settings (need authenticated)
	r.POST("/api/v1/identity/password/change", end.PasswordChange)
	r.POST("/api/v1/identity/email/change", end.EmailChange)
}
