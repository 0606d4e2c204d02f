package inbound

import (
	"github.com/caredent/caredent/internal/identity/usecase"
	"github.com/caredent/caredent/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for authentication and password recovery.
type HTTPEndpoint struct {
	uc uc
}

// Login authenticates a user and returns an access token.
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return LoginResponse{
		AccessToken: resp.AccessToken,
		FullName:    resp.FullName,
		Role:        resp.Role,
	}, nil
}

// PasswordForgot issues a one-time code and emails it to the account address.
func (h *HTTPEndpoint) PasswordForgot(r *router.Request) (any, error) {
	var req PasswordForgotRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.OtpRequestEmail(r.Context(), usecase.OtpRequestEmailInput{
		Email: req.Email,
	}); err != nil {
		return nil, err
	}

	return PasswordForgotResponse{}, nil
}

// PasswordForgotSMS issues a one-time code and texts it to the account phone.
func (h *HTTPEndpoint) PasswordForgotSMS(r *router.Request) (any, error) {
	var req PasswordForgotSMSRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.OtpRequestSMS(r.Context(), usecase.OtpRequestSMSInput{
		Phone: req.Phone,
	}); err != nil {
		return nil, err
	}

	return PasswordForgotSMSResponse{}, nil
}

// PasswordVerifyOTP consumes the emailed code.
func (h *HTTPEndpoint) PasswordVerifyOTP(r *router.Request) (any, error) {
	var req PasswordVerifyOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.OtpVerifyEmail(r.Context(), usecase.OtpVerifyEmailInput{
		Email: req.Email,
		Otp:   req.Otp,
	}); err != nil {
		return nil, err
	}

	return PasswordVerifyOTPResponse{}, nil
}

// PasswordVerifyOTPSMS consumes the texted code.
func (h *HTTPEndpoint) PasswordVerifyOTPSMS(r *router.Request) (any, error) {
	var req PasswordVerifyOTPSMSRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.OtpVerifySMS(r.Context(), usecase.OtpVerifySMSInput{
		Phone: req.Phone,
		Otp:   req.Otp,
	}); err != nil {
		return nil, err
	}

	return PasswordVerifyOTPResponse{}, nil
}

// PasswordReset replaces the password for the account addressed by email.
func (h *HTTPEndpoint) PasswordReset(r *router.Request) (any, error) {
	var req PasswordResetRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.PasswordReset(r.Context(), usecase.PasswordResetInput{
		Email:       req.Email,
		NewPassword: req.NewPassword,
	}); err != nil {
		return nil, err
	}

	return PasswordResetResponse{}, nil
}

func (h *HTTPEndpoint) PasswordChange(r *router.Request) (any, error) {
	var req PasswordChangeRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.PasswordChange(r.Context(), usecase.PasswordChangeInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}); err != nil {
		return nil, err
	}

	return PasswordChangeResponse{}, nil
}

func (h *HTTPEndpoint) EmailChange(r *router.Request) (any, error) {
	var req EmailChangeRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.EmailChange(r.Context(), usecase.EmailChangeInput{
		CurrentPassword: req.CurrentPassword,
		NewEmail:        req.NewEmail,
	}); err != nil {
		return nil, err
	}

	return EmailChangeResponse{}, nil
}
