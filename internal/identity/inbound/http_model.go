package inbound

import "github.com/caredent/caredent/internal/pkg/router"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	FullName    string `json:"full_name"`
	Role        string `json:"role"`
}

type PasswordForgotRequest struct {
	Email string `json:"email"`
}

type PasswordForgotResponse struct {
	router.EmptyBody
}

func (PasswordForgotResponse) Message() string {
	return "OTP sent to email"
}

type PasswordForgotSMSRequest struct {
	Phone string `json:"phone"`
}

type PasswordForgotSMSResponse struct {
	router.EmptyBody
}

func (PasswordForgotSMSResponse) Message() string {
	return "OTP sent via SMS"
}

type PasswordVerifyOTPRequest struct {
	Email string `json:"email"`
	Otp   string `json:"otp"`
}

type PasswordVerifyOTPSMSRequest struct {
	Phone string `json:"phone"`
	Otp   string `json:"otp"`
}

type PasswordVerifyOTPResponse struct {
	router.EmptyBody
}

func (PasswordVerifyOTPResponse) Message() string {
	return "OTP verified"
}

type PasswordResetRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"new_password"`
}

type PasswordResetResponse struct {
	router.EmptyBody
}

func (PasswordResetResponse) Message() string {
	return "Password updated successfully"
}

type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type PasswordChangeResponse struct {
	router.EmptyBody
}

func (PasswordChangeResponse) Message() string {
	return "Password updated successfully"
}

type EmailChangeRequest struct {
	CurrentPassword string `json:"current_password"`
	NewEmail        string `json:"new_email"`
}

type EmailChangeResponse struct {
	router.EmptyBody
}

func (EmailChangeResponse) Message() string {
	return "Email updated successfully"
}
