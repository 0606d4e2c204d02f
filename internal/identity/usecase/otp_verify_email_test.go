package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/caredent/caredent/internal/identity/entity"
)

func TestOtpVerifyEmailSingleUse(t *testing.T) {
	repo := newMemRepo(&entity.User{ID: 1, Username: "jane", Email: "jane@clinic.test", Phone: "+15550100"})
	store := newMemStore()
	notif := newMemNotifier()
	uc := newTestUsecase(t, repo, store, notif)

	if err := uc.OtpRequestEmail(context.Background(), OtpRequestEmailInput{Email: "jane@clinic.test"}); err != nil {
		t.Fatalf("OtpRequestEmail() error = %v", err)
	}

	code := notif.emailCodes["jane@clinic.test"]
	in := OtpVerifyEmailInput{Email: "jane@clinic.test", Otp: code}

	if err := uc.OtpVerifyEmail(context.Background(), in); err != nil {
		t.Fatalf("OtpVerifyEmail() error = %v", err)
	}

	// The code is consumed on success; replaying it must fail.
	err := uc.OtpVerifyEmail(context.Background(), in)
	assertErrorStatus(t, err, http.StatusBadRequest, "Invalid or expired OTP")
}

func TestOtpVerifyEmailWithoutIssuedCode(t *testing.T) {
	uc := newTestUsecase(t, newMemRepo(), newMemStore(), newMemNotifier())

	err := uc.OtpVerifyEmail(context.Background(), OtpVerifyEmailInput{Email: "jane@clinic.test", Otp: "123456"})
	assertErrorStatus(t, err, http.StatusBadRequest, "Invalid or expired OTP")
}

func TestOtpVerifyEmailWrongCodeKeepsStored(t *testing.T) {
	store := newMemStore()
	uc := newTestUsecase(t, newMemRepo(), store, newMemNotifier())

	key := entity.OTPChannelEmail.Key("jane@clinic.test")
	store.codes[key] = "654321"

	err := uc.OtpVerifyEmail(context.Background(), OtpVerifyEmailInput{Email: "jane@clinic.test", Otp: "111111"})
	assertErrorStatus(t, err, http.StatusBadRequest, "Invalid or expired OTP")

	// A mismatch does not consume the stored code.
	if err := uc.OtpVerifyEmail(context.Background(), OtpVerifyEmailInput{Email: "jane@clinic.test", Otp: "654321"}); err != nil {
		t.Fatalf("OtpVerifyEmail() with correct code error = %v", err)
	}
}

func TestOtpVerifyEmailInvalidInput(t *testing.T) {
	uc := newTestUsecase(t, newMemRepo(), newMemStore(), newMemNotifier())

	tests := []struct {
		name string
		in   OtpVerifyEmailInput
	}{
		{name: "bad email", in: OtpVerifyEmailInput{Email: "nope", Otp: "123456"}},
		{name: "short code", in: OtpVerifyEmailInput{Email: "jane@clinic.test", Otp: "123"}},
		{name: "alphabetic code", in: OtpVerifyEmailInput{Email: "jane@clinic.test", Otp: "abcdef"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := uc.OtpVerifyEmail(context.Background(), tt.in)
			assertErrorStatus(t, err, http.StatusBadRequest, "")
		})
	}
}

func TestOtpVerifySMSSingleUse(t *testing.T) {
	repo := newMemRepo(&entity.User{ID: 1, Username: "jane", Email: "jane@clinic.test", Phone: "+15550100"})
	store := newMemStore()
	notif := newMemNotifier()
	uc := newTestUsecase(t, repo, store, notif)

	if err := uc.OtpRequestSMS(context.Background(), OtpRequestSMSInput{Phone: "+15550100"}); err != nil {
		t.Fatalf("OtpRequestSMS() error = %v", err)
	}

	code := notif.smsCodes["+15550100"]
	in := OtpVerifySMSInput{Phone: "+15550100", Otp: code}

	if err := uc.OtpVerifySMS(context.Background(), in); err != nil {
		t.Fatalf("OtpVerifySMS() error = %v", err)
	}

	err := uc.OtpVerifySMS(context.Background(), in)
	assertErrorStatus(t, err, http.StatusBadRequest, "Invalid or expired OTP")
}

func TestOtpChannelsAreIndependent(t *testing.T) {
	repo := newMemRepo(&entity.User{ID: 1, Username: "jane", Email: "jane@clinic.test", Phone: "+15550100"})
	store := newMemStore()
	notif := newMemNotifier()
	uc := newTestUsecase(t, repo, store, notif)

	if err := uc.OtpRequestEmail(context.Background(), OtpRequestEmailInput{Email: "jane@clinic.test"}); err != nil {
		t.Fatalf("OtpRequestEmail() error = %v", err)
	}
	if err := uc.OtpRequestSMS(context.Background(), OtpRequestSMSInput{Phone: "+15550100"}); err != nil {
		t.Fatalf("OtpRequestSMS() error = %v", err)
	}

	// Consuming the SMS code leaves the email code live.
	if err := uc.OtpVerifySMS(context.Background(), OtpVerifySMSInput{Phone: "+15550100", Otp: notif.smsCodes["+15550100"]}); err != nil {
		t.Fatalf("OtpVerifySMS() error = %v", err)
	}
	if err := uc.OtpVerifyEmail(context.Background(), OtpVerifyEmailInput{Email: "jane@clinic.test", Otp: notif.emailCodes["jane@clinic.test"]}); err != nil {
		t.Fatalf("OtpVerifyEmail() error = %v", err)
	}
}
