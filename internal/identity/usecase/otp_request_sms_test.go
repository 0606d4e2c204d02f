package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/caredent/caredent/internal/identity/entity"
)

func TestOtpRequestSMS(t *testing.T) {
	repo := newMemRepo(&entity.User{ID: 1, Username: "jane", Email: "jane@clinic.test", Phone: "+15550100"})
	store := newMemStore()
	notif := newMemNotifier()
	uc := newTestUsecase(t, repo, store, notif)

	if err := uc.OtpRequestSMS(context.Background(), OtpRequestSMSInput{Phone: "+15550100"}); err != nil {
		t.Fatalf("OtpRequestSMS() error = %v", err)
	}

	key := entity.OTPChannelSMS.Key("+15550100")
	stored, ok := store.codes[key]
	if !ok {
		t.Fatalf("no code stored under %q", key)
	}
	if got := notif.smsCodes["+15550100"]; got != stored {
		t.Errorf("sent code = %q, stored code = %q, want equal", got, stored)
	}
}

func TestOtpRequestSMSUnknownNumber(t *testing.T) {
	store := newMemStore()
	notif := newMemNotifier()
	uc := newTestUsecase(t, newMemRepo(), store, notif)

	err := uc.OtpRequestSMS(context.Background(), OtpRequestSMSInput{Phone: "+15550199"})
	assertErrorStatus(t, err, http.StatusNotFound, "Phone number not found")

	if len(store.codes) != 0 {
		t.Error("no code should be stored for an unknown number")
	}
	if len(notif.smsCodes) != 0 {
		t.Error("no sms should be sent for an unknown number")
	}
}

func TestOtpRequestSMSInvalidNumber(t *testing.T) {
	uc := newTestUsecase(t, newMemRepo(), newMemStore(), newMemNotifier())

	err := uc.OtpRequestSMS(context.Background(), OtpRequestSMSInput{Phone: "not-a-number"})
	assertErrorStatus(t, err, http.StatusBadRequest, "")
}

func TestOtpRequestSMSDispatchFailure(t *testing.T) {
	repo := newMemRepo(&entity.User{ID: 1, Username: "jane", Email: "jane@clinic.test", Phone: "+15550100"})
	store := newMemStore()
	notif := newMemNotifier()
	notif.smsErr = errors.New("gateway timeout")
	uc := newTestUsecase(t, repo, store, notif)

	err := uc.OtpRequestSMS(context.Background(), OtpRequestSMSInput{Phone: "+15550100"})
	assertErrorStatus(t, err, http.StatusInternalServerError, "")

	if _, ok := store.codes[entity.OTPChannelSMS.Key("+15550100")]; !ok {
		t.Error("stored code should survive a delivery failure")
	}
}
