package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/caredent/caredent/internal/identity/entity"
)

func TestOtpRequestEmail(t *testing.T) {
	repo := newMemRepo(&entity.User{ID: 1, Username: "jane", Email: "jane@clinic.test", Phone: "+15550100"})
	store := newMemStore()
	notif := newMemNotifier()
	uc := newTestUsecase(t, repo, store, notif)

	err := uc.OtpRequestEmail(context.Background(), OtpRequestEmailInput{Email: "jane@clinic.test"})
	if err != nil {
		t.Fatalf("OtpRequestEmail() error = %v", err)
	}

	key := entity.OTPChannelEmail.Key("jane@clinic.test")
	stored, ok := store.codes[key]
	if !ok {
		t.Fatalf("no code stored under %q", key)
	}
	if len(stored) != 6 {
		t.Errorf("stored code = %q, want 6 digits", stored)
	}
	if got := notif.emailCodes["jane@clinic.test"]; got != stored {
		t.Errorf("sent code = %q, stored code = %q, want equal", got, stored)
	}
	if ttl := store.ttls[key].Seconds(); ttl != 300 {
		t.Errorf("stored ttl = %vs, want 300s", ttl)
	}
}

func TestOtpRequestEmailNormalizesAddress(t *testing.T) {
	repo := newMemRepo(&entity.User{ID: 1, Username: "jane", Email: "jane@clinic.test", Phone: "+15550100"})
	store := newMemStore()
	notif := newMemNotifier()
	uc := newTestUsecase(t, repo, store, notif)

	err := uc.OtpRequestEmail(context.Background(), OtpRequestEmailInput{Email: "  Jane@Clinic.Test "})
	if err != nil {
		t.Fatalf("OtpRequestEmail() error = %v", err)
	}

	if _, ok := store.codes[entity.OTPChannelEmail.Key("jane@clinic.test")]; !ok {
		t.Error("code not stored under the normalized address")
	}
}

func TestOtpRequestEmailUnknownAccount(t *testing.T) {
	repo := newMemRepo()
	store := newMemStore()
	notif := newMemNotifier()
	uc := newTestUsecase(t, repo, store, notif)

	err := uc.OtpRequestEmail(context.Background(), OtpRequestEmailInput{Email: "ghost@clinic.test"})
	assertErrorStatus(t, err, http.StatusNotFound, "Email not found")

	if len(store.codes) != 0 {
		t.Error("no code should be stored for an unknown account")
	}
	if len(notif.emailCodes) != 0 {
		t.Error("no email should be sent for an unknown account")
	}
}

func TestOtpRequestEmailInvalidInput(t *testing.T) {
	uc := newTestUsecase(t, newMemRepo(), newMemStore(), newMemNotifier())

	err := uc.OtpRequestEmail(context.Background(), OtpRequestEmailInput{Email: "not-an-email"})
	assertErrorStatus(t, err, http.StatusBadRequest, "")
}

func TestOtpRequestEmailDispatchFailure(t *testing.T) {
	repo := newMemRepo(&entity.User{ID: 1, Username: "jane", Email: "jane@clinic.test", Phone: "+15550100"})
	store := newMemStore()
	notif := newMemNotifier()
	notif.emailErr = errors.New("smtp unreachable")
	uc := newTestUsecase(t, repo, store, notif)

	err := uc.OtpRequestEmail(context.Background(), OtpRequestEmailInput{Email: "jane@clinic.test"})
	assertErrorStatus(t, err, http.StatusInternalServerError, "")

	// The code survives the delivery failure so a retried send still works.
	if _, ok := store.codes[entity.OTPChannelEmail.Key("jane@clinic.test")]; !ok {
		t.Error("stored code should survive a delivery failure")
	}
}

func TestOtpRequestEmailReissueOverwrites(t *testing.T) {
	repo := newMemRepo(&entity.User{ID: 1, Username: "jane", Email: "jane@clinic.test", Phone: "+15550100"})
	store := newMemStore()
	notif := newMemNotifier()
	uc := newTestUsecase(t, repo, store, notif)

	key := entity.OTPChannelEmail.Key("jane@clinic.test")
	store.codes[key] = "stale-code"

	if err := uc.OtpRequestEmail(context.Background(), OtpRequestEmailInput{Email: "jane@clinic.test"}); err != nil {
		t.Fatalf("OtpRequestEmail() error = %v", err)
	}

	if store.codes[key] == "stale-code" {
		t.Error("re-issue should overwrite the previous code")
	}
}
