package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/caredent/caredent/internal/pkg/hash"
	"github.com/caredent/caredent/internal/pkg/jwt"
)

func authedCtx(email string) context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{UserID: 7, UserEmail: email, Role: "dentist"})
}

func TestPasswordChange(t *testing.T) {
	user := seedUser(t, "correct-horse-battery")
	repo := newMemRepo(user)
	uc := newTestUsecase(t, repo, newMemStore(), newMemNotifier())

	err := uc.PasswordChange(authedCtx("jane@clinic.test"), PasswordChangeInput{
		CurrentPassword: "correct-horse-battery",
		NewPassword:     "brand-new-password",
	})
	if err != nil {
		t.Fatalf("PasswordChange() error = %v", err)
	}

	if !hash.NewBcrypt(4, "").Verify(user.Password, "brand-new-password") {
		t.Error("stored hash does not verify against the new password")
	}
}

func TestPasswordChangeUnauthenticated(t *testing.T) {
	uc := newTestUsecase(t, newMemRepo(), newMemStore(), newMemNotifier())

	err := uc.PasswordChange(context.Background(), PasswordChangeInput{
		CurrentPassword: "correct-horse-battery",
		NewPassword:     "brand-new-password",
	})
	assertErrorStatus(t, err, http.StatusUnauthorized, "Authentication required")
}

func TestPasswordChangeWrongCurrent(t *testing.T) {
	repo := newMemRepo(seedUser(t, "correct-horse-battery"))
	uc := newTestUsecase(t, repo, newMemStore(), newMemNotifier())

	err := uc.PasswordChange(authedCtx("jane@clinic.test"), PasswordChangeInput{
		CurrentPassword: "wrong-password",
		NewPassword:     "brand-new-password",
	})
	assertErrorStatus(t, err, http.StatusUnauthorized, "Current password is incorrect")
}

func TestEmailChange(t *testing.T) {
	user := seedUser(t, "correct-horse-battery")
	repo := newMemRepo(user)
	uc := newTestUsecase(t, repo, newMemStore(), newMemNotifier())

	err := uc.EmailChange(authedCtx("jane@clinic.test"), EmailChangeInput{
		CurrentPassword: "correct-horse-battery",
		NewEmail:        "Jane.New@Clinic.Test",
	})
	if err != nil {
		t.Fatalf("EmailChange() error = %v", err)
	}

	if user.Email != "jane.new@clinic.test" {
		t.Errorf("Email = %q, want normalized %q", user.Email, "jane.new@clinic.test")
	}
}

func TestEmailChangeTaken(t *testing.T) {
	user := seedUser(t, "correct-horse-battery")
	other := seedUser(t, "other-password")
	other.ID = 8
	other.Username = "john"
	other.Email = "john@clinic.test"
	other.Phone = "+15550101"
	repo := newMemRepo(user, other)
	uc := newTestUsecase(t, repo, newMemStore(), newMemNotifier())

	err := uc.EmailChange(authedCtx("jane@clinic.test"), EmailChangeInput{
		CurrentPassword: "correct-horse-battery",
		NewEmail:        "john@clinic.test",
	})
	assertErrorStatus(t, err, http.StatusConflict, "Email already in use")
}
