package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/caredent/caredent/internal/identity/entity"
	"github.com/caredent/caredent/internal/pkg/hash"
)

func TestPasswordReset(t *testing.T) {
	repo := newMemRepo(&entity.User{ID: 1, Username: "jane", Email: "jane@clinic.test", Phone: "+15550100"})
	uc := newTestUsecase(t, repo, newMemStore(), newMemNotifier())

	err := uc.PasswordReset(context.Background(), PasswordResetInput{
		Email:       "jane@clinic.test",
		NewPassword: "brand-new-password",
	})
	if err != nil {
		t.Fatalf("PasswordReset() error = %v", err)
	}

	hashed, ok := repo.passwordUpdates["jane@clinic.test"]
	if !ok {
		t.Fatal("password was not updated")
	}
	if !hash.NewBcrypt(4, "").Verify(hashed, "brand-new-password") {
		t.Error("stored hash does not verify against the new password")
	}
}

func TestPasswordResetUnknownEmail(t *testing.T) {
	repo := newMemRepo()
	uc := newTestUsecase(t, repo, newMemStore(), newMemNotifier())

	err := uc.PasswordReset(context.Background(), PasswordResetInput{
		Email:       "ghost@clinic.test",
		NewPassword: "brand-new-password",
	})
	assertErrorStatus(t, err, http.StatusNotFound, "User not found")
}

func TestPasswordResetWeakPassword(t *testing.T) {
	uc := newTestUsecase(t, newMemRepo(), newMemStore(), newMemNotifier())

	err := uc.PasswordReset(context.Background(), PasswordResetInput{
		Email:       "jane@clinic.test",
		NewPassword: "short",
	})
	assertErrorStatus(t, err, http.StatusBadRequest, "")
}
