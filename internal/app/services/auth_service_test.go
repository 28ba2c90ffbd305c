package services

import (
	"errors"
	"testing"

	"github.com/okdev/milton/internal/app/models"
	"github.com/okdev/milton/internal/pkg/apperrors"
	"github.com/okdev/milton/internal/storage"
)

func TestLoginWithValidCredentials(t *testing.T) {
	store := newTestStore(t)
	svc := NewAuthService(store, nil)

	if svc.IsAuthenticated() {
		t.Fatal("gate must start logged out on a fresh store")
	}

	if err := svc.Login("ok@milton.com", "okk12345"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !svc.IsAuthenticated() {
		t.Fatal("expected LoggedIn after a valid login")
	}

	user, ok := svc.CurrentUser()
	if !ok || user.Email != "ok@milton.com" {
		t.Fatalf("CurrentUser = %+v ok=%v", user, ok)
	}

	// The session record is persisted under the user key.
	var stored models.User
	found, err := store.Load(storage.KeyUser, &stored)
	if err != nil || !found {
		t.Fatalf("Load session record: found=%v err=%v", found, err)
	}
	if stored.Email != "ok@milton.com" {
		t.Fatalf("stored session = %+v", stored)
	}
}

func TestLoginWithInvalidCredentials(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "ok@milton.com", "wrong"},
		{"unknown email", "admin@milton.com", "okk12345"},
		{"both wrong", "nobody@example.com", "nope"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			notifier := &recordingNotifier{}
			svc := NewAuthService(store, notifier)

			err := svc.Login(tt.email, tt.password)
			if !errors.Is(err, apperrors.ErrInvalidCredentials) {
				t.Fatalf("Login = %v, want ErrInvalidCredentials", err)
			}
			if svc.IsAuthenticated() {
				t.Fatal("state must remain LoggedOut after a failed login")
			}
			var stored models.User
			if found, _ := store.Load(storage.KeyUser, &stored); found {
				t.Fatal("failed login must not persist a session record")
			}
			if len(notifier.failures) != 1 || notifier.failures[0] != "Login Failed" {
				t.Fatalf("notifications = %v, want [Login Failed]", notifier.failures)
			}
		})
	}
}

func TestSessionRestoredWithoutRevalidation(t *testing.T) {
	store := newTestStore(t)

	if err := NewAuthService(store, nil).Login("ok@milton.com", "okk12345"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	// A new gate over the same store restores LoggedIn from the record alone.
	restored := NewAuthService(store, nil)
	if !restored.IsAuthenticated() {
		t.Fatal("expected the persisted session to restore LoggedIn")
	}
	user, _ := restored.CurrentUser()
	if user.Email != "ok@milton.com" {
		t.Fatalf("restored user = %+v", user)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	store := newTestStore(t)
	svc := NewAuthService(store, nil)

	if err := svc.Login("ok@milton.com", "okk12345"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := svc.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	if svc.IsAuthenticated() {
		t.Fatal("expected LoggedOut after logout")
	}
	var stored models.User
	if found, _ := store.Load(storage.KeyUser, &stored); found {
		t.Fatal("logout must clear the persisted session record")
	}

	// Logging out while logged out is harmless.
	if err := svc.Logout(); err != nil {
		t.Fatalf("second Logout: %v", err)
	}
}

func TestMalformedSessionRecordStaysLoggedOut(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save(storage.KeyUser, []string{"not", "a", "user"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	svc := NewAuthService(store, nil)
	if svc.IsAuthenticated() {
		t.Fatal("a malformed session record must not restore LoggedIn")
	}
}

func TestRequireAuth(t *testing.T) {
	svc := NewAuthService(newTestStore(t), nil)

	if err := svc.RequireAuth(); !errors.Is(err, apperrors.ErrNotAuthenticated) {
		t.Fatalf("RequireAuth while logged out = %v, want ErrNotAuthenticated", err)
	}

	if err := svc.Login("ok@milton.com", "okk12345"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := svc.RequireAuth(); err != nil {
		t.Fatalf("RequireAuth while logged in = %v, want nil", err)
	}
}
