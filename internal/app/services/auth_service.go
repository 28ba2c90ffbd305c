package services

import (
	"crypto/subtle"
	"fmt"
	"sync"

	"github.com/okdev/milton/internal/app/models"
	"github.com/okdev/milton/internal/notify"
	"github.com/okdev/milton/internal/pkg/apperrors"
	"github.com/okdev/milton/internal/pkg/auth"
	"github.com/okdev/milton/internal/pkg/logger"
	"github.com/okdev/milton/internal/storage"
)

// The single editor account. The gate recognizes exactly this credential
// pair; there is no credential store, lockout, or session expiry.
const (
	adminEmail    = "ok@milton.com"
	adminPassword = "okk12345"
)

// AuthService gates the admin managers behind a login. A persisted session
// record restores the logged-in state across restarts without re-validating
// credentials.
type AuthService interface {
	// Login transitions to LoggedIn when the pair matches the fixed
	// credential, persisting the session record. A mismatch returns
	// ErrInvalidCredentials and leaves the state unchanged.
	Login(email, password string) error
	// Logout clears the session record unconditionally.
	Logout() error
	// CurrentUser returns the logged-in user, if any.
	CurrentUser() (models.User, bool)
	// IsAuthenticated reports whether a user is logged in.
	IsAuthenticated() bool
	// RequireAuth returns ErrNotAuthenticated while logged out.
	RequireAuth() error
}

type authServiceImpl struct {
	mu           sync.Mutex
	store        *storage.Store
	notifier     notify.Notifier
	passwordHash string
	user         *models.User
}

// NewAuthService creates the gate and restores a previously persisted
// session, if one is present and well-formed.
func NewAuthService(store *storage.Store, notifier notify.Notifier) AuthService {
	if notifier == nil {
		notifier = notify.NewLogNotifier()
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to hash admin credential")
	}

	s := &authServiceImpl{
		store:        store,
		notifier:     notifier,
		passwordHash: hash,
	}

	var user models.User
	found, err := store.Load(storage.KeyUser, &user)
	if err != nil {
		logger.Error().Err(err).Msg("Error restoring session record")
	} else if found && user.Email != "" {
		s.user = &user
		logger.Info().Str("email", user.Email).Msg("Restored session")
	}
	return s
}

// Login validates the credential pair and persists the session on success.
func (s *authServiceImpl) Login(email, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(adminEmail)) == 1
	if !emailOK || !auth.CheckPassword(s.passwordHash, password) {
		s.notifier.Failure("Login Failed", "Invalid email or password. Please try again.")
		return apperrors.ErrInvalidCredentials
	}

	user := models.User{Email: email}
	s.user = &user

	if err := s.store.Save(storage.KeyUser, user); err != nil {
		logger.Error().Err(err).Msg("Error persisting session record")
		return fmt.Errorf("error persisting session: %w", err)
	}
	return nil
}

// Logout clears the session record and returns to LoggedOut.
func (s *authServiceImpl) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	if err := s.store.Delete(storage.KeyUser); err != nil {
		logger.Error().Err(err).Msg("Error clearing session record")
		return fmt.Errorf("error clearing session: %w", err)
	}

	s.notifier.Success("Logged Out", "You have been successfully logged out.")
	return nil
}

// CurrentUser returns the logged-in user, if any.
func (s *authServiceImpl) CurrentUser() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// IsAuthenticated reports whether a user is logged in.
func (s *authServiceImpl) IsAuthenticated() bool {
	_, ok := s.CurrentUser()
	return ok
}

// RequireAuth returns ErrNotAuthenticated while logged out. Hosts call it
// before exposing any admin manager surface.
func (s *authServiceImpl) RequireAuth() error {
	if !s.IsAuthenticated() {
		return apperrors.ErrNotAuthenticated
	}
	return nil
}
