package auth

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/recipevault/recipevault/internal/config"
	"github.com/recipevault/recipevault/internal/entities"
)

// CredentialStore is the persistence boundary holding username and
// password-hash records.
type CredentialStore interface {
	FindByUsername(username string) (*entities.User, error)
	ExistsByUsername(username string) (bool, error)
	Insert(username, passwordHash string) (*entities.User, error)
	FindByID(id uint) (*entities.User, error)
	UpdatePasswordHash(id uint, newHash string) error
}

// Service implements credential authentication over a CredentialStore.
type Service struct {
	store CredentialStore
	cfg   config.Auth
}

// NewService creates a new authentication service.
func NewService(store CredentialStore, cfg config.Auth) *Service {
	return &Service{
		store: store,
		cfg:   cfg,
	}
}

// Authenticate verifies a username/password pair and returns the
// password-free identity on success.
//
// The lookup stage resolves first: a missing record rejects with
// ErrInvalidCredentials before any bcrypt call is attempted, and the
// rejection is indistinguishable from a wrong password. Store faults are
// returned as *StoreError, never folded into a credential failure.
func (s *Service) Authenticate(username, password string) (entities.Identity, error) {
	if username == "" || password == "" {
		return entities.Identity{}, ErrInvalidCredentials
	}

	user, err := s.store.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Identity{}, ErrInvalidCredentials
		}
		return entities.Identity{}, &StoreError{Err: err}
	}

	if !CheckPassword(password, user.PasswordHash) {
		return entities.Identity{}, ErrInvalidCredentials
	}

	return user.Identity(), nil
}

// CreateUser registers a new user. Callers run ValidateSignup first; this
// method only performs the store-backed stages: uniqueness check, hash,
// insert. A duplicate key on insert is treated the same as a failed
// uniqueness check, since the two stages are not atomic.
func (s *Service) CreateUser(username, password string) (entities.Identity, error) {
	taken := &ValidationError{Message: "Username already taken", Field: "username"}

	exists, err := s.store.ExistsByUsername(username)
	if err != nil {
		return entities.Identity{}, &StoreError{Err: err}
	}
	if exists {
		return entities.Identity{}, taken
	}

	hash, err := HashPassword(password, s.cfg.BcryptCost)
	if err != nil {
		return entities.Identity{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.store.Insert(username, hash)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entities.Identity{}, taken
		}
		return entities.Identity{}, &StoreError{Err: err}
	}

	return user.Identity(), nil
}

// ChangePassword rotates the stored hash for the given user after
// reverifying the current password. The user ID comes from the caller's
// validated token identity, never from request input. On a failed
// verification nothing is mutated.
func (s *Service) ChangePassword(userID uint, currentPassword, newPassword string) error {
	user, err := s.store.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidCredentials
		}
		return &StoreError{Err: err}
	}

	if !CheckPassword(currentPassword, user.PasswordHash) {
		return ErrInvalidCredentials
	}

	newHash, err := HashPassword(newPassword, s.cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.store.UpdatePasswordHash(user.ID, newHash); err != nil {
		return &StoreError{Err: err}
	}
	return nil
}
