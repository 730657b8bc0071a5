// Package users provides database operations for user accounts.
//
// # Usage
//
//	repo := users.NewRepository(db)
//	user, err := repo.FindByUsername("alice")
package users

import (
	"gorm.io/gorm"

	"github.com/recipevault/recipevault/internal/entities"
)

// Repository handles all user database operations. Every query goes
// through GORM's parameterized builder.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByUsername retrieves a user by exact username match.
// Returns gorm.ErrRecordNotFound when no such user exists.
func (r *Repository) FindByUsername(username string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByUsername reports whether a user with the given username exists.
func (r *Repository) ExistsByUsername(username string) (bool, error) {
	var count int64
	err := r.db.Model(&entities.User{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Insert creates a new user record. A unique-constraint violation on the
// username surfaces as gorm.ErrDuplicatedKey; callers treat that as the
// authoritative "username taken" signal, since the existence check and the
// insert are not atomic.
func (r *Repository) Insert(username, passwordHash string) (*entities.User, error) {
	user := &entities.User{
		Username:     username,
		PasswordHash: passwordHash,
	}
	if err := r.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// FindByID retrieves a user by ID.
func (r *Repository) FindByID(id uint) (*entities.User, error) {
	var user entities.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdatePasswordHash replaces the stored hash for the given user.
func (r *Repository) UpdatePasswordHash(id uint, newHash string) error {
	result := r.db.Model(&entities.User{}).Where("id = ?", id).Update("password_hash", newHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
