package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/cppla/blogsite/apperror"
	"github.com/cppla/blogsite/models"
)

// CreateUser inserts u. A duplicate username yields apperror.ErrConflict.
func (r *Repository) CreateUser(ctx context.Context, u *models.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperror.Conflict("user", u.Username)
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *Repository) UserByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, lookupErr(err, "user", id)
	}
	return &u, nil
}

func (r *Repository) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, lookupErr(err, "user", username)
	}
	return &u, nil
}

// UsernameTaken reports whether a user with that exact username exists.
func (r *Repository) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Count(&n).Error; err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	return n > 0, nil
}

func (r *Repository) ListUsers(ctx context.Context, page Page) ([]models.User, error) {
	var users []models.User
	q := r.db.WithContext(ctx).Order("username ASC")
	if err := page.apply(q).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// TouchLastLogin records a successful login.
func (r *Repository) TouchLastLogin(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).
		UpdateColumn("last_login_at", time.Now()).Error
}
