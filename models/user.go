package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// User is a registered account. Passwords are stored as bcrypt hashes only.
type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Username     string     `gorm:"size:150;uniqueIndex;not null" json:"username"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	FirstName    string     `gorm:"size:30" json:"first_name"`
	LastName     string     `gorm:"size:150" json:"last_name"`
	Email        string     `gorm:"size:254" json:"email"`
	IsStaff      bool       `gorm:"not null;default:false" json:"is_staff"`
	IsSuperuser  bool       `gorm:"not null;default:false" json:"is_superuser"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Blogs        []Blog     `json:"-"`
}

// BeforeCreate hook ensures timestamps are set even when not provided.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	return nil
}

// DisplayName returns "First Last" when set, the username otherwise.
func (u *User) DisplayName() string {
	if u == nil {
		return "anonymous"
	}
	if full := strings.TrimSpace(u.FirstName + " " + u.LastName); full != "" {
		return full
	}
	return u.Username
}

func (u *User) URL() string {
	return fmt.Sprintf("/user/%d", u.ID)
}
