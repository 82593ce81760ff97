package models

import (
	"fmt"
	"time"
)

// Blog is a named collection of posts. UserID is cleared when the owner is removed.
type Blog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	UserID    *uint     `gorm:"index" json:"user_id"`
	User      *User     `json:"owner,omitempty"`
	Posts     []Post    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (b *Blog) URL() string {
	return fmt.Sprintf("/blog/%d", b.ID)
}

// OwnedBy reports whether userID owns the blog.
func (b *Blog) OwnedBy(userID uint) bool {
	return b.UserID != nil && *b.UserID == userID
}
