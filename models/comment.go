package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment is reader text attached to a post.
type Comment struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Text         string    `gorm:"type:text;not null" json:"text"`
	PostID       *uint     `gorm:"index" json:"post_id"`
	Post         *Post     `json:"-"`
	UserID       *uint     `gorm:"index" json:"user_id"`
	User         *User     `json:"author,omitempty"`
	PostedOn     time.Time `gorm:"type:date;not null;<-:create" json:"posted_on"`
	LastModified time.Time `gorm:"autoUpdateTime" json:"last_modified"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.PostedOn.IsZero() {
		c.PostedOn = Today()
	}
	return nil
}
