package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Post is a dated entry in a blog. PostedOn is write-once; the blog and author
// references are nullable so posts outlive a removed author.
type Post struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"size:200;not null" json:"title"`
	Body         string    `gorm:"type:text;not null" json:"body"`
	PostedOn     time.Time `gorm:"type:date;index;not null;<-:create" json:"posted_on"`
	LastModified time.Time `gorm:"type:date" json:"last_modified"`
	BlogID       *uint     `gorm:"index" json:"blog_id"`
	Blog         *Blog     `json:"blog,omitempty"`
	AuthorID     *uint     `gorm:"index" json:"author_id"`
	Author       *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Comments     []Comment `json:"-"`
}

// BeforeCreate stamps the posting date.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.PostedOn.IsZero() {
		p.PostedOn = Today()
	}
	if p.LastModified.IsZero() {
		p.LastModified = Today()
	}
	return nil
}

// URL is the detail path of the post under its blog.
func (p *Post) URL() string {
	var blogID uint
	if p.BlogID != nil {
		blogID = *p.BlogID
	}
	return fmt.Sprintf("/blog/%d/post/%d", blogID, p.ID)
}
