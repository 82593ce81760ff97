// Package testutil builds throwaway databases and fixtures for tests.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/cppla/blogsite/config"
	"github.com/cppla/blogsite/models"
	"github.com/cppla/blogsite/utils"
)

// Password is the plaintext password of every fixture user.
const Password = "correct-horse-battery"

// Config is a configuration suitable for tests: sqlite, quiet logs, no throttling to speak of.
func Config() config.AppConfig {
	return config.AppConfig{
		SiteName:           "Blogsite",
		JWTSecret:          "test-secret",
		GinMode:            "test",
		DBDriver:           "sqlite",
		LogLevel:           "silent",
		PageSize:           20,
		RateLimitPerMinute: 100000,
	}
}

// Setup installs Config as the process configuration and makes hashing cheap.
func Setup(t *testing.T) config.AppConfig {
	t.Helper()
	cfg := Config()
	config.Set(cfg)
	utils.PasswordCost = bcrypt.MinCost
	gin.SetMode(gin.TestMode)
	return config.Get()
}

// NewDB opens a private in-memory sqlite database with the full schema.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := Setup(t)
	cfg.DatabaseURI = "file:" + uuid.NewString() + "?mode=memory&cache=shared"

	gdb, err := config.OpenDatabase(cfg)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := config.Migrate(gdb, models.All()...); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

// CreateUser stores a user whose password is Password.
func CreateUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	hash, err := utils.HashPassword(Password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u := &models.User{Username: username, PasswordHash: hash}
	if err := db.WithContext(context.Background()).Create(u).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return u
}

func CreateBlog(t *testing.T, db *gorm.DB, owner *models.User, name string) *models.Blog {
	t.Helper()
	b := &models.Blog{Name: name}
	if owner != nil {
		b.UserID = models.Ptr(owner.ID)
	}
	if err := db.Create(b).Error; err != nil {
		t.Fatalf("create blog %s: %v", name, err)
	}
	return b
}

// CreatePost stores a post dated postedOn; a zero date means today.
func CreatePost(t *testing.T, db *gorm.DB, blog *models.Blog, author *models.User, title string, postedOn time.Time) *models.Post {
	t.Helper()
	p := &models.Post{Title: title, Body: "Body of " + title, PostedOn: postedOn, LastModified: postedOn}
	if blog != nil {
		p.BlogID = models.Ptr(blog.ID)
	}
	if author != nil {
		p.AuthorID = models.Ptr(author.ID)
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("create post %s: %v", title, err)
	}
	return p
}

func CreateComment(t *testing.T, db *gorm.DB, post *models.Post, user *models.User, text string) *models.Comment {
	t.Helper()
	c := &models.Comment{Text: text, PostID: models.Ptr(post.ID)}
	if user != nil {
		c.UserID = models.Ptr(user.ID)
	}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("create comment: %v", err)
	}
	return c
}

// Day returns midnight UTC of the given date.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
