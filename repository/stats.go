package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cppla/blogsite/models"
)

// Stats is the site-wide aggregate shown on the index page.
type Stats struct {
	NumBlogs   int64        `json:"num_blogs"`
	NumUsers   int64        `json:"num_users"`
	NumPosts   int64        `json:"num_posts"`
	LatestPost *models.Post `json:"latest_post"`
}

// SiteStats counts blogs, users and posts. NumUsers excludes the administrative
// account and never drops below zero.
func (r *Repository) SiteStats(ctx context.Context) (Stats, error) {
	var s Stats
	db := r.db.WithContext(ctx)
	if err := db.Model(&models.Blog{}).Count(&s.NumBlogs).Error; err != nil {
		return s, fmt.Errorf("count blogs: %w", err)
	}
	var users int64
	if err := db.Model(&models.User{}).Count(&users).Error; err != nil {
		return s, fmt.Errorf("count users: %w", err)
	}
	if users > 0 {
		s.NumUsers = users - 1
	}
	if err := db.Model(&models.Post{}).Count(&s.NumPosts).Error; err != nil {
		return s, fmt.Errorf("count posts: %w", err)
	}
	latest, err := r.LatestPost(ctx)
	if err != nil {
		return s, err
	}
	s.LatestPost = latest
	return s, nil
}

// RecordView bumps today's counter for path.
func (r *Repository) RecordView(ctx context.Context, path string, day time.Time) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}, {Name: "path"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"count": gorm.Expr("count + 1"), "updated_at": time.Now()}),
	}).Create(&models.PageView{Date: day, Path: path, Count: 1}).Error
}

// PathViews sums the view counters of path over all days.
func (r *Repository) PathViews(ctx context.Context, path string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.PageView{}).
		Where("path = ?", path).
		Select("COALESCE(SUM(count),0)").
		Scan(&n).Error
	return n, err
}
