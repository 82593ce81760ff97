package repository

import (
	"context"
	"fmt"

	"github.com/cppla/blogsite/models"
)

func (r *Repository) CreateBlog(ctx context.Context, b *models.Blog) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return fmt.Errorf("create blog: %w", err)
	}
	return nil
}

// BlogByID loads a blog with its owner.
func (r *Repository) BlogByID(ctx context.Context, id uint) (*models.Blog, error) {
	var b models.Blog
	if err := r.db.WithContext(ctx).Preload("User").First(&b, id).Error; err != nil {
		return nil, lookupErr(err, "blog", id)
	}
	return &b, nil
}

func (r *Repository) ListBlogs(ctx context.Context, page Page) ([]models.Blog, error) {
	var blogs []models.Blog
	q := r.db.WithContext(ctx).Preload("User").Order("id ASC")
	if err := page.apply(q).Find(&blogs).Error; err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	return blogs, nil
}

// BlogsOwnedBy lists the blogs whose owner is userID.
func (r *Repository) BlogsOwnedBy(ctx context.Context, userID uint) ([]models.Blog, error) {
	var blogs []models.Blog
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&blogs).Error; err != nil {
		return nil, fmt.Errorf("list blogs of user %d: %w", userID, err)
	}
	return blogs, nil
}
