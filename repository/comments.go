package repository

import (
	"context"
	"fmt"

	"github.com/cppla/blogsite/models"
)

func (r *Repository) CreateComment(ctx context.Context, c *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

func (r *Repository) CommentByID(ctx context.Context, id uint) (*models.Comment, error) {
	var c models.Comment
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, lookupErr(err, "comment", id)
	}
	return &c, nil
}
