package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/cppla/blogsite/apperror"
	"github.com/cppla/blogsite/models"
)

// Deletion policy: removing a user orphans its blogs, posts and comments;
// removing a blog removes its posts; removing a post removes its comments.
// Each delete runs in one transaction.

func (r *Repository) DeleteUser(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Blog{}).Where("user_id = ?", id).UpdateColumn("user_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Post{}).Where("author_id = ?", id).UpdateColumn("author_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Comment{}).Where("user_id = ?", id).UpdateColumn("user_id", nil).Error; err != nil {
			return err
		}
		return deleteRow(tx, &models.User{}, "user", id)
	})
}

func (r *Repository) DeleteBlog(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var postIDs []uint
		if err := tx.Model(&models.Post{}).Where("blog_id = ?", id).Pluck("id", &postIDs).Error; err != nil {
			return err
		}
		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", postIDs).Delete(&models.Post{}).Error; err != nil {
				return err
			}
		}
		return deleteRow(tx, &models.Blog{}, "blog", id)
	})
}

func (r *Repository) DeletePost(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return deleteRow(tx, &models.Post{}, "post", id)
	})
}

func (r *Repository) DeleteComment(ctx context.Context, id uint) error {
	return deleteRow(r.db.WithContext(ctx), &models.Comment{}, "comment", id)
}

func deleteRow(tx *gorm.DB, model interface{}, resource string, id uint) error {
	res := tx.Delete(model, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound(resource, id)
	}
	return nil
}
