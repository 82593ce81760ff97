package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/cppla/blogsite/apperror"
	"github.com/cppla/blogsite/models"
)

// postOrder is the listing order for posts everywhere on the site.
const postOrder = "posted_on DESC, id DESC"

func (r *Repository) CreatePost(ctx context.Context, p *models.Post) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	return nil
}

// PostByID loads a post without its relations.
func (r *Repository) PostByID(ctx context.Context, id uint) (*models.Post, error) {
	var p models.Post
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, lookupErr(err, "post", id)
	}
	return &p, nil
}

// PostInBlog loads a post that belongs to blogID, with author, blog and comments
// (oldest first, each with its author).
func (r *Repository) PostInBlog(ctx context.Context, blogID, postID uint) (*models.Post, error) {
	var p models.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Blog").
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Comments.User").
		Where("id = ? AND blog_id = ?", postID, blogID).
		First(&p).Error
	if err != nil {
		return nil, lookupErr(err, "post", postID)
	}
	return &p, nil
}

func (r *Repository) ListPosts(ctx context.Context, page Page) ([]models.Post, error) {
	var posts []models.Post
	q := r.db.WithContext(ctx).Preload("Author").Preload("Blog").Order(postOrder)
	if err := page.apply(q).Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (r *Repository) PostsInBlog(ctx context.Context, blogID uint) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.WithContext(ctx).Preload("Author").Where("blog_id = ?", blogID).Order(postOrder).Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts of blog %d: %w", blogID, err)
	}
	return posts, nil
}

func (r *Repository) PostsByAuthor(ctx context.Context, userID uint) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.WithContext(ctx).Preload("Blog").Where("author_id = ?", userID).Order(postOrder).Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts of user %d: %w", userID, err)
	}
	return posts, nil
}

// LatestPost returns the most recently posted entry, or nil when there are none.
func (r *Repository) LatestPost(ctx context.Context) (*models.Post, error) {
	var p models.Post
	err := r.db.WithContext(ctx).Preload("Author").Preload("Blog").Order(postOrder).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest post: %w", err)
	}
	return &p, nil
}

// ResolveBlogForPost picks the blog a new post by userID goes to. A non-zero
// requested id must be owned by the user; otherwise the user's only blog is used.
func (r *Repository) ResolveBlogForPost(ctx context.Context, userID, requested uint) (*models.Blog, error) {
	owned, err := r.BlogsOwnedBy(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(owned) == 0 {
		return nil, apperror.NoBlog()
	}
	if requested != 0 {
		for i := range owned {
			if owned[i].ID == requested {
				return &owned[i], nil
			}
		}
		return nil, apperror.ValidationFailed("blog", "Select one of your own blogs.")
	}
	if len(owned) > 1 {
		return nil, apperror.ValidationFailed("blog", "You own several blogs; choose the one to post to.")
	}
	return &owned[0], nil
}
