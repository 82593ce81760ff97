package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cppla/blogsite/apperror"
	"github.com/cppla/blogsite/forms"
	"github.com/cppla/blogsite/middleware"
	"github.com/cppla/blogsite/models"
	"github.com/cppla/blogsite/repository"
	"github.com/cppla/blogsite/utils"
)

// PostController lists, shows and creates posts.
type PostController struct {
	base
}

func NewPostController(repo *repository.Repository, store utils.Store) *PostController {
	return &PostController{base{repo: repo, store: store}}
}

// List returns every post, newest first.
func (p *PostController) List(ctx *gin.Context) {
	pg := parsePage(ctx)
	posts, err := p.repo.ListPosts(ctx.Request.Context(), pg)
	if err != nil {
		p.fail(ctx, err)
		return
	}
	p.render(ctx, http.StatusOK, "post_list.html", PostListPage{
		PageContext: p.page(ctx, "Posts"),
		Posts:       posts,
		Pagination:  pagination(pg, len(posts)),
	})
}

// Detail shows a post of the blog in the path, its comments and a comment form.
func (p *PostController) Detail(ctx *gin.Context) {
	blogID, err := pathID(ctx, "blog_id")
	if err != nil {
		p.fail(ctx, err)
		return
	}
	postID, err := pathID(ctx, "post_id")
	if err != nil {
		p.fail(ctx, err)
		return
	}
	p.renderDetail(ctx, http.StatusOK, blogID, postID, forms.CommentForm{Post: postID}, nil)
}

// renderDetail is shared with the comment flow, which re-renders the post on a rejected comment.
func (b *base) renderDetail(ctx *gin.Context, status int, blogID, postID uint, form forms.CommentForm, errs forms.Errors) {
	post, err := b.repo.PostInBlog(ctx.Request.Context(), blogID, postID)
	if err != nil {
		b.fail(ctx, err)
		return
	}
	views, err := b.repo.PathViews(ctx.Request.Context(), post.URL())
	if err != nil {
		utils.Sugar.Warnf("load page views post=%d err=%v", post.ID, err)
	}
	// PageViewRecorder stores this GET only after the page is written
	if ctx.Request.Method == http.MethodGet {
		views++
	}
	form.Post = post.ID
	b.render(ctx, status, "post_detail.html", PostDetailPage{
		PageContext: b.page(ctx, post.Title),
		Post:        post,
		Comments:    post.Comments,
		Views:       views,
		Form:        form,
		Errors:      errs,
	})
}

// New renders the post form with the requester's blogs to choose from.
func (p *PostController) New(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)
	blogs, err := p.repo.BlogsOwnedBy(ctx.Request.Context(), userID)
	if err != nil {
		p.fail(ctx, err)
		return
	}
	p.render(ctx, http.StatusOK, "post_form.html", PostFormPage{
		PageContext: p.page(ctx, "New post"),
		Blogs:       blogs,
		NoBlog:      len(blogs) == 0,
	})
}

// Create stores a post written by the requester in one of their blogs.
func (p *PostController) Create(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)

	var form forms.PostForm
	errs := forms.Bind(ctx, &form)

	blog, err := p.repo.ResolveBlogForPost(ctx.Request.Context(), userID, form.Blog)
	var appErr *apperror.AppError
	switch {
	case err == nil:
	case errors.Is(err, apperror.ErrNoBlog):
		p.renderForm(ctx, http.StatusConflict, userID, form, forms.Errors{forms.NonFieldErrors: err.Error()})
		return
	case errors.As(err, &appErr) && errors.Is(err, apperror.ErrValidation):
		errs.Add(appErr.Field, appErr.Message)
	default:
		p.fail(ctx, err)
		return
	}
	if errs.Any() {
		p.renderForm(ctx, http.StatusBadRequest, userID, form, errs)
		return
	}

	post := models.Post{
		Title:    form.Title,
		Body:     form.Body,
		BlogID:   models.Ptr(blog.ID),
		AuthorID: models.Ptr(userID),
	}
	if err := p.repo.CreatePost(ctx.Request.Context(), &post); err != nil {
		p.fail(ctx, err)
		return
	}
	p.invalidateIndex(ctx)
	utils.Sugar.Infof("post created id=%d blog=%d author=%d", post.ID, blog.ID, userID)
	ctx.Redirect(http.StatusSeeOther, post.URL())
}

func (p *PostController) renderForm(ctx *gin.Context, status int, userID uint, form forms.PostForm, errs forms.Errors) {
	blogs, err := p.repo.BlogsOwnedBy(ctx.Request.Context(), userID)
	if err != nil {
		p.fail(ctx, err)
		return
	}
	p.render(ctx, status, "post_form.html", PostFormPage{
		PageContext: p.page(ctx, "New post"),
		Form:        form,
		Errors:      errs,
		Blogs:       blogs,
		NoBlog:      len(blogs) == 0,
	})
}
