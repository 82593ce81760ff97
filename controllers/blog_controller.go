package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cppla/blogsite/forms"
	"github.com/cppla/blogsite/middleware"
	"github.com/cppla/blogsite/models"
	"github.com/cppla/blogsite/repository"
	"github.com/cppla/blogsite/utils"
)

// BlogController lists, shows and creates blogs.
type BlogController struct {
	base
}

func NewBlogController(repo *repository.Repository, store utils.Store) *BlogController {
	return &BlogController{base{repo: repo, store: store}}
}

func (b *BlogController) List(ctx *gin.Context) {
	p := parsePage(ctx)
	blogs, err := b.repo.ListBlogs(ctx.Request.Context(), p)
	if err != nil {
		b.fail(ctx, err)
		return
	}
	b.render(ctx, http.StatusOK, "blog_list.html", BlogListPage{
		PageContext: b.page(ctx, "Blogs"),
		Blogs:       blogs,
		Pagination:  pagination(p, len(blogs)),
	})
}

// Detail shows a blog with its posts, newest first.
func (b *BlogController) Detail(ctx *gin.Context) {
	id, err := pathID(ctx, "blog_id")
	if err != nil {
		b.fail(ctx, err)
		return
	}
	blog, err := b.repo.BlogByID(ctx.Request.Context(), id)
	if err != nil {
		b.fail(ctx, err)
		return
	}
	posts, err := b.repo.PostsInBlog(ctx.Request.Context(), id)
	if err != nil {
		b.fail(ctx, err)
		return
	}
	b.render(ctx, http.StatusOK, "blog_detail.html", BlogDetailPage{
		PageContext: b.page(ctx, blog.Name),
		Blog:        blog,
		Posts:       posts,
	})
}

func (b *BlogController) New(ctx *gin.Context) {
	b.render(ctx, http.StatusOK, "blog_form.html", BlogFormPage{PageContext: b.page(ctx, "New blog")})
}

// Create stores a blog owned by the requester and redirects to it.
func (b *BlogController) Create(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)

	var form forms.BlogForm
	if errs := forms.Bind(ctx, &form); errs.Any() {
		b.render(ctx, http.StatusBadRequest, "blog_form.html", BlogFormPage{
			PageContext: b.page(ctx, "New blog"),
			Form:        form,
			Errors:      errs,
		})
		return
	}

	blog := models.Blog{Name: form.Name, UserID: models.Ptr(userID)}
	if err := b.repo.CreateBlog(ctx.Request.Context(), &blog); err != nil {
		b.fail(ctx, err)
		return
	}
	b.invalidateIndex(ctx)
	utils.Sugar.Infof("blog created id=%d owner=%d", blog.ID, userID)
	ctx.Redirect(http.StatusSeeOther, blog.URL())
}
