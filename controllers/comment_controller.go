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

// CommentController accepts comments posted from the post detail page.
type CommentController struct {
	base
}

func NewCommentController(repo *repository.Repository, store utils.Store) *CommentController {
	return &CommentController{base{repo: repo, store: store}}
}

// Create attaches a comment by the requester to the post named in the form.
func (c *CommentController) Create(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)

	var form forms.CommentForm
	errs := forms.Bind(ctx, &form)
	if form.Post == 0 {
		c.renderStatus(ctx, http.StatusBadRequest, "The comment does not name a post.")
		return
	}
	post, err := c.repo.PostByID(ctx.Request.Context(), form.Post)
	if err != nil {
		c.fail(ctx, err)
		return
	}
	if errs.Any() {
		var blogID uint
		if post.BlogID != nil {
			blogID = *post.BlogID
		}
		c.renderDetail(ctx, http.StatusBadRequest, blogID, post.ID, form, errs)
		return
	}

	comment := models.Comment{
		Text:   form.Text,
		PostID: models.Ptr(post.ID),
		UserID: models.Ptr(userID),
	}
	if err := c.repo.CreateComment(ctx.Request.Context(), &comment); err != nil {
		c.fail(ctx, err)
		return
	}
	c.invalidateIndex(ctx)
	ctx.Redirect(http.StatusSeeOther, post.URL())
}
