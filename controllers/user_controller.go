package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cppla/blogsite/repository"
	"github.com/cppla/blogsite/utils"
)

// UserController renders the public user pages.
type UserController struct {
	base
}

func NewUserController(repo *repository.Repository, store utils.Store) *UserController {
	return &UserController{base{repo: repo, store: store}}
}

func (u *UserController) List(ctx *gin.Context) {
	p := parsePage(ctx)
	users, err := u.repo.ListUsers(ctx.Request.Context(), p)
	if err != nil {
		u.fail(ctx, err)
		return
	}
	u.render(ctx, http.StatusOK, "user_list.html", UserListPage{
		PageContext: u.page(ctx, "Users"),
		Users:       users,
		Pagination:  pagination(p, len(users)),
	})
}

// Detail shows a user with the blogs they own and the posts they wrote.
func (u *UserController) Detail(ctx *gin.Context) {
	id, err := pathID(ctx, "user_id")
	if err != nil {
		u.fail(ctx, err)
		return
	}
	user, err := u.repo.UserByID(ctx.Request.Context(), id)
	if err != nil {
		u.fail(ctx, err)
		return
	}
	blogs, err := u.repo.BlogsOwnedBy(ctx.Request.Context(), id)
	if err != nil {
		u.fail(ctx, err)
		return
	}
	posts, err := u.repo.PostsByAuthor(ctx.Request.Context(), id)
	if err != nil {
		u.fail(ctx, err)
		return
	}
	u.render(ctx, http.StatusOK, "user_detail.html", UserDetailPage{
		PageContext: u.page(ctx, user.DisplayName()),
		User:        user,
		Blogs:       blogs,
		Posts:       posts,
	})
}
