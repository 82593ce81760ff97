package controllers

import (
	"github.com/cppla/blogsite/forms"
	"github.com/cppla/blogsite/models"
)

// PageContext is embedded by every page; the layout reads it.
type PageContext struct {
	Title       string
	SiteName    string
	CurrentUser *models.User
}

// Pagination links a listing to its neighbours. Zero means no such page.
type Pagination struct {
	Page int
	Prev int
	Next int
}

type IndexPage struct {
	PageContext
	NumBlogs   int64
	NumUsers   int64
	NumPosts   int64
	LatestPost *models.Post
}

type BlogListPage struct {
	PageContext
	Blogs      []models.Blog
	Pagination Pagination
}

type UserListPage struct {
	PageContext
	Users      []models.User
	Pagination Pagination
}

type PostListPage struct {
	PageContext
	Posts      []models.Post
	Pagination Pagination
}

type UserDetailPage struct {
	PageContext
	User  *models.User
	Blogs []models.Blog
	Posts []models.Post
}

type BlogDetailPage struct {
	PageContext
	Blog  *models.Blog
	Posts []models.Post
}

// PostDetailPage carries a blank (or rejected) comment form bound to the post.
type PostDetailPage struct {
	PageContext
	Post     *models.Post
	Comments []models.Comment
	Views    int64
	Form     forms.CommentForm
	Errors   forms.Errors
}

type RegisterPage struct {
	PageContext
	Form   forms.RegistrationForm
	Errors forms.Errors
}

type LoginPage struct {
	PageContext
	Form   forms.LoginForm
	Errors forms.Errors
}

type BlogFormPage struct {
	PageContext
	Form   forms.BlogForm
	Errors forms.Errors
}

// PostFormPage lists the requester's blogs; NoBlog is set when there are none.
type PostFormPage struct {
	PageContext
	Form   forms.PostForm
	Errors forms.Errors
	Blogs  []models.Blog
	NoBlog bool
}

type ErrorPage struct {
	PageContext
	Status  int
	Message string
}
