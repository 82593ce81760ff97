package forms

import (
	"strings"

	"github.com/cppla/blogsite/utils"
)

// BlogForm creates a blog owned by the requester.
type BlogForm struct {
	Name string `form:"name" binding:"required,max=200"`
}

func (f *BlogForm) Clean() Errors {
	errs := Errors{}
	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		errs.Add("name", "This field is required.")
	}
	return errs
}

// PostForm creates a post. Blog is optional when the author owns a single blog.
type PostForm struct {
	Title string `form:"title" binding:"required,max=200"`
	Body  string `form:"body" binding:"required"`
	Blog  uint   `form:"blog"`
}

func (f *PostForm) Clean() Errors {
	errs := Errors{}
	f.Title = strings.TrimSpace(f.Title)
	if f.Title == "" {
		errs.Add("title", "This field is required.")
	}
	f.Body = utils.Sanitize(f.Body)
	if f.Body == "" {
		errs.Add("body", "This field is required.")
	}
	return errs
}

// CommentForm attaches text to a post. The author always comes from the session.
type CommentForm struct {
	Text string `form:"text" binding:"required"`
	Post uint   `form:"post" binding:"required"`
}

func (f *CommentForm) Clean() Errors {
	errs := Errors{}
	f.Text = utils.Sanitize(f.Text)
	if f.Text == "" {
		errs.Add("text", "This field is required.")
	}
	return errs
}
