package forms

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func postForm(values url.Values) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.Request = req
	return c
}

func TestBindReportsFormFieldNames(t *testing.T) {
	var f RegistrationForm
	errs := Bind(postForm(url.Values{"email": {"not-an-email"}}), &f)

	assert.Equal(t, "This field is required.", errs.Get("username"))
	assert.Equal(t, "This field is required.", errs.Get("password1"))
	assert.Equal(t, "Enter a valid email address.", errs.Get("email"))
}

func TestRegistrationFormRules(t *testing.T) {
	base := url.Values{
		"username":  {"alice"},
		"password1": {"violet-lantern-42"},
		"password2": {"violet-lantern-42"},
	}

	var ok RegistrationForm
	assert.False(t, Bind(postForm(base), &ok).Any())

	mismatch := url.Values{"username": {"alice"}, "password1": {"violet-lantern-42"}, "password2": {"violet-lantern-43"}}
	var f RegistrationForm
	assert.Equal(t, "The two password fields didn't match.", Bind(postForm(mismatch), &f).Get("password2"))

	badName := url.Values{"username": {"al ice"}, "password1": {"violet-lantern-42"}, "password2": {"violet-lantern-42"}}
	var g RegistrationForm
	assert.True(t, Bind(postForm(badName), &g).Has("username"))

	long := url.Values{"username": {strings.Repeat("a", 151)}, "password1": {"violet-lantern-42"}, "password2": {"violet-lantern-42"}}
	var h RegistrationForm
	assert.Equal(t, "Ensure this value has at most 150 characters.", Bind(postForm(long), &h).Get("username"))

	blank := url.Values{"username": {"   "}, "password1": {"violet-lantern-42"}, "password2": {"violet-lantern-42"}}
	var i RegistrationForm
	assert.Equal(t, "This field is required.", Bind(postForm(blank), &i).Get("username"))
}

func TestRegistrationFormTrimsEmailBeforeValidating(t *testing.T) {
	values := url.Values{
		"username":  {"alice"},
		"email":     {"  alice@example.com "},
		"password1": {"violet-lantern-42"},
		"password2": {"violet-lantern-42"},
	}
	var f RegistrationForm
	assert.False(t, Bind(postForm(values), &f).Any())
	assert.Equal(t, "alice@example.com", f.Email)

	values.Set("email", " not-an-email ")
	var g RegistrationForm
	assert.Equal(t, "Enter a valid email address.", Bind(postForm(values), &g).Get("email"))
}

func TestCommentFormRejectsBlankText(t *testing.T) {
	var f CommentForm
	errs := Bind(postForm(url.Values{"text": {"   "}, "post": {"3"}}), &f)
	assert.True(t, errs.Has("text"))
	assert.EqualValues(t, 3, f.Post)

	var g CommentForm
	errs = Bind(postForm(url.Values{"text": {"<script>alert(1)</script>"}, "post": {"3"}}), &g)
	assert.True(t, errs.Has("text"))
}

func TestPostFormSanitizesBody(t *testing.T) {
	var f PostForm
	errs := Bind(postForm(url.Values{"title": {"  Hello  "}, "body": {"<b>hi</b><script>x()</script>"}}), &f)
	assert.False(t, errs.Any())
	assert.Equal(t, "Hello", f.Title)
	assert.Equal(t, "<b>hi</b>", f.Body)
	assert.Zero(t, f.Blog)
}

func TestBindUnreadableValue(t *testing.T) {
	var f PostForm
	errs := Bind(postForm(url.Values{"title": {"t"}, "body": {"b"}, "blog": {"abc"}}), &f)
	assert.True(t, errs.Has(NonFieldErrors))
}
