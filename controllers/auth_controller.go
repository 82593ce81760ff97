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

const errBadCredentials = "Please enter a correct username and password. Note that both fields may be case-sensitive."

// AuthController handles registration, login and logout.
type AuthController struct {
	base
}

func NewAuthController(repo *repository.Repository, store utils.Store) *AuthController {
	return &AuthController{base{repo: repo, store: store}}
}

func (a *AuthController) RegisterForm(ctx *gin.Context) {
	a.render(ctx, http.StatusOK, "register.html", RegisterPage{PageContext: a.page(ctx, "Register")})
}

// Register creates the account, signs the new user in and redirects home.
func (a *AuthController) Register(ctx *gin.Context) {
	var form forms.RegistrationForm
	errs := forms.Bind(ctx, &form)

	if !errs.Has("username") {
		taken, err := a.repo.UsernameTaken(ctx.Request.Context(), form.Username)
		if err != nil {
			a.fail(ctx, err)
			return
		}
		if taken {
			errs.Add("username", "A user with that username already exists.")
		}
	}
	if errs.Any() {
		a.rejectRegistration(ctx, form, errs)
		return
	}

	hash, err := utils.HashPassword(form.Password1)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	user := models.User{
		Username:     form.Username,
		PasswordHash: hash,
		FirstName:    form.FirstName,
		LastName:     form.LastName,
		Email:        form.Email,
	}
	if err := a.repo.CreateUser(ctx.Request.Context(), &user); err != nil {
		if errors.Is(err, apperror.ErrConflict) {
			errs.Add("username", "A user with that username already exists.")
			a.rejectRegistration(ctx, form, errs)
			return
		}
		a.fail(ctx, err)
		return
	}
	a.invalidateIndex(ctx)
	utils.Sugar.Infof("user registered id=%d username=%s", user.ID, user.Username)

	// sign in with the submitted credentials
	authed, ok := a.authenticate(ctx, form.Username, form.Password1)
	if !ok {
		ctx.Redirect(http.StatusSeeOther, middleware.LoginPath)
		return
	}
	if err := a.login(ctx, authed); err != nil {
		a.fail(ctx, err)
		return
	}
	ctx.Redirect(http.StatusSeeOther, "/")
}

func (a *AuthController) rejectRegistration(ctx *gin.Context, form forms.RegistrationForm, errs forms.Errors) {
	form.Password1, form.Password2 = "", ""
	a.render(ctx, http.StatusBadRequest, "register.html", RegisterPage{
		PageContext: a.page(ctx, "Register"),
		Form:        form,
		Errors:      errs,
	})
}

func (a *AuthController) LoginForm(ctx *gin.Context) {
	a.render(ctx, http.StatusOK, "login.html", LoginPage{
		PageContext: a.page(ctx, "Log in"),
		Form:        forms.LoginForm{Next: forms.SafeNext(ctx.Query("next"))},
	})
}

// Login checks the credentials and redirects to the page the user came from.
func (a *AuthController) Login(ctx *gin.Context) {
	var form forms.LoginForm
	errs := forms.Bind(ctx, &form)
	var user *models.User
	if !errs.Any() {
		var ok bool
		if user, ok = a.authenticate(ctx, form.Username, form.Password); !ok {
			errs.Add(forms.NonFieldErrors, errBadCredentials)
		}
	}
	if errs.Any() {
		form.Password = ""
		a.render(ctx, http.StatusBadRequest, "login.html", LoginPage{
			PageContext: a.page(ctx, "Log in"),
			Form:        form,
			Errors:      errs,
		})
		return
	}
	if err := a.login(ctx, user); err != nil {
		a.fail(ctx, err)
		return
	}
	ctx.Redirect(http.StatusSeeOther, form.Next)
}

// Logout revokes the session token and returns to the home page.
func (a *AuthController) Logout(ctx *gin.Context) {
	middleware.EndSession(ctx, a.store)
	ctx.Redirect(http.StatusSeeOther, "/")
}

func (a *AuthController) authenticate(ctx *gin.Context, username, password string) (*models.User, bool) {
	user, err := a.repo.UserByUsername(ctx.Request.Context(), username)
	if err != nil {
		if !errors.Is(err, apperror.ErrNotFound) {
			utils.Sugar.Errorf("load user %q: %v", username, err)
		}
		return nil, false
	}
	return user, utils.CheckPassword(user.PasswordHash, password)
}

func (a *AuthController) login(ctx *gin.Context, user *models.User) error {
	if err := middleware.StartSession(ctx, user.ID, user.Username); err != nil {
		return err
	}
	if err := a.repo.TouchLastLogin(ctx.Request.Context(), user.ID); err != nil {
		utils.Sugar.Warnf("update last login user=%d err=%v", user.ID, err)
	}
	return nil
}
