package forms

import (
	"regexp"
	"strings"
)

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

// RegistrationForm is the sign-up form.
type RegistrationForm struct {
	Username  string `form:"username" binding:"required,max=150"`
	FirstName string `form:"first_name" binding:"max=30"`
	LastName  string `form:"last_name" binding:"max=30"`
	Email     string `form:"email" binding:"max=100"`
	Password1 string `form:"password1" binding:"required"`
	Password2 string `form:"password2" binding:"required"`
}

func (f *RegistrationForm) Clean() Errors {
	errs := Errors{}
	f.Username = strings.TrimSpace(f.Username)
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Email = strings.TrimSpace(f.Email)

	if f.Username == "" {
		errs.Add("username", "This field is required.")
	} else if !usernamePattern.MatchString(f.Username) {
		errs.Add("username", "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters.")
	}
	if f.Email != "" && !validEmail(f.Email) {
		errs.Add("email", "Enter a valid email address.")
	}
	if f.Password1 != "" && f.Password2 != "" && f.Password1 != f.Password2 {
		errs.Add("password2", "The two password fields didn't match.")
		return errs
	}
	if f.Password1 != "" {
		if err := ValidatePassword(f.Password1, f.Username, f.FirstName, f.LastName, f.Email); err != nil {
			errs.Add("password2", err.Error())
		}
	}
	return errs
}

// LoginForm authenticates an existing account. Next is the page to return to.
type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
	Next     string `form:"next"`
}

func (f *LoginForm) Clean() Errors {
	f.Username = strings.TrimSpace(f.Username)
	f.Next = SafeNext(f.Next)
	return nil
}

// SafeNext keeps only local absolute paths so a login cannot redirect off-site.
func SafeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, `\`) {
		return "/"
	}
	return next
}
