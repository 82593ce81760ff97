// Package forms binds and validates the site's HTML forms.
package forms

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// NonFieldErrors is the key for errors that do not belong to a single field.
const NonFieldErrors = "__all__"

func init() {
	// report fields by their form names so messages line up with the inputs
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// Errors maps a form field name to its first error message.
type Errors map[string]string

// Add records msg for field unless the field already has an error.
func (e Errors) Add(field, msg string) {
	if _, ok := e[field]; ok {
		return
	}
	e[field] = msg
}

func (e Errors) Get(field string) string {
	return e[field]
}

func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Any reports whether at least one error was recorded.
func (e Errors) Any() bool {
	return len(e) > 0
}

func (e Errors) Merge(other Errors) {
	for k, v := range other {
		e.Add(k, v)
	}
}

// Form is implemented by every bindable form. Clean normalizes the bound values
// and applies the rules struct tags cannot express.
type Form interface {
	Clean() Errors
}

// Bind decodes the request into f, validates it and runs f.Clean.
func Bind(c *gin.Context, f Form) Errors {
	errs := Errors{}
	if err := c.ShouldBind(f); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			errs.Add(NonFieldErrors, "The submitted form could not be read.")
			return errs
		}
		for _, fe := range verrs {
			errs.Add(fe.Field(), message(fe))
		}
	}
	errs.Merge(f.Clean())
	return errs
}

// validEmail checks s with the same validator gin binds with.
func validEmail(s string) bool {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	return ok && v.Var(s, "email") == nil
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
	case "email":
		return "Enter a valid email address."
	default:
		return "Enter a valid value."
	}
}
