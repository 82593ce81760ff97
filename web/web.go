// Package web embeds the HTML templates and static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"time"

	"github.com/cppla/blogsite/models"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses every page template with the shared helper functions.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(templateFS, "templates/*.html")
}

// Static returns the stylesheet tree rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

func FuncMap() template.FuncMap {
	return template.FuncMap{
		"date": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("Jan. 2, 2006")
		},
		// safeHTML is only applied to text that went through utils.Sanitize.
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s) // #nosec G203
		},
		"name": func(u *models.User) string {
			return u.DisplayName()
		},
	}
}
