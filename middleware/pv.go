package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cppla/blogsite/models"
	"github.com/cppla/blogsite/repository"
	"github.com/cppla/blogsite/utils"
)

// PageViewRecorder counts successful page GETs per day and path.
func PageViewRecorder(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method != http.MethodGet {
			return
		}
		if status := c.Writer.Status(); status < 200 || status >= 300 {
			return
		}
		path := c.Request.URL.Path
		if path == "/health" || strings.HasPrefix(path, "/static/") || strings.HasPrefix(path, "/accounts/") {
			return
		}

		if err := repo.RecordView(c.Request.Context(), path, models.Today()); err != nil {
			utils.Sugar.Warnf("record page view path=%s err=%v", path, err)
		}
	}
}
