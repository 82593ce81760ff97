package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cppla/blogsite/apperror"
	"github.com/cppla/blogsite/config"
	"github.com/cppla/blogsite/middleware"
	"github.com/cppla/blogsite/repository"
	"github.com/cppla/blogsite/utils"
)

// base is shared by the controllers: the repository, the cache and the page helpers.
type base struct {
	repo  *repository.Repository
	store utils.Store
}

// page builds the layout context, resolving the session user if there is one.
func (b *base) page(ctx *gin.Context, title string) PageContext {
	pc := PageContext{Title: title, SiteName: config.Get().SiteName}
	if id, ok := middleware.CurrentUserID(ctx); ok {
		u, err := b.repo.UserByID(ctx.Request.Context(), id)
		if err == nil {
			pc.CurrentUser = u
		} else if !errors.Is(err, apperror.ErrNotFound) {
			utils.Logger.Warn("load session user", zap.Uint("user_id", id), zap.Error(err))
		}
	}
	return pc
}

func (b *base) render(ctx *gin.Context, status int, name string, data interface{}) {
	ctx.HTML(status, name, data)
}

// fail renders the error page that matches err. Unexpected errors are logged.
func (b *base) fail(ctx *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	switch status {
	case http.StatusNotFound:
		msg = "The page you requested could not be found."
	case http.StatusInternalServerError:
		msg = "Something went wrong on our end."
		utils.Logger.Error("request failed",
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Error(err),
		)
	}
	b.renderStatus(ctx, status, msg)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperror.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrConflict), errors.Is(err, apperror.ErrNoBlog):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (b *base) renderStatus(ctx *gin.Context, status int, msg string) {
	b.render(ctx, status, "error.html", ErrorPage{
		PageContext: b.page(ctx, http.StatusText(status)),
		Status:      status,
		Message:     msg,
	})
}

// invalidateIndex drops the cached index aggregate after a write.
func (b *base) invalidateIndex(ctx *gin.Context) {
	b.store.InvalidateByPrefix(ctx.Request.Context(), utils.IndexStatsKey)
}

// pathID parses a numeric path parameter. Anything else is reported as not found.
func pathID(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperror.NotFound(name, raw)
	}
	return uint(id), nil
}

// parsePage reads ?page= and returns the repository window plus the page number.
func parsePage(ctx *gin.Context) repository.Page {
	n, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || n < 1 {
		n = 1
	}
	return repository.Page{Number: n, Size: config.Get().PageSize}
}

func pagination(p repository.Page, got int) Pagination {
	pg := Pagination{Page: p.Number}
	if p.Number > 1 {
		pg.Prev = p.Number - 1
	}
	if p.Size > 0 && got >= p.Size {
		pg.Next = p.Number + 1
	}
	return pg
}

// ErrorController renders the fallback pages for unmatched routes and methods.
type ErrorController struct {
	base
}

func NewErrorController(repo *repository.Repository, store utils.Store) *ErrorController {
	return &ErrorController{base{repo: repo, store: store}}
}

func (e *ErrorController) NotFound(ctx *gin.Context) {
	e.renderStatus(ctx, http.StatusNotFound, "The page you requested could not be found.")
}

func (e *ErrorController) MethodNotAllowed(ctx *gin.Context) {
	e.renderStatus(ctx, http.StatusMethodNotAllowed, "That method is not allowed here.")
}
