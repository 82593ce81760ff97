package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cppla/blogsite/repository"
	"github.com/cppla/blogsite/utils"
)

const indexCacheTTL = 5 * time.Minute

// IndexController renders the home page aggregates.
type IndexController struct {
	base
}

func NewIndexController(repo *repository.Repository, store utils.Store) *IndexController {
	return &IndexController{base{repo: repo, store: store}}
}

// Index shows blog, user and post counts and the latest post.
func (i *IndexController) Index(ctx *gin.Context) {
	var stats repository.Stats
	if !utils.CacheGetJSON(ctx.Request.Context(), i.store, utils.IndexStatsKey, &stats) {
		var err error
		stats, err = i.repo.SiteStats(ctx.Request.Context())
		if err != nil {
			i.fail(ctx, err)
			return
		}
		utils.CacheSetJSON(ctx.Request.Context(), i.store, utils.IndexStatsKey, stats, indexCacheTTL)
	}

	i.render(ctx, http.StatusOK, "index.html", IndexPage{
		PageContext: i.page(ctx, "Home"),
		NumBlogs:    stats.NumBlogs,
		NumUsers:    stats.NumUsers,
		NumPosts:    stats.NumPosts,
		LatestPost:  stats.LatestPost,
	})
}
