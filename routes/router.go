package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cppla/blogsite/config"
	"github.com/cppla/blogsite/controllers"
	"github.com/cppla/blogsite/middleware"
	"github.com/cppla/blogsite/repository"
	"github.com/cppla/blogsite/utils"
	"github.com/cppla/blogsite/web"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB, store utils.Store) (*gin.Engine, error) {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true

	// access log goes to its own rolling file when configured
	accessLog := utils.Logger
	if cfg.GinPath != "" {
		gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg)
		if err != nil {
			return nil, err
		}
		accessLog = gl
	}
	r.Use(ginzap.Ginzap(accessLog, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(accessLog, true))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(web.Static()))

	repo := repository.New(db)
	r.Use(middleware.LoadSession(store))
	r.Use(middleware.PageViewRecorder(repo))

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	indexController := controllers.NewIndexController(repo, store)
	blogController := controllers.NewBlogController(repo, store)
	userController := controllers.NewUserController(repo, store)
	postController := controllers.NewPostController(repo, store)
	commentController := controllers.NewCommentController(repo, store)
	authController := controllers.NewAuthController(repo, store)
	errorController := controllers.NewErrorController(repo, store)

	r.GET("/", indexController.Index)
	r.GET("/blogs/", blogController.List)
	r.GET("/users/", userController.List)
	r.GET("/posts/", postController.List)
	r.GET("/user/:user_id", userController.Detail)
	r.GET("/blog/:blog_id", blogController.Detail)
	r.GET("/blog/:blog_id/post/:post_id", postController.Detail)

	// each group gets its own buckets so browsing does not eat into the login budget
	accounts := r.Group("/accounts")
	accounts.Use(middleware.RateLimitMiddleware(cfg.RateLimitPerMinute))
	accounts.GET("/register/", authController.RegisterForm)
	accounts.POST("/register/", authController.Register)
	accounts.GET("/login/", authController.LoginForm)
	accounts.POST("/login/", authController.Login)
	accounts.POST("/logout/", authController.Logout)

	protected := r.Group("")
	protected.Use(middleware.RequireLogin())
	writes := middleware.RateLimitMiddleware(cfg.RateLimitPerMinute)
	protected.GET("/blogs/create", blogController.New)
	protected.POST("/blogs/create", writes, blogController.Create)
	protected.GET("/posts/create", postController.New)
	protected.POST("/posts/create", writes, postController.Create)
	protected.POST("/comments/create", writes, commentController.Create)

	r.NoRoute(errorController.NotFound)
	r.NoMethod(errorController.MethodNotAllowed)

	return r, nil
}
