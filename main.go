package main

import (
	"net/http"

	"github.com/naolatam/SN-radio-sub000/config"
	"github.com/naolatam/SN-radio-sub000/handlers"
	"github.com/naolatam/SN-radio-sub000/logger"
	"github.com/naolatam/SN-radio-sub000/middleware"
	"github.com/naolatam/SN-radio-sub000/models"
	"github.com/naolatam/SN-radio-sub000/repositories"
	"github.com/naolatam/SN-radio-sub000/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// No .env file is fine in production; everything comes from the env.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.Log.Level)

	db, err := config.InitDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	themeRepo := repositories.NewThemeRepository(db)

	// Services
	authService := services.NewAuthService(userRepo)
	articleService := services.NewArticleService(articleRepo, categoryRepo)
	categoryService := services.NewCategoryService(categoryRepo, articleRepo)
	themeService := services.NewThemeService(themeRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	articleHandler := handlers.NewArticleHandler(articleService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	themeHandler := handlers.NewThemeHandler(themeService)
	nowPlayingHandler := handlers.NewNowPlayingHandler(cfg.Stream, log)

	router := gin.Default()

	// CORS middleware
	origin := cfg.Server.FrontendOrigin
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.AuthMiddleware(), authHandler.GetMe)
		}

		// Public reads; optional auth populates the viewer's like flags.
		public := v1.Group("/")
		public.Use(middleware.OptionalAuthMiddleware())
		{
			public.GET("/articles", articleHandler.GetArticles)
			public.GET("/articles/:id", articleHandler.GetArticle)
			public.GET("/categories", categoryHandler.GetCategories)
			public.GET("/categories/:id", categoryHandler.GetCategory)
			public.GET("/team", authHandler.GetTeam)
			public.GET("/themes", themeHandler.GetThemes)
			public.GET("/themes/:id", themeHandler.GetTheme)
			public.GET("/theme", themeHandler.GetDefaultTheme)
			public.GET("/stream/now-playing", nowPlayingHandler.GetNowPlaying)
		}

		// Authenticated routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			articles := protected.Group("/articles")
			{
				articles.POST("", middleware.RequireRole(string(models.RoleStaff), string(models.RoleAdmin)), articleHandler.CreateArticle)
				articles.PUT("/:id", articleHandler.UpdateArticle)
				articles.DELETE("/:id", articleHandler.DeleteArticle)
				articles.POST("/:id/like", articleHandler.ToggleLike)
			}

			admin := protected.Group("/")
			admin.Use(middleware.RequireRole(string(models.RoleAdmin)))
			{
				admin.POST("/users", authHandler.CreateAccount)

				admin.POST("/categories", categoryHandler.CreateCategory)
				admin.PUT("/categories/:id", categoryHandler.UpdateCategory)
				admin.DELETE("/categories/:id", categoryHandler.DeleteCategory)

				admin.POST("/themes", themeHandler.CreateTheme)
				admin.PUT("/themes/:id", themeHandler.UpdateTheme)
				admin.DELETE("/themes/:id", themeHandler.DeleteTheme)
			}
		}
	}

	log.Info().Str("port", cfg.Server.Port).Msg("server starting")
	if err := http.ListenAndServe(":"+cfg.Server.Port, router); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
