package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/brieflyhq/briefly-backend/internal/handlers"
	"github.com/brieflyhq/briefly-backend/internal/middleware"
)

type RouterConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	ProfileHandler *handlers.ProfileHandler
	LessonHandler  *handlers.LessonHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/", handlers.Root)
	router.GET("/healthcheck", handlers.HealthCheck)
	auth := router.Group("/auth")
	{
		auth.POST("/get-started", cfg.AuthHandler.Register)
		auth.POST("/login", cfg.AuthHandler.Login)
	}

	// ===============
	// || Protected ||
	// ===============
	onboarding := router.Group("/onboarding")
	onboarding.Use(cfg.AuthMiddleware.RequireAuth())
	onboarding.POST("/", cfg.ProfileHandler.CreateProfile)

	lessons := router.Group("/lessons")
	lessons.Use(cfg.AuthMiddleware.RequireAuth())
	lessons.POST("/generate", cfg.LessonHandler.Generate)
	lessons.GET("/user/:id", cfg.LessonHandler.ListForUser)
	lessons.GET("/:id", cfg.LessonHandler.Get)
	lessons.DELETE("/:id", cfg.LessonHandler.Delete)

	return router
}
