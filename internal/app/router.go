package app

import (
	"quizhub_backend/internal/config"
	"quizhub_backend/internal/middleware"
	"quizhub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/health", c.health.HealthCheck)
	router.GET("/metrics", monitoring.PrometheusHandler())

	auth := router.Group("/auth")
	{
		auth.POST("/signup", c.auth.Signup)
		auth.POST("/login", c.auth.Login)
		auth.POST("/logout", middleware.AuthMiddleware(cfg), c.auth.Logout)
	}

	quizzes := router.Group("/quizzes")
	{
		// Reads, updates and deletes are open; there is no ownership check
		// on update or delete.
		quizzes.GET("", c.quiz.List)
		quizzes.GET("/:id", c.quiz.Get)
		quizzes.PUT("/:id", c.quiz.Update)
		quizzes.DELETE("/:id", c.quiz.Delete)

		authorized := quizzes.Group("")
		authorized.Use(middleware.AuthMiddleware(cfg))
		{
			authorized.POST("", c.quiz.Create)
			authorized.GET("/profile", c.directory.Profile)
			authorized.POST("/score", c.scoring.Score)
		}
	}

	totalUsers := router.Group("/totalUsers")
	{
		totalUsers.GET("", c.directory.ListUsers)
		totalUsers.GET("/:id", c.directory.GetUser)
	}
}
