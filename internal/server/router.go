package server

import (
	"net/http"

	"github.com/iamsonghee/photo-selection/internal/config"
	"github.com/iamsonghee/photo-selection/internal/handlers"
	"github.com/iamsonghee/photo-selection/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("photo_session", store))

	// 고객 플로우 (access token이 곧 권한, 세션 불필요)
	customer := r.Group("/api/c")
	customer.GET("/photos", handlers.CustomerPhotos)
	customer.GET("/gallery", handlers.CustomerGallery)
	customer.POST("/selections", handlers.UpsertSelection)
	customer.DELETE("/selections", handlers.DeleteSelection)
	customer.POST("/confirm", handlers.ConfirmSelection)
	customer.POST("/cancel-confirm", handlers.CancelConfirmation)

	// AUTH
	r.POST("/api/photographer/register", handlers.Register)
	r.POST("/api/photographer/login", handlers.Login)
	r.POST("/api/photographer/logout", handlers.Logout)

	// 작가 플로우 (세션 필요)
	photographer := r.Group("/api/photographer")
	photographer.Use(middleware.RequireAuth())

	photographer.GET("/dashboard", handlers.Dashboard)
	photographer.GET("/projects", handlers.ListProjects)
	photographer.POST("/projects", handlers.CreateProject)
	photographer.GET("/projects/:id", handlers.GetProject)
	photographer.PATCH("/projects/:id", handlers.PatchProject)
	photographer.DELETE("/projects/:id", handlers.DeleteProject)
	photographer.POST("/projects/:id/status", handlers.ChangeProjectStatus)
	photographer.POST("/projects/:id/editing", handlers.StartEditing)
	photographer.POST("/projects/:id/photos", handlers.UploadPhotos)

	photographer.GET("/project-logs", handlers.ListProjectLogs)
	photographer.POST("/project-logs", handlers.CreateProjectLogEntry)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
