package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sekolah-dev/school-site-api/internal/middleware"
	"github.com/sekolah-dev/school-site-api/internal/service"
)

// Handlers bundles every route handler plus the auth service guarding
// the back-office surface.
type Handlers struct {
	Auth          *AuthHandler
	Programs      *ProgramHandler
	Departments   *DepartmentHandler
	Events        *EventHandler
	Achievements  *AchievementHandler
	News          *NewsHandler
	Alumni        *AlumniHandler
	Registrations *RegistrationHandler
	Exports       *ExportHandler
	Metrics       *MetricsHandler

	AuthService *service.AuthService
}

// RegisterRoutes wires the public site surface and the JWT-guarded back
// office under the given prefix.
func RegisterRoutes(r *gin.Engine, prefix string, h Handlers) {
	r.GET("/health", h.Metrics.Health)
	r.GET("/metrics", h.Metrics.Prometheus)

	api := r.Group(prefix)

	// Public site: reads plus the registration form and admin login.
	api.POST("/auth/login", h.Auth.Login)
	api.GET("/programs", h.Programs.List)
	api.GET("/departments", h.Departments.List)
	api.GET("/events", h.Events.List)
	api.GET("/achievements", h.Achievements.List)
	api.GET("/news", h.News.List)
	api.GET("/news/published", h.News.ListPublished)
	api.GET("/alumni", h.Alumni.List)
	api.POST("/registrations", h.Registrations.Create)

	// Back office: every mutation and the registration roster.
	admin := api.Group("", middleware.JWT(h.AuthService))
	admin.GET("/auth/me", h.Auth.Me)

	admin.POST("/programs", h.Programs.Create)
	admin.PUT("/programs/:id", h.Programs.Update)
	admin.DELETE("/programs/:id", h.Programs.Delete)

	admin.POST("/departments", h.Departments.Create)
	admin.PUT("/departments/:id", h.Departments.Update)
	admin.DELETE("/departments/:id", h.Departments.Delete)

	admin.POST("/events", h.Events.Create)
	admin.PUT("/events/:id", h.Events.Update)
	admin.DELETE("/events/:id", h.Events.Delete)

	admin.POST("/achievements", h.Achievements.Create)
	admin.PUT("/achievements/:id", h.Achievements.Update)
	admin.DELETE("/achievements/:id", h.Achievements.Delete)

	admin.POST("/news", h.News.Create)
	admin.PUT("/news/:id", h.News.Update)
	admin.DELETE("/news/:id", h.News.Delete)

	admin.POST("/alumni", h.Alumni.Create)
	admin.PUT("/alumni/:id", h.Alumni.Update)
	admin.DELETE("/alumni/:id", h.Alumni.Delete)

	admin.GET("/registrations", h.Registrations.List)
	admin.GET("/registrations/export", h.Exports.Registrations)
	admin.PATCH("/registrations/:id/status", h.Registrations.UpdateStatus)
}
