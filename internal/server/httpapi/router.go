// Package httpapi exposes the services as a JSON REST API under /api.
package httpapi

import (
	"time"

	"github.com/dmitrijs2005/galacticquest/internal/logging"
	"github.com/dmitrijs2005/galacticquest/internal/server/services"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Services are the handlers' dependencies. All of them are required.
type Services struct {
	Users        *services.UserService
	Progression  *services.ProgressionService
	Categories   *services.CategoryService
	Skills       *services.SkillService
	TimeLogs     *services.TimeLogService
	Leaderboard  *services.LeaderboardService
	Achievements *services.AchievementService
	Stats        *services.StatsService
	Export       *services.ExportService
}

func NewRouter(svc Services, logger logging.Logger) *gin.Engine {
	h := &handler{svc: svc, now: time.Now}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		otelgin.Middleware("galacticquest"),
		CORS(),
		RequestLogger(logger.With("module", "http")),
	)

	api := router.Group("/api")
	api.GET("/", h.root)
	api.GET("/health", h.health)

	// public
	api.POST("/auth/register", h.register)
	api.POST("/auth/login", h.login)
	api.POST("/auth/refresh", h.refresh)
	api.GET("/categories/predefined", h.predefinedCategories)

	// protected
	protected := api.Group("")
	protected.Use(RequireAuth(svc.Users))

	protected.GET("/auth/me", h.me)
	protected.GET("/settings", h.getSettings)
	protected.PATCH("/settings", h.patchSettings)

	protected.GET("/categories", h.listCategories)
	protected.POST("/categories", h.createCategory)
	protected.DELETE("/categories/:id", h.deleteCategory)

	protected.GET("/skills", h.listSkills)
	protected.POST("/skills", h.createSkill)
	protected.PUT("/skills/:id", h.updateSkill)
	protected.DELETE("/skills/:id", h.deleteSkill)

	protected.POST("/time-logs", h.logTime)
	protected.GET("/time-logs", h.listTimeLogs)

	protected.GET("/leaderboard", h.leaderboard)
	protected.GET("/achievements", h.achievements)
	protected.GET("/stats/user", h.userStats)
	protected.POST("/exports", h.export)

	return router
}
