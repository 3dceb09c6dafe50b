package rest

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RouterConfig bundles the handlers a router needs.
type RouterConfig struct {
	Logger     logrus.FieldLogger
	Tokens     *TokenManager
	Auth       *AuthHandler
	Planner    *PlannerHandler
	Confidence *ConfidenceHandler
	Curriculum *CurriculumHandler
	Settings   *SettingsHandler
	Analytics  *AnalyticsHandler
}

// NewRouter assembles the HTTP API.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(RequestLogger(cfg.Logger))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", requestIDHeader},
		AllowCredentials: true,
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.POST("/auth/register", cfg.Auth.Register)
	api.POST("/auth/login", cfg.Auth.Login)

	protected := api.Group("/")
	protected.Use(RequireAuth(cfg.Tokens))

	// Daily plan
	protected.GET("/tasks/today", cfg.Planner.Today)
	protected.POST("/tasks/:id/complete", cfg.Planner.Complete)
	protected.POST("/tasks/:id/skip", cfg.Planner.Skip)

	// Curriculum browse
	protected.GET("/subjects", cfg.Curriculum.ListSubjects)
	protected.GET("/subjects/:id/topics", cfg.Curriculum.ListTopics)
	protected.GET("/topics/:id/subtopics", cfg.Curriculum.ListSubtopics)

	// Confidence
	protected.PUT("/subtopics/:id/confidence", cfg.Confidence.UpdateSubtopic)
	protected.POST("/subtopics/:id/priority", cfg.Confidence.ToggleSubtopicPriority)
	protected.POST("/topics/:id/priority", cfg.Confidence.ToggleTopicPriority)

	// Settings & analytics
	protected.GET("/settings", cfg.Settings.Get)
	protected.PUT("/settings", cfg.Settings.Update)
	protected.GET("/analytics/summary", cfg.Analytics.Summary)

	return router
}
