package routes

import (
	"net/http"
	"time"

	"BIOSECURE/controllers/dashboard"
	"BIOSECURE/controllers/personnel"
	"BIOSECURE/controllers/statistics"
	"BIOSECURE/middleware"
	"BIOSECURE/views"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newEngine(log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(log))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

// NewAPIRouter memasang REST API personnel dan statistik. Handler memakai models.DB.
func NewAPIRouter(allowedOrigins []string, log *zap.Logger) *gin.Engine {
	r := newEngine(log)
	r.Use(cors.New(cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/personnel/", personnel.ListPersonnelHandler)
		api.POST("/personnel/", personnel.CreatePersonnelHandler)
		api.GET("/statistics/", statistics.GetStatisticsHandler)
	}
	return r
}

// NewDashboardRouter memasang halaman dashboard dan panel-panelnya.
func NewDashboardRouter(ctrl *dashboard.Controller, log *zap.Logger) (*gin.Engine, error) {
	tmpl, err := views.Templates()
	if err != nil {
		return nil, err
	}

	r := newEngine(log)
	r.SetHTMLTemplate(tmpl)

	r.GET("/", ctrl.ShellHandler)
	r.POST("/register", ctrl.RegisterHandler)
	r.GET("/panels/statistics", ctrl.StatisticsPanelHandler)
	r.GET("/panels/personnel", ctrl.PersonnelPanelHandler)
	return r, nil
}
