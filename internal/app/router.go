package app

import (
	"course_insights_backend/docs"
	"course_insights_backend/internal/config"
	"course_insights_backend/internal/middleware"
	"course_insights_backend/internal/model"
	"course_insights_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
	}

	// 2. 需要授权的路由
	insightsGroup := router.Group("/api/insights")
	insightsGroup.Use(middleware.AuthMiddleware(cfg.JWT.Secret))
	{
		insightsGroup.GET("/course", c.insights.GetCourse)
		insightsGroup.GET("/chapters/:chapterId", c.insights.GetChapter)
		insightsGroup.GET("/chapters/:chapterId/units/:unitId", c.insights.GetUnit)
		insightsGroup.GET("/students/:userId/diagnosis", c.insights.GetStudentDiagnosis)
		insightsGroup.GET("/concepts/difficulty", c.insights.GetConceptDifficulty)
		insightsGroup.GET("/activities/effectiveness", c.insights.GetActivityEffectiveness)

		// 3. 教师/管理员接口
		staff := insightsGroup.Group("")
		staff.Use(middleware.RoleMiddleware(model.Teacher, model.Admin))
		{
			staff.POST("/refresh", c.insights.Refresh)
			staff.POST("/export", c.insights.Export)
		}
	}
}
