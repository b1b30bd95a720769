package controller

import (
	"course_insights_backend/internal/service"
	"course_insights_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB              *gorm.DB
	InsightsService *service.InsightsService
}

func NewHealthController(db *gorm.DB, insightsService *service.InsightsService) *HealthController {
	return &HealthController{DB: db, InsightsService: insightsService}
}

// @Summary 健康检查
// @Description 检查服务状态与快照是否就绪
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	components := gin.H{}

	// 数据源不是数据库时 DB 可能为空
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			util.InternalServerError(ctx)
			return
		}
		if err := sqlDB.Ping(); err != nil {
			util.Error(ctx, http.StatusServiceUnavailable, "Database unavailable")
			return
		}
		components["database"] = "up"
	}

	snapshot := gin.H{"ready": false}
	if snap, err := c.InsightsService.Snapshot(); err == nil {
		snapshot = gin.H{"ready": true, "info": snap.Info()}
	}
	components["snapshot"] = snapshot

	util.Success(ctx, gin.H{
		"status":     "ok",
		"components": components,
	})
}
