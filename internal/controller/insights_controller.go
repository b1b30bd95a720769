package controller

import (
	"course_insights_backend/internal/model"
	"course_insights_backend/internal/service"
	"course_insights_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type InsightsController struct {
	InsightsService *service.InsightsService
}

func NewInsightsController(insightsService *service.InsightsService) *InsightsController {
	return &InsightsController{InsightsService: insightsService}
}

// @Summary 获取课程层级
// @Description 课程 → 章节 → 单元 → 学员 → 活动 → 概念 的完整层级及各级汇总指标
// @Tags 学习分析
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response
// @Router /api/insights/course [get]
func (c *InsightsController) GetCourse(ctx *gin.Context) {
	course, err := c.InsightsService.Course()
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// @Summary 获取章节
// @Tags 学习分析
// @Produce json
// @Security ApiKeyAuth
// @Param chapterId path string true "章节ID"
// @Success 200 {object} util.Response{data=model.Chapter}
// @Failure 404 {object} util.Response
// @Router /api/insights/chapters/{chapterId} [get]
func (c *InsightsController) GetChapter(ctx *gin.Context) {
	chapter, err := c.InsightsService.Chapter(model.ID(ctx.Param("chapterId")))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, chapter)
}

// @Summary 获取单元
// @Description 单元汇总、学员列表（含 isStruggling 标记）与活动的全体学员视图
// @Tags 学习分析
// @Produce json
// @Security ApiKeyAuth
// @Param chapterId path string true "章节ID"
// @Param unitId path string true "单元ID"
// @Success 200 {object} util.Response{data=model.Unit}
// @Failure 404 {object} util.Response
// @Router /api/insights/chapters/{chapterId}/units/{unitId} [get]
func (c *InsightsController) GetUnit(ctx *gin.Context) {
	unit, err := c.InsightsService.Unit(model.ID(ctx.Param("chapterId")), model.ID(ctx.Param("unitId")))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, unit)
}

// @Summary 学员诊断
// @Description 学习模式与薄弱概念。学生只能查看自己的诊断
// @Tags 学习分析
// @Produce json
// @Security ApiKeyAuth
// @Param userId path string true "学员ID"
// @Success 200 {object} util.Response{data=model.StudentDiagnosis}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/insights/students/{userId}/diagnosis [get]
func (c *InsightsController) GetStudentDiagnosis(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	studentID := model.ID(ctx.Param("userId"))
	if !model.UserRole(user.Role).CanViewCohort() && model.ID(user.UserID) != studentID {
		util.HandleError(ctx, util.ErrPermissionDenied)
		return
	}

	diagnosis, err := c.InsightsService.DiagnoseStudent(studentID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, diagnosis)
}

// @Summary 概念难度排行
// @Tags 学习分析
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "返回条数，默认全部"
// @Success 200 {object} util.Response{data=[]model.ConceptDifficulty}
// @Failure 404 {object} util.Response
// @Router /api/insights/concepts/difficulty [get]
func (c *InsightsController) GetConceptDifficulty(ctx *gin.Context) {
	limit := util.QueryInt(ctx.Query("limit"), 0)

	ranked, err := c.InsightsService.ConceptDifficulty(limit)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, ranked)
}

// @Summary 活动效果评级
// @Tags 学习分析
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.ActivityEffectiveness}
// @Failure 404 {object} util.Response
// @Router /api/insights/activities/effectiveness [get]
func (c *InsightsController) GetActivityEffectiveness(ctx *gin.Context) {
	rated, err := c.InsightsService.ActivityEffectiveness()
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, rated)
}

// @Summary 重新构建
// @Description 重新拉取学习事件并构建快照，force=true 时跳过缓存
// @Tags 学习分析
// @Produce json
// @Security ApiKeyAuth
// @Param force query bool false "跳过缓存"
// @Success 200 {object} util.Response{data=model.SnapshotInfo}
// @Failure 404 {object} util.Response
// @Router /api/insights/refresh [post]
func (c *InsightsController) Refresh(ctx *gin.Context) {
	force, _ := strconv.ParseBool(ctx.DefaultQuery("force", "false"))

	snap, err := c.InsightsService.Refresh(ctx.Request.Context(), force)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, snap.Info())
}

// @Summary 导出分析报告
// @Description 将当前快照的完整报告上传到对象存储
// @Tags 学习分析
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/insights/export [post]
func (c *InsightsController) Export(ctx *gin.Context) {
	url, err := c.InsightsService.ExportReport(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"url": url})
}
