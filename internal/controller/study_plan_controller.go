package controller

import (
	"errors"
	"exam_prep_backend/internal/service"
	"exam_prep_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type StudyPlanController struct {
	StudyPlanService *service.StudyPlanService
}

func NewStudyPlanController(studyPlanService *service.StudyPlanService) *StudyPlanController {
	return &StudyPlanController{StudyPlanService: studyPlanService}
}

// Generate godoc
// @Summary Generate a fresh study plan from recent quiz performance
// @Tags study-plan
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /api/study-plan/generate [post]
func (c *StudyPlanController) Generate(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	plan, err := c.StudyPlanService.Generate(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"studyPlan": plan})
}

// Current godoc
// @Summary Today's study plan, regenerated when stale
// @Tags study-plan
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /api/study-plan/current [get]
func (c *StudyPlanController) Current(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	plan, err := c.StudyPlanService.Current(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"studyPlan": plan})
}

type UpdateProgressRequest struct {
	PlanID    string `json:"planId" binding:"required"`
	TopicID   string `json:"topicId" binding:"required"`
	Completed bool   `json:"completed"`
}

// UpdateProgress godoc
// @Summary Mark a plan topic block complete or incomplete
// @Tags study-plan
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param body body UpdateProgressRequest true "progress update"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/study-plan/update-progress [put]
func (c *StudyPlanController) UpdateProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	plan, err := c.StudyPlanService.UpdateProgress(req.PlanID, req.TopicID, req.Completed)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrStudyPlanNotFound):
			util.NotFound(ctx, "Study plan not found")
		case errors.Is(err, util.ErrTopicNotFound):
			util.BadRequest(ctx, "topic not found in plan")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"plan": plan})
}

// History godoc
// @Summary Past study plans, newest first
// @Tags study-plan
// @Security ApiKeyAuth
// @Produce json
// @Param limit query int false "max plans to return"
// @Success 200 {object} util.Response
// @Router /api/study-plan/history [get]
func (c *StudyPlanController) History(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "30"))
	plans, err := c.StudyPlanService.History(user.UserID, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, plans)
}

// Export godoc
// @Summary Store a JSON snapshot of a plan and return its URL
// @Tags study-plan
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "plan id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/study-plan/{id}/export [post]
func (c *StudyPlanController) Export(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	url, err := c.StudyPlanService.Export(ctx.Request.Context(), user.UserID, ctx.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrStudyPlanNotFound):
			util.NotFound(ctx, "Study plan not found")
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"url": url})
}
