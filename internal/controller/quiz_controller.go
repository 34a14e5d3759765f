package controller

import (
	"exam_prep_backend/internal/service"
	"exam_prep_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
	WindowDays  int
}

func NewQuizController(quizService *service.QuizService, windowDays int) *QuizController {
	return &QuizController{
		QuizService: quizService,
		WindowDays:  windowDays,
	}
}

// Submit godoc
// @Summary Record one answered question or a completed quiz
// @Tags quiz
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param body body service.SubmitAttemptInput true "attempt payload"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/quizzes/submit [post]
func (c *QuizController) Submit(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.SubmitAttemptInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.Score < 0 || req.Total < 0 || req.Score > req.Total {
		util.BadRequest(ctx, "score must be between 0 and total")
		return
	}

	attempt, err := c.QuizService.Submit(ctx.Request.Context(), user.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, attempt)
}

// History godoc
// @Summary Attempts inside the trailing performance window
// @Tags quiz
// @Security ApiKeyAuth
// @Produce json
// @Param days query int false "window size in days"
// @Success 200 {object} util.Response
// @Router /api/quizzes/history [get]
func (c *QuizController) History(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	days, err := strconv.Atoi(ctx.DefaultQuery("days", strconv.Itoa(c.WindowDays)))
	if err != nil || days <= 0 || days > 90 {
		util.BadRequest(ctx, "invalid history window")
		return
	}

	attempts, err := c.QuizService.History(user.UserID, days)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, attempts)
}

// LiveStats godoc
// @Summary Fast-moving counters for the study dashboard
// @Tags quiz
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/stats/live [get]
func (c *QuizController) LiveStats(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, c.QuizService.LiveStats(ctx.Request.Context(), user.UserID))
}
