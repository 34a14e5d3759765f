package controller

import (
	"exam_prep_backend/internal/service"
	"exam_prep_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{AnalyticsService: analyticsService}
}

// ListStudentPerformance godoc
// @Summary Windowed performance summary across the student roster
// @Tags admin
// @Security ApiKeyAuth
// @Produce json
// @Param page query int false "page number"
// @Param pageSize query int false "page size"
// @Param search query string false "name or email filter"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/analytics/students [get]
func (c *AnalyticsController) ListStudentPerformance(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("pageSize", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	search := ctx.Query("search")

	items, total, err := c.AnalyticsService.ListStudentPerformance(page, pageSize, search)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  items,
		Total: total,
		Page:  page,
		Limit: pageSize,
	})
}
