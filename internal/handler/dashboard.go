package handler

import (
	v1 "avdportal/api/v1"
	"avdportal/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	*Handler
	dashboardService service.DashboardService
}

func NewDashboardHandler(handler *Handler, dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		Handler:          handler,
		dashboardService: dashboardService,
	}
}

// GetOverview godoc
// @Summary 获取模板概览
// @Tags Dashboard模块
// @Accept json
// @Produce json
// @Security Bearer
// @Param business_unit_id query int false "业务单元ID，为空统计全部"
// @Success 200 {object} v1.DashboardOverviewResponse
// @Router /api/v1/dashboard/overview [get]
func (h *DashboardHandler) GetOverview(ctx *gin.Context) {
	req := new(v1.DashboardOverviewRequest)
	if err := ctx.ShouldBindQuery(req); err != nil {
		v1.HandleBindError(ctx, err)
		return
	}

	data, err := h.dashboardService.GetOverview(ctx, req)
	if err != nil {
		h.logger.WithContext(ctx).Error("dashboardService.GetOverview error", zap.Error(err))
		v1.HandleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, data)
}

// GetOperations godoc
// @Summary 最近的管理操作
// @Tags Dashboard模块
// @Accept json
// @Produce json
// @Security Bearer
// @Param limit query int false "条数，默认 10，最大 50"
// @Success 200 {object} v1.DashboardOperationsResponse
// @Router /api/v1/dashboard/operations [get]
func (h *DashboardHandler) GetOperations(ctx *gin.Context) {
	req := new(v1.DashboardOperationsRequest)
	if err := ctx.ShouldBindQuery(req); err != nil {
		v1.HandleBindError(ctx, err)
		return
	}

	data, err := h.dashboardService.GetOperations(ctx, req)
	if err != nil {
		h.logger.WithContext(ctx).Error("dashboardService.GetOperations error", zap.Error(err))
		v1.HandleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, data)
}
