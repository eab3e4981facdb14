package handler

import (
	v1 "avdportal/api/v1"
	"avdportal/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ApplicationHandler struct {
	*Handler
	applicationService service.ApplicationService
}

func NewApplicationHandler(handler *Handler, applicationService service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		Handler:             handler,
		applicationService: applicationService,
	}
}

// CreateApplication godoc
// @Summary 创建应用
// @Schemes
// @Description package_name 全局唯一
// @Tags 基础数据
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body v1.CreateApplicationRequest true "params"
// @Success 201 {object} v1.Response{data=model.Application}
// @Router /api/v1/applications [post]
func (h *ApplicationHandler) CreateApplication(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	var req v1.CreateApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		v1.HandleBindError(ctx, err)
		return
	}
	item, err := h.applicationService.CreateApplication(ctx, actor, &req)
	if err != nil {
		h.logger.WithContext(ctx).Warn("applicationService.CreateApplication error", zap.Error(err))
		v1.HandleServiceError(ctx, err)
		return
	}
	v1.HandleCreated(ctx, item)
}

// GetApplication godoc
// @Summary 获取应用
// @Schemes
// @Description
// @Tags 基础数据
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "应用ID"
// @Success 200 {object} v1.Response{data=model.Application}
// @Router /api/v1/applications/{id} [get]
func (h *ApplicationHandler) GetApplication(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	item, err := h.applicationService.GetApplication(ctx, id)
	if err != nil {
		v1.HandleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, item)
}

// ListApplications godoc
// @Summary 应用列表
// @Schemes
// @Description
// @Tags 基础数据
// @Accept json
// @Produce json
// @Security Bearer
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Param keyword query string false "关键字"
// @Param is_active query bool false "是否启用"
// @Success 200 {object} v1.Response{data=v1.ListApplicationResponseData}
// @Router /api/v1/applications [get]
func (h *ApplicationHandler) ListApplications(ctx *gin.Context) {
	var req v1.ListMasterDataRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		v1.HandleBindError(ctx, err)
		return
	}
	data, err := h.applicationService.ListApplications(ctx, &req)
	if err != nil {
		v1.HandleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, data)
}

// UpdateApplication godoc
// @Summary 更新应用
// @Schemes
// @Description
// @Tags 基础数据
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "应用ID"
// @Param request body v1.UpdateApplicationRequest true "params"
// @Success 200 {object} v1.Response{data=model.Application}
// @Router /api/v1/applications/{id} [put]
func (h *ApplicationHandler) UpdateApplication(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req v1.UpdateApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		v1.HandleBindError(ctx, err)
		return
	}
	item, err := h.applicationService.UpdateApplication(ctx, actor, id, &req)
	if err != nil {
		v1.HandleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, item)
}

// DeleteApplication godoc
// @Summary 删除应用
// @Schemes
// @Description 已挂载到模板时返回 409
// @Tags 基础数据
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "应用ID"
// @Success 200 {object} v1.Response
// @Router /api/v1/applications/{id} [delete]
func (h *ApplicationHandler) DeleteApplication(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := h.applicationService.DeleteApplication(ctx, actor, id); err != nil {
		v1.HandleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, nil)
}
