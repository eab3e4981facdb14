package handler

import (
	v1 "avdportal/api/v1"
	"avdportal/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TemplateApplicationHandler struct {
	*Handler
	templateAppService service.TemplateApplicationService
}

func NewTemplateApplicationHandler(handler *Handler, templateAppService service.TemplateApplicationService) *TemplateApplicationHandler {
	return &TemplateApplicationHandler{
		Handler:            handler,
		templateAppService: templateAppService,
	}
}

// ListTemplateApplications godoc
// @Summary 模板应用列表
// @Schemes
// @Description 按安装顺序升序
// @Tags 模板应用
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "模板ID"
// @Success 200 {object} v1.ListTemplateApplicationsResponse
// @Router /api/v1/templates/{id}/applications [get]
func (h *TemplateApplicationHandler) ListTemplateApplications(ctx *gin.Context) {
	templateID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	data, err := h.templateAppService.ListApplications(ctx, templateID)
	if err != nil {
		v1.HandleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, data)
}

// AttachApplication godoc
// @Summary 挂载应用
// @Schemes
// @Description 未指定 install_order 时追加到末尾
// @Tags 模板应用
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "模板ID"
// @Param request body v1.AttachApplicationRequest true "params"
// @Success 201 {object} v1.Response{data=v1.TemplateApplicationItem}
// @Router /api/v1/templates/{id}/applications [post]
func (h *TemplateApplicationHandler) AttachApplication(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	templateID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req v1.AttachApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		v1.HandleBindError(ctx, err)
		return
	}

	item, err := h.templateAppService.AttachApplication(ctx, actor, templateID, &req)
	if err != nil {
		h.logger.WithContext(ctx).Warn("templateAppService.AttachApplication error",
			zap.Int64("template_id", templateID), zap.Int64("application_id", req.ApplicationID), zap.Error(err))
		v1.HandleServiceError(ctx, err)
		return
	}
	v1.HandleCreated(ctx, item)
}

// UpdateTemplateApplication godoc
// @Summary 更新挂载信息
// @Schemes
// @Description 安装顺序通过 reorder 接口修改
// @Tags 模板应用
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "模板ID"
// @Param application_id path int true "应用ID"
// @Param request body v1.UpdateTemplateApplicationRequest true "params"
// @Success 200 {object} v1.Response{data=v1.TemplateApplicationItem}
// @Router /api/v1/templates/{id}/applications/{application_id} [put]
func (h *TemplateApplicationHandler) UpdateTemplateApplication(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	templateID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	applicationID, ok := pathID(ctx, "application_id")
	if !ok {
		return
	}
	var req v1.UpdateTemplateApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		v1.HandleBindError(ctx, err)
		return
	}

	item, err := h.templateAppService.UpdateApplication(ctx, actor, templateID, applicationID, &req)
	if err != nil {
		v1.HandleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, item)
}

// DetachApplication godoc
// @Summary 移除应用
// @Schemes
// @Description
// @Tags 模板应用
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "模板ID"
// @Param application_id path int true "应用ID"
// @Success 200 {object} v1.Response
// @Router /api/v1/templates/{id}/applications/{application_id} [delete]
func (h *TemplateApplicationHandler) DetachApplication(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	templateID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	applicationID, ok := pathID(ctx, "application_id")
	if !ok {
		return
	}
	if err := h.templateAppService.DetachApplication(ctx, actor, templateID, applicationID); err != nil {
		v1.HandleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, nil)
}

// ReorderApplications godoc
// @Summary 重排安装顺序
// @Schemes
// @Description application_ids 必须恰好包含全部已挂载应用，顺序即新的安装顺序
// @Tags 模板应用
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "模板ID"
// @Param request body v1.ReorderApplicationsRequest true "params"
// @Success 200 {object} v1.ListTemplateApplicationsResponse
// @Router /api/v1/templates/{id}/applications/reorder [put]
func (h *TemplateApplicationHandler) ReorderApplications(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	templateID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req v1.ReorderApplicationsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		v1.HandleBindError(ctx, err)
		return
	}

	data, err := h.templateAppService.ReorderApplications(ctx, actor, templateID, &req)
	if err != nil {
		h.logger.WithContext(ctx).Warn("templateAppService.ReorderApplications error", zap.Int64("template_id", templateID), zap.Error(err))
		v1.HandleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, data)
}
