package handler

import (
	v1 "avdportal/api/v1"
	"avdportal/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TemplateHandler struct {
	*Handler
	templateService service.TemplateService
	historyService  service.TemplateHistoryService
}

func NewTemplateHandler(
	handler *Handler,
	templateService service.TemplateService,
	historyService service.TemplateHistoryService,
) *TemplateHandler {
	return &TemplateHandler{
		Handler:         handler,
		templateService: templateService,
		historyService:  historyService,
	}
}

// CreateTemplate godoc
// @Summary 创建模板
// @Schemes
// @Description 新模板状态固定为 DRAFT，primary_region 必须在 regions 中
// @Tags 模板管理
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body v1.CreateTemplateRequest true "params"
// @Success 201 {object} v1.GetTemplateResponse
// @Router /api/v1/templates [post]
func (h *TemplateHandler) CreateTemplate(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	var req v1.CreateTemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		v1.HandleBindError(ctx, err)
		return
	}

	detail, err := h.templateService.CreateTemplate(ctx, actor, &req)
	if err != nil {
		h.logger.WithContext(ctx).Warn("templateService.CreateTemplate error", zap.Error(err))
		v1.HandleServiceError(ctx, err)
		return
	}
	v1.HandleCreated(ctx, detail)
}

// GetTemplate godoc
// @Summary 获取模板详情
// @Schemes
// @Description 包含已挂载应用和当前允许的状态流转
// @Tags 模板管理
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "模板ID"
// @Success 200 {object} v1.GetTemplateResponse
// @Router /api/v1/templates/{id} [get]
func (h *TemplateHandler) GetTemplate(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	detail, err := h.templateService.GetTemplate(ctx, id)
	if err != nil {
		v1.HandleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, detail)
}

// ListTemplates godoc
// @Summary 模板列表
// @Schemes
// @Description 支持按状态、环境、业务单元过滤，keyword 匹配名称
// @Tags 模板管理
// @Accept json
// @Produce json
// @Security Bearer
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Param status query string false "状态"
// @Param environment query string false "环境"
// @Param business_unit_id query int false "业务单元ID"
// @Param keyword query string false "关键字"
// @Success 200 {object} v1.ListTemplateResponse
// @Router /api/v1/templates [get]
func (h *TemplateHandler) ListTemplates(ctx *gin.Context) {
	var req v1.ListTemplateRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		v1.HandleBindError(ctx, err)
		return
	}
	data, err := h.templateService.ListTemplates(ctx, &req)
	if err != nil {
		v1.HandleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, data)
}

// UpdateTemplate godoc
// @Summary 更新模板
// @Schemes
// @Description 部分更新；状态只能通过 /status 接口修改
// @Tags 模板管理
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "模板ID"
// @Param request body v1.UpdateTemplateRequest true "params"
// @Success 200 {object} v1.GetTemplateResponse
// @Router /api/v1/templates/{id} [put]
func (h *TemplateHandler) UpdateTemplate(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req v1.UpdateTemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		v1.HandleBindError(ctx, err)
		return
	}

	detail, err := h.templateService.UpdateTemplate(ctx, actor, id, &req)
	if err != nil {
		h.logger.WithContext(ctx).Warn("templateService.UpdateTemplate error", zap.Int64("template_id", id), zap.Error(err))
		v1.HandleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, detail)
}

// DeleteTemplate godoc
// @Summary 删除模板
// @Schemes
// @Description 同时删除应用关联和变更日志，审计日志保留
// @Tags 模板管理
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "模板ID"
// @Success 200 {object} v1.Response
// @Router /api/v1/templates/{id} [delete]
func (h *TemplateHandler) DeleteTemplate(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := h.templateService.DeleteTemplate(ctx, actor, id); err != nil {
		h.logger.WithContext(ctx).Warn("templateService.DeleteTemplate error", zap.Int64("template_id", id), zap.Error(err))
		v1.HandleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, nil)
}

// UpdateTemplateStatus godoc
// @Summary 修改模板状态
// @Schemes
// @Description DRAFT→IN_REVIEW→APPROVED→DEPLOYED→DEPRECATED，IN_REVIEW/APPROVED 可回退一步
// @Tags 模板管理
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "模板ID"
// @Param request body v1.UpdateTemplateStatusRequest true "params"
// @Success 200 {object} v1.GetTemplateResponse
// @Router /api/v1/templates/{id}/status [patch]
func (h *TemplateHandler) UpdateTemplateStatus(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req v1.UpdateTemplateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		v1.HandleBindError(ctx, err)
		return
	}

	detail, err := h.templateService.UpdateStatus(ctx, actor, id, &req)
	if err != nil {
		h.logger.WithContext(ctx).Info("status change rejected",
			zap.Int64("template_id", id), zap.String("to", req.Status), zap.Error(err))
		v1.HandleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, detail)
}

// ListTemplateTransitions godoc
// @Summary 查询可用的状态流转
// @Schemes
// @Description
// @Tags 模板管理
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "模板ID"
// @Success 200 {object} v1.Response{data=v1.ListTransitionsResponseData}
// @Router /api/v1/templates/{id}/transitions [get]
func (h *TemplateHandler) ListTemplateTransitions(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	data, err := h.templateService.ListTransitions(ctx, id)
	if err != nil {
		v1.HandleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, data)
}

// ListTemplateHistory godoc
// @Summary 模板变更日志
// @Schemes
// @Description 按时间倒序
// @Tags 模板管理
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "模板ID"
// @Success 200 {object} v1.ListTemplateHistoryResponse
// @Router /api/v1/templates/{id}/history [get]
func (h *TemplateHandler) ListTemplateHistory(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	data, err := h.historyService.ListForTemplate(ctx, id)
	if err != nil {
		v1.HandleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, data)
}
