package handler

import (
	v1 "avdportal/api/v1"
	"avdportal/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BusinessUnitHandler struct {
	*Handler
	businessUnitService service.BusinessUnitService
}

func NewBusinessUnitHandler(handler *Handler, businessUnitService service.BusinessUnitService) *BusinessUnitHandler {
	return &BusinessUnitHandler{
		Handler:             handler,
		businessUnitService: businessUnitService,
	}
}

// CreateBusinessUnit godoc
// @Summary 创建业务单元
// @Schemes
// @Description code 全局唯一
// @Tags 基础数据
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body v1.CreateBusinessUnitRequest true "params"
// @Success 201 {object} v1.Response{data=model.BusinessUnit}
// @Router /api/v1/business-units [post]
func (h *BusinessUnitHandler) CreateBusinessUnit(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	var req v1.CreateBusinessUnitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		v1.HandleBindError(ctx, err)
		return
	}
	bu, err := h.businessUnitService.CreateBusinessUnit(ctx, actor, &req)
	if err != nil {
		h.logger.WithContext(ctx).Warn("businessUnitService.CreateBusinessUnit error", zap.Error(err))
		v1.HandleServiceError(ctx, err)
		return
	}
	v1.HandleCreated(ctx, bu)
}

// GetBusinessUnit godoc
// @Summary 获取业务单元
// @Schemes
// @Description
// @Tags 基础数据
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "业务单元ID"
// @Success 200 {object} v1.Response{data=model.BusinessUnit}
// @Router /api/v1/business-units/{id} [get]
func (h *BusinessUnitHandler) GetBusinessUnit(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	bu, err := h.businessUnitService.GetBusinessUnit(ctx, id)
	if err != nil {
		v1.HandleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, bu)
}

// ListBusinessUnits godoc
// @Summary 业务单元列表
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
// @Success 200 {object} v1.Response{data=v1.ListBusinessUnitResponseData}
// @Router /api/v1/business-units [get]
func (h *BusinessUnitHandler) ListBusinessUnits(ctx *gin.Context) {
	var req v1.ListMasterDataRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		v1.HandleBindError(ctx, err)
		return
	}
	data, err := h.businessUnitService.ListBusinessUnits(ctx, &req)
	if err != nil {
		v1.HandleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, data)
}

// UpdateBusinessUnit godoc
// @Summary 更新业务单元
// @Schemes
// @Description
// @Tags 基础数据
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "业务单元ID"
// @Param request body v1.UpdateBusinessUnitRequest true "params"
// @Success 200 {object} v1.Response{data=model.BusinessUnit}
// @Router /api/v1/business-units/{id} [put]
func (h *BusinessUnitHandler) UpdateBusinessUnit(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req v1.UpdateBusinessUnitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		v1.HandleBindError(ctx, err)
		return
	}
	bu, err := h.businessUnitService.UpdateBusinessUnit(ctx, actor, id, &req)
	if err != nil {
		v1.HandleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, bu)
}

// DeleteBusinessUnit godoc
// @Summary 删除业务单元
// @Schemes
// @Description 仍被模板或联系人引用时返回 409
// @Tags 基础数据
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "业务单元ID"
// @Success 200 {object} v1.Response
// @Router /api/v1/business-units/{id} [delete]
func (h *BusinessUnitHandler) DeleteBusinessUnit(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := h.businessUnitService.DeleteBusinessUnit(ctx, actor, id); err != nil {
		v1.HandleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, nil)
}
