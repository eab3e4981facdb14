package handler

import (
	v1 "avdportal/api/v1"
	"avdportal/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BaseImageHandler struct {
	*Handler
	baseImageService service.BaseImageService
}

func NewBaseImageHandler(handler *Handler, baseImageService service.BaseImageService) *BaseImageHandler {
	return &BaseImageHandler{
		Handler:             handler,
		baseImageService: baseImageService,
	}
}

// CreateBaseImage godoc
// @Summary 创建基础镜像
// @Schemes
// @Description name 全局唯一
// @Tags 基础数据
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body v1.CreateBaseImageRequest true "params"
// @Success 201 {object} v1.Response{data=model.BaseImage}
// @Router /api/v1/base-images [post]
func (h *BaseImageHandler) CreateBaseImage(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	var req v1.CreateBaseImageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		v1.HandleBindError(ctx, err)
		return
	}
	item, err := h.baseImageService.CreateBaseImage(ctx, actor, &req)
	if err != nil {
		h.logger.WithContext(ctx).Warn("baseImageService.CreateBaseImage error", zap.Error(err))
		v1.HandleServiceError(ctx, err)
		return
	}
	v1.HandleCreated(ctx, item)
}

// GetBaseImage godoc
// @Summary 获取基础镜像
// @Schemes
// @Description
// @Tags 基础数据
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "基础镜像ID"
// @Success 200 {object} v1.Response{data=model.BaseImage}
// @Router /api/v1/base-images/{id} [get]
func (h *BaseImageHandler) GetBaseImage(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	item, err := h.baseImageService.GetBaseImage(ctx, id)
	if err != nil {
		v1.HandleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, item)
}

// ListBaseImages godoc
// @Summary 基础镜像列表
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
// @Success 200 {object} v1.Response{data=v1.ListBaseImageResponseData}
// @Router /api/v1/base-images [get]
func (h *BaseImageHandler) ListBaseImages(ctx *gin.Context) {
	var req v1.ListMasterDataRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		v1.HandleBindError(ctx, err)
		return
	}
	data, err := h.baseImageService.ListBaseImages(ctx, &req)
	if err != nil {
		v1.HandleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, data)
}

// UpdateBaseImage godoc
// @Summary 更新基础镜像
// @Schemes
// @Description
// @Tags 基础数据
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "基础镜像ID"
// @Param request body v1.UpdateBaseImageRequest true "params"
// @Success 200 {object} v1.Response{data=model.BaseImage}
// @Router /api/v1/base-images/{id} [put]
func (h *BaseImageHandler) UpdateBaseImage(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req v1.UpdateBaseImageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		v1.HandleBindError(ctx, err)
		return
	}
	item, err := h.baseImageService.UpdateBaseImage(ctx, actor, id, &req)
	if err != nil {
		v1.HandleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, item)
}

// DeleteBaseImage godoc
// @Summary 删除基础镜像
// @Schemes
// @Description 仍被模板引用时返回 409
// @Tags 基础数据
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "基础镜像ID"
// @Success 200 {object} v1.Response
// @Router /api/v1/base-images/{id} [delete]
func (h *BaseImageHandler) DeleteBaseImage(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := h.baseImageService.DeleteBaseImage(ctx, actor, id); err != nil {
		v1.HandleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, nil)
}
