package handler

import (
	v1 "avdportal/api/v1"
	"avdportal/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ContactHandler struct {
	*Handler
	contactService service.ContactService
}

func NewContactHandler(handler *Handler, contactService service.ContactService) *ContactHandler {
	return &ContactHandler{
		Handler:             handler,
		contactService: contactService,
	}
}

// CreateContact godoc
// @Summary 创建联系人
// @Schemes
// @Description email 全局唯一
// @Tags 基础数据
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body v1.CreateContactRequest true "params"
// @Success 201 {object} v1.Response{data=model.Contact}
// @Router /api/v1/contacts [post]
func (h *ContactHandler) CreateContact(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	var req v1.CreateContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		v1.HandleBindError(ctx, err)
		return
	}
	item, err := h.contactService.CreateContact(ctx, actor, &req)
	if err != nil {
		h.logger.WithContext(ctx).Warn("contactService.CreateContact error", zap.Error(err))
		v1.HandleServiceError(ctx, err)
		return
	}
	v1.HandleCreated(ctx, item)
}

// GetContact godoc
// @Summary 获取联系人
// @Schemes
// @Description
// @Tags 基础数据
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "联系人ID"
// @Success 200 {object} v1.Response{data=model.Contact}
// @Router /api/v1/contacts/{id} [get]
func (h *ContactHandler) GetContact(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	item, err := h.contactService.GetContact(ctx, id)
	if err != nil {
		v1.HandleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, item)
}

// ListContacts godoc
// @Summary 联系人列表
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
// @Success 200 {object} v1.Response{data=v1.ListContactResponseData}
// @Router /api/v1/contacts [get]
func (h *ContactHandler) ListContacts(ctx *gin.Context) {
	var req v1.ListMasterDataRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		v1.HandleBindError(ctx, err)
		return
	}
	data, err := h.contactService.ListContacts(ctx, &req)
	if err != nil {
		v1.HandleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, data)
}

// UpdateContact godoc
// @Summary 更新联系人
// @Schemes
// @Description
// @Tags 基础数据
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "联系人ID"
// @Param request body v1.UpdateContactRequest true "params"
// @Success 200 {object} v1.Response{data=model.Contact}
// @Router /api/v1/contacts/{id} [put]
func (h *ContactHandler) UpdateContact(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req v1.UpdateContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		v1.HandleBindError(ctx, err)
		return
	}
	item, err := h.contactService.UpdateContact(ctx, actor, id, &req)
	if err != nil {
		v1.HandleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, item)
}

// DeleteContact godoc
// @Summary 删除联系人
// @Schemes
// @Description 仍被模板引用时返回 409
// @Tags 基础数据
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "联系人ID"
// @Success 200 {object} v1.Response
// @Router /api/v1/contacts/{id} [delete]
func (h *ContactHandler) DeleteContact(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := h.contactService.DeleteContact(ctx, actor, id); err != nil {
		v1.HandleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, nil)
}
