package handler

import (
	v1 "avdportal/api/v1"
	"avdportal/internal/service"

	"github.com/gin-gonic/gin"
)

type AuditLogHandler struct {
	*Handler
	auditLogService service.AuditLogService
}

func NewAuditLogHandler(handler *Handler, auditLogService service.AuditLogService) *AuditLogHandler {
	return &AuditLogHandler{
		Handler:         handler,
		auditLogService: auditLogService,
	}
}

// ListAuditLogs godoc
// @Summary 审计日志
// @Schemes
// @Description 按时间倒序；start_time/end_time 为 RFC3339
// @Tags 审计日志
// @Accept json
// @Produce json
// @Security Bearer
// @Param page query int false "页码"
// @Param page_size query int false "每页数量，最大 100"
// @Param action query string false "动作"
// @Param entity_type query string false "实体类型"
// @Param entity_id query string false "实体ID"
// @Param admin_id query string false "操作人ID"
// @Param start_time query string false "开始时间"
// @Param end_time query string false "结束时间"
// @Success 200 {object} v1.ListAuditLogResponse
// @Router /api/v1/audit-logs [get]
func (h *AuditLogHandler) ListAuditLogs(ctx *gin.Context) {
	var req v1.ListAuditLogRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		v1.HandleBindError(ctx, err)
		return
	}
	data, err := h.auditLogService.List(ctx, &req)
	if err != nil {
		v1.HandleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, data)
}
