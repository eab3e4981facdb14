package v1

import (
	"time"

	"avdportal/internal/model"
)

type ListAuditLogRequest struct {
	Page       int        `form:"page" example:"1"`
	PageSize   int        `form:"page_size" binding:"omitempty,max=100" example:"20"`
	Action     string     `form:"action" example:"TEMPLATE_CREATED"`
	EntityType string     `form:"entity_type" example:"TEMPLATE"`
	EntityID   string     `form:"entity_id" example:"1"`
	AdminID    string     `form:"admin_id"`
	StartTime  *time.Time `form:"start_time" time_format:"2006-01-02T15:04:05Z07:00"`
	EndTime    *time.Time `form:"end_time" time_format:"2006-01-02T15:04:05Z07:00"`
}

// ListAuditLogResponseData 按时间倒序
type ListAuditLogResponseData struct {
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	List     []model.AuditLog `json:"list"`
}

type ListAuditLogResponse struct {
	Response
	Data ListAuditLogResponseData
}
