package repository

import (
	"context"
	"time"

	"avdportal/internal/model"
)

// AuditLogFilter 审计日志查询条件
type AuditLogFilter struct {
	Page       int
	PageSize   int
	Action     string
	EntityType string
	EntityID   string
	AdminID    string
	StartTime  *time.Time
	EndTime    *time.Time
}

type AuditLogRepository interface {
	Create(ctx context.Context, entry *model.AuditLog) error
	ListWithPagination(ctx context.Context, filter AuditLogFilter) ([]*model.AuditLog, int64, error)
}

func NewAuditLogRepository(r *Repository) AuditLogRepository {
	return &auditLogRepository{Repository: r}
}

type auditLogRepository struct {
	*Repository
}

func (r *auditLogRepository) Create(ctx context.Context, entry *model.AuditLog) error {
	return r.DB(ctx).Create(entry).Error
}

func (r *auditLogRepository) ListWithPagination(ctx context.Context, filter AuditLogFilter) ([]*model.AuditLog, int64, error) {
	var entries []*model.AuditLog
	var total int64

	query := r.DB(ctx).Model(&model.AuditLog{})
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.EntityType != "" {
		query = query.Where("entity_type = ?", filter.EntityType)
	}
	if filter.EntityID != "" {
		query = query.Where("entity_id = ?", filter.EntityID)
	}
	if filter.AdminID != "" {
		query = query.Where("admin_id = ?", filter.AdminID)
	}
	if filter.StartTime != nil {
		query = query.Where("gmt_create >= ?", filter.StartTime.UTC())
	}
	if filter.EndTime != nil {
		query = query.Where("gmt_create <= ?", filter.EndTime.UTC())
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("gmt_create DESC").
		Offset(offset(filter.Page, filter.PageSize)).
		Limit(filter.PageSize).
		Find(&entries).Error; err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
