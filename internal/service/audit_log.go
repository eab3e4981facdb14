package service

import (
	"context"
	"fmt"
	"time"

	v1 "avdportal/api/v1"
	"avdportal/internal/lifecycle"
	"avdportal/internal/model"
	"avdportal/internal/repository"
	"avdportal/pkg/metrics"

	"go.uber.org/zap"
)

// AuditLogService 全局审计日志
type AuditLogService interface {
	// Record 写入一条审计记录，失败只记日志，不影响调用方
	Record(ctx context.Context, actor model.Actor, ev lifecycle.AuditEvent) lifecycle.WriteResult
	List(ctx context.Context, req *v1.ListAuditLogRequest) (*v1.ListAuditLogResponseData, error)
}

func NewAuditLogService(
	service *Service,
	auditRepo repository.AuditLogRepository,
	m *metrics.Metrics,
) AuditLogService {
	return &auditLogService{
		Service:   service,
		auditRepo: auditRepo,
		metrics:   m,
	}
}

type auditLogService struct {
	*Service
	auditRepo repository.AuditLogRepository
	metrics   *metrics.Metrics
}

func (s *auditLogService) Record(ctx context.Context, actor model.Actor, ev lifecycle.AuditEvent) lifecycle.WriteResult {
	err := s.record(ctx, actor, ev)
	s.metrics.RecordLedgerWrite(metrics.LedgerAuditLog, err)
	if err != nil {
		s.logger.WithContext(ctx).Error("audit log record failed",
			zap.String("action", ev.Action),
			zap.String("entity_type", ev.EntityType),
			zap.String("entity_id", ev.EntityID),
			zap.String("admin_id", actor.AdminID),
			zap.Error(err))
		return lifecycle.Failed(err)
	}
	return lifecycle.Written()
}

func (s *auditLogService) record(ctx context.Context, actor model.Actor, ev lifecycle.AuditEvent) error {
	if ev.Action == "" {
		return fmt.Errorf("audit entry needs an action")
	}
	if actor.AdminID == "" {
		return fmt.Errorf("audit entry needs an admin id")
	}
	entry := &model.AuditLog{
		AdminID:    actor.AdminID,
		AdminName:  actor.Name,
		Action:     ev.Action,
		EntityType: ev.EntityType,
		EntityID:   ev.EntityID,
		EntityName: ev.EntityName,
		Details:    ev.Details,
		OldValue:   ev.OldValue,
		NewValue:   ev.NewValue,
		IPAddress:  actor.IPAddress,
		UserAgent:  truncate(actor.UserAgent, 500),
		CreateTime: time.Now().UTC(),
	}
	return s.auditRepo.Create(context.WithoutCancel(ctx), entry)
}

func (s *auditLogService) List(ctx context.Context, req *v1.ListAuditLogRequest) (*v1.ListAuditLogResponseData, error) {
	page, pageSize := normalizePage(req.Page, req.PageSize)
	entries, total, err := s.auditRepo.ListWithPagination(ctx, repository.AuditLogFilter{
		Page:       page,
		PageSize:   pageSize,
		Action:     req.Action,
		EntityType: req.EntityType,
		EntityID:   req.EntityID,
		AdminID:    req.AdminID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	})
	if err != nil {
		s.logger.WithContext(ctx).Error("auditRepo.ListWithPagination error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}

	list := make([]model.AuditLog, 0, len(entries))
	for _, e := range entries {
		list = append(list, *e)
	}
	return &v1.ListAuditLogResponseData{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		List:     list,
	}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
