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

// TemplateHistoryService 模板变更日志
type TemplateHistoryService interface {
	// Append 追加一条记录，失败只记日志，不影响调用方
	Append(ctx context.Context, actor model.Actor, ev lifecycle.HistoryEvent) lifecycle.WriteResult
	ListForTemplate(ctx context.Context, templateID int64) (*v1.ListTemplateHistoryResponseData, error)
}

func NewTemplateHistoryService(
	service *Service,
	historyRepo repository.TemplateHistoryRepository,
	templateRepo repository.TemplateRepository,
	m *metrics.Metrics,
) TemplateHistoryService {
	return &templateHistoryService{
		Service:      service,
		historyRepo:  historyRepo,
		templateRepo: templateRepo,
		metrics:      m,
	}
}

type templateHistoryService struct {
	*Service
	historyRepo  repository.TemplateHistoryRepository
	templateRepo repository.TemplateRepository
	metrics      *metrics.Metrics
}

func (s *templateHistoryService) Append(ctx context.Context, actor model.Actor, ev lifecycle.HistoryEvent) lifecycle.WriteResult {
	err := s.append(ctx, actor, ev)
	s.metrics.RecordLedgerWrite(metrics.LedgerTemplateHistory, err)
	if err != nil {
		s.logger.WithContext(ctx).Error("template history append failed",
			zap.Int64("template_id", ev.TemplateID),
			zap.String("action", string(ev.Action)),
			zap.String("user_id", actor.AdminID),
			zap.Error(err))
		return lifecycle.Failed(err)
	}
	return lifecycle.Written()
}

func (s *templateHistoryService) append(ctx context.Context, actor model.Actor, ev lifecycle.HistoryEvent) error {
	if !ev.Action.Valid() {
		return fmt.Errorf("unknown history action %q", ev.Action)
	}
	if ev.TemplateID <= 0 {
		return fmt.Errorf("history entry needs a persisted template id")
	}
	entry := &model.TemplateHistory{
		TemplateID: ev.TemplateID,
		Action:     ev.Action,
		Changes:    ev.Changes,
		Comment:    ev.Comment,
		UserID:     actor.AdminID,
		UserName:   actor.Name,
		CreateTime: time.Now().UTC(),
	}
	// 只有状态变更记录新旧状态
	if ev.Action == model.HistoryActionStatusChanged {
		entry.OldStatus = ev.OldStatus
		entry.NewStatus = ev.NewStatus
	}
	// 请求结束不应中断日志写入
	return s.historyRepo.Create(context.WithoutCancel(ctx), entry)
}

func (s *templateHistoryService) ListForTemplate(ctx context.Context, templateID int64) (*v1.ListTemplateHistoryResponseData, error) {
	tpl, err := s.templateRepo.GetByID(ctx, templateID)
	if err != nil {
		s.logger.WithContext(ctx).Error("templateRepo.GetByID error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if tpl == nil {
		return nil, v1.ErrTemplateNotFound
	}

	entries, err := s.historyRepo.ListByTemplateID(ctx, templateID)
	if err != nil {
		s.logger.WithContext(ctx).Error("historyRepo.ListByTemplateID error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}

	list := make([]model.TemplateHistory, 0, len(entries))
	for _, e := range entries {
		list = append(list, *e)
	}
	return &v1.ListTemplateHistoryResponseData{
		TemplateID: templateID,
		Total:      int64(len(list)),
		List:       list,
	}, nil
}
