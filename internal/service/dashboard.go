package service

import (
	"context"

	v1 "avdportal/api/v1"
	"avdportal/internal/model"
	"avdportal/internal/repository"

	"go.uber.org/zap"
)

const defaultOperationsLimit = 10

type DashboardService interface {
	GetOverview(ctx context.Context, req *v1.DashboardOverviewRequest) (*v1.DashboardOverviewData, error)
	GetOperations(ctx context.Context, req *v1.DashboardOperationsRequest) (*v1.DashboardOperationsData, error)
}

func NewDashboardService(
	service *Service,
	dashboardRepo repository.DashboardRepository,
	businessUnitRepo repository.BusinessUnitRepository,
	auditRepo repository.AuditLogRepository,
) DashboardService {
	return &dashboardService{
		Service:          service,
		dashboardRepo:    dashboardRepo,
		businessUnitRepo: businessUnitRepo,
		auditRepo:        auditRepo,
	}
}

type dashboardService struct {
	*Service
	dashboardRepo    repository.DashboardRepository
	businessUnitRepo repository.BusinessUnitRepository
	auditRepo        repository.AuditLogRepository
}

// GetOverview 获取模板与基础数据概览
func (s *dashboardService) GetOverview(ctx context.Context, req *v1.DashboardOverviewRequest) (*v1.DashboardOverviewData, error) {
	if req.BusinessUnitID > 0 {
		bu, err := s.businessUnitRepo.GetByID(ctx, req.BusinessUnitID)
		if err != nil {
			s.logger.WithContext(ctx).Error("failed to get business unit", zap.Error(err))
			return nil, v1.ErrInternalServerError
		}
		if bu == nil {
			return nil, v1.ErrBusinessUnitNotFound
		}
	}

	byStatus, err := s.dashboardRepo.CountTemplatesByStatus(ctx, req.BusinessUnitID)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to count templates by status", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	byEnv, err := s.dashboardRepo.CountTemplatesByEnvironment(ctx, req.BusinessUnitID)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to count templates by environment", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	approvals, err := s.dashboardRepo.CountAttachmentsByApproval(ctx, req.BusinessUnitID)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to count template applications", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	md, err := s.dashboardRepo.CountMasterData(ctx)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to count master data", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}

	// 补齐没有模板的状态
	templates := v1.DashboardTemplateSummary{
		ByStatus:      make(map[string]int64, len(model.TemplateStatuses)),
		ByEnvironment: byEnv,
	}
	for _, st := range model.TemplateStatuses {
		n := byStatus[string(st)]
		templates.ByStatus[string(st)] = n
		templates.Total += n
	}
	templates.AwaitingReview = byStatus[string(model.TemplateStatusInReview)]
	templates.Active = byStatus[string(model.TemplateStatusApproved)] + byStatus[string(model.TemplateStatusDeployed)]

	apps := v1.DashboardApprovalSummary{
		Pending:  approvals[string(model.ApprovalStatusPending)],
		Approved: approvals[string(model.ApprovalStatusApproved)],
		Denied:   approvals[string(model.ApprovalStatusDenied)],
	}
	apps.Total = apps.Pending + apps.Approved + apps.Denied

	return &v1.DashboardOverviewData{
		BusinessUnitID: req.BusinessUnitID,
		Templates:      templates,
		Applications:   apps,
		MasterData: v1.DashboardMasterDataCounts{
			BusinessUnits:       md.BusinessUnits,
			ActiveBusinessUnits: md.ActiveBusinessUnits,
			Contacts:            md.Contacts,
			Applications:        md.Applications,
			ActiveApplications:  md.ActiveApplications,
			BaseImages:          md.BaseImages,
		},
	}, nil
}

// GetOperations 最近的管理操作，取自审计日志
func (s *dashboardService) GetOperations(ctx context.Context, req *v1.DashboardOperationsRequest) (*v1.DashboardOperationsData, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultOperationsLimit
	}
	entries, _, err := s.auditRepo.ListWithPagination(ctx, repository.AuditLogFilter{Page: 1, PageSize: limit})
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to list audit logs", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}

	// 统计各类操作
	counts := make(map[string]int64)
	items := make([]v1.OperationItem, 0, len(entries))
	for _, e := range entries {
		counts[e.Action]++
		items = append(items, v1.OperationItem{
			Action:     e.Action,
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			EntityName: e.EntityName,
			AdminName:  e.AdminName,
			CreateTime: e.CreateTime,
		})
	}
	return &v1.DashboardOperationsData{Counts: counts, Items: items}, nil
}
