package service

import (
	"context"

	v1 "avdportal/api/v1"
	"avdportal/internal/lifecycle"
	"avdportal/internal/model"
	"avdportal/internal/repository"

	"go.uber.org/zap"
)

type ApplicationService interface {
	CreateApplication(ctx context.Context, actor model.Actor, req *v1.CreateApplicationRequest) (*model.Application, error)
	GetApplication(ctx context.Context, id int64) (*model.Application, error)
	ListApplications(ctx context.Context, req *v1.ListMasterDataRequest) (*v1.ListApplicationResponseData, error)
	UpdateApplication(ctx context.Context, actor model.Actor, id int64, req *v1.UpdateApplicationRequest) (*model.Application, error)
	DeleteApplication(ctx context.Context, actor model.Actor, id int64) error
}

func NewApplicationService(
	service *Service,
	applicationRepo repository.ApplicationRepository,
	templateAppRepo repository.TemplateApplicationRepository,
	audit AuditLogService,
) ApplicationService {
	return &applicationService{
		Service:         service,
		applicationRepo: applicationRepo,
		templateAppRepo: templateAppRepo,
		audit:           audit,
	}
}

type applicationService struct {
	*Service
	applicationRepo repository.ApplicationRepository
	templateAppRepo repository.TemplateApplicationRepository
	audit           AuditLogService
}

func (s *applicationService) CreateApplication(ctx context.Context, actor model.Actor, req *v1.CreateApplicationRequest) (*model.Application, error) {
	existing, err := s.applicationRepo.GetByPackageName(ctx, req.PackageName)
	if err != nil {
		s.logger.WithContext(ctx).Error("applicationRepo.GetByPackageName error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if existing != nil {
		return nil, v1.ErrPackageNameUsed
	}

	app := &model.Application{
		Name:           req.Name,
		PackageName:    req.PackageName,
		Version:        req.Version,
		Publisher:      req.Publisher,
		Description:    req.Description,
		InstallCommand: req.InstallCommand,
		IsActive:       boolOrDefault(req.IsActive, true),
	}
	if err := s.applicationRepo.Create(ctx, app); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, v1.ErrPackageNameUsed
		}
		s.logger.WithContext(ctx).Error("applicationRepo.Create error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}

	_ = s.audit.Record(ctx, actor, lifecycle.AuditEvent{
		Action:     model.AuditAction(model.EntityTypeApplication, "CREATED"),
		EntityType: model.EntityTypeApplication,
		EntityID:   idString(app.Id),
		EntityName: app.Name,
		NewValue:   applicationSnapshot(app),
	})
	return app, nil
}

func (s *applicationService) GetApplication(ctx context.Context, id int64) (*model.Application, error) {
	app, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithContext(ctx).Error("applicationRepo.GetByID error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if app == nil {
		return nil, v1.ErrApplicationNotFound
	}
	return app, nil
}

func (s *applicationService) ListApplications(ctx context.Context, req *v1.ListMasterDataRequest) (*v1.ListApplicationResponseData, error) {
	page, pageSize := normalizePage(req.Page, req.PageSize)
	items, total, err := s.applicationRepo.ListWithPagination(ctx, repository.MasterDataFilter{
		Page:     page,
		PageSize: pageSize,
		Keyword:  req.Keyword,
		IsActive: req.IsActive,
	})
	if err != nil {
		s.logger.WithContext(ctx).Error("applicationRepo.ListWithPagination error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	return &v1.ListApplicationResponseData{Total: total, List: items}, nil
}

func (s *applicationService) UpdateApplication(ctx context.Context, actor model.Actor, id int64, req *v1.UpdateApplicationRequest) (*model.Application, error) {
	app, err := s.GetApplication(ctx, id)
	if err != nil {
		return nil, err
	}
	before := applicationSnapshot(app)

	if req.PackageName != nil && *req.PackageName != app.PackageName {
		existing, err := s.applicationRepo.GetByPackageName(ctx, *req.PackageName)
		if err != nil {
			s.logger.WithContext(ctx).Error("applicationRepo.GetByPackageName error", zap.Error(err))
			return nil, v1.ErrInternalServerError
		}
		if existing != nil {
			return nil, v1.ErrPackageNameUsed
		}
		app.PackageName = *req.PackageName
	}
	if req.Name != nil {
		app.Name = *req.Name
	}
	if req.Version != nil {
		app.Version = *req.Version
	}
	if req.Publisher != nil {
		app.Publisher = *req.Publisher
	}
	if req.Description != nil {
		app.Description = *req.Description
	}
	if req.InstallCommand != nil {
		app.InstallCommand = *req.InstallCommand
	}
	if req.IsActive != nil {
		app.IsActive = *req.IsActive
	}

	_, oldValues, newValues := diffPayloads(before, applicationSnapshot(app))
	if newValues.Len() == 0 {
		return app, nil
	}
	if err := s.applicationRepo.Update(ctx, app); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, v1.ErrPackageNameUsed
		}
		s.logger.WithContext(ctx).Error("applicationRepo.Update error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}

	_ = s.audit.Record(ctx, actor, lifecycle.AuditEvent{
		Action:     model.AuditAction(model.EntityTypeApplication, "UPDATED"),
		EntityType: model.EntityTypeApplication,
		EntityID:   idString(app.Id),
		EntityName: app.Name,
		OldValue:   oldValues,
		NewValue:   newValues,
	})
	return app, nil
}

// DeleteApplication 仍挂载在模板上时拒绝删除
func (s *applicationService) DeleteApplication(ctx context.Context, actor model.Actor, id int64) error {
	app, err := s.GetApplication(ctx, id)
	if err != nil {
		return err
	}
	n, err := s.templateAppRepo.CountByApplicationID(ctx, id)
	if err != nil {
		s.logger.WithContext(ctx).Error("templateAppRepo.CountByApplicationID error", zap.Error(err))
		return v1.ErrInternalServerError
	}
	if n > 0 {
		return v1.ErrEntityInUse
	}

	if err := s.applicationRepo.Delete(ctx, id); err != nil {
		s.logger.WithContext(ctx).Error("applicationRepo.Delete error", zap.Error(err))
		return v1.ErrInternalServerError
	}
	_ = s.audit.Record(ctx, actor, lifecycle.AuditEvent{
		Action:     model.AuditAction(model.EntityTypeApplication, "DELETED"),
		EntityType: model.EntityTypeApplication,
		EntityID:   idString(app.Id),
		EntityName: app.Name,
		OldValue:   applicationSnapshot(app),
	})
	return nil
}

func applicationSnapshot(app *model.Application) *model.Payload {
	return model.NewPayload().
		Set("name", model.StringValue(app.Name)).
		Set("package_name", model.StringValue(app.PackageName)).
		Set("version", model.StringValue(app.Version)).
		Set("publisher", model.StringValue(app.Publisher)).
		Set("description", model.StringValue(app.Description)).
		Set("install_command", model.StringValue(app.InstallCommand)).
		Set("is_active", model.BoolValue(app.IsActive))
}
