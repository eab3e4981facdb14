package service

import (
	"context"
	"errors"

	v1 "avdportal/api/v1"
	"avdportal/internal/lifecycle"
	"avdportal/internal/model"
	"avdportal/internal/repository"

	"go.uber.org/zap"
)

// TemplateApplicationService 模板挂载的应用及其安装顺序
type TemplateApplicationService interface {
	ListApplications(ctx context.Context, templateID int64) (*v1.ListTemplateApplicationsResponseData, error)
	AttachApplication(ctx context.Context, actor model.Actor, templateID int64, req *v1.AttachApplicationRequest) (*v1.TemplateApplicationItem, error)
	UpdateApplication(ctx context.Context, actor model.Actor, templateID, applicationID int64, req *v1.UpdateTemplateApplicationRequest) (*v1.TemplateApplicationItem, error)
	DetachApplication(ctx context.Context, actor model.Actor, templateID, applicationID int64) error
	ReorderApplications(ctx context.Context, actor model.Actor, templateID int64, req *v1.ReorderApplicationsRequest) (*v1.ListTemplateApplicationsResponseData, error)
}

func NewTemplateApplicationService(
	service *Service,
	templateRepo repository.TemplateRepository,
	templateAppRepo repository.TemplateApplicationRepository,
	applicationRepo repository.ApplicationRepository,
	history TemplateHistoryService,
	audit AuditLogService,
) TemplateApplicationService {
	return &templateApplicationService{
		Service:         service,
		templateRepo:    templateRepo,
		templateAppRepo: templateAppRepo,
		applicationRepo: applicationRepo,
		history:         history,
		audit:           audit,
	}
}

type templateApplicationService struct {
	*Service
	templateRepo    repository.TemplateRepository
	templateAppRepo repository.TemplateApplicationRepository
	applicationRepo repository.ApplicationRepository
	history         TemplateHistoryService
	audit           AuditLogService
}

var errReorderMismatch = errors.New("reorder list does not match attached applications")

func (s *templateApplicationService) ListApplications(ctx context.Context, templateID int64) (*v1.ListTemplateApplicationsResponseData, error) {
	if _, err := s.getTemplate(ctx, templateID); err != nil {
		return nil, err
	}
	return s.list(ctx, templateID)
}

func (s *templateApplicationService) AttachApplication(ctx context.Context, actor model.Actor, templateID int64, req *v1.AttachApplicationRequest) (*v1.TemplateApplicationItem, error) {
	tpl, err := s.getTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}
	app, err := s.applicationRepo.GetByID(ctx, req.ApplicationID)
	if err != nil {
		s.logger.WithContext(ctx).Error("applicationRepo.GetByID error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if app == nil {
		return nil, v1.ErrApplicationNotFound
	}

	existing, err := s.templateAppRepo.Get(ctx, templateID, req.ApplicationID)
	if err != nil {
		s.logger.WithContext(ctx).Error("templateAppRepo.Get error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if existing != nil {
		return nil, v1.ErrApplicationAlreadyAttached
	}

	var order int
	if req.InstallOrder != nil {
		order = *req.InstallOrder
		taken, err := s.templateAppRepo.GetByInstallOrder(ctx, templateID, order)
		if err != nil {
			s.logger.WithContext(ctx).Error("templateAppRepo.GetByInstallOrder error", zap.Error(err))
			return nil, v1.ErrInternalServerError
		}
		if taken != nil {
			return nil, v1.ErrInstallOrderInUse
		}
	} else {
		last, err := s.templateAppRepo.MaxInstallOrder(ctx, templateID)
		if err != nil {
			s.logger.WithContext(ctx).Error("templateAppRepo.MaxInstallOrder error", zap.Error(err))
			return nil, v1.ErrInternalServerError
		}
		order = last + 1
	}

	approval := model.ApprovalStatusPending
	if req.ApprovalStatus != "" {
		approval = model.ApprovalStatus(req.ApprovalStatus)
	}
	ta := &model.TemplateApplication{
		TemplateID:      templateID,
		ApplicationID:   app.Id,
		InstallOrder:    order,
		ApprovalStatus:  approval,
		OverrideVersion: req.OverrideVersion,
		OverrideCommand: req.OverrideCommand,
		Notes:           req.Notes,
		CreatedById:     actor.AdminID,
	}
	if err := s.templateAppRepo.Create(ctx, ta); err != nil {
		// 并发挂载时由唯一索引兜底
		if repository.IsDuplicateKey(err) {
			return nil, v1.ErrApplicationAlreadyAttached
		}
		s.logger.WithContext(ctx).Error("templateAppRepo.Create error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	ta.Application = app

	changes := model.NewPayload().
		Set("application_id", model.IntValue(app.Id)).
		Set("application_name", model.StringValue(app.Name)).
		Set("install_order", model.IntValue(int64(order)))
	_ = s.history.Append(ctx, actor, lifecycle.HistoryEvent{
		TemplateID: templateID,
		Action:     model.HistoryActionAppAdded,
		Changes:    changes,
	})
	_ = s.audit.Record(ctx, actor, lifecycle.AuditEvent{
		Action:     model.AuditAction(model.EntityTypeTemplateApplication, "CREATED"),
		EntityType: model.EntityTypeTemplateApplication,
		EntityID:   idString(ta.Id),
		EntityName: tpl.Name + "/" + app.Name,
		NewValue:   changes,
	})

	item := toTemplateApplicationItem(ta)
	return &item, nil
}

func (s *templateApplicationService) UpdateApplication(ctx context.Context, actor model.Actor, templateID, applicationID int64, req *v1.UpdateTemplateApplicationRequest) (*v1.TemplateApplicationItem, error) {
	tpl, err := s.getTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}
	ta, err := s.getAttached(ctx, templateID, applicationID)
	if err != nil {
		return nil, err
	}

	before := attachmentSnapshot(ta)
	if req.ApprovalStatus != nil {
		ta.ApprovalStatus = model.ApprovalStatus(*req.ApprovalStatus)
	}
	if req.OverrideVersion != nil {
		ta.OverrideVersion = *req.OverrideVersion
	}
	if req.OverrideCommand != nil {
		ta.OverrideCommand = *req.OverrideCommand
	}
	if req.Notes != nil {
		ta.Notes = *req.Notes
	}

	_, oldValues, newValues := diffPayloads(before, attachmentSnapshot(ta))
	if newValues.Len() > 0 {
		if err := s.templateAppRepo.Update(ctx, ta); err != nil {
			s.logger.WithContext(ctx).Error("templateAppRepo.Update error", zap.Error(err))
			return nil, v1.ErrInternalServerError
		}
		_ = s.audit.Record(ctx, actor, lifecycle.AuditEvent{
			Action:     model.AuditAction(model.EntityTypeTemplateApplication, "UPDATED"),
			EntityType: model.EntityTypeTemplateApplication,
			EntityID:   idString(ta.Id),
			EntityName: tpl.Name + "/" + applicationName(ta),
			OldValue:   oldValues,
			NewValue:   newValues,
		})
	}

	item := toTemplateApplicationItem(ta)
	return &item, nil
}

func (s *templateApplicationService) DetachApplication(ctx context.Context, actor model.Actor, templateID, applicationID int64) error {
	tpl, err := s.getTemplate(ctx, templateID)
	if err != nil {
		return err
	}
	ta, err := s.getAttached(ctx, templateID, applicationID)
	if err != nil {
		return err
	}
	if err := s.templateAppRepo.Delete(ctx, ta.Id); err != nil {
		s.logger.WithContext(ctx).Error("templateAppRepo.Delete error", zap.Error(err))
		return v1.ErrInternalServerError
	}

	changes := model.NewPayload().
		Set("application_id", model.IntValue(applicationID)).
		Set("application_name", model.StringValue(applicationName(ta))).
		Set("install_order", model.IntValue(int64(ta.InstallOrder)))
	_ = s.history.Append(ctx, actor, lifecycle.HistoryEvent{
		TemplateID: templateID,
		Action:     model.HistoryActionAppRemoved,
		Changes:    changes,
	})
	_ = s.audit.Record(ctx, actor, lifecycle.AuditEvent{
		Action:     model.AuditAction(model.EntityTypeTemplateApplication, "DELETED"),
		EntityType: model.EntityTypeTemplateApplication,
		EntityID:   idString(ta.Id),
		EntityName: tpl.Name + "/" + applicationName(ta),
		OldValue:   changes,
	})
	return nil
}

// ReorderApplications 在一个事务中重排安装顺序，任何一步失败都不会留下部分结果
func (s *templateApplicationService) ReorderApplications(ctx context.Context, actor model.Actor, templateID int64, req *v1.ReorderApplicationsRequest) (*v1.ListTemplateApplicationsResponseData, error) {
	tpl, err := s.getTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}

	var before *model.Payload
	err = s.tm.Transaction(ctx, func(ctx context.Context) error {
		attached, err := s.templateAppRepo.ListByTemplateID(ctx, templateID)
		if err != nil {
			return err
		}
		byApp := make(map[int64]*model.TemplateApplication, len(attached))
		for _, ta := range attached {
			byApp[ta.ApplicationID] = ta
		}
		if len(req.ApplicationIDs) != len(byApp) {
			return errReorderMismatch
		}
		for _, appID := range req.ApplicationIDs {
			if _, ok := byApp[appID]; !ok {
				return errReorderMismatch
			}
		}
		before = installOrderSnapshot(attached)

		// 先移到负数区间，避免与 (template_id, install_order) 唯一索引冲突
		for i, appID := range req.ApplicationIDs {
			if err := s.templateAppRepo.UpdateInstallOrder(ctx, byApp[appID].Id, -(i + 1)); err != nil {
				return err
			}
		}
		for i, appID := range req.ApplicationIDs {
			if err := s.templateAppRepo.UpdateInstallOrder(ctx, byApp[appID].Id, i+1); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errReorderMismatch) {
			return nil, v1.ErrInvalidReorder
		}
		s.logger.WithContext(ctx).Error("reorder template applications error", zap.Int64("template_id", templateID), zap.Error(err))
		return nil, v1.ErrInternalServerError
	}

	data, err := s.list(ctx, templateID)
	if err != nil {
		return nil, err
	}
	after := model.NewPayload()
	for _, item := range data.List {
		after.Set(idString(item.ApplicationID), model.IntValue(int64(item.InstallOrder)))
	}
	_ = s.audit.Record(ctx, actor, lifecycle.AuditEvent{
		Action:     model.AuditAction(model.EntityTypeTemplateApplication, "REORDERED"),
		EntityType: model.EntityTypeTemplate,
		EntityID:   idString(tpl.Id),
		EntityName: tpl.Name,
		OldValue:   before,
		NewValue:   after,
	})
	return data, nil
}

func (s *templateApplicationService) list(ctx context.Context, templateID int64) (*v1.ListTemplateApplicationsResponseData, error) {
	items, err := s.templateAppRepo.ListByTemplateID(ctx, templateID)
	if err != nil {
		s.logger.WithContext(ctx).Error("templateAppRepo.ListByTemplateID error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	list := toTemplateApplicationItems(items)
	return &v1.ListTemplateApplicationsResponseData{
		TemplateID: templateID,
		Total:      int64(len(list)),
		List:       list,
	}, nil
}

func (s *templateApplicationService) getTemplate(ctx context.Context, id int64) (*model.Template, error) {
	tpl, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithContext(ctx).Error("templateRepo.GetByID error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if tpl == nil {
		return nil, v1.ErrTemplateNotFound
	}
	return tpl, nil
}

func (s *templateApplicationService) getAttached(ctx context.Context, templateID, applicationID int64) (*model.TemplateApplication, error) {
	ta, err := s.templateAppRepo.Get(ctx, templateID, applicationID)
	if err != nil {
		s.logger.WithContext(ctx).Error("templateAppRepo.Get error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if ta == nil {
		return nil, v1.ErrApplicationNotAttached
	}
	return ta, nil
}

func attachmentSnapshot(ta *model.TemplateApplication) *model.Payload {
	return model.NewPayload().
		Set("approval_status", model.StringValue(string(ta.ApprovalStatus))).
		Set("override_version", model.StringValue(ta.OverrideVersion)).
		Set("override_command", model.StringValue(ta.OverrideCommand)).
		Set("notes", model.StringValue(ta.Notes))
}

// installOrderSnapshot application_id → install_order
func installOrderSnapshot(items []*model.TemplateApplication) *model.Payload {
	p := model.NewPayload()
	for _, ta := range items {
		p.Set(idString(ta.ApplicationID), model.IntValue(int64(ta.InstallOrder)))
	}
	return p
}

func applicationName(ta *model.TemplateApplication) string {
	if ta.Application != nil {
		return ta.Application.Name
	}
	return idString(ta.ApplicationID)
}

func toTemplateApplicationItem(ta *model.TemplateApplication) v1.TemplateApplicationItem {
	item := v1.TemplateApplicationItem{
		Id:              ta.Id,
		TemplateID:      ta.TemplateID,
		ApplicationID:   ta.ApplicationID,
		InstallOrder:    ta.InstallOrder,
		ApprovalStatus:  string(ta.ApprovalStatus),
		OverrideVersion: ta.OverrideVersion,
		OverrideCommand: ta.OverrideCommand,
		Notes:           ta.Notes,
		CreateTime:      ta.CreateTime,
	}
	if ta.Application != nil {
		item.ApplicationName = ta.Application.Name
		item.PackageName = ta.Application.PackageName
		item.Version = ta.Application.Version
		if ta.OverrideVersion != "" {
			item.Version = ta.OverrideVersion
		}
	}
	return item
}

func toTemplateApplicationItems(items []*model.TemplateApplication) []v1.TemplateApplicationItem {
	out := make([]v1.TemplateApplicationItem, 0, len(items))
	for _, ta := range items {
		out = append(out, toTemplateApplicationItem(ta))
	}
	return out
}
