package service

import (
	"context"

	v1 "avdportal/api/v1"
	"avdportal/internal/lifecycle"
	"avdportal/internal/model"
	"avdportal/internal/repository"

	"go.uber.org/zap"
)

type BusinessUnitService interface {
	CreateBusinessUnit(ctx context.Context, actor model.Actor, req *v1.CreateBusinessUnitRequest) (*model.BusinessUnit, error)
	GetBusinessUnit(ctx context.Context, id int64) (*model.BusinessUnit, error)
	ListBusinessUnits(ctx context.Context, req *v1.ListMasterDataRequest) (*v1.ListBusinessUnitResponseData, error)
	UpdateBusinessUnit(ctx context.Context, actor model.Actor, id int64, req *v1.UpdateBusinessUnitRequest) (*model.BusinessUnit, error)
	DeleteBusinessUnit(ctx context.Context, actor model.Actor, id int64) error
}

func NewBusinessUnitService(
	service *Service,
	businessUnitRepo repository.BusinessUnitRepository,
	templateRepo repository.TemplateRepository,
	contactRepo repository.ContactRepository,
	audit AuditLogService,
) BusinessUnitService {
	return &businessUnitService{
		Service:          service,
		businessUnitRepo: businessUnitRepo,
		templateRepo:     templateRepo,
		contactRepo:      contactRepo,
		audit:            audit,
	}
}

type businessUnitService struct {
	*Service
	businessUnitRepo repository.BusinessUnitRepository
	templateRepo     repository.TemplateRepository
	contactRepo      repository.ContactRepository
	audit            AuditLogService
}

func (s *businessUnitService) CreateBusinessUnit(ctx context.Context, actor model.Actor, req *v1.CreateBusinessUnitRequest) (*model.BusinessUnit, error) {
	existing, err := s.businessUnitRepo.GetByCode(ctx, req.Code)
	if err != nil {
		s.logger.WithContext(ctx).Error("businessUnitRepo.GetByCode error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if existing != nil {
		return nil, v1.ErrBusinessUnitCodeUsed
	}

	bu := &model.BusinessUnit{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		CostCenter:  req.CostCenter,
		IsActive:    boolOrDefault(req.IsActive, true),
	}
	if err := s.businessUnitRepo.Create(ctx, bu); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, v1.ErrBusinessUnitCodeUsed
		}
		s.logger.WithContext(ctx).Error("businessUnitRepo.Create error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}

	_ = s.audit.Record(ctx, actor, lifecycle.AuditEvent{
		Action:     model.AuditAction(model.EntityTypeBusinessUnit, "CREATED"),
		EntityType: model.EntityTypeBusinessUnit,
		EntityID:   idString(bu.Id),
		EntityName: bu.Name,
		NewValue:   businessUnitSnapshot(bu),
	})
	return bu, nil
}

func (s *businessUnitService) GetBusinessUnit(ctx context.Context, id int64) (*model.BusinessUnit, error) {
	bu, err := s.businessUnitRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithContext(ctx).Error("businessUnitRepo.GetByID error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if bu == nil {
		return nil, v1.ErrBusinessUnitNotFound
	}
	return bu, nil
}

func (s *businessUnitService) ListBusinessUnits(ctx context.Context, req *v1.ListMasterDataRequest) (*v1.ListBusinessUnitResponseData, error) {
	page, pageSize := normalizePage(req.Page, req.PageSize)
	items, total, err := s.businessUnitRepo.ListWithPagination(ctx, repository.MasterDataFilter{
		Page:     page,
		PageSize: pageSize,
		Keyword:  req.Keyword,
		IsActive: req.IsActive,
	})
	if err != nil {
		s.logger.WithContext(ctx).Error("businessUnitRepo.ListWithPagination error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	return &v1.ListBusinessUnitResponseData{Total: total, List: items}, nil
}

func (s *businessUnitService) UpdateBusinessUnit(ctx context.Context, actor model.Actor, id int64, req *v1.UpdateBusinessUnitRequest) (*model.BusinessUnit, error) {
	bu, err := s.GetBusinessUnit(ctx, id)
	if err != nil {
		return nil, err
	}
	before := businessUnitSnapshot(bu)

	if req.Code != nil && *req.Code != bu.Code {
		existing, err := s.businessUnitRepo.GetByCode(ctx, *req.Code)
		if err != nil {
			s.logger.WithContext(ctx).Error("businessUnitRepo.GetByCode error", zap.Error(err))
			return nil, v1.ErrInternalServerError
		}
		if existing != nil {
			return nil, v1.ErrBusinessUnitCodeUsed
		}
		bu.Code = *req.Code
	}
	if req.Name != nil {
		bu.Name = *req.Name
	}
	if req.Description != nil {
		bu.Description = *req.Description
	}
	if req.CostCenter != nil {
		bu.CostCenter = *req.CostCenter
	}
	if req.IsActive != nil {
		bu.IsActive = *req.IsActive
	}

	_, oldValues, newValues := diffPayloads(before, businessUnitSnapshot(bu))
	if newValues.Len() == 0 {
		return bu, nil
	}
	if err := s.businessUnitRepo.Update(ctx, bu); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, v1.ErrBusinessUnitCodeUsed
		}
		s.logger.WithContext(ctx).Error("businessUnitRepo.Update error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}

	_ = s.audit.Record(ctx, actor, lifecycle.AuditEvent{
		Action:     model.AuditAction(model.EntityTypeBusinessUnit, "UPDATED"),
		EntityType: model.EntityTypeBusinessUnit,
		EntityID:   idString(bu.Id),
		EntityName: bu.Name,
		OldValue:   oldValues,
		NewValue:   newValues,
	})
	return bu, nil
}

// DeleteBusinessUnit 仍被模板或联系人引用时拒绝删除
func (s *businessUnitService) DeleteBusinessUnit(ctx context.Context, actor model.Actor, id int64) error {
	bu, err := s.GetBusinessUnit(ctx, id)
	if err != nil {
		return err
	}

	templates, err := s.templateRepo.CountByBusinessUnit(ctx, id)
	if err != nil {
		s.logger.WithContext(ctx).Error("templateRepo.CountByBusinessUnit error", zap.Error(err))
		return v1.ErrInternalServerError
	}
	contacts, err := s.contactRepo.CountByBusinessUnit(ctx, id)
	if err != nil {
		s.logger.WithContext(ctx).Error("contactRepo.CountByBusinessUnit error", zap.Error(err))
		return v1.ErrInternalServerError
	}
	if templates > 0 || contacts > 0 {
		return v1.ErrEntityInUse
	}

	if err := s.businessUnitRepo.Delete(ctx, id); err != nil {
		s.logger.WithContext(ctx).Error("businessUnitRepo.Delete error", zap.Error(err))
		return v1.ErrInternalServerError
	}
	_ = s.audit.Record(ctx, actor, lifecycle.AuditEvent{
		Action:     model.AuditAction(model.EntityTypeBusinessUnit, "DELETED"),
		EntityType: model.EntityTypeBusinessUnit,
		EntityID:   idString(bu.Id),
		EntityName: bu.Name,
		OldValue:   businessUnitSnapshot(bu),
	})
	return nil
}

func businessUnitSnapshot(bu *model.BusinessUnit) *model.Payload {
	return model.NewPayload().
		Set("code", model.StringValue(bu.Code)).
		Set("name", model.StringValue(bu.Name)).
		Set("description", model.StringValue(bu.Description)).
		Set("cost_center", model.StringValue(bu.CostCenter)).
		Set("is_active", model.BoolValue(bu.IsActive))
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
