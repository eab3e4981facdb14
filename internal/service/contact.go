package service

import (
	"context"

	v1 "avdportal/api/v1"
	"avdportal/internal/lifecycle"
	"avdportal/internal/model"
	"avdportal/internal/repository"

	"go.uber.org/zap"
)

type ContactService interface {
	CreateContact(ctx context.Context, actor model.Actor, req *v1.CreateContactRequest) (*model.Contact, error)
	GetContact(ctx context.Context, id int64) (*model.Contact, error)
	ListContacts(ctx context.Context, req *v1.ListMasterDataRequest) (*v1.ListContactResponseData, error)
	UpdateContact(ctx context.Context, actor model.Actor, id int64, req *v1.UpdateContactRequest) (*model.Contact, error)
	DeleteContact(ctx context.Context, actor model.Actor, id int64) error
}

func NewContactService(
	service *Service,
	contactRepo repository.ContactRepository,
	businessUnitRepo repository.BusinessUnitRepository,
	templateRepo repository.TemplateRepository,
	audit AuditLogService,
) ContactService {
	return &contactService{
		Service:          service,
		contactRepo:      contactRepo,
		businessUnitRepo: businessUnitRepo,
		templateRepo:     templateRepo,
		audit:            audit,
	}
}

type contactService struct {
	*Service
	contactRepo      repository.ContactRepository
	businessUnitRepo repository.BusinessUnitRepository
	templateRepo     repository.TemplateRepository
	audit            AuditLogService
}

func (s *contactService) CreateContact(ctx context.Context, actor model.Actor, req *v1.CreateContactRequest) (*model.Contact, error) {
	if err := s.checkBusinessUnit(ctx, req.BusinessUnitID); err != nil {
		return nil, err
	}
	existing, err := s.contactRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		s.logger.WithContext(ctx).Error("contactRepo.GetByEmail error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if existing != nil {
		return nil, v1.ErrContactEmailUsed
	}

	c := &model.Contact{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Title:          req.Title,
		BusinessUnitID: req.BusinessUnitID,
		IsActive:       boolOrDefault(req.IsActive, true),
	}
	if err := s.contactRepo.Create(ctx, c); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, v1.ErrContactEmailUsed
		}
		s.logger.WithContext(ctx).Error("contactRepo.Create error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}

	_ = s.audit.Record(ctx, actor, lifecycle.AuditEvent{
		Action:     model.AuditAction(model.EntityTypeContact, "CREATED"),
		EntityType: model.EntityTypeContact,
		EntityID:   idString(c.Id),
		EntityName: c.Name,
		NewValue:   contactSnapshot(c),
	})
	return c, nil
}

func (s *contactService) GetContact(ctx context.Context, id int64) (*model.Contact, error) {
	c, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithContext(ctx).Error("contactRepo.GetByID error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if c == nil {
		return nil, v1.ErrContactNotFound
	}
	return c, nil
}

func (s *contactService) ListContacts(ctx context.Context, req *v1.ListMasterDataRequest) (*v1.ListContactResponseData, error) {
	page, pageSize := normalizePage(req.Page, req.PageSize)
	items, total, err := s.contactRepo.ListWithPagination(ctx, repository.MasterDataFilter{
		Page:     page,
		PageSize: pageSize,
		Keyword:  req.Keyword,
		IsActive: req.IsActive,
	})
	if err != nil {
		s.logger.WithContext(ctx).Error("contactRepo.ListWithPagination error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	return &v1.ListContactResponseData{Total: total, List: items}, nil
}

func (s *contactService) UpdateContact(ctx context.Context, actor model.Actor, id int64, req *v1.UpdateContactRequest) (*model.Contact, error) {
	c, err := s.GetContact(ctx, id)
	if err != nil {
		return nil, err
	}
	before := contactSnapshot(c)

	if req.Email != nil && *req.Email != c.Email {
		existing, err := s.contactRepo.GetByEmail(ctx, *req.Email)
		if err != nil {
			s.logger.WithContext(ctx).Error("contactRepo.GetByEmail error", zap.Error(err))
			return nil, v1.ErrInternalServerError
		}
		if existing != nil {
			return nil, v1.ErrContactEmailUsed
		}
		c.Email = *req.Email
	}
	if req.BusinessUnitID != nil {
		if err := s.checkBusinessUnit(ctx, req.BusinessUnitID); err != nil {
			return nil, err
		}
		c.BusinessUnitID = req.BusinessUnitID
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Title != nil {
		c.Title = *req.Title
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	_, oldValues, newValues := diffPayloads(before, contactSnapshot(c))
	if newValues.Len() == 0 {
		return c, nil
	}
	if err := s.contactRepo.Update(ctx, c); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, v1.ErrContactEmailUsed
		}
		s.logger.WithContext(ctx).Error("contactRepo.Update error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}

	_ = s.audit.Record(ctx, actor, lifecycle.AuditEvent{
		Action:     model.AuditAction(model.EntityTypeContact, "UPDATED"),
		EntityType: model.EntityTypeContact,
		EntityID:   idString(c.Id),
		EntityName: c.Name,
		OldValue:   oldValues,
		NewValue:   newValues,
	})
	return c, nil
}

func (s *contactService) DeleteContact(ctx context.Context, actor model.Actor, id int64) error {
	c, err := s.GetContact(ctx, id)
	if err != nil {
		return err
	}
	n, err := s.templateRepo.CountByContact(ctx, id)
	if err != nil {
		s.logger.WithContext(ctx).Error("templateRepo.CountByContact error", zap.Error(err))
		return v1.ErrInternalServerError
	}
	if n > 0 {
		return v1.ErrEntityInUse
	}

	if err := s.contactRepo.Delete(ctx, id); err != nil {
		s.logger.WithContext(ctx).Error("contactRepo.Delete error", zap.Error(err))
		return v1.ErrInternalServerError
	}
	_ = s.audit.Record(ctx, actor, lifecycle.AuditEvent{
		Action:     model.AuditAction(model.EntityTypeContact, "DELETED"),
		EntityType: model.EntityTypeContact,
		EntityID:   idString(c.Id),
		EntityName: c.Name,
		OldValue:   contactSnapshot(c),
	})
	return nil
}

func (s *contactService) checkBusinessUnit(ctx context.Context, id *int64) error {
	if id == nil {
		return nil
	}
	bu, err := s.businessUnitRepo.GetByID(ctx, *id)
	if err != nil {
		s.logger.WithContext(ctx).Error("businessUnitRepo.GetByID error", zap.Error(err))
		return v1.ErrInternalServerError
	}
	if bu == nil {
		return v1.ErrBusinessUnitNotFound
	}
	return nil
}

func contactSnapshot(c *model.Contact) *model.Payload {
	return model.NewPayload().
		Set("name", model.StringValue(c.Name)).
		Set("email", model.StringValue(c.Email)).
		Set("phone", model.StringValue(c.Phone)).
		Set("title", model.StringValue(c.Title)).
		Set("business_unit_id", optionalID(c.BusinessUnitID)).
		Set("is_active", model.BoolValue(c.IsActive))
}
