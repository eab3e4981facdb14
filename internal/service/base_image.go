package service

import (
	"context"

	v1 "avdportal/api/v1"
	"avdportal/internal/lifecycle"
	"avdportal/internal/model"
	"avdportal/internal/repository"

	"go.uber.org/zap"
)

type BaseImageService interface {
	CreateBaseImage(ctx context.Context, actor model.Actor, req *v1.CreateBaseImageRequest) (*model.BaseImage, error)
	GetBaseImage(ctx context.Context, id int64) (*model.BaseImage, error)
	ListBaseImages(ctx context.Context, req *v1.ListMasterDataRequest) (*v1.ListBaseImageResponseData, error)
	UpdateBaseImage(ctx context.Context, actor model.Actor, id int64, req *v1.UpdateBaseImageRequest) (*model.BaseImage, error)
	DeleteBaseImage(ctx context.Context, actor model.Actor, id int64) error
}

func NewBaseImageService(
	service *Service,
	baseImageRepo repository.BaseImageRepository,
	templateRepo repository.TemplateRepository,
	audit AuditLogService,
) BaseImageService {
	return &baseImageService{
		Service:       service,
		baseImageRepo: baseImageRepo,
		templateRepo:  templateRepo,
		audit:         audit,
	}
}

type baseImageService struct {
	*Service
	baseImageRepo repository.BaseImageRepository
	templateRepo  repository.TemplateRepository
	audit         AuditLogService
}

func (s *baseImageService) CreateBaseImage(ctx context.Context, actor model.Actor, req *v1.CreateBaseImageRequest) (*model.BaseImage, error) {
	existing, err := s.baseImageRepo.GetByName(ctx, req.Name)
	if err != nil {
		s.logger.WithContext(ctx).Error("baseImageRepo.GetByName error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if existing != nil {
		return nil, v1.ErrBaseImageNameUsed
	}

	img := &model.BaseImage{
		Name:        req.Name,
		Publisher:   req.Publisher,
		Offer:       req.Offer,
		Sku:         req.Sku,
		Version:     req.Version,
		OsType:      req.OsType,
		Description: req.Description,
		IsActive:    boolOrDefault(req.IsActive, true),
	}
	if err := s.baseImageRepo.Create(ctx, img); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, v1.ErrBaseImageNameUsed
		}
		s.logger.WithContext(ctx).Error("baseImageRepo.Create error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}

	_ = s.audit.Record(ctx, actor, lifecycle.AuditEvent{
		Action:     model.AuditAction(model.EntityTypeBaseImage, "CREATED"),
		EntityType: model.EntityTypeBaseImage,
		EntityID:   idString(img.Id),
		EntityName: img.Name,
		NewValue:   baseImageSnapshot(img),
	})
	return img, nil
}

func (s *baseImageService) GetBaseImage(ctx context.Context, id int64) (*model.BaseImage, error) {
	img, err := s.baseImageRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithContext(ctx).Error("baseImageRepo.GetByID error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if img == nil {
		return nil, v1.ErrBaseImageNotFound
	}
	return img, nil
}

func (s *baseImageService) ListBaseImages(ctx context.Context, req *v1.ListMasterDataRequest) (*v1.ListBaseImageResponseData, error) {
	page, pageSize := normalizePage(req.Page, req.PageSize)
	items, total, err := s.baseImageRepo.ListWithPagination(ctx, repository.MasterDataFilter{
		Page:     page,
		PageSize: pageSize,
		Keyword:  req.Keyword,
		IsActive: req.IsActive,
	})
	if err != nil {
		s.logger.WithContext(ctx).Error("baseImageRepo.ListWithPagination error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	return &v1.ListBaseImageResponseData{Total: total, List: items}, nil
}

func (s *baseImageService) UpdateBaseImage(ctx context.Context, actor model.Actor, id int64, req *v1.UpdateBaseImageRequest) (*model.BaseImage, error) {
	img, err := s.GetBaseImage(ctx, id)
	if err != nil {
		return nil, err
	}
	before := baseImageSnapshot(img)

	if req.Name != nil && *req.Name != img.Name {
		existing, err := s.baseImageRepo.GetByName(ctx, *req.Name)
		if err != nil {
			s.logger.WithContext(ctx).Error("baseImageRepo.GetByName error", zap.Error(err))
			return nil, v1.ErrInternalServerError
		}
		if existing != nil {
			return nil, v1.ErrBaseImageNameUsed
		}
		img.Name = *req.Name
	}
	if req.Publisher != nil {
		img.Publisher = *req.Publisher
	}
	if req.Offer != nil {
		img.Offer = *req.Offer
	}
	if req.Sku != nil {
		img.Sku = *req.Sku
	}
	if req.Version != nil {
		img.Version = *req.Version
	}
	if req.OsType != nil {
		img.OsType = *req.OsType
	}
	if req.Description != nil {
		img.Description = *req.Description
	}
	if req.IsActive != nil {
		img.IsActive = *req.IsActive
	}

	_, oldValues, newValues := diffPayloads(before, baseImageSnapshot(img))
	if newValues.Len() == 0 {
		return img, nil
	}
	if err := s.baseImageRepo.Update(ctx, img); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, v1.ErrBaseImageNameUsed
		}
		s.logger.WithContext(ctx).Error("baseImageRepo.Update error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}

	_ = s.audit.Record(ctx, actor, lifecycle.AuditEvent{
		Action:     model.AuditAction(model.EntityTypeBaseImage, "UPDATED"),
		EntityType: model.EntityTypeBaseImage,
		EntityID:   idString(img.Id),
		EntityName: img.Name,
		OldValue:   oldValues,
		NewValue:   newValues,
	})
	return img, nil
}

func (s *baseImageService) DeleteBaseImage(ctx context.Context, actor model.Actor, id int64) error {
	img, err := s.GetBaseImage(ctx, id)
	if err != nil {
		return err
	}
	n, err := s.templateRepo.CountByBaseImage(ctx, id)
	if err != nil {
		s.logger.WithContext(ctx).Error("templateRepo.CountByBaseImage error", zap.Error(err))
		return v1.ErrInternalServerError
	}
	if n > 0 {
		return v1.ErrEntityInUse
	}

	if err := s.baseImageRepo.Delete(ctx, id); err != nil {
		s.logger.WithContext(ctx).Error("baseImageRepo.Delete error", zap.Error(err))
		return v1.ErrInternalServerError
	}
	_ = s.audit.Record(ctx, actor, lifecycle.AuditEvent{
		Action:     model.AuditAction(model.EntityTypeBaseImage, "DELETED"),
		EntityType: model.EntityTypeBaseImage,
		EntityID:   idString(img.Id),
		EntityName: img.Name,
		OldValue:   baseImageSnapshot(img),
	})
	return nil
}

func baseImageSnapshot(img *model.BaseImage) *model.Payload {
	return model.NewPayload().
		Set("name", model.StringValue(img.Name)).
		Set("publisher", model.StringValue(img.Publisher)).
		Set("offer", model.StringValue(img.Offer)).
		Set("sku", model.StringValue(img.Sku)).
		Set("version", model.StringValue(img.Version)).
		Set("os_type", model.StringValue(img.OsType)).
		Set("description", model.StringValue(img.Description)).
		Set("is_active", model.BoolValue(img.IsActive))
}
