package repository

import (
	"context"
	"errors"

	"avdportal/internal/model"

	"gorm.io/gorm"
)

type TemplateApplicationRepository interface {
	Create(ctx context.Context, ta *model.TemplateApplication) error
	Update(ctx context.Context, ta *model.TemplateApplication) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, templateID, applicationID int64) (*model.TemplateApplication, error)
	GetByInstallOrder(ctx context.Context, templateID int64, installOrder int) (*model.TemplateApplication, error)
	ListByTemplateID(ctx context.Context, templateID int64) ([]*model.TemplateApplication, error)
	MaxInstallOrder(ctx context.Context, templateID int64) (int, error)
	UpdateInstallOrder(ctx context.Context, id int64, installOrder int) error
	CountByApplicationID(ctx context.Context, applicationID int64) (int64, error)
	DeleteByTemplateID(ctx context.Context, templateID int64) error
}

func NewTemplateApplicationRepository(r *Repository) TemplateApplicationRepository {
	return &templateApplicationRepository{Repository: r}
}

type templateApplicationRepository struct {
	*Repository
}

func (r *templateApplicationRepository) Create(ctx context.Context, ta *model.TemplateApplication) error {
	return r.DB(ctx).Omit("Application").Create(ta).Error
}

func (r *templateApplicationRepository) Update(ctx context.Context, ta *model.TemplateApplication) error {
	return r.DB(ctx).Omit("Application").Save(ta).Error
}

func (r *templateApplicationRepository) Delete(ctx context.Context, id int64) error {
	return r.DB(ctx).Where("id = ?", id).Delete(&model.TemplateApplication{}).Error
}

func (r *templateApplicationRepository) Get(ctx context.Context, templateID, applicationID int64) (*model.TemplateApplication, error) {
	var ta model.TemplateApplication
	err := r.DB(ctx).Preload("Application").
		Where("template_id = ? AND application_id = ?", templateID, applicationID).
		First(&ta).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ta, nil
}

func (r *templateApplicationRepository) GetByInstallOrder(ctx context.Context, templateID int64, installOrder int) (*model.TemplateApplication, error) {
	var ta model.TemplateApplication
	err := r.DB(ctx).Where("template_id = ? AND install_order = ?", templateID, installOrder).First(&ta).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ta, nil
}

// ListByTemplateID 按安装顺序返回，附带应用信息
func (r *templateApplicationRepository) ListByTemplateID(ctx context.Context, templateID int64) ([]*model.TemplateApplication, error) {
	var items []*model.TemplateApplication
	err := r.DB(ctx).Preload("Application").
		Where("template_id = ?", templateID).
		Order("install_order ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// MaxInstallOrder 没有挂载应用时返回 0
func (r *templateApplicationRepository) MaxInstallOrder(ctx context.Context, templateID int64) (int, error) {
	var last int
	err := r.DB(ctx).Model(&model.TemplateApplication{}).
		Where("template_id = ?", templateID).
		Select("COALESCE(MAX(install_order), 0)").
		Scan(&last).Error
	if err != nil {
		return 0, err
	}
	return last, nil
}

func (r *templateApplicationRepository) UpdateInstallOrder(ctx context.Context, id int64, installOrder int) error {
	result := r.DB(ctx).Model(&model.TemplateApplication{}).
		Where("id = ?", id).
		Update("install_order", installOrder)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *templateApplicationRepository) CountByApplicationID(ctx context.Context, applicationID int64) (int64, error) {
	var count int64
	err := r.DB(ctx).Model(&model.TemplateApplication{}).
		Where("application_id = ?", applicationID).
		Count(&count).Error
	return count, err
}

func (r *templateApplicationRepository) DeleteByTemplateID(ctx context.Context, templateID int64) error {
	return r.DB(ctx).Where("template_id = ?", templateID).Delete(&model.TemplateApplication{}).Error
}
