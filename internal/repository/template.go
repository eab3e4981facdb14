package repository

import (
	"context"
	"errors"

	"avdportal/internal/model"

	"gorm.io/gorm"
)

// TemplateFilter 模板列表查询条件
type TemplateFilter struct {
	Page           int
	PageSize       int
	Status         string
	Environment    string
	BusinessUnitID int64
	Keyword        string
}

type TemplateRepository interface {
	Create(ctx context.Context, tpl *model.Template) error
	Update(ctx context.Context, tpl *model.Template) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.Template, error)
	GetByName(ctx context.Context, name string) (*model.Template, error)
	ListWithPagination(ctx context.Context, filter TemplateFilter) ([]*model.Template, int64, error)
	CountByBusinessUnit(ctx context.Context, businessUnitID int64) (int64, error)
	CountByContact(ctx context.Context, contactID int64) (int64, error)
	CountByBaseImage(ctx context.Context, baseImageID int64) (int64, error)
}

func NewTemplateRepository(r *Repository) TemplateRepository {
	return &templateRepository{Repository: r}
}

type templateRepository struct {
	*Repository
}

func (r *templateRepository) Create(ctx context.Context, tpl *model.Template) error {
	return r.DB(ctx).Create(tpl).Error
}

func (r *templateRepository) Update(ctx context.Context, tpl *model.Template) error {
	return r.DB(ctx).Save(tpl).Error
}

func (r *templateRepository) Delete(ctx context.Context, id int64) error {
	return r.DB(ctx).Where("id = ?", id).Delete(&model.Template{}).Error
}

func (r *templateRepository) GetByID(ctx context.Context, id int64) (*model.Template, error) {
	var tpl model.Template
	if err := r.DB(ctx).Where("id = ?", id).First(&tpl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tpl, nil
}

func (r *templateRepository) GetByName(ctx context.Context, name string) (*model.Template, error) {
	var tpl model.Template
	if err := r.DB(ctx).Where("name = ?", name).First(&tpl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tpl, nil
}

func (r *templateRepository) ListWithPagination(ctx context.Context, filter TemplateFilter) ([]*model.Template, int64, error) {
	var tpls []*model.Template
	var total int64

	query := r.DB(ctx).Model(&model.Template{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Environment != "" {
		query = query.Where("environment = ?", filter.Environment)
	}
	if filter.BusinessUnitID > 0 {
		query = query.Where("business_unit_id = ?", filter.BusinessUnitID)
	}
	if filter.Keyword != "" {
		kw := "%" + filter.Keyword + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", kw, kw)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset(filter.Page, filter.PageSize)).Limit(filter.PageSize).
		Order("gmt_modified DESC").Order("id DESC").
		Find(&tpls).Error; err != nil {
		return nil, 0, err
	}
	return tpls, total, nil
}

func (r *templateRepository) CountByBusinessUnit(ctx context.Context, businessUnitID int64) (int64, error) {
	return r.countWhere(ctx, "business_unit_id = ?", businessUnitID)
}

func (r *templateRepository) CountByContact(ctx context.Context, contactID int64) (int64, error) {
	return r.countWhere(ctx, "contact_id = ?", contactID)
}

func (r *templateRepository) CountByBaseImage(ctx context.Context, baseImageID int64) (int64, error) {
	return r.countWhere(ctx, "base_image_id = ?", baseImageID)
}

func (r *templateRepository) countWhere(ctx context.Context, cond string, args ...interface{}) (int64, error) {
	var count int64
	if err := r.DB(ctx).Model(&model.Template{}).Where(cond, args...).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
