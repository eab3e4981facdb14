package repository

import (
	"context"
	"errors"

	"avdportal/internal/model"

	"gorm.io/gorm"
)

type ApplicationRepository interface {
	Create(ctx context.Context, app *model.Application) error
	Update(ctx context.Context, app *model.Application) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.Application, error)
	GetByPackageName(ctx context.Context, packageName string) (*model.Application, error)
	ListWithPagination(ctx context.Context, filter MasterDataFilter) ([]model.Application, int64, error)
}

func NewApplicationRepository(r *Repository) ApplicationRepository {
	return &applicationRepository{Repository: r}
}

type applicationRepository struct {
	*Repository
}

func (r *applicationRepository) Create(ctx context.Context, app *model.Application) error {
	return r.DB(ctx).Create(app).Error
}

func (r *applicationRepository) Update(ctx context.Context, app *model.Application) error {
	return r.DB(ctx).Save(app).Error
}

func (r *applicationRepository) Delete(ctx context.Context, id int64) error {
	return r.DB(ctx).Where("id = ?", id).Delete(&model.Application{}).Error
}

func (r *applicationRepository) GetByID(ctx context.Context, id int64) (*model.Application, error) {
	var app model.Application
	if err := r.DB(ctx).Where("id = ?", id).First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) GetByPackageName(ctx context.Context, packageName string) (*model.Application, error) {
	var app model.Application
	if err := r.DB(ctx).Where("package_name = ?", packageName).First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) ListWithPagination(ctx context.Context, filter MasterDataFilter) ([]model.Application, int64, error) {
	var items []model.Application
	var total int64

	query := filter.apply(r.DB(ctx).Model(&model.Application{}), "name", "package_name", "publisher")
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("name ASC").Order("id ASC").
		Offset(offset(filter.Page, filter.PageSize)).
		Limit(filter.PageSize).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
