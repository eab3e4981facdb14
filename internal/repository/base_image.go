package repository

import (
	"context"
	"errors"

	"avdportal/internal/model"

	"gorm.io/gorm"
)

type BaseImageRepository interface {
	Create(ctx context.Context, img *model.BaseImage) error
	Update(ctx context.Context, img *model.BaseImage) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.BaseImage, error)
	GetByName(ctx context.Context, name string) (*model.BaseImage, error)
	ListWithPagination(ctx context.Context, filter MasterDataFilter) ([]model.BaseImage, int64, error)
}

func NewBaseImageRepository(r *Repository) BaseImageRepository {
	return &baseImageRepository{Repository: r}
}

type baseImageRepository struct {
	*Repository
}

func (r *baseImageRepository) Create(ctx context.Context, img *model.BaseImage) error {
	return r.DB(ctx).Create(img).Error
}

func (r *baseImageRepository) Update(ctx context.Context, img *model.BaseImage) error {
	return r.DB(ctx).Save(img).Error
}

func (r *baseImageRepository) Delete(ctx context.Context, id int64) error {
	return r.DB(ctx).Where("id = ?", id).Delete(&model.BaseImage{}).Error
}

func (r *baseImageRepository) GetByID(ctx context.Context, id int64) (*model.BaseImage, error) {
	var img model.BaseImage
	if err := r.DB(ctx).Where("id = ?", id).First(&img).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &img, nil
}

func (r *baseImageRepository) GetByName(ctx context.Context, name string) (*model.BaseImage, error) {
	var img model.BaseImage
	if err := r.DB(ctx).Where("name = ?", name).First(&img).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &img, nil
}

func (r *baseImageRepository) ListWithPagination(ctx context.Context, filter MasterDataFilter) ([]model.BaseImage, int64, error) {
	var items []model.BaseImage
	var total int64

	query := filter.apply(r.DB(ctx).Model(&model.BaseImage{}), "name", "offer", "sku")
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("name ASC").
		Offset(offset(filter.Page, filter.PageSize)).
		Limit(filter.PageSize).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
