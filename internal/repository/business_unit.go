package repository

import (
	"context"
	"errors"

	"avdportal/internal/model"

	"gorm.io/gorm"
)

// MasterDataFilter 主数据列表通用查询条件
type MasterDataFilter struct {
	Page     int
	PageSize int
	Keyword  string
	IsActive *bool
}

func (f MasterDataFilter) apply(query *gorm.DB, keywordColumns ...string) *gorm.DB {
	if f.IsActive != nil {
		query = query.Where("is_active = ?", *f.IsActive)
	}
	if f.Keyword != "" && len(keywordColumns) > 0 {
		kw := "%" + f.Keyword + "%"
		cond := ""
		args := make([]interface{}, 0, len(keywordColumns))
		for i, col := range keywordColumns {
			if i > 0 {
				cond += " OR "
			}
			cond += col + " LIKE ?"
			args = append(args, kw)
		}
		query = query.Where(cond, args...)
	}
	return query
}

type BusinessUnitRepository interface {
	Create(ctx context.Context, bu *model.BusinessUnit) error
	Update(ctx context.Context, bu *model.BusinessUnit) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.BusinessUnit, error)
	GetByCode(ctx context.Context, code string) (*model.BusinessUnit, error)
	ListWithPagination(ctx context.Context, filter MasterDataFilter) ([]model.BusinessUnit, int64, error)
}

func NewBusinessUnitRepository(r *Repository) BusinessUnitRepository {
	return &businessUnitRepository{Repository: r}
}

type businessUnitRepository struct {
	*Repository
}

func (r *businessUnitRepository) Create(ctx context.Context, bu *model.BusinessUnit) error {
	return r.DB(ctx).Create(bu).Error
}

func (r *businessUnitRepository) Update(ctx context.Context, bu *model.BusinessUnit) error {
	return r.DB(ctx).Save(bu).Error
}

func (r *businessUnitRepository) Delete(ctx context.Context, id int64) error {
	return r.DB(ctx).Where("id = ?", id).Delete(&model.BusinessUnit{}).Error
}

func (r *businessUnitRepository) GetByID(ctx context.Context, id int64) (*model.BusinessUnit, error) {
	var bu model.BusinessUnit
	if err := r.DB(ctx).Where("id = ?", id).First(&bu).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bu, nil
}

func (r *businessUnitRepository) GetByCode(ctx context.Context, code string) (*model.BusinessUnit, error) {
	var bu model.BusinessUnit
	if err := r.DB(ctx).Where("code = ?", code).First(&bu).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bu, nil
}

func (r *businessUnitRepository) ListWithPagination(ctx context.Context, filter MasterDataFilter) ([]model.BusinessUnit, int64, error) {
	var items []model.BusinessUnit
	var total int64

	query := filter.apply(r.DB(ctx).Model(&model.BusinessUnit{}), "code", "name")
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("code ASC").
		Offset(offset(filter.Page, filter.PageSize)).
		Limit(filter.PageSize).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
