package repository

import (
	"context"
	"errors"

	"avdportal/internal/model"

	"gorm.io/gorm"
)

type ContactRepository interface {
	Create(ctx context.Context, c *model.Contact) error
	Update(ctx context.Context, c *model.Contact) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.Contact, error)
	GetByEmail(ctx context.Context, email string) (*model.Contact, error)
	ListWithPagination(ctx context.Context, filter MasterDataFilter) ([]model.Contact, int64, error)
	CountByBusinessUnit(ctx context.Context, businessUnitID int64) (int64, error)
}

func NewContactRepository(r *Repository) ContactRepository {
	return &contactRepository{Repository: r}
}

type contactRepository struct {
	*Repository
}

func (r *contactRepository) Create(ctx context.Context, c *model.Contact) error {
	return r.DB(ctx).Create(c).Error
}

func (r *contactRepository) Update(ctx context.Context, c *model.Contact) error {
	return r.DB(ctx).Save(c).Error
}

func (r *contactRepository) Delete(ctx context.Context, id int64) error {
	return r.DB(ctx).Where("id = ?", id).Delete(&model.Contact{}).Error
}

func (r *contactRepository) GetByID(ctx context.Context, id int64) (*model.Contact, error) {
	var c model.Contact
	if err := r.DB(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *contactRepository) GetByEmail(ctx context.Context, email string) (*model.Contact, error) {
	var c model.Contact
	if err := r.DB(ctx).Where("email = ?", email).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *contactRepository) ListWithPagination(ctx context.Context, filter MasterDataFilter) ([]model.Contact, int64, error) {
	var items []model.Contact
	var total int64

	query := filter.apply(r.DB(ctx).Model(&model.Contact{}), "name", "email")
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

func (r *contactRepository) CountByBusinessUnit(ctx context.Context, businessUnitID int64) (int64, error) {
	var count int64
	err := r.DB(ctx).Model(&model.Contact{}).Where("business_unit_id = ?", businessUnitID).Count(&count).Error
	return count, err
}
