package repository

import (
	"context"

	"avdportal/internal/model"
)

// TemplateHistoryRepository 模板变更日志，只提供追加和读取
type TemplateHistoryRepository interface {
	Create(ctx context.Context, entry *model.TemplateHistory) error
	ListByTemplateID(ctx context.Context, templateID int64) ([]*model.TemplateHistory, error)
	DeleteByTemplateID(ctx context.Context, templateID int64) error
}

func NewTemplateHistoryRepository(r *Repository) TemplateHistoryRepository {
	return &templateHistoryRepository{Repository: r}
}

type templateHistoryRepository struct {
	*Repository
}

func (r *templateHistoryRepository) Create(ctx context.Context, entry *model.TemplateHistory) error {
	return r.DB(ctx).Create(entry).Error
}

// ListByTemplateID 最新的在前；同一时间戳按 id 倒序
func (r *templateHistoryRepository) ListByTemplateID(ctx context.Context, templateID int64) ([]*model.TemplateHistory, error) {
	var entries []*model.TemplateHistory
	err := r.DB(ctx).Where("template_id = ?", templateID).
		Order("gmt_create DESC").
		Order("id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteByTemplateID 仅在删除模板本身时调用
func (r *templateHistoryRepository) DeleteByTemplateID(ctx context.Context, templateID int64) error {
	return r.DB(ctx).Where("template_id = ?", templateID).Delete(&model.TemplateHistory{}).Error
}
