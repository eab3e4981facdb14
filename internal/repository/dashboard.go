package repository

import (
	"context"

	"avdportal/internal/model"
)

// MasterDataCounts 基础数据总量，Active 为启用状态的数量
type MasterDataCounts struct {
	BusinessUnits       int64
	ActiveBusinessUnits int64
	Contacts            int64
	Applications        int64
	ActiveApplications  int64
	BaseImages          int64
}

type DashboardRepository interface {
	// businessUnitID 为 0 时统计全部模板
	CountTemplatesByStatus(ctx context.Context, businessUnitID int64) (map[string]int64, error)
	CountTemplatesByEnvironment(ctx context.Context, businessUnitID int64) (map[string]int64, error)
	CountAttachmentsByApproval(ctx context.Context, businessUnitID int64) (map[string]int64, error)
	CountMasterData(ctx context.Context) (*MasterDataCounts, error)
}

func NewDashboardRepository(r *Repository) DashboardRepository {
	return &dashboardRepository{Repository: r}
}

type dashboardRepository struct {
	*Repository
}

type groupCount struct {
	Grp   string
	Total int64
}

func (r *dashboardRepository) CountTemplatesByStatus(ctx context.Context, businessUnitID int64) (map[string]int64, error) {
	return r.groupTemplates(ctx, "status", businessUnitID)
}

func (r *dashboardRepository) CountTemplatesByEnvironment(ctx context.Context, businessUnitID int64) (map[string]int64, error) {
	return r.groupTemplates(ctx, "environment", businessUnitID)
}

func (r *dashboardRepository) groupTemplates(ctx context.Context, column string, businessUnitID int64) (map[string]int64, error) {
	var rows []groupCount
	query := r.DB(ctx).Model(&model.Template{}).
		Select(column + " AS grp, COUNT(*) AS total").
		Group(column)
	if businessUnitID > 0 {
		query = query.Where("business_unit_id = ?", businessUnitID)
	}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toCountMap(rows), nil
}

func (r *dashboardRepository) CountAttachmentsByApproval(ctx context.Context, businessUnitID int64) (map[string]int64, error) {
	var rows []groupCount
	query := r.DB(ctx).Model(&model.TemplateApplication{}).
		Select("template_application.approval_status AS grp, COUNT(*) AS total").
		Group("template_application.approval_status")
	if businessUnitID > 0 {
		query = query.
			Joins("JOIN template ON template.id = template_application.template_id").
			Where("template.business_unit_id = ?", businessUnitID)
	}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toCountMap(rows), nil
}

func (r *dashboardRepository) CountMasterData(ctx context.Context) (*MasterDataCounts, error) {
	counts := &MasterDataCounts{}
	steps := []struct {
		model  interface{}
		active bool
		dst    *int64
	}{
		{&model.BusinessUnit{}, false, &counts.BusinessUnits},
		{&model.BusinessUnit{}, true, &counts.ActiveBusinessUnits},
		{&model.Contact{}, false, &counts.Contacts},
		{&model.Application{}, false, &counts.Applications},
		{&model.Application{}, true, &counts.ActiveApplications},
		{&model.BaseImage{}, false, &counts.BaseImages},
	}
	for _, step := range steps {
		query := r.DB(ctx).Model(step.model)
		if step.active {
			query = query.Where("is_active = ?", true)
		}
		if err := query.Count(step.dst).Error; err != nil {
			return nil, err
		}
	}
	return counts, nil
}

func toCountMap(rows []groupCount) map[string]int64 {
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Grp] = row.Total
	}
	return out
}
