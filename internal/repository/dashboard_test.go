package repository

import (
	"context"
	"testing"

	"avdportal/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardRepository_TemplateCounts(t *testing.T) {
	r := setupRepository(t)
	ctx := context.Background()
	repo := NewDashboardRepository(r)
	templateRepo := NewTemplateRepository(r)

	a := seedTemplate(t, r, "alpha")
	b := seedTemplate(t, r, "beta")
	seedTemplate(t, r, "gamma")

	b.Status = model.TemplateStatusInReview
	b.Environment = model.EnvironmentProduction
	require.NoError(t, templateRepo.Update(ctx, b))

	byStatus, err := repo.CountTemplatesByStatus(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"DRAFT": 2, "IN_REVIEW": 1}, byStatus)

	byEnv, err := repo.CountTemplatesByEnvironment(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"PILOT": 2, "PRODUCTION": 1}, byEnv)

	// 按业务单元过滤
	scoped, err := repo.CountTemplatesByStatus(ctx, a.BusinessUnitID)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"DRAFT": 1}, scoped)
}

func TestDashboardRepository_AttachmentsByApproval(t *testing.T) {
	r := setupRepository(t)
	ctx := context.Background()
	repo := NewDashboardRepository(r)
	taRepo := NewTemplateApplicationRepository(r)

	a := seedTemplate(t, r, "alpha")
	b := seedTemplate(t, r, "beta")
	app1 := seedApplication(t, r, "Microsoft.Teams")
	app2 := seedApplication(t, r, "Microsoft.Office")

	require.NoError(t, taRepo.Create(ctx, &model.TemplateApplication{TemplateID: a.Id, ApplicationID: app1.Id, InstallOrder: 1, ApprovalStatus: model.ApprovalStatusApproved}))
	require.NoError(t, taRepo.Create(ctx, &model.TemplateApplication{TemplateID: a.Id, ApplicationID: app2.Id, InstallOrder: 2, ApprovalStatus: model.ApprovalStatusPending}))
	require.NoError(t, taRepo.Create(ctx, &model.TemplateApplication{TemplateID: b.Id, ApplicationID: app1.Id, InstallOrder: 1, ApprovalStatus: model.ApprovalStatusPending}))

	all, err := repo.CountAttachmentsByApproval(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"APPROVED": 1, "PENDING": 2}, all)

	scoped, err := repo.CountAttachmentsByApproval(ctx, b.BusinessUnitID)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"PENDING": 1}, scoped)
}

func TestDashboardRepository_CountMasterData(t *testing.T) {
	r := setupRepository(t)
	ctx := context.Background()
	repo := NewDashboardRepository(r)

	seedTemplate(t, r, "alpha")
	seedApplication(t, r, "Microsoft.Teams")
	require.NoError(t, NewApplicationRepository(r).Create(ctx, &model.Application{
		Name: "Legacy", PackageName: "Legacy.App", IsActive: false,
	}))
	require.NoError(t, NewBaseImageRepository(r).Create(ctx, &model.BaseImage{Name: "win11", IsActive: true}))

	counts, err := repo.CountMasterData(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.BusinessUnits)
	assert.Equal(t, int64(1), counts.ActiveBusinessUnits)
	assert.Equal(t, int64(0), counts.Contacts)
	assert.Equal(t, int64(2), counts.Applications)
	assert.Equal(t, int64(1), counts.ActiveApplications)
	assert.Equal(t, int64(1), counts.BaseImages)
}
