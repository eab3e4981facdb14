package repository

import (
	"context"
	"testing"

	"avdportal/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTemplateApplicationRepository_AttachAndList(t *testing.T) {
	r := setupRepository(t)
	repo := NewTemplateApplicationRepository(r)
	ctx := context.Background()

	tpl := seedTemplate(t, r, "apps")
	teams := seedApplication(t, r, "Microsoft.Teams")
	office := seedApplication(t, r, "Microsoft.Office")

	last, err := repo.MaxInstallOrder(ctx, tpl.Id)
	require.NoError(t, err)
	assert.Equal(t, 0, last)

	require.NoError(t, repo.Create(ctx, &model.TemplateApplication{
		TemplateID: tpl.Id, ApplicationID: office.Id, InstallOrder: 2, ApprovalStatus: model.ApprovalStatusPending,
	}))
	require.NoError(t, repo.Create(ctx, &model.TemplateApplication{
		TemplateID: tpl.Id, ApplicationID: teams.Id, InstallOrder: 1, ApprovalStatus: model.ApprovalStatusApproved,
	}))

	last, err = repo.MaxInstallOrder(ctx, tpl.Id)
	require.NoError(t, err)
	assert.Equal(t, 2, last)

	items, err := repo.ListByTemplateID(ctx, tpl.Id)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, teams.Id, items[0].ApplicationID)
	require.NotNil(t, items[0].Application)
	assert.Equal(t, "Microsoft.Teams", items[0].Application.PackageName)

	// 同一应用不能重复挂载
	err = repo.Create(ctx, &model.TemplateApplication{
		TemplateID: tpl.Id, ApplicationID: teams.Id, InstallOrder: 3, ApprovalStatus: model.ApprovalStatusPending,
	})
	require.Error(t, err)
	assert.True(t, IsDuplicateKey(err))

	n, err := repo.CountByApplicationID(ctx, teams.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestTemplateApplicationRepository_InstallOrderConflictRollsBack(t *testing.T) {
	r := setupRepository(t)
	repo := NewTemplateApplicationRepository(r)
	ctx := context.Background()

	tpl := seedTemplate(t, r, "orders")
	a := seedApplication(t, r, "A")
	b := seedApplication(t, r, "B")
	taA := &model.TemplateApplication{TemplateID: tpl.Id, ApplicationID: a.Id, InstallOrder: 1, ApprovalStatus: model.ApprovalStatusPending}
	taB := &model.TemplateApplication{TemplateID: tpl.Id, ApplicationID: b.Id, InstallOrder: 2, ApprovalStatus: model.ApprovalStatusPending}
	require.NoError(t, repo.Create(ctx, taA))
	require.NoError(t, repo.Create(ctx, taB))

	err := r.Transaction(ctx, func(ctx context.Context) error {
		if err := repo.UpdateInstallOrder(ctx, taA.Id, 5); err != nil {
			return err
		}
		return repo.UpdateInstallOrder(ctx, taB.Id, 5)
	})
	require.Error(t, err)

	items, err := repo.ListByTemplateID(ctx, tpl.Id)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].InstallOrder)
	assert.Equal(t, 2, items[1].InstallOrder)
}

func TestTemplateApplicationRepository_GetAndDelete(t *testing.T) {
	r := setupRepository(t)
	repo := NewTemplateApplicationRepository(r)
	ctx := context.Background()

	tpl := seedTemplate(t, r, "detach")
	app := seedApplication(t, r, "Detach.Me")
	ta := &model.TemplateApplication{TemplateID: tpl.Id, ApplicationID: app.Id, InstallOrder: 1, ApprovalStatus: model.ApprovalStatusPending}
	require.NoError(t, repo.Create(ctx, ta))

	got, err := repo.Get(ctx, tpl.Id, app.Id)
	require.NoError(t, err)
	require.NotNil(t, got)

	byOrder, err := repo.GetByInstallOrder(ctx, tpl.Id, 1)
	require.NoError(t, err)
	require.NotNil(t, byOrder)
	assert.Equal(t, ta.Id, byOrder.Id)

	require.NoError(t, repo.Delete(ctx, ta.Id))
	got, err = repo.Get(ctx, tpl.Id, app.Id)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, repo.UpdateInstallOrder(ctx, ta.Id, 3), gorm.ErrRecordNotFound)
}
