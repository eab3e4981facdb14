package repository

import (
	"context"
	"testing"

	"avdportal/internal/model"
	"avdportal/pkg/log"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupRepository 内存 SQLite，已迁移全部表
func setupRepository(t *testing.T) *Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.BusinessUnit{},
		&model.Contact{},
		&model.Application{},
		&model.BaseImage{},
		&model.Template{},
		&model.TemplateApplication{},
		&model.TemplateHistory{},
		&model.AuditLog{},
	))
	return NewRepository(log.NewNop(), db)
}

func seedTemplate(t *testing.T, r *Repository, name string) *model.Template {
	t.Helper()
	ctx := context.Background()

	bu := &model.BusinessUnit{Code: "BU-" + name, Name: "Unit " + name, IsActive: true}
	require.NoError(t, NewBusinessUnitRepository(r).Create(ctx, bu))

	tpl := &model.Template{
		Name:           name,
		Status:         model.TemplateStatusDraft,
		Environment:    model.EnvironmentPilot,
		BusinessUnitID: bu.Id,
		Regions:        []string{"westeurope", "northeurope"},
		PrimaryRegion:  "westeurope",
	}
	require.NoError(t, NewTemplateRepository(r).Create(ctx, tpl))
	return tpl
}

func seedApplication(t *testing.T, r *Repository, pkg string) *model.Application {
	t.Helper()
	app := &model.Application{Name: pkg, PackageName: pkg, Version: "1.0", IsActive: true}
	require.NoError(t, NewApplicationRepository(r).Create(context.Background(), app))
	return app
}

func TestRepository_TransactionRollback(t *testing.T) {
	r := setupRepository(t)
	ctx := context.Background()
	buRepo := NewBusinessUnitRepository(r)

	err := r.Transaction(ctx, func(ctx context.Context) error {
		if err := buRepo.Create(ctx, &model.BusinessUnit{Code: "FIN", Name: "Finance", IsActive: true}); err != nil {
			return err
		}
		// 违反唯一约束，整体回滚
		return buRepo.Create(ctx, &model.BusinessUnit{Code: "FIN", Name: "Finance again", IsActive: true})
	})
	require.Error(t, err)
	require.True(t, IsDuplicateKey(err))

	got, err := buRepo.GetByCode(ctx, "FIN")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestIsDuplicateKey(t *testing.T) {
	require.False(t, IsDuplicateKey(nil))
	require.True(t, IsDuplicateKey(gorm.ErrDuplicatedKey))
	require.False(t, IsDuplicateKey(gorm.ErrRecordNotFound))
}

func TestOffset(t *testing.T) {
	require.Equal(t, 0, offset(0, 10))
	require.Equal(t, 0, offset(1, 10))
	require.Equal(t, 20, offset(3, 10))
}
