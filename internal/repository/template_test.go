package repository

import (
	"context"
	"errors"
	"testing"

	"avdportal/internal/model"
	"avdportal/pkg/log"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	return NewRepository(log.NewNop(), db), mock
}

func TestTemplateRepository_CreateAndGet(t *testing.T) {
	r := setupRepository(t)
	repo := NewTemplateRepository(r)
	ctx := context.Background()

	tpl := seedTemplate(t, r, "finance-pooled")
	require.NotZero(t, tpl.Id)

	got, err := repo.GetByID(ctx, tpl.Id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "finance-pooled", got.Name)
	assert.Equal(t, model.TemplateStatusDraft, got.Status)
	assert.Equal(t, []string{"westeurope", "northeurope"}, []string(got.Regions))
	assert.True(t, got.HasRegion("northeurope"))

	byName, err := repo.GetByName(ctx, "finance-pooled")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, tpl.Id, byName.Id)

	missing, err := repo.GetByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTemplateRepository_TagsRoundTrip(t *testing.T) {
	r := setupRepository(t)
	repo := NewTemplateRepository(r)
	ctx := context.Background()

	tpl := seedTemplate(t, r, "tagged")
	tpl.Tags = model.NewPayload().
		Set("owner", model.StringValue("finance")).
		Set("cost", model.IntValue(42))
	require.NoError(t, repo.Update(ctx, tpl))

	got, err := repo.GetByID(ctx, tpl.Id)
	require.NoError(t, err)
	require.NotNil(t, got.Tags)
	assert.Equal(t, []string{"owner", "cost"}, got.Tags.Keys())
	assert.True(t, tpl.Tags.Equal(got.Tags))
}

func TestTemplateRepository_DuplicateName(t *testing.T) {
	r := setupRepository(t)
	repo := NewTemplateRepository(r)
	tpl := seedTemplate(t, r, "dup")

	err := repo.Create(context.Background(), &model.Template{
		Name:           "dup",
		Status:         model.TemplateStatusDraft,
		Environment:    model.EnvironmentPilot,
		BusinessUnitID: tpl.BusinessUnitID,
		Regions:        []string{"westeurope"},
		PrimaryRegion:  "westeurope",
	})
	require.Error(t, err)
	assert.True(t, IsDuplicateKey(err))
}

func TestTemplateRepository_ListWithPagination(t *testing.T) {
	r := setupRepository(t)
	repo := NewTemplateRepository(r)
	ctx := context.Background()

	seedTemplate(t, r, "alpha")
	beta := seedTemplate(t, r, "beta")
	seedTemplate(t, r, "gamma")

	beta.Status = model.TemplateStatusInReview
	require.NoError(t, repo.Update(ctx, beta))

	list, total, err := repo.ListWithPagination(ctx, TemplateFilter{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, list, 2)

	list, total, err = repo.ListWithPagination(ctx, TemplateFilter{Page: 1, PageSize: 10, Status: string(model.TemplateStatusInReview)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, "beta", list[0].Name)

	_, total, err = repo.ListWithPagination(ctx, TemplateFilter{Page: 1, PageSize: 10, Keyword: "amm"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestTemplateRepository_CountByBusinessUnit(t *testing.T) {
	r := setupRepository(t)
	tpl := seedTemplate(t, r, "counted")

	n, err := NewTemplateRepository(r).CountByBusinessUnit(context.Background(), tpl.BusinessUnitID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestTemplateRepository_GetByID_DBError(t *testing.T) {
	r, mock := setupMockRepository(t)
	repo := NewTemplateRepository(r)

	mock.ExpectQuery("SELECT \\* FROM `template`").
		WillReturnError(errors.New("connection reset"))

	tpl, err := repo.GetByID(context.Background(), 1)
	require.Error(t, err)
	assert.Nil(t, tpl)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTemplateRepository_GetByID_NotFound(t *testing.T) {
	r, mock := setupMockRepository(t)
	repo := NewTemplateRepository(r)

	mock.ExpectQuery("SELECT \\* FROM `template`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	tpl, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, tpl)
	assert.NoError(t, mock.ExpectationsWereMet())
}
