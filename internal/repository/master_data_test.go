package repository

import (
	"context"
	"errors"
	"testing"

	"avdportal/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessUnitRepository_ListFilter(t *testing.T) {
	r := setupRepository(t)
	repo := NewBusinessUnitRepository(r)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.BusinessUnit{Code: "FIN", Name: "Finance", IsActive: true}))
	require.NoError(t, repo.Create(ctx, &model.BusinessUnit{Code: "HR", Name: "Human Resources", IsActive: false}))
	require.NoError(t, repo.Create(ctx, &model.BusinessUnit{Code: "ENG", Name: "Engineering", IsActive: true}))

	active := true
	list, total, err := repo.ListWithPagination(ctx, MasterDataFilter{Page: 1, PageSize: 10, IsActive: &active})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, list, 2)
	assert.Equal(t, "ENG", list[0].Code)

	inactive := false
	_, total, err = repo.ListWithPagination(ctx, MasterDataFilter{Page: 1, PageSize: 10, IsActive: &inactive})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	list, _, err = repo.ListWithPagination(ctx, MasterDataFilter{Page: 1, PageSize: 10, Keyword: "Human"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "HR", list[0].Code)
}

func TestContactRepository_Email(t *testing.T) {
	r := setupRepository(t)
	repo := NewContactRepository(r)
	ctx := context.Background()

	c := &model.Contact{Name: "Jane", Email: "jane@example.com", IsActive: true}
	require.NoError(t, repo.Create(ctx, c))

	got, err := repo.GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, c.Id, got.Id)

	err = repo.Create(ctx, &model.Contact{Name: "Jane 2", Email: "jane@example.com", IsActive: true})
	assert.True(t, IsDuplicateKey(err))
}

func TestApplicationRepository_PackageName(t *testing.T) {
	r := setupRepository(t)
	repo := NewApplicationRepository(r)
	ctx := context.Background()

	app := seedApplication(t, r, "Mozilla.Firefox")
	got, err := repo.GetByPackageName(ctx, "Mozilla.Firefox")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, app.Id, got.Id)

	got.IsActive = false
	require.NoError(t, repo.Update(ctx, got))
	again, err := repo.GetByID(ctx, app.Id)
	require.NoError(t, err)
	assert.False(t, again.IsActive)

	require.NoError(t, repo.Delete(ctx, app.Id))
	gone, err := repo.GetByID(ctx, app.Id)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestBaseImageRepository_CreateError(t *testing.T) {
	r, mock := setupMockRepository(t)
	repo := NewBaseImageRepository(r)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `base_image`").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &model.BaseImage{Name: "win11", IsActive: true})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBaseImageRepository_GetByName(t *testing.T) {
	r, mock := setupMockRepository(t)
	repo := NewBaseImageRepository(r)

	rows := sqlmock.NewRows([]string{"id", "name", "os_type", "is_active"}).
		AddRow(3, "win11", "Windows", true)
	mock.ExpectQuery("SELECT \\* FROM `base_image`").WillReturnRows(rows)

	img, err := repo.GetByName(context.Background(), "win11")
	require.NoError(t, err)
	require.NotNil(t, img)
	assert.Equal(t, int64(3), img.Id)
	assert.Equal(t, "Windows", img.OsType)
	assert.NoError(t, mock.ExpectationsWereMet())
}
