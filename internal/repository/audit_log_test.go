package repository

import (
	"context"
	"testing"
	"time"

	"avdportal/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLogRepository_CreateAndFilter(t *testing.T) {
	r := setupRepository(t)
	repo := NewAuditLogRepository(r)
	ctx := context.Background()

	base := time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)
	entries := []*model.AuditLog{
		{AdminID: "u1", AdminName: "alice", Action: model.AuditActionLogin, CreateTime: base},
		{AdminID: "u1", AdminName: "alice", Action: model.AuditAction(model.EntityTypeTemplate, "CREATED"),
			EntityType: model.EntityTypeTemplate, EntityID: "7", EntityName: "finance",
			NewValue: model.NewPayload().Set("name", model.StringValue("finance")), CreateTime: base.Add(time.Minute)},
		{AdminID: "u2", AdminName: "bob", Action: model.AuditActionLogout, CreateTime: base.Add(2 * time.Minute)},
	}
	for _, e := range entries {
		require.NoError(t, repo.Create(ctx, e))
		assert.Len(t, e.Id, 36)
	}

	list, total, err := repo.ListWithPagination(ctx, AuditLogFilter{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, list, 3)
	assert.Equal(t, model.AuditActionLogout, list[0].Action)

	list, total, err = repo.ListWithPagination(ctx, AuditLogFilter{Page: 1, PageSize: 10, EntityType: model.EntityTypeTemplate, EntityID: "7"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	v, ok := list[0].NewValue.Get("name")
	require.True(t, ok)
	s, _ := v.Str()
	assert.Equal(t, "finance", s)

	_, total, err = repo.ListWithPagination(ctx, AuditLogFilter{Page: 1, PageSize: 10, AdminID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	start := base.Add(30 * time.Second)
	_, total, err = repo.ListWithPagination(ctx, AuditLogFilter{Page: 1, PageSize: 10, StartTime: &start})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}
