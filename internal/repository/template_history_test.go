package repository

import (
	"context"
	"testing"
	"time"

	"avdportal/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateHistoryRepository_ListNewestFirst(t *testing.T) {
	r := setupRepository(t)
	repo := NewTemplateHistoryRepository(r)
	ctx := context.Background()

	tpl := seedTemplate(t, r, "history")
	other := seedTemplate(t, r, "other")

	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	draft, review := model.TemplateStatusDraft, model.TemplateStatusInReview
	entries := []*model.TemplateHistory{
		{TemplateID: tpl.Id, Action: model.HistoryActionCreated, CreateTime: base},
		{TemplateID: tpl.Id, Action: model.HistoryActionStatusChanged, OldStatus: &draft, NewStatus: &review, CreateTime: base.Add(time.Minute)},
		// 同一时间戳，后插入的排在前面
		{TemplateID: tpl.Id, Action: model.HistoryActionUpdated, CreateTime: base.Add(time.Minute)},
		{TemplateID: other.Id, Action: model.HistoryActionCreated, CreateTime: base.Add(time.Hour)},
	}
	for _, e := range entries {
		require.NoError(t, repo.Create(ctx, e))
	}

	got, err := repo.ListByTemplateID(ctx, tpl.Id)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, model.HistoryActionUpdated, got[0].Action)
	assert.Equal(t, model.HistoryActionStatusChanged, got[1].Action)
	assert.Equal(t, model.HistoryActionCreated, got[2].Action)
	require.NotNil(t, got[1].OldStatus)
	assert.Equal(t, draft, *got[1].OldStatus)
	assert.Equal(t, review, *got[1].NewStatus)
}

func TestTemplateHistoryRepository_DeleteByTemplateID(t *testing.T) {
	r := setupRepository(t)
	repo := NewTemplateHistoryRepository(r)
	ctx := context.Background()
	tpl := seedTemplate(t, r, "to-delete")

	require.NoError(t, repo.Create(ctx, &model.TemplateHistory{
		TemplateID: tpl.Id, Action: model.HistoryActionCreated, CreateTime: time.Now().UTC(),
	}))
	require.NoError(t, repo.DeleteByTemplateID(ctx, tpl.Id))

	got, err := repo.ListByTemplateID(ctx, tpl.Id)
	require.NoError(t, err)
	assert.Empty(t, got)
}
