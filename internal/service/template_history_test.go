package service

import (
	"context"
	"errors"
	"testing"

	v1 "avdportal/api/v1"
	"avdportal/internal/lifecycle"
	"avdportal/internal/model"
	"avdportal/pkg/metrics"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateHistoryService_AppendFailureIsSwallowed(t *testing.T) {
	m := newMocks(t)
	met := metrics.NewMetrics()
	history, _ := m.ledgers(met)

	m.historyRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	var res lifecycle.WriteResult
	assert.NotPanics(t, func() {
		res = history.Append(context.Background(), testActor, lifecycle.HistoryEvent{
			TemplateID: 1,
			Action:     model.HistoryActionCreated,
		})
	})
	assert.False(t, res.OK())
	assert.EqualError(t, res.Err(), "disk full")
	assert.Equal(t, 1.0, testutil.ToFloat64(met.LedgerWritesTotal.WithLabelValues(metrics.LedgerTemplateHistory, "failure")))
}

func TestTemplateHistoryService_AppendStampsActor(t *testing.T) {
	m := newMocks(t)
	history, _ := m.ledgers(nil)

	draft, review := model.TemplateStatusDraft, model.TemplateStatusInReview
	m.historyRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, e *model.TemplateHistory) error {
			assert.Equal(t, int64(9), e.TemplateID)
			assert.Equal(t, "u-admin", e.UserID)
			assert.Equal(t, "admin", e.UserName)
			assert.False(t, e.CreateTime.IsZero())
			require.NotNil(t, e.OldStatus)
			assert.Equal(t, draft, *e.OldStatus)
			assert.Equal(t, review, *e.NewStatus)
			return nil
		})

	res := history.Append(context.Background(), testActor,
		lifecycle.StatusChanged(9, lifecycle.Decide(draft, review), nil, ""))
	assert.True(t, res.OK())
}

func TestTemplateHistoryService_StatusOnlyOnStatusChanged(t *testing.T) {
	m := newMocks(t)
	history, _ := m.ledgers(nil)

	draft := model.TemplateStatusDraft
	m.historyRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, e *model.TemplateHistory) error {
			assert.Nil(t, e.OldStatus)
			assert.Nil(t, e.NewStatus)
			return nil
		})

	res := history.Append(context.Background(), testActor, lifecycle.HistoryEvent{
		TemplateID: 3,
		Action:     model.HistoryActionAppAdded,
		OldStatus:  &draft,
		Changes:    model.NewPayload().Set("application_id", model.IntValue(5)),
	})
	assert.True(t, res.OK())
}

func TestTemplateHistoryService_RejectsUnknownAction(t *testing.T) {
	m := newMocks(t)
	history, _ := m.ledgers(nil)

	res := history.Append(context.Background(), testActor, lifecycle.HistoryEvent{
		TemplateID: 3,
		Action:     model.HistoryAction("RENAMED"),
	})
	assert.False(t, res.OK())
}

func TestTemplateHistoryService_ListForTemplate(t *testing.T) {
	m := newMocks(t)
	history, _ := m.ledgers(nil)
	ctx := context.Background()

	m.templateRepo.EXPECT().GetByID(ctx, int64(4)).Return(&model.Template{Id: 4}, nil)
	m.historyRepo.EXPECT().ListByTemplateID(ctx, int64(4)).Return([]*model.TemplateHistory{
		{Id: 2, TemplateID: 4, Action: model.HistoryActionUpdated},
		{Id: 1, TemplateID: 4, Action: model.HistoryActionCreated},
	}, nil)

	data, err := history.ListForTemplate(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(2), data.Total)
	assert.Equal(t, model.HistoryActionUpdated, data.List[0].Action)

	m.templateRepo.EXPECT().GetByID(ctx, int64(5)).Return(nil, nil)
	_, err = history.ListForTemplate(ctx, 5)
	assert.ErrorIs(t, err, v1.ErrTemplateNotFound)
}
