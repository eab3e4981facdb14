package service

import (
	"context"
	"errors"
	"testing"
	"time"

	v1 "avdportal/api/v1"
	"avdportal/internal/lifecycle"
	"avdportal/internal/model"
	"avdportal/internal/repository"
	"avdportal/pkg/metrics"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLogService_Record(t *testing.T) {
	m := newMocks(t)
	met := metrics.NewMetrics()
	_, audit := m.ledgers(met)

	m.auditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, e *model.AuditLog) error {
			assert.Equal(t, "u-admin", e.AdminID)
			assert.Equal(t, "TEMPLATE_DELETED", e.Action)
			assert.Equal(t, "10.0.0.1", e.IPAddress)
			assert.Equal(t, "go-test", e.UserAgent)
			return nil
		})

	res := audit.Record(context.Background(), testActor, lifecycle.AuditEvent{
		Action:     model.AuditAction(model.EntityTypeTemplate, "DELETED"),
		EntityType: model.EntityTypeTemplate,
		EntityID:   "1",
	})
	assert.True(t, res.OK())
	assert.Equal(t, 1.0, testutil.ToFloat64(met.LedgerWritesTotal.WithLabelValues(metrics.LedgerAuditLog, "success")))
}

func TestAuditLogService_RecordFailureIsSwallowed(t *testing.T) {
	m := newMocks(t)
	_, audit := m.ledgers(nil)

	m.auditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	res := audit.Record(context.Background(), testActor, lifecycle.AuditEvent{Action: model.AuditActionLogin})
	assert.False(t, res.OK())
}

func TestAuditLogService_RecordNeedsAdmin(t *testing.T) {
	m := newMocks(t)
	_, audit := m.ledgers(nil)

	res := audit.Record(context.Background(), model.Actor{}, lifecycle.AuditEvent{Action: model.AuditActionLogin})
	assert.False(t, res.OK())
}

func TestAuditLogService_List(t *testing.T) {
	m := newMocks(t)
	_, audit := m.ledgers(nil)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	m.auditRepo.EXPECT().ListWithPagination(gomock.Any(), repository.AuditLogFilter{
		Page:       1,
		PageSize:   100,
		EntityType: model.EntityTypeTemplate,
		StartTime:  &start,
	}).Return([]*model.AuditLog{{Id: "a", Action: "TEMPLATE_CREATED"}}, int64(1), nil)

	data, err := audit.List(context.Background(), &v1.ListAuditLogRequest{
		PageSize:   500,
		EntityType: model.EntityTypeTemplate,
		StartTime:  &start,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), data.Total)
	assert.Equal(t, 100, data.PageSize)
	require.Len(t, data.List, 1)
}
