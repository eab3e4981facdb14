package service

import (
	"context"
	"testing"
	"time"

	v1 "avdportal/api/v1"
	"avdportal/internal/model"
	"avdportal/internal/repository"
	"avdportal/internal/repository/mock_repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboardService(t *testing.T) (DashboardService, *mock_repository.MockDashboardRepository, *mocks) {
	m := newMocks(t)
	dashRepo := mock_repository.NewMockDashboardRepository(gomock.NewController(t))
	return NewDashboardService(m.service(), dashRepo, m.buRepo, m.auditRepo), dashRepo, m
}

func TestDashboardService_GetOverview(t *testing.T) {
	svc, dashRepo, _ := newDashboardService(t)
	ctx := context.Background()

	dashRepo.EXPECT().CountTemplatesByStatus(ctx, int64(0)).Return(map[string]int64{"DRAFT": 3, "APPROVED": 1, "DEPLOYED": 2, "IN_REVIEW": 1}, nil)
	dashRepo.EXPECT().CountTemplatesByEnvironment(ctx, int64(0)).Return(map[string]int64{"PILOT": 7}, nil)
	dashRepo.EXPECT().CountAttachmentsByApproval(ctx, int64(0)).Return(map[string]int64{"PENDING": 4, "APPROVED": 2}, nil)
	dashRepo.EXPECT().CountMasterData(ctx).Return(&repository.MasterDataCounts{BusinessUnits: 2, ActiveBusinessUnits: 1}, nil)

	data, err := svc.GetOverview(ctx, &v1.DashboardOverviewRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(7), data.Templates.Total)
	assert.Equal(t, int64(0), data.Templates.ByStatus["DEPRECATED"])
	assert.Len(t, data.Templates.ByStatus, 5)
	assert.Equal(t, int64(1), data.Templates.AwaitingReview)
	assert.Equal(t, int64(3), data.Templates.Active)
	assert.Equal(t, int64(6), data.Applications.Total)
	assert.Equal(t, int64(2), data.MasterData.BusinessUnits)
}

func TestDashboardService_GetOverview_UnknownBusinessUnit(t *testing.T) {
	svc, _, m := newDashboardService(t)

	m.buRepo.EXPECT().GetByID(gomock.Any(), int64(9)).Return(nil, nil)

	_, err := svc.GetOverview(context.Background(), &v1.DashboardOverviewRequest{BusinessUnitID: 9})
	assert.ErrorIs(t, err, v1.ErrBusinessUnitNotFound)
}

func TestDashboardService_GetOperations(t *testing.T) {
	svc, _, m := newDashboardService(t)
	now := time.Now().UTC()

	m.auditRepo.EXPECT().ListWithPagination(gomock.Any(), repository.AuditLogFilter{Page: 1, PageSize: 10}).
		Return([]*model.AuditLog{
			{Action: "TEMPLATE_CREATED", EntityName: "a", CreateTime: now},
			{Action: "TEMPLATE_CREATED", EntityName: "b", CreateTime: now},
			{Action: "LOGIN", CreateTime: now},
		}, int64(3), nil)

	data, err := svc.GetOperations(context.Background(), &v1.DashboardOperationsRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), data.Counts["TEMPLATE_CREATED"])
	assert.Len(t, data.Items, 3)
}
