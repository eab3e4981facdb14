package service

import (
	"context"
	"errors"
	"testing"
	"time"

	v1 "avdportal/api/v1"
	"avdportal/internal/model"
	"avdportal/pkg/metrics"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTemplate(status model.TemplateStatus) *model.Template {
	return &model.Template{
		Id:             11,
		Name:           "finance-pooled",
		Status:         status,
		Environment:    model.EnvironmentPilot,
		BusinessUnitID: 1,
		Regions:        []string{"westeurope", "northeurope"},
		PrimaryRegion:  "westeurope",
	}
}

// expectDetail buildDetail 的只读查询
func (m *mocks) expectDetail() {
	m.buRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&model.BusinessUnit{Id: 1, Name: "Finance"}, nil).AnyTimes()
	m.templateAppRepo.EXPECT().ListByTemplateID(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
}

func TestTemplateService_CreateTemplate(t *testing.T) {
	m := newMocks(t)
	svc := m.templateService(nil)
	ctx := context.Background()
	m.expectDetail()

	m.templateRepo.EXPECT().GetByName(ctx, "finance-pooled").Return(nil, nil)
	m.templateRepo.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, tpl *model.Template) error {
			assert.Equal(t, model.TemplateStatusDraft, tpl.Status)
			assert.NotNil(t, tpl.RequestDate)
			assert.Nil(t, tpl.ApprovedDate)
			assert.Equal(t, "u-admin", tpl.CreatedById)
			tpl.Id = 11
			return nil
		})
	m.historyRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, e *model.TemplateHistory) error {
			assert.Equal(t, model.HistoryActionCreated, e.Action)
			assert.Equal(t, int64(11), e.TemplateID)
			return nil
		})
	m.auditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, e *model.AuditLog) error {
			assert.Equal(t, "TEMPLATE_CREATED", e.Action)
			assert.Equal(t, "11", e.EntityID)
			return nil
		})

	detail, err := svc.CreateTemplate(ctx, testActor, &v1.CreateTemplateRequest{
		Name:           "finance-pooled",
		Environment:    "PILOT",
		BusinessUnitID: 1,
		Regions:        []string{"westeurope", "northeurope"},
		PrimaryRegion:  "westeurope",
	})
	require.NoError(t, err)
	assert.Equal(t, "DRAFT", detail.Status)
	assert.Equal(t, "Finance", detail.BusinessUnitName)
	assert.Equal(t, []string{"IN_REVIEW"}, detail.AllowedTransitions)
}

func TestTemplateService_CreateTemplate_PrimaryRegionNotInList(t *testing.T) {
	m := newMocks(t)
	svc := m.templateService(nil)

	_, err := svc.CreateTemplate(context.Background(), testActor, &v1.CreateTemplateRequest{
		Name:           "bad",
		Environment:    "PILOT",
		BusinessUnitID: 1,
		Regions:        []string{"westeurope"},
		PrimaryRegion:  "eastus",
	})
	assert.ErrorIs(t, err, v1.ErrPrimaryRegionNotInList)
}

func TestTemplateService_CreateTemplate_UnknownBusinessUnit(t *testing.T) {
	m := newMocks(t)
	svc := m.templateService(nil)

	m.buRepo.EXPECT().GetByID(gomock.Any(), int64(42)).Return(nil, nil)

	_, err := svc.CreateTemplate(context.Background(), testActor, &v1.CreateTemplateRequest{
		Name:           "orphan",
		Environment:    "PILOT",
		BusinessUnitID: 42,
		Regions:        []string{"westeurope"},
		PrimaryRegion:  "westeurope",
	})
	assert.ErrorIs(t, err, v1.ErrBusinessUnitNotFound)
}

func TestTemplateService_CreateTemplate_NameInUse(t *testing.T) {
	m := newMocks(t)
	svc := m.templateService(nil)
	m.expectDetail()

	m.templateRepo.EXPECT().GetByName(gomock.Any(), "finance-pooled").Return(sampleTemplate(model.TemplateStatusDraft), nil)

	_, err := svc.CreateTemplate(context.Background(), testActor, &v1.CreateTemplateRequest{
		Name:           "finance-pooled",
		Environment:    "PILOT",
		BusinessUnitID: 1,
		Regions:        []string{"westeurope"},
		PrimaryRegion:  "westeurope",
	})
	assert.ErrorIs(t, err, v1.ErrTemplateNameInUse)
}

func TestTemplateService_UpdateStatus_Allowed(t *testing.T) {
	m := newMocks(t)
	met := metrics.NewMetrics()
	svc := m.templateService(met)
	m.expectDetail()

	tpl := sampleTemplate(model.TemplateStatusInReview)
	m.templateRepo.EXPECT().GetByID(gomock.Any(), int64(11)).Return(tpl, nil)
	m.templateRepo.EXPECT().Update(gomock.Any(), tpl).Return(nil)
	m.historyRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, e *model.TemplateHistory) error {
			assert.Equal(t, model.HistoryActionStatusChanged, e.Action)
			assert.Equal(t, model.TemplateStatusInReview, *e.OldStatus)
			assert.Equal(t, model.TemplateStatusApproved, *e.NewStatus)
			assert.Equal(t, "ship it", e.Comment)
			_, stamped := e.Changes.Get("approved_date")
			assert.True(t, stamped)
			return nil
		})
	m.auditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, e *model.AuditLog) error {
			assert.Equal(t, "TEMPLATE_STATUS_CHANGED", e.Action)
			return nil
		})

	detail, err := svc.UpdateStatus(context.Background(), testActor, 11, &v1.UpdateTemplateStatusRequest{
		Status:  "APPROVED",
		Comment: "ship it",
	})
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", detail.Status)
	require.NotNil(t, detail.ApprovedDate)
	assert.Equal(t, []string{"DEPLOYED", "IN_REVIEW"}, detail.AllowedTransitions)
	assert.Equal(t, 1.0, testutil.ToFloat64(met.StatusTransitionsTotal.WithLabelValues("IN_REVIEW", "APPROVED", "allowed")))
}

func TestTemplateService_UpdateStatus_RejectedWritesNothing(t *testing.T) {
	m := newMocks(t)
	svc := m.templateService(nil)

	// 没有 Update/Create 期望：任何写入都会让测试失败
	m.templateRepo.EXPECT().GetByID(gomock.Any(), int64(11)).Return(sampleTemplate(model.TemplateStatusApproved), nil)

	_, err := svc.UpdateStatus(context.Background(), testActor, 11, &v1.UpdateTemplateStatusRequest{Status: "DRAFT"})
	require.Error(t, err)
	var te *v1.TransitionError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "APPROVED", te.From)
	assert.Equal(t, "DRAFT", te.To)
	assert.ErrorIs(t, err, v1.ErrInvalidStatusTransition)
}

func TestTemplateService_UpdateStatus_SameStatusRejected(t *testing.T) {
	for _, status := range model.TemplateStatuses {
		m := newMocks(t)
		svc := m.templateService(nil)
		m.templateRepo.EXPECT().GetByID(gomock.Any(), int64(11)).Return(sampleTemplate(status), nil)

		_, err := svc.UpdateStatus(context.Background(), testActor, 11, &v1.UpdateTemplateStatusRequest{Status: string(status)})
		assert.ErrorIs(t, err, v1.ErrInvalidStatusTransition, status)
	}
}

func TestTemplateService_UpdateStatus_LedgerFailureStillSucceeds(t *testing.T) {
	m := newMocks(t)
	svc := m.templateService(nil)
	m.expectDetail()

	tpl := sampleTemplate(model.TemplateStatusDraft)
	m.templateRepo.EXPECT().GetByID(gomock.Any(), int64(11)).Return(tpl, nil)
	m.templateRepo.EXPECT().Update(gomock.Any(), tpl).Return(nil)
	m.historyRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("history table locked"))
	m.auditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("audit table locked"))

	detail, err := svc.UpdateStatus(context.Background(), testActor, 11, &v1.UpdateTemplateStatusRequest{Status: "IN_REVIEW"})
	require.NoError(t, err)
	assert.Equal(t, "IN_REVIEW", detail.Status)
}

func TestTemplateService_UpdateStatus_ApprovedDateIsSticky(t *testing.T) {
	m := newMocks(t)
	svc := m.templateService(nil).(*templateService)
	m.expectDetail()

	first := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	clock := first
	svc.now = func() time.Time { return clock }

	tpl := sampleTemplate(model.TemplateStatusInReview)
	m.templateRepo.EXPECT().GetByID(gomock.Any(), int64(11)).Return(tpl, nil).Times(3)
	m.templateRepo.EXPECT().Update(gomock.Any(), tpl).Return(nil).Times(3)
	m.historyRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(3)
	m.auditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	ctx := context.Background()
	_, err := svc.UpdateStatus(ctx, testActor, 11, &v1.UpdateTemplateStatusRequest{Status: "APPROVED"})
	require.NoError(t, err)

	clock = first.Add(48 * time.Hour)
	_, err = svc.UpdateStatus(ctx, testActor, 11, &v1.UpdateTemplateStatusRequest{Status: "IN_REVIEW"})
	require.NoError(t, err)
	require.NotNil(t, tpl.ApprovedDate)

	detail, err := svc.UpdateStatus(ctx, testActor, 11, &v1.UpdateTemplateStatusRequest{Status: "APPROVED"})
	require.NoError(t, err)
	require.NotNil(t, detail.ApprovedDate)
	assert.True(t, detail.ApprovedDate.Equal(first))
}

func TestTemplateService_UpdateStatus_NotFound(t *testing.T) {
	m := newMocks(t)
	svc := m.templateService(nil)
	m.templateRepo.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

	_, err := svc.UpdateStatus(context.Background(), testActor, 99, &v1.UpdateTemplateStatusRequest{Status: "IN_REVIEW"})
	assert.ErrorIs(t, err, v1.ErrTemplateNotFound)
}

func TestTemplateService_UpdateTemplate(t *testing.T) {
	m := newMocks(t)
	svc := m.templateService(nil)
	m.expectDetail()

	tpl := sampleTemplate(model.TemplateStatusDraft)
	m.templateRepo.EXPECT().GetByID(gomock.Any(), int64(11)).Return(tpl, nil)
	m.templateRepo.EXPECT().Update(gomock.Any(), tpl).Return(nil)
	m.historyRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, e *model.TemplateHistory) error {
			assert.Equal(t, model.HistoryActionUpdated, e.Action)
			assert.Equal(t, []string{"description", "primary_region"}, e.Changes.Keys())
			return nil
		})
	m.auditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	desc, primary := "pooled desktops", "northeurope"
	detail, err := svc.UpdateTemplate(context.Background(), testActor, 11, &v1.UpdateTemplateRequest{
		Description:   &desc,
		PrimaryRegion: &primary,
	})
	require.NoError(t, err)
	assert.Equal(t, "northeurope", detail.PrimaryRegion)
	assert.Equal(t, "u-admin", detail.UpdatedById)
}

func TestTemplateService_UpdateTemplate_ClearsOptionalReferences(t *testing.T) {
	m := newMocks(t)
	svc := m.templateService(nil)
	m.expectDetail()

	contactID, imageID := int64(5), int64(7)
	tpl := sampleTemplate(model.TemplateStatusDraft)
	tpl.ContactID = &contactID
	tpl.BaseImageID = &imageID

	m.templateRepo.EXPECT().GetByID(gomock.Any(), int64(11)).Return(tpl, nil)
	m.templateRepo.EXPECT().Update(gomock.Any(), tpl).Return(nil)
	m.historyRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, e *model.TemplateHistory) error {
			assert.Equal(t, []string{"contact_id", "base_image_id"}, e.Changes.Keys())
			return nil
		})
	m.auditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	// 解除关联时不查询联系人和镜像
	zero := int64(0)
	detail, err := svc.UpdateTemplate(context.Background(), testActor, 11, &v1.UpdateTemplateRequest{
		ContactID:   &zero,
		BaseImageID: &zero,
	})
	require.NoError(t, err)
	assert.Nil(t, tpl.ContactID)
	assert.Nil(t, tpl.BaseImageID)
	assert.Nil(t, detail.ContactID)
	assert.Nil(t, detail.BaseImageID)
}

func TestTemplateService_UpdateTemplate_SetsOptionalReference(t *testing.T) {
	m := newMocks(t)
	svc := m.templateService(nil)
	m.expectDetail()

	tpl := sampleTemplate(model.TemplateStatusDraft)
	m.templateRepo.EXPECT().GetByID(gomock.Any(), int64(11)).Return(tpl, nil)
	m.contactRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&model.Contact{Id: 5}, nil)
	m.templateRepo.EXPECT().Update(gomock.Any(), tpl).Return(nil)
	m.historyRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.auditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	contactID := int64(5)
	_, err := svc.UpdateTemplate(context.Background(), testActor, 11, &v1.UpdateTemplateRequest{ContactID: &contactID})
	require.NoError(t, err)
	require.NotNil(t, tpl.ContactID)
	assert.Equal(t, int64(5), *tpl.ContactID)
}

func TestTemplateService_UpdateTemplate_RejectsStatus(t *testing.T) {
	m := newMocks(t)
	svc := m.templateService(nil)
	status := "APPROVED"

	_, err := svc.UpdateTemplate(context.Background(), testActor, 11, &v1.UpdateTemplateRequest{Status: &status})
	assert.ErrorIs(t, err, v1.ErrStatusChangeNotAllowed)
}

func TestTemplateService_UpdateTemplate_PrimaryRegionNotInList(t *testing.T) {
	m := newMocks(t)
	svc := m.templateService(nil)

	m.templateRepo.EXPECT().GetByID(gomock.Any(), int64(11)).Return(sampleTemplate(model.TemplateStatusDraft), nil)

	// 只改区域列表，原主区域不在新列表中
	_, err := svc.UpdateTemplate(context.Background(), testActor, 11, &v1.UpdateTemplateRequest{
		Regions: []string{"eastus"},
	})
	assert.ErrorIs(t, err, v1.ErrPrimaryRegionNotInList)
}

func TestTemplateService_DeleteTemplate(t *testing.T) {
	m := newMocks(t)
	svc := m.templateService(nil)

	m.templateRepo.EXPECT().GetByID(gomock.Any(), int64(11)).Return(sampleTemplate(model.TemplateStatusDraft), nil)
	m.runTx()
	m.templateAppRepo.EXPECT().DeleteByTemplateID(gomock.Any(), int64(11)).Return(nil)
	m.historyRepo.EXPECT().DeleteByTemplateID(gomock.Any(), int64(11)).Return(nil)
	m.templateRepo.EXPECT().Delete(gomock.Any(), int64(11)).Return(nil)
	m.auditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, e *model.AuditLog) error {
			assert.Equal(t, "TEMPLATE_DELETED", e.Action)
			assert.Equal(t, "finance-pooled", e.EntityName)
			return nil
		})

	require.NoError(t, svc.DeleteTemplate(context.Background(), testActor, 11))
}

func TestTemplateService_ListTransitions(t *testing.T) {
	m := newMocks(t)
	svc := m.templateService(nil)

	m.templateRepo.EXPECT().GetByID(gomock.Any(), int64(11)).Return(sampleTemplate(model.TemplateStatusDeprecated), nil)

	data, err := svc.ListTransitions(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, "DEPRECATED", data.Status)
	assert.Empty(t, data.AllowedTransitions)
}
