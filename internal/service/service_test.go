package service

import (
	"context"
	"testing"

	"avdportal/internal/model"
	"avdportal/internal/repository/mock_repository"
	"avdportal/pkg/jwt"
	"avdportal/pkg/log"
	"avdportal/pkg/metrics"

	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"
)

var testActor = model.Actor{
	AdminID:   "u-admin",
	Name:      "admin",
	IPAddress: "10.0.0.1",
	UserAgent: "go-test",
}

// mocks 服务测试共用的 mock 仓储
type mocks struct {
	tm              *mock_repository.MockTransaction
	templateRepo    *mock_repository.MockTemplateRepository
	templateAppRepo *mock_repository.MockTemplateApplicationRepository
	historyRepo     *mock_repository.MockTemplateHistoryRepository
	auditRepo       *mock_repository.MockAuditLogRepository
	buRepo          *mock_repository.MockBusinessUnitRepository
	contactRepo     *mock_repository.MockContactRepository
	appRepo         *mock_repository.MockApplicationRepository
	imageRepo       *mock_repository.MockBaseImageRepository
	userRepo        *mock_repository.MockUserRepository
}

func newMocks(t *testing.T) *mocks {
	ctrl := gomock.NewController(t)
	return &mocks{
		tm:              mock_repository.NewMockTransaction(ctrl),
		templateRepo:    mock_repository.NewMockTemplateRepository(ctrl),
		templateAppRepo: mock_repository.NewMockTemplateApplicationRepository(ctrl),
		historyRepo:     mock_repository.NewMockTemplateHistoryRepository(ctrl),
		auditRepo:       mock_repository.NewMockAuditLogRepository(ctrl),
		buRepo:          mock_repository.NewMockBusinessUnitRepository(ctrl),
		contactRepo:     mock_repository.NewMockContactRepository(ctrl),
		appRepo:         mock_repository.NewMockApplicationRepository(ctrl),
		imageRepo:       mock_repository.NewMockBaseImageRepository(ctrl),
		userRepo:        mock_repository.NewMockUserRepository(ctrl),
	}
}

func (m *mocks) service() *Service {
	conf := viper.New()
	conf.Set("security.jwt.key", "service-test-key")
	return NewService(m.tm, log.NewNop(), nil, jwt.NewJwt(conf))
}

// runTx 让 mock 事务直接执行回调
func (m *mocks) runTx() {
	m.tm.EXPECT().Transaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
}

func (m *mocks) ledgers(met *metrics.Metrics) (TemplateHistoryService, AuditLogService) {
	srv := m.service()
	return NewTemplateHistoryService(srv, m.historyRepo, m.templateRepo, met),
		NewAuditLogService(srv, m.auditRepo, met)
}

func (m *mocks) templateService(met *metrics.Metrics) TemplateService {
	history, audit := m.ledgers(met)
	return NewTemplateService(m.service(), m.templateRepo, m.templateAppRepo, m.historyRepo,
		m.buRepo, m.contactRepo, m.imageRepo, history, audit, met)
}

func (m *mocks) templateApplicationService() TemplateApplicationService {
	history, audit := m.ledgers(nil)
	return NewTemplateApplicationService(m.service(), m.templateRepo, m.templateAppRepo, m.appRepo, history, audit)
}
