//go:build wireinject
// +build wireinject

package wire

import (
	"avdportal/internal/handler"
	"avdportal/internal/repository"
	"avdportal/internal/router"
	"avdportal/internal/server"
	"avdportal/internal/service"
	"avdportal/pkg/app"
	"avdportal/pkg/jwt"
	"avdportal/pkg/log"
	"avdportal/pkg/metrics"
	"avdportal/pkg/server/http"
	"avdportal/pkg/sid"

	"github.com/google/wire"
	"github.com/spf13/viper"
)

var repositorySet = wire.NewSet(
	repository.NewDB,
	repository.NewRepository,
	repository.NewTransaction,
	repository.NewUserRepository,
	repository.NewBusinessUnitRepository,
	repository.NewContactRepository,
	repository.NewApplicationRepository,
	repository.NewBaseImageRepository,
	repository.NewTemplateRepository,
	repository.NewTemplateApplicationRepository,
	repository.NewTemplateHistoryRepository,
	repository.NewAuditLogRepository,
	repository.NewDashboardRepository,
)

var serviceSet = wire.NewSet(
	service.NewService,
	service.NewAuditLogService,
	service.NewTemplateHistoryService,
	service.NewUserService,
	service.NewBusinessUnitService,
	service.NewContactService,
	service.NewApplicationService,
	service.NewBaseImageService,
	service.NewTemplateService,
	service.NewTemplateApplicationService,
	service.NewDashboardService,
)

var handlerSet = wire.NewSet(
	handler.NewHandler,
	handler.NewUserHandler,
	handler.NewTemplateHandler,
	handler.NewTemplateApplicationHandler,
	handler.NewBusinessUnitHandler,
	handler.NewContactHandler,
	handler.NewApplicationHandler,
	handler.NewBaseImageHandler,
	handler.NewAuditLogHandler,
	handler.NewDashboardHandler,
)

var serverSet = wire.NewSet(
	server.NewHTTPServer,
)

// build App
func newApp(
	httpServer *http.Server,
) *app.App {
	return app.NewApp(
		app.WithServer(httpServer),
		app.WithName("avdportal-server"),
	)
}

func NewWire(*viper.Viper, *log.Logger) (*app.App, func(), error) {
	panic(wire.Build(
		repositorySet,
		serviceSet,
		handlerSet,
		serverSet,
		wire.Struct(new(router.RouterDeps), "*"),
		sid.NewSid,
		jwt.NewJwt,
		metrics.NewMetrics,
		newApp,
	))
}
