package router

import (
	"avdportal/internal/handler"
	"avdportal/pkg/jwt"
	"avdportal/pkg/log"
	"avdportal/pkg/metrics"

	"github.com/spf13/viper"
)

type RouterDeps struct {
	Logger                     *log.Logger
	Config                     *viper.Viper
	JWT                        *jwt.JWT
	Metrics                    *metrics.Metrics
	UserHandler                *handler.UserHandler
	TemplateHandler            *handler.TemplateHandler
	TemplateApplicationHandler *handler.TemplateApplicationHandler
	BusinessUnitHandler        *handler.BusinessUnitHandler
	ContactHandler             *handler.ContactHandler
	ApplicationHandler         *handler.ApplicationHandler
	BaseImageHandler           *handler.BaseImageHandler
	AuditLogHandler            *handler.AuditLogHandler
	DashboardHandler           *handler.DashboardHandler
}
