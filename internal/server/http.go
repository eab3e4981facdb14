package server

import (
	apiV1 "avdportal/api/v1"
	"avdportal/docs"
	"avdportal/internal/middleware"
	"avdportal/internal/router"
	"avdportal/pkg/server/http"

	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewHTTPServer(
	deps router.RouterDeps,
) *http.Server {
	if deps.Config.GetString("env") == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	apiV1.RegisterValidators()

	s := http.NewServer(
		gin.Default(),
		deps.Logger,
		http.WithServerHost(deps.Config.GetString("http.host")),
		http.WithServerPort(deps.Config.GetInt("http.port")),
	)

	// swagger doc
	docs.SwaggerInfo.BasePath = "/"
	s.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerfiles.Handler,
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	s.Use(
		middleware.CORSMiddleware(deps.Config),
		middleware.ResponseLogMiddleware(deps.Logger),
		middleware.RequestLogMiddleware(deps.Logger),
	)
	if deps.Metrics != nil && deps.Config.GetBool("metrics.enabled") {
		s.Use(middleware.MetricsMiddleware(deps.Metrics))
		s.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	s.GET("/", func(ctx *gin.Context) {
		deps.Logger.WithContext(ctx).Info("hello")
		apiV1.HandleSuccess(ctx, map[string]interface{}{
			":)": "Thank you for using AVD Portal!",
		})
	})

	apiV1 := s.Group("/api/v1")
	router.InitUserRouter(deps, apiV1)
	router.InitTemplateRouter(deps, apiV1)
	router.InitMasterDataRouter(deps, apiV1)
	router.InitAuditLogRouter(deps, apiV1)
	router.InitDashboardRouter(deps, apiV1)

	return s
}
