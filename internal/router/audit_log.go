package router

import (
	"avdportal/internal/middleware"

	"github.com/gin-gonic/gin"
)

func InitAuditLogRouter(
	deps RouterDeps,
	r *gin.RouterGroup,
) {
	auditRouter := r.Group("/audit-logs").Use(middleware.StrictAuth(deps.JWT, deps.Logger))
	{
		auditRouter.GET("", deps.AuditLogHandler.ListAuditLogs)
	}
}
