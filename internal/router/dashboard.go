package router

import (
	"avdportal/internal/middleware"

	"github.com/gin-gonic/gin"
)

// InitDashboardRouter 配置 Dashboard 路由
func InitDashboardRouter(
	deps RouterDeps,
	r *gin.RouterGroup,
) {
	dashboardRouter := r.Group("/dashboard").Use(middleware.StrictAuth(deps.JWT, deps.Logger))
	{
		// 模板与基础数据概览
		dashboardRouter.GET("/overview", deps.DashboardHandler.GetOverview)

		// 最近的管理操作
		dashboardRouter.GET("/operations", deps.DashboardHandler.GetOperations)
	}
}
