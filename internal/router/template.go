package router

import (
	"avdportal/internal/middleware"

	"github.com/gin-gonic/gin"
)

// InitTemplateRouter 模板、状态流转、变更日志和挂载应用
func InitTemplateRouter(
	deps RouterDeps,
	r *gin.RouterGroup,
) {
	templateRouter := r.Group("/templates").Use(middleware.StrictAuth(deps.JWT, deps.Logger))
	{
		templateRouter.GET("", deps.TemplateHandler.ListTemplates)
		templateRouter.POST("", deps.TemplateHandler.CreateTemplate)
		templateRouter.GET("/:id", deps.TemplateHandler.GetTemplate)
		templateRouter.PUT("/:id", deps.TemplateHandler.UpdateTemplate)
		templateRouter.DELETE("/:id", deps.TemplateHandler.DeleteTemplate)

		// 状态流转
		templateRouter.PATCH("/:id/status", deps.TemplateHandler.UpdateTemplateStatus)
		templateRouter.GET("/:id/transitions", deps.TemplateHandler.ListTemplateTransitions)

		// 变更日志
		templateRouter.GET("/:id/history", deps.TemplateHandler.ListTemplateHistory)

		// 挂载应用；reorder 需在 :application_id 之前注册
		templateRouter.GET("/:id/applications", deps.TemplateApplicationHandler.ListTemplateApplications)
		templateRouter.POST("/:id/applications", deps.TemplateApplicationHandler.AttachApplication)
		templateRouter.PUT("/:id/applications/reorder", deps.TemplateApplicationHandler.ReorderApplications)
		templateRouter.PUT("/:id/applications/:application_id", deps.TemplateApplicationHandler.UpdateTemplateApplication)
		templateRouter.DELETE("/:id/applications/:application_id", deps.TemplateApplicationHandler.DetachApplication)
	}
}
