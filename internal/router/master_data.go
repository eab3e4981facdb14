package router

import (
	"avdportal/internal/middleware"

	"github.com/gin-gonic/gin"
)

// InitMasterDataRouter 业务单元、联系人、应用、基础镜像
func InitMasterDataRouter(
	deps RouterDeps,
	r *gin.RouterGroup,
) {
	auth := middleware.StrictAuth(deps.JWT, deps.Logger)

	buRouter := r.Group("/business-units").Use(auth)
	{
		buRouter.GET("", deps.BusinessUnitHandler.ListBusinessUnits)
		buRouter.POST("", deps.BusinessUnitHandler.CreateBusinessUnit)
		buRouter.GET("/:id", deps.BusinessUnitHandler.GetBusinessUnit)
		buRouter.PUT("/:id", deps.BusinessUnitHandler.UpdateBusinessUnit)
		buRouter.DELETE("/:id", deps.BusinessUnitHandler.DeleteBusinessUnit)
	}

	contactRouter := r.Group("/contacts").Use(auth)
	{
		contactRouter.GET("", deps.ContactHandler.ListContacts)
		contactRouter.POST("", deps.ContactHandler.CreateContact)
		contactRouter.GET("/:id", deps.ContactHandler.GetContact)
		contactRouter.PUT("/:id", deps.ContactHandler.UpdateContact)
		contactRouter.DELETE("/:id", deps.ContactHandler.DeleteContact)
	}

	appRouter := r.Group("/applications").Use(auth)
	{
		appRouter.GET("", deps.ApplicationHandler.ListApplications)
		appRouter.POST("", deps.ApplicationHandler.CreateApplication)
		appRouter.GET("/:id", deps.ApplicationHandler.GetApplication)
		appRouter.PUT("/:id", deps.ApplicationHandler.UpdateApplication)
		appRouter.DELETE("/:id", deps.ApplicationHandler.DeleteApplication)
	}

	imageRouter := r.Group("/base-images").Use(auth)
	{
		imageRouter.GET("", deps.BaseImageHandler.ListBaseImages)
		imageRouter.POST("", deps.BaseImageHandler.CreateBaseImage)
		imageRouter.GET("/:id", deps.BaseImageHandler.GetBaseImage)
		imageRouter.PUT("/:id", deps.BaseImageHandler.UpdateBaseImage)
		imageRouter.DELETE("/:id", deps.BaseImageHandler.DeleteBaseImage)
	}
}
