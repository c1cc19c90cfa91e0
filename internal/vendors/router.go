package vendors

import (
	"github.com/gin-gonic/gin"

	"tixly/internal/shared/auth"
	"tixly/internal/shared/middleware"
)

func SetupVendorRoutes(router *gin.RouterGroup, controller Controller, authz auth.Authorizer) {
	vendors := router.Group("/vendors")
	{
		vendors.POST("", controller.CreateVendor)
		vendors.GET("", controller.ListVendors)
		vendors.GET("/search", controller.SearchVendors)
		vendors.GET("/:id", controller.GetVendor)
		vendors.PUT("/:id", controller.UpdateVendor)
		vendors.GET("/:id/stats", controller.Stats)
		vendors.GET("/:id/events", controller.WithEvents)

		// Admin moderation
		vendors.PATCH("/:id/approve", middleware.RequireAdmin(authz), controller.ApproveVendor)
		vendors.PATCH("/:id/suspend", middleware.RequireAdmin(authz), controller.SuspendVendor)
		vendors.PATCH("/:id/status", middleware.RequireAdmin(authz), controller.UpdateVendorStatus)
	}
}
