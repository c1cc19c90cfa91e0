package events

import (
	"github.com/gin-gonic/gin"

	"tixly/internal/shared/auth"
	"tixly/internal/shared/middleware"
)

func SetupEventRoutes(router *gin.RouterGroup, controller Controller, authz auth.Authorizer) {
	events := router.Group("/events")
	{
		// Public browsing
		events.GET("", controller.ListEvents)
		events.GET("/search", controller.SearchEvents)
		events.GET("/:id", controller.GetEvent)

		// Vendor management (ownership enforced in the service)
		events.POST("", controller.CreateEvent)
		events.PUT("/:id", controller.UpdateEvent)
		events.DELETE("/:id", controller.DeleteEvent)

		// Vendor dashboards. The static routes resolve the vendor from the
		// vendor_id query parameter, the parameterized ones from the path.
		events.GET("/vendor/my-events", controller.VendorEvents)
		events.GET("/vendor/stats", controller.VendorStats)
		events.GET("/vendor/earnings", controller.VendorEarnings)
		events.GET("/vendor/sales-analysis", controller.SalesAnalysis)
		events.GET("/vendor/:vendorId", controller.VendorEvents)
		events.GET("/vendor/:vendorId/stats", controller.VendorStats)
		events.GET("/vendor/:vendorId/earnings", controller.VendorEarnings)
		events.GET("/vendor/:vendorId/sales-analysis", controller.SalesAnalysis)

		// Admin moderation
		events.PATCH("/:id/status", middleware.RequireAdmin(authz), controller.UpdateEventStatus)
	}
}
