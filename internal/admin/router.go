package admin

import (
	"github.com/gin-gonic/gin"

	"tixly/internal/shared/auth"
	"tixly/internal/shared/middleware"
)

func SetupAdminRoutes(router *gin.RouterGroup, controller Controller, authz auth.Authorizer) {
	admin := router.Group("/admin", middleware.RequireAdmin(authz))
	{
		admin.GET("/dashboard", controller.Dashboard)
		admin.GET("/dashboard/stats", controller.Dashboard)
		admin.GET("/analytics", controller.Analytics)

		admin.GET("/users", controller.ListUsers)
		admin.PATCH("/users/:id/status", controller.ModerateUser)
		admin.GET("/vendors", controller.ListVendors)
		admin.PATCH("/vendors/:id/status", controller.ModerateVendor)
		admin.GET("/events", controller.ListEvents)
		admin.PATCH("/events/:id/status", controller.ModerateEvent)
		admin.GET("/tickets", controller.ListTickets)

		admin.GET("/payments", controller.ListPayments)
		admin.GET("/finance", controller.FinanceRecords)
		admin.GET("/withdrawals", controller.ListWithdrawals)
		admin.PATCH("/withdrawals/:id/status", controller.ModerateWithdrawal)

		admin.GET("/settings", controller.GetSettings)
		admin.PUT("/settings", controller.UpdateSettings)
		admin.GET("/statistics", controller.Statistics)
	}
}
