package withdrawals

import (
	"github.com/gin-gonic/gin"
)

func SetupWithdrawalRoutes(router *gin.RouterGroup, controller Controller) {
	withdrawals := router.Group("/withdrawals")
	{
		withdrawals.POST("", controller.CreateWithdrawal)
		withdrawals.GET("", controller.ListWithdrawals)
		withdrawals.GET("/:id", controller.GetWithdrawal)
		withdrawals.PATCH("/:id/status", controller.UpdateWithdrawalStatus)
		withdrawals.PUT("/:id/status", controller.UpdateWithdrawalStatus)
		withdrawals.GET("/vendor/:vendorId", controller.VendorWithdrawals)
		withdrawals.GET("/vendor/:vendorId/stats", controller.VendorStats)
	}
}
