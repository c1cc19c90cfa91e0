package payments

import (
	"github.com/gin-gonic/gin"
)

// SetupPaymentRoutes mounts the payment endpoints. The two withdrawal
// handlers keep the legacy /payments/withdrawals paths working; the
// withdrawals package owns the canonical routes.
func SetupPaymentRoutes(router *gin.RouterGroup, controller Controller, listWithdrawals, updateWithdrawal gin.HandlerFunc) {
	payments := router.Group("/payments")
	{
		payments.POST("", controller.CreatePayment)
		payments.GET("", controller.ListPayments)
		payments.GET("/stats", controller.Stats)
		payments.GET("/:id", controller.GetPayment)
		payments.PATCH("/:id/status", controller.UpdatePaymentStatus)
		payments.GET("/earnings/:vendorId", controller.VendorEarnings)
		payments.GET("/vendor/:vendorId/stats", controller.VendorStats)
		payments.GET("/user/:userId", controller.UserPayments)

		payments.GET("/withdrawals", listWithdrawals)
		payments.PATCH("/withdrawals/:id", updateWithdrawal)
	}
}
