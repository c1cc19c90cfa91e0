package orders

import (
	"github.com/gin-gonic/gin"
)

func SetupOrderRoutes(router *gin.RouterGroup, controller Controller) {
	orders := router.Group("/orders")
	{
		orders.POST("", controller.CreateOrder)
		orders.GET("", controller.ListOrders)
		orders.GET("/:id", controller.GetOrder)
		orders.PATCH("/:id/status", controller.UpdateOrderStatus)
		orders.GET("/user/:userId", controller.UserOrders)
		orders.GET("/event/:eventId", controller.EventOrders)
	}
}
