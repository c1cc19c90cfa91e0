package tickets

import (
	"github.com/gin-gonic/gin"
)

func SetupTicketRoutes(router *gin.RouterGroup, controller Controller) {
	tickets := router.Group("/tickets")
	{
		// Tier management (ownership enforced in the service)
		tickets.POST("", controller.CreateTicketType)
		tickets.POST("/event/:eventId", controller.CreateTicketType)
		tickets.PUT("/:id", controller.UpdateTicketType)
		tickets.DELETE("/:id", controller.DeleteTicketType)
		tickets.GET("/event/:eventId", controller.GetEventTicketTypes)

		// Issued tickets
		tickets.GET("/:id", controller.GetTicket)
		tickets.PATCH("/:id/status", controller.UpdateTicketStatus)
		tickets.GET("/user/:userId", controller.UserTickets)
		tickets.GET("/vendor/:vendorId/sold", controller.VendorSoldTickets)
		tickets.GET("/vendor/:vendorId/stats", controller.VendorTicketStats)
	}
}
