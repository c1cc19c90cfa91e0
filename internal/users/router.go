package users

import (
	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(router *gin.RouterGroup, controller Controller) {
	users := router.Group("/users")
	{
		users.POST("", controller.CreateUser)
		users.GET("", controller.ListUsers)
		users.GET("/search", controller.SearchUsers)
		users.GET("/:id", controller.GetUser)
		users.PUT("/:id", controller.UpdateUser)
		users.PATCH("/:id/status", controller.UpdateUserStatus)
		users.DELETE("/:id", controller.DeleteUser)

		users.POST("/:id/favorites", controller.AddFavorite)
		users.DELETE("/:id/favorites/:eventId", controller.RemoveFavorite)
		users.GET("/:id/favorites", controller.ListFavorites)

		users.GET("/:id/orders", controller.OrderHistory)
		users.GET("/:id/stats", controller.Stats)
	}
}
