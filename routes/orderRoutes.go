package routes

import (
	"github.com/Jorell/stylehaven-api/controllers"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine, controller *controllers.OrderController) {
	orders := server.Group("/orders")
	{
		orders.POST("", controller.CreateOrder)
		orders.GET("", controller.GetOrders)
		orders.GET("/user/:username", controller.GetOrdersByUsername)
		orders.GET("/:id", controller.GetOrder)
		orders.PUT("/:id/status", controller.UpdateOrderStatus)
		orders.DELETE("/:id", controller.DeleteOrder)
	}
}
