package routes

import (
	"github.com/Jorell/stylehaven-api/controllers"
	"github.com/Jorell/stylehaven-api/middlewares"
	"github.com/gin-gonic/gin"
)

func ProductRoutes(server *gin.Engine, controller *controllers.ProductController) {
	products := server.Group("/products")
	{
		products.GET("", controller.GetProducts)
		products.GET("/category/:category", controller.GetProductsByCategory)
		products.GET("/:id", controller.GetProduct)

		products.POST("", middlewares.RequireAuth(), middlewares.RequireAdmin(), controller.CreateProduct)
		products.PUT("/:id", middlewares.RequireAuth(), middlewares.RequireAdmin(), controller.UpdateProduct)
		products.DELETE("/:id", middlewares.RequireAuth(), middlewares.RequireAdmin(), controller.DeleteProduct)
	}
}
