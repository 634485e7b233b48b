package routes

import (
	"github.com/Jorell/stylehaven-api/controllers"
	"github.com/Jorell/stylehaven-api/middlewares"
	"github.com/gin-gonic/gin"
)

func AdminRoutes(server *gin.Engine, controller *controllers.AdminController) {
	admin := server.Group("/admin", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.POST("/create-admin", controller.CreateAdmin)
		admin.GET("/users", controller.GetUsers)
		admin.PUT("/users/:id/role", controller.UpdateUserRole)
	}
}
