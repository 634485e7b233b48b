package routes

import (
	"github.com/Jorell/stylehaven-api/controllers"
	"github.com/Jorell/stylehaven-api/middlewares"
	"github.com/gin-gonic/gin"
)

func AuthRoutes(server *gin.Engine, controller *controllers.AuthController) {
	auth := server.Group("/auth")
	{
		auth.POST("/register", controller.Register)
		auth.POST("/login", controller.Login)
		auth.GET("/profile", middlewares.RequireAuth(), controller.Profile)
	}
}
