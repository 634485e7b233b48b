package routes

import (
	"github.com/Jorell/stylehaven-api/controllers"
	"github.com/Jorell/stylehaven-api/middlewares"
	"github.com/gin-gonic/gin"
)

func UploadRoutes(server *gin.Engine, controller *controllers.UploadController) {
	server.POST("/upload", middlewares.RequireAuth(), middlewares.RequireAdmin(), controller.UploadProductImages)
}
