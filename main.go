package main

import (
	"os"
	"time"

	"github.com/Jorell/stylehaven-api/controllers"
	"github.com/Jorell/stylehaven-api/initializers"
	"github.com/Jorell/stylehaven-api/logger"
	"github.com/Jorell/stylehaven-api/middlewares"
	"github.com/Jorell/stylehaven-api/models"
	"github.com/Jorell/stylehaven-api/routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func init() {
	initializers.LoadEnv()
	logger.Init(os.Getenv("APP_ENV"))
	initializers.ConnectToDB()
	initializers.SyncDatabase()
}

func main() {
	defer logger.Sync()

	allowedOrigins := []string{"http://localhost:5173"}
	if frontend := os.Getenv("FRONTEND_URL"); frontend != "" {
		allowedOrigins = append(allowedOrigins, frontend)
	}

	server := gin.New()
	server.Use(gin.Recovery())
	server.Use(middlewares.RequestID(), middlewares.RequestLogger())
	server.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	orders := &models.OrderModel{Collection: initializers.Orders}
	products := &models.ProductModel{Collection: initializers.Products}
	users := &models.UserModel{Collection: initializers.Users}

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server, controllers.NewAuthController(users))
	routes.ProductRoutes(server, controllers.NewProductController(products))
	routes.OrderRoutes(server, controllers.NewOrderController(orders, products))
	routes.AdminRoutes(server, controllers.NewAdminController(users))
	routes.UploadRoutes(server, controllers.NewUploadController(products))

	server.Run()
}
