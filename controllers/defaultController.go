package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the StyleHaven API.

The following are the endpoints for this API:

AUTH
- POST "/auth/register" - Create user account
- POST "/auth/login" - Access user account
- GET "/auth/profile" - Get the authenticated user's account

PRODUCT
- GET "/products" - Get all products
- GET "/products/category/:category" - Get products by category
- GET "/products/:id" - Get product by ID
- POST "/products" - Create new product (admin)
- PUT "/products/:id" - Update product (admin)
- DELETE "/products/:id" - Delete product (admin)
- POST "/upload" - Upload product images (admin)

ORDER
- POST "/orders" - Create a new order
- GET "/orders" - Retrieve all orders
- GET "/orders/user/:username" - Get orders for a specific buyer
- GET "/orders/:id" - Get order by ID
- PUT "/orders/:id/status" - Update order status
- DELETE "/orders/:id" - Delete order by ID

ADMIN
- POST "/admin/create-admin" - Create an administrator account
- GET "/admin/users" - List users
- PUT "/admin/users/:id/role" - Change a user's role`

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}
