package controllers

import (
	"net/http"

	"github.com/Jorell/stylehaven-api/logger"
	"github.com/Jorell/stylehaven-api/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderController struct {
	Orders   *models.OrderModel
	Products *models.ProductModel
}

func NewOrderController(orders *models.OrderModel, products *models.ProductModel) *OrderController {
	return &OrderController{Orders: orders, Products: products}
}

// CreateOrder validates an order submission, persists it in the pending
// status, then applies the per-item inventory adjustments. The order is the
// system of record for what the buyer asked for: once it is committed,
// adjustment failures are logged and left visible on the inventoryApplied
// flag, but never fail the request.
func (c *OrderController) CreateOrder(ctx *gin.Context) {
	var order models.Order
	if err := ctx.ShouldBindJSON(&order); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := models.ValidateNewOrder(&order); err != nil {
		respondWithError(ctx, err, "create order failed")
		return
	}

	reqCtx := ctx.Request.Context()
	if err := c.Orders.Insert(reqCtx, &order); err != nil {
		logger.L().Error("create order failed", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, "server error during order creation")
		return
	}

	if err := c.Products.ApplyOrderItems(reqCtx, order.Items); err != nil {
		logger.L().Warn("inventory adjustment incomplete",
			zap.String("orderId", order.ID.Hex()),
			zap.Error(err),
		)
	} else if err := c.Orders.MarkInventoryApplied(reqCtx, order.ID); err != nil {
		logger.L().Warn("failed to flag inventory as applied",
			zap.String("orderId", order.ID.Hex()),
			zap.Error(err),
		)
	} else {
		order.InventoryApplied = true
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"success": true,
		"message": "Order created successfully",
		"order":   order,
	})
}

// GetOrders returns all orders, newest first.
func (c *OrderController) GetOrders(ctx *gin.Context) {
	orders, err := c.Orders.GetAll(ctx.Request.Context())
	if err != nil {
		respondWithError(ctx, err, "get orders failed")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "orders": orders})
}

// GetOrdersByUsername returns one buyer's order history, newest first.
func (c *OrderController) GetOrdersByUsername(ctx *gin.Context) {
	username := ctx.Param("username")

	orders, err := c.Orders.GetByUsername(ctx.Request.Context(), username)
	if err != nil {
		respondWithError(ctx, err, "get user orders failed")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "orders": orders})
}

func (c *OrderController) GetOrder(ctx *gin.Context) {
	order, err := c.Orders.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, err, "get order failed")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "order": order})
}

func (c *OrderController) UpdateOrderStatus(ctx *gin.Context) {
	var body struct {
		Status string `json:"status"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := c.Orders.UpdateStatus(ctx.Request.Context(), ctx.Param("id"), body.Status)
	if err != nil {
		respondWithError(ctx, err, "update order status failed")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Order status updated successfully",
		"order":   order,
	})
}

// DeleteOrder removes an order. Inventory adjustments already applied for it
// are not reversed.
func (c *OrderController) DeleteOrder(ctx *gin.Context) {
	if err := c.Orders.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondWithError(ctx, err, "delete order failed")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Order deleted successfully",
	})
}
