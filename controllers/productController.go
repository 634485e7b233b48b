package controllers

import (
	"net/http"

	"github.com/Jorell/stylehaven-api/models"
	"github.com/gin-gonic/gin"
)

type ProductController struct {
	Products *models.ProductModel
}

func NewProductController(products *models.ProductModel) *ProductController {
	return &ProductController{Products: products}
}

func (c *ProductController) CreateProduct(ctx *gin.Context) {
	var input models.ProductInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := c.Products.Insert(ctx.Request.Context(), input)
	if err != nil {
		respondWithError(ctx, err, "create product failed")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"success": true,
		"message": "Product created successfully",
		"product": product,
	})
}

// GetProducts returns the whole catalog, newest first.
func (c *ProductController) GetProducts(ctx *gin.Context) {
	products, err := c.Products.GetAll(ctx.Request.Context())
	if err != nil {
		respondWithError(ctx, err, "get products failed")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "products": products})
}

func (c *ProductController) GetProductsByCategory(ctx *gin.Context) {
	products, err := c.Products.GetByCategory(ctx.Request.Context(), ctx.Param("category"))
	if err != nil {
		respondWithError(ctx, err, "get products by category failed")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "products": products})
}

func (c *ProductController) GetProduct(ctx *gin.Context) {
	product, err := c.Products.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, err, "get product failed")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "product": product})
}

func (c *ProductController) UpdateProduct(ctx *gin.Context) {
	var input models.ProductInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := c.Products.Update(ctx.Request.Context(), ctx.Param("id"), input)
	if err != nil {
		respondWithError(ctx, err, "update product failed")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Product updated successfully",
		"product": product,
	})
}

func (c *ProductController) DeleteProduct(ctx *gin.Context) {
	if err := c.Products.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondWithError(ctx, err, "delete product failed")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Product deleted successfully",
	})
}
