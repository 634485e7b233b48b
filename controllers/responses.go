package controllers

import (
	"errors"
	"net/http"

	"github.com/Jorell/stylehaven-api/logger"
	"github.com/Jorell/stylehaven-api/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"success": false, "error": message})
}

// respondWithError maps a model error onto the stable error envelope:
// validation errors become 400s with their message, not-found errors become
// 404s, and anything else is a store error reported with a generic message
// while the detail is logged server-side only.
func respondWithError(ctx *gin.Context, err error, fallback string) {
	if models.IsValidationError(err) {
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	switch {
	case errors.Is(err, models.ErrOrderNotFound),
		errors.Is(err, models.ErrProductNotFound),
		errors.Is(err, models.ErrUserNotFound):
		sendErrorResponse(ctx, http.StatusNotFound, err.Error())
	default:
		logger.L().Error(fallback,
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Error(err),
		)
		sendErrorResponse(ctx, http.StatusInternalServerError, "server error")
	}
}
