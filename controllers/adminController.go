package controllers

import (
	"net/http"

	"github.com/Jorell/stylehaven-api/logger"
	"github.com/Jorell/stylehaven-api/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AdminController struct {
	Users *models.UserModel
}

func NewAdminController(users *models.UserModel) *AdminController {
	return &AdminController{Users: users}
}

// CreateAdmin registers a new administrator account.
func (c *AdminController) CreateAdmin(ctx *gin.Context) {
	var input models.RegisterInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := models.ValidateRegistration(input); err != nil {
		respondWithError(ctx, err, "create admin failed")
		return
	}

	reqCtx := ctx.Request.Context()
	exists, err := c.Users.Exists(reqCtx, input.Username, input.Email)
	if err != nil {
		respondWithError(ctx, err, "create admin failed")
		return
	}
	if exists {
		sendErrorResponse(ctx, http.StatusBadRequest, "username or email already taken")
		return
	}

	hashed, err := hashPassword(input.Password)
	if err != nil {
		logger.L().Error("password hashing failed", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, "server error")
		return
	}

	admin := models.User{
		Username:  input.Username,
		Email:     input.Email,
		Password:  hashed,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Role:      models.RoleAdmin,
	}
	if err := c.Users.Insert(reqCtx, &admin); err != nil {
		respondWithError(ctx, err, "create admin failed")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"success": true,
		"message": "Admin created successfully",
		"user":    admin,
	})
}

// GetUsers lists every registered user. Password hashes never serialize.
func (c *AdminController) GetUsers(ctx *gin.Context) {
	users, err := c.Users.GetAll(ctx.Request.Context())
	if err != nil {
		respondWithError(ctx, err, "get users failed")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "users": users})
}

// UpdateUserRole changes a user's role.
func (c *AdminController) UpdateUserRole(ctx *gin.Context) {
	var body struct {
		Role string `json:"role"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := c.Users.UpdateRole(ctx.Request.Context(), ctx.Param("id"), body.Role)
	if err != nil {
		respondWithError(ctx, err, "update user role failed")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "User role updated",
		"user":    user,
	})
}
