package controllers

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Jorell/stylehaven-api/logger"
	"github.com/Jorell/stylehaven-api/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func generateJWT(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID.Hex(),
		"email":    user.Email,
		"username": user.Username,
		"role":     user.Role,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(time.Hour * 24 * 30).Unix(),
	})

	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

type AuthController struct {
	Users *models.UserModel
}

func NewAuthController(users *models.UserModel) *AuthController {
	return &AuthController{Users: users}
}

// Register handles user signup.
func (c *AuthController) Register(ctx *gin.Context) {
	var input models.RegisterInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := models.ValidateRegistration(input); err != nil {
		respondWithError(ctx, err, "register failed")
		return
	}

	reqCtx := ctx.Request.Context()
	exists, err := c.Users.Exists(reqCtx, input.Username, input.Email)
	if err != nil {
		respondWithError(ctx, err, "register failed")
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

	user := models.User{
		Username:     strings.TrimSpace(input.Username),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		Password:     hashed,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		Gender:       input.Gender,
		ProfileImage: input.ProfileImage,
		Role:         models.RoleUser,
	}
	if err := c.Users.Insert(reqCtx, &user); err != nil {
		respondWithError(ctx, err, "register failed")
		return
	}

	token, err := generateJWT(&user)
	if err != nil {
		logger.L().Error("JWT generation failed", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, "server error")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"token":   token,
		"user":    user,
	})
}

// Login authenticates a user by username or email.
func (c *AuthController) Login(ctx *gin.Context) {
	var loginData struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid request body")
		return
	}
	if loginData.Identifier == "" || loginData.Password == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, "please provide your username or email and password")
		return
	}

	user, err := c.Users.GetByIdentifier(ctx.Request.Context(), loginData.Identifier)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			sendErrorResponse(ctx, http.StatusBadRequest, "invalid username or password")
			return
		}
		respondWithError(ctx, err, "login failed")
		return
	}

	if err := comparePasswords(user.Password, loginData.Password); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid username or password")
		return
	}

	token, err := generateJWT(user)
	if err != nil {
		logger.L().Error("JWT generation failed", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, "server error")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

// Profile returns the authenticated user's account.
func (c *AuthController) Profile(ctx *gin.Context) {
	userClaims, exists := ctx.Get("user")
	if !exists {
		sendErrorResponse(ctx, http.StatusUnauthorized, "authentication required")
		return
	}

	claims, ok := userClaims.(jwt.MapClaims)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "authentication required")
		return
	}
	username, _ := claims["username"].(string)

	user, err := c.Users.GetByIdentifier(ctx.Request.Context(), username)
	if err != nil {
		respondWithError(ctx, err, "get profile failed")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "user": user})
}
