package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fintra-backend/models"
)

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

type registerInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name"`
}

type loginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) RegisterUser(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	var existing models.User
	err := h.DB.Where("email = ?", input.Email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		h.storageError(c, err, "Failed to look up user")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		internal(c, "Error hashing password")
		return
	}

	user := models.User{
		Email:    input.Email,
		Password: string(hashed),
		Name:     input.Name,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		h.storageError(c, err, "Error creating user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    gin.H{"id": user.ID, "email": user.Email, "name": user.Name},
	})
}

func (h *Handler) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	var user models.User
	if err := h.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		unauthorized(c, "Invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		unauthorized(c, "Invalid credentials")
		return
	}

	accessToken, err := h.signToken(user.ID, accessTokenTTL)
	if err != nil {
		internal(c, "Error generating token")
		return
	}
	refreshToken, err := h.signToken(user.ID, refreshTokenTTL)
	if err != nil {
		internal(c, "Error generating refresh token")
		return
	}

	// Refresh tokens are recorded so they can be revoked server-side.
	if err := h.RDB.Set(c.Request.Context(), refreshToken, user.ID, refreshTokenTTL).Err(); err != nil {
		internal(c, "Error storing refresh token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"user":          gin.H{"id": user.ID, "email": user.Email, "name": user.Name},
	})
}

func (h *Handler) signToken(userID uint, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.Cfg.JWTSecret))
}
