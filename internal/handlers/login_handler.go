package handlers

import (
	"net/http"
	"strings"

	"go-inventory-pos/internal/apperr"
	"go-inventory-pos/internal/auth"
	"go-inventory-pos/internal/database"
	"go-inventory-pos/internal/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// dummyHash is compared against when the username does not exist, so the
// missing-user and wrong-password paths cost the same and return the same body.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)

func Login(c *gin.Context) {
	var input LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	var user models.User
	lookupErr := database.DB.Where("name = ?", strings.TrimSpace(input.Username)).First(&user).Error

	hash := user.PasswordHash
	if lookupErr != nil {
		hash = string(dummyHash)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.Password)); err != nil || lookupErr != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperr.ErrInvalidCredentials.Error()})
		return
	}

	token, err := auth.GenerateToken(user.ID, user.Name, user.AccessType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"role":     user.AccessType,
		"username": user.Name,
	})
}

// Me echoes the authenticated identity so the client can render its dashboard.
func Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"user_id":  c.MustGet("userID").(uint),
		"username": c.MustGet("username").(string),
		"role":     c.MustGet("role").(string),
	})
}
