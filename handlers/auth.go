package handlers

import (
	"net/http"

	"quickbite-api/config"
	"quickbite-api/middleware"
	"quickbite-api/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type RiderProfile struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type RegisterRequest struct {
	Email    string        `json:"email" binding:"required,email"`
	Password string        `json:"password" binding:"required,min=6"`
	Role     models.Role   `json:"role" binding:"required"`
	Rider    *RiderProfile `json:"rider"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// identity is the response shape shared by login and register.
func identity(user *models.User, riderID *uint, token string) gin.H {
	return gin.H{
		"id":      user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"riderId": riderID,
		"token":   token,
	}
}

// Register creates a new user account and, for riders, their courier profile
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Admin creation blocked; the built-in admin authenticates via login
	if req.Role == models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin account cannot be created manually"})
		return
	}

	validRoles := map[models.Role]bool{
		models.RoleCustomer:   true,
		models.RoleRider:      true,
		models.RoleStoreOwner: true,
	}
	if !validRoles[req.Role] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role. Must be: CUSTOMER, RIDER, or STORE_OWNER"})
		return
	}

	var existing models.User
	if result := config.DB.Where("email = ?", req.Email).First(&existing); result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	var riderID *uint
	if req.Role == models.RoleRider && req.Rider != nil {
		rider := models.Rider{
			UserID:    user.ID,
			Latitude:  req.Rider.Latitude,
			Longitude: req.Rider.Longitude,
			IsActive:  true,
		}
		if err := config.DB.Create(&rider).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create rider profile"})
			return
		}
		riderID = &rider.ID
	}

	token, err := middleware.GenerateToken(&user, riderID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, identity(&user, riderID, token))
}

// Login authenticates a user and returns a signed identity token
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Built-in admin bypasses the user table entirely
	if req.Email == models.AdminEmail && req.Password == models.AdminPassword {
		admin := models.User{Email: models.AdminEmail, Role: models.RoleAdmin}
		token, err := middleware.GenerateToken(&admin, nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		c.JSON(http.StatusOK, identity(&admin, nil, token))
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
		return
	}

	// Riders carry their courier profile id in the identity
	var riderID *uint
	var rider models.Rider
	if err := config.DB.Where("user_id = ?", user.ID).First(&rider).Error; err == nil {
		riderID = &rider.ID
	}

	token, err := middleware.GenerateToken(&user, riderID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, identity(&user, riderID, token))
}
