package handlers

import (
	"net/http"
	"strings"

	"quickbite-api/config"
	"quickbite-api/middleware"
	"quickbite-api/models"

	"github.com/gin-gonic/gin"
)

// ── Store Management ────────────────────────────────────────────────────────

type CreateStoreRequest struct {
	OwnerID uint   `json:"ownerId" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
}

// ListOpenStores returns all open stores with their menus (customer browsing)
func ListOpenStores(c *gin.Context) {
	var stores []models.Store
	config.DB.Preload("Menu").Where("is_open = ?", true).Find(&stores)
	c.JSON(http.StatusOK, stores)
}

// GetStoreByOwner fetches the store owned by the given user.
// 404 is the normal "not yet onboarded" signal for the owner dashboard.
func GetStoreByOwner(c *gin.Context) {
	var store models.Store
	if err := config.DB.Preload("Menu").Where("owner_id = ?", c.Param("ownerId")).First(&store).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
		return
	}
	c.JSON(http.StatusOK, store)
}

// CreateStore launches the owner's store. The unique index on owner_id
// rejects a second store for the same owner.
func CreateStore(c *gin.Context) {
	var req CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The body keeps the ownerId field for compatibility, but it must be
	// the authenticated caller
	if req.OwnerID != middleware.GetUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Store can only be created for your own account"})
		return
	}

	store := models.Store{
		OwnerID: req.OwnerID,
		Name:    req.Name,
		Address: req.Address,
		IsOpen:  true,
	}
	if err := config.DB.Create(&store).Error; err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			c.JSON(http.StatusConflict, gin.H{"error": "Owner already has a store"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create store"})
		return
	}
	c.JSON(http.StatusCreated, store)
}

// ── Menu Management ─────────────────────────────────────────────────────────

type AddFoodItemRequest struct {
	StoreID uint    `json:"storeId" binding:"required"`
	Name    string  `json:"name" binding:"required"`
	Price   float64 `json:"price" binding:"required,gt=0"`
}

// AddFoodItem adds a new item to a store's menu
func AddFoodItem(c *gin.Context) {
	var req AddFoodItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var store models.Store
	if err := config.DB.First(&store, req.StoreID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
		return
	}

	item := models.FoodItem{
		StoreID:  store.ID,
		Name:     req.Name,
		Price:    req.Price,
		IsActive: true,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add food item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// GetFoodItem returns a single menu item
func GetFoodItem(c *gin.Context) {
	var item models.FoodItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateFoodItem partially updates a menu item (name and price only)
func UpdateFoodItem(c *gin.Context) {
	var item models.FoodItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food item not found"})
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	allowed := map[string]bool{"name": true, "price": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	if err := config.DB.Model(&item).Updates(update).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update food item"})
		return
	}

	config.DB.First(&item, item.ID)
	c.JSON(http.StatusOK, item)
}

// DeleteFoodItem hard-deletes a menu item
func DeleteFoodItem(c *gin.Context) {
	var item models.FoodItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food item not found"})
		return
	}
	config.DB.Delete(&item)
	c.JSON(http.StatusOK, gin.H{"message": "Food item deleted"})
}

// ListFood returns every active food item across stores
func ListFood(c *gin.Context) {
	var items []models.FoodItem
	config.DB.Where("is_active = ?", true).Find(&items)
	c.JSON(http.StatusOK, items)
}
