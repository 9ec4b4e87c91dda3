package handlers

import (
	"net/http"

	"quickbite-api/config"
	"quickbite-api/models"
	"quickbite-api/statemachine"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RiderOrderView decorates an assigned order with the totals the rider
// dashboard shows: item subtotal plus the flat delivery fee.
type RiderOrderView struct {
	models.Order
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"delivery_fee"`
	Total       float64 `json:"total"`
}

// GetAssignedOrders returns the rider's current ASSIGNED orders with
// items, the customer's email, and computed totals
func GetAssignedOrders(c *gin.Context) {
	var orders []models.Order
	config.DB.Preload("Items.Food").
		Preload("Customer", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "email")
		}).
		Where("rider_id = ? AND status = ?", c.Param("id"), models.StatusAssigned).
		Find(&orders)

	views := make([]RiderOrderView, 0, len(orders))
	for _, o := range orders {
		subtotal := orderSubtotal(o.Items)
		views = append(views, RiderOrderView{
			Order:       o,
			Subtotal:    subtotal,
			DeliveryFee: config.DeliveryFee,
			Total:       subtotal + config.DeliveryFee,
		})
	}
	c.JSON(http.StatusOK, views)
}

// CompleteOrder marks an ASSIGNED order COMPLETED. The update is
// conditioned on the current status so a double-completion loses cleanly.
func CompleteOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.First(&order, c.Param("orderId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if err := statemachine.CanTransition(order.Status, models.StatusCompleted, "rider"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Order not assigned",
			"reason": err.Error(),
		})
		return
	}

	res := config.DB.Model(&models.Order{}).
		Where("id = ? AND status = ?", order.ID, models.StatusAssigned).
		Update("status", models.StatusCompleted)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete order"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order not assigned"})
		return
	}

	config.DB.Preload("Items.Food").Preload("Rider").First(&order, order.ID)
	c.JSON(http.StatusOK, order)
}
