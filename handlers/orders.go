package handlers

import (
	"net/http"
	"sort"

	"quickbite-api/config"
	"quickbite-api/middleware"
	"quickbite-api/models"
	"quickbite-api/statemachine"

	"github.com/gin-gonic/gin"
)

type CreateOrderRequest struct {
	CustomerID uint   `json:"customerId" binding:"required"`
	StoreID    uint   `json:"storeId" binding:"required"`
	Pickup     string `json:"pickup" binding:"required"`
	Dropoff    string `json:"dropoff" binding:"required"`
	Items      []struct {
		FoodID   uint `json:"foodId" binding:"required"`
		Quantity int  `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required,min=1"`
}

type AssignRiderRequest struct {
	RiderID uint `json:"riderId" binding:"required"`
}

// CreateOrder creates a PENDING order with its items in one write
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// customerId stays in the body for compatibility, but it must be the
	// authenticated caller
	if req.CustomerID != middleware.GetUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Orders can only be placed for your own account"})
		return
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, models.OrderItem{
			FoodID:   it.FoodID,
			Quantity: it.Quantity,
		})
	}

	order := models.Order{
		CustomerID: req.CustomerID,
		StoreID:    req.StoreID,
		Pickup:     req.Pickup,
		Dropoff:    req.Dropoff,
		Status:     models.StatusPending,
		Items:      items,
	}
	if err := config.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	config.DB.Preload("Items.Food").First(&order, order.ID)
	c.JSON(http.StatusCreated, order)
}

// ListOrders returns every order with items, rider and customer, newest first.
// This is the feed the admin dispatch view and owner dashboard poll.
func ListOrders(c *gin.Context) {
	var orders []models.Order
	config.DB.Preload("Items.Food").Preload("Rider").Preload("Customer").
		Order("created_at desc").
		Find(&orders)
	c.JSON(http.StatusOK, orders)
}

// ListActiveRiders returns riders available for dispatch, with their user
func ListActiveRiders(c *gin.Context) {
	var riders []models.Rider
	config.DB.Preload("User").Where("is_active = ?", true).Find(&riders)
	c.JSON(http.StatusOK, riders)
}

// AssignRider dispatches a PENDING order to an active rider.
// The status flip is a single conditional update so two concurrent
// dispatches against the same order cannot both win.
func AssignRider(c *gin.Context) {
	var req AssignRiderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if err := statemachine.CanTransition(order.Status, models.StatusAssigned, "admin"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Order already assigned or completed",
			"reason": err.Error(),
		})
		return
	}

	var rider models.Rider
	if err := config.DB.First(&rider, req.RiderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rider does not exist"})
		return
	}
	if !rider.IsActive {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rider is not active"})
		return
	}

	res := config.DB.Model(&models.Order{}).
		Where("id = ? AND status = ?", order.ID, models.StatusPending).
		Updates(map[string]interface{}{
			"rider_id": rider.ID,
			"status":   models.StatusAssigned,
		})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign rider"})
		return
	}
	if res.RowsAffected == 0 {
		// A concurrent dispatch won the race
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order already assigned or completed"})
		return
	}

	config.DB.Preload("Items.Food").Preload("Rider").First(&order, order.ID)
	c.JSON(http.StatusOK, order)
}

// StoreSummary is the per-store aggregation the dashboards poll for.
type StoreSummary struct {
	StoreID      uint    `json:"store_id"`
	StoreName    string  `json:"store_name"`
	ActiveOrders int     `json:"active_orders"`
	Revenue      float64 `json:"revenue"`
}

// OrdersSummary aggregates active order counts and completed revenue per store
func OrdersSummary(c *gin.Context) {
	var orders []models.Order
	config.DB.Preload("Items.Food").Preload("Store").Find(&orders)

	byStore := map[uint]*StoreSummary{}
	for _, o := range orders {
		s, ok := byStore[o.StoreID]
		if !ok {
			s = &StoreSummary{StoreID: o.StoreID, StoreName: o.Store.Name}
			byStore[o.StoreID] = s
		}
		if !statemachine.IsTerminal(o.Status) {
			s.ActiveOrders++
		}
		if o.Status == models.StatusCompleted {
			s.Revenue += orderSubtotal(o.Items)
		}
	}

	summaries := make([]StoreSummary, 0, len(byStore))
	for _, s := range byStore {
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].StoreID < summaries[j].StoreID })

	c.JSON(http.StatusOK, summaries)
}

// orderSubtotal sums price x quantity over an order's items. Items must
// have their Food preloaded.
func orderSubtotal(items []models.OrderItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Food.Price * float64(it.Quantity)
	}
	return sum
}
