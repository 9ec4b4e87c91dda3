package routes

import (
	"quickbite-api/handlers"
	"quickbite-api/middleware"
	"quickbite-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Auth ───────────────────────────────────────────────────────
	r.POST("/auth/login", handlers.Login)
	r.POST("/auth/register", handlers.Register)

	// ── Public catalog (customer browsing polls these) ─────────────
	r.GET("/store", handlers.ListOpenStores)
	r.GET("/store/:ownerId", handlers.GetStoreByOwner)
	r.GET("/stores/items/:id", handlers.GetFoodItem)
	r.GET("/food", handlers.ListFood)
	r.GET("/riders/active", handlers.ListActiveRiders)

	// ── Store owner ────────────────────────────────────────────────
	owner := r.Group("/")
	owner.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleStoreOwner))
	{
		owner.POST("/store", handlers.CreateStore)
		owner.POST("/store/item", handlers.AddFoodItem)
		owner.PATCH("/stores/items/:id", handlers.UpdateFoodItem)
		owner.DELETE("/stores/items/:id", handlers.DeleteFoodItem)
	}

	// ── Orders ─────────────────────────────────────────────────────
	r.POST("/orders",
		middleware.AuthRequired(), middleware.RoleRequired(models.RoleCustomer),
		handlers.CreateOrder)
	r.GET("/orders",
		middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin, models.RoleStoreOwner),
		handlers.ListOrders)
	r.GET("/orders/summary",
		middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin, models.RoleStoreOwner),
		handlers.OrdersSummary)
	r.GET("/orders/riders",
		middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin),
		handlers.ListActiveRiders)
	r.PATCH("/orders/:id/assign",
		middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin),
		handlers.AssignRider)

	// ── Riders ─────────────────────────────────────────────────────
	r.GET("/riders/:id/orders",
		middleware.AuthRequired(), middleware.RoleRequired(models.RoleRider),
		handlers.GetAssignedOrders)
	r.POST("/riders/complete/:orderId",
		middleware.AuthRequired(), middleware.RoleRequired(models.RoleRider),
		handlers.CompleteOrder)
}
