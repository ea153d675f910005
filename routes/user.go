package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/Sowraj28/GreenGrocerNew/controllers/cart"
	orderControllers "github.com/Sowraj28/GreenGrocerNew/controllers/order"
	userControllers "github.com/Sowraj28/GreenGrocerNew/controllers/user"
	"github.com/Sowraj28/GreenGrocerNew/middleware"
)

// SetupUserRoutes registers the customer-realm endpoints. All of them
// require a customer session.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	// ──────────────── Shopping Cart ────────────────
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.RequireCustomer)
	{
		cartGroup.GET("", cartControllers.GetUserCart(db))
		cartGroup.POST("", cartControllers.UpdateCartItem(db))
		cartGroup.DELETE("/:variant_id", cartControllers.DeleteCartItem(db))
		cartGroup.DELETE("", cartControllers.ClearUserCart(db))
	}

	// ──────────────── Orders ────────────────
	orderGroup := r.Group("/orders")
	orderGroup.Use(middleware.RequireCustomer)
	{
		orderGroup.POST("", orderControllers.PlaceOrderHandler(db))
		orderGroup.GET("", orderControllers.GetUserOrdersHandler(db))
		orderGroup.GET("/:orderID", orderControllers.GetOrderHandler(db))
		orderGroup.POST("/:orderID/cancel", orderControllers.CancelOrderHandler(db))
	}

	// ──────────────── Profile ────────────────
	profileGroup := r.Group("/profile")
	profileGroup.Use(middleware.RequireCustomer)
	{
		profileGroup.GET("", userControllers.GetUser(db))
		profileGroup.PUT("", userControllers.UpdateUser(db))
	}
}
