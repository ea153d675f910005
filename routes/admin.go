package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminController "github.com/Sowraj28/GreenGrocerNew/controllers/admin"
	orderControllers "github.com/Sowraj28/GreenGrocerNew/controllers/order"
	productcontroller "github.com/Sowraj28/GreenGrocerNew/controllers/product"
	"github.com/Sowraj28/GreenGrocerNew/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints behind the admin
// session guard.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin)
	{
		// ─────────── Dashboard ───────────
		adminGroup.GET("/stats", adminController.GetDashboardStats(db))
		adminGroup.GET("/customers", adminController.GetAllCustomers(db))
		adminGroup.GET("/admins", adminController.GetAllAdmins(db))
		adminGroup.POST("/upload", adminController.UploadImage())

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productcontroller.GetProducts(db))
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.GET("/ws", orderControllers.OrderFeedHandler)
			orderAdmin.GET("/:orderID", orderControllers.AdminGetOrderHandler(db))
			orderAdmin.PUT("/:orderID/status", orderControllers.SetOrderStatusHandler(db))
			orderAdmin.PUT("/:orderID/items/:itemID/checked", orderControllers.SetItemCheckedHandler(db))
		}
	}
}
