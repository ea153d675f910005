package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/Sowraj28/GreenGrocerNew/controllers/product"
)

// SetupRoutes is the single entry-point that wires up the public catalog,
// auth, customer, and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public catalog (no middleware)
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))
	r.GET("/categories", productcontroller.GetAllCategories(db))

	SetupAuthRoutes(r, db)
	SetupUserRoutes(r, db)
	SetupAdminRoutes(r, db)
}
