package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sowraj28/GreenGrocerNew/models"
)

// GetProducts lists the catalog. Storefront callers see active products
// only; the back office passes ?all=1 to include deactivated ones.
// Query params: search, category, all.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{}).
			Preload("Variants").
			Preload("Category").
			Order("created_at DESC")

		if c.Query("all") == "" {
			query = query.Where("is_active = ?", true)
		}
		if category := c.Query("category"); category != "" {
			query = query.Where("category_id = ?", category)
		}
		if search := c.Query("search"); search != "" {
			query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+search+"%")
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
