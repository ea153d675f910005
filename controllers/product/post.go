package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sowraj28/GreenGrocerNew/models"
)

type VariantInput struct {
	Weight string `json:"weight" binding:"required"`
	Price  int    `json:"price" binding:"required,gt=0"`
	Stock  int    `json:"stock" binding:"min=0"`
}

type CreateProductRequest struct {
	Name        string         `json:"name" binding:"required"`
	Description string         `json:"description"`
	ImageURL    string         `json:"image_url"`
	CategoryID  *string        `json:"category_id"`
	Variants    []VariantInput `json:"variants" binding:"required,min=1,dive"`
}

// CreateProduct creates a product together with its variant set.
// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if req.CategoryID != nil && *req.CategoryID != "" {
			var category models.Category
			if err := db.First(&category, "id = ?", *req.CategoryID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
		} else {
			req.CategoryID = nil
		}

		variants := make([]models.ProductVariant, 0, len(req.Variants))
		for _, v := range req.Variants {
			variants = append(variants, models.ProductVariant{
				Weight: v.Weight,
				Price:  v.Price,
				Stock:  v.Stock,
			})
		}

		product := models.Product{
			Name:        req.Name,
			Description: req.Description,
			ImageURL:    req.ImageURL,
			CategoryID:  req.CategoryID,
			IsActive:    true,
			Variants:    variants,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		db.Preload("Variants").Preload("Category").First(&product, "id = ?", product.ID)
		c.JSON(http.StatusCreated, product)
	}
}
