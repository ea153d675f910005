package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sowraj28/GreenGrocerNew/models"
)

type UpdateProductRequest struct {
	Name        string         `json:"name" binding:"required"`
	Description string         `json:"description"`
	ImageURL    string         `json:"image_url"`
	CategoryID  *string        `json:"category_id"`
	IsActive    *bool          `json:"is_active"`
	Variants    []VariantInput `json:"variants" binding:"dive"`
}

// UpdateProduct edits a product and replaces its variant set wholesale.
// Existing variant rows are deleted and recreated; historical order items
// carry their own snapshots so they are unaffected.
// PUT /admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			}
			return
		}

		var req UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		categoryID := req.CategoryID
		if categoryID != nil && *categoryID == "" {
			categoryID = nil
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			updates := map[string]interface{}{
				"name":        req.Name,
				"description": req.Description,
				"image_url":   req.ImageURL,
				"category_id": categoryID,
			}
			if req.IsActive != nil {
				updates["is_active"] = *req.IsActive
			}
			if err := tx.Model(&product).Updates(updates).Error; err != nil {
				return err
			}

			if err := tx.Where("product_id = ?", id).Delete(&models.ProductVariant{}).Error; err != nil {
				return err
			}
			for _, v := range req.Variants {
				variant := models.ProductVariant{
					ProductID: id,
					Weight:    v.Weight,
					Price:     v.Price,
					Stock:     v.Stock,
				}
				if err := tx.Create(&variant).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		db.Preload("Variants").Preload("Category").First(&product, "id = ?", id)
		c.JSON(http.StatusOK, product)
	}
}
