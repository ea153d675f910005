package orderControllers

import (
	"os"

	"gorm.io/gorm"

	"github.com/Sowraj28/GreenGrocerNew/models"
)

// PlacementPolicy controls whether a placement may drive variant stock
// negative (backorder) or must fail when stock cannot cover a line.
type PlacementPolicy struct {
	AllowBackorder bool
}

// PolicyFromEnv reads the stock policy from STOCK_ALLOW_BACKORDER.
// Backorders are off by default.
func PolicyFromEnv() PlacementPolicy {
	v := os.Getenv("STOCK_ALLOW_BACKORDER")
	return PlacementPolicy{AllowBackorder: v == "1" || v == "true"}
}

// AdjustVariantStock applies a single atomic stock delta to a variant:
// negative on placement, positive on cancellation. The adjustment is one
// conditional UPDATE, never read-modify-write, so concurrent orders on the
// same variant cannot lose updates. With allowNegative false a decrement is
// guarded by stock >= quantity and fails instead of going below zero.
func AdjustVariantStock(tx *gorm.DB, variantID string, delta int, allowNegative bool) error {
	q := tx.Model(&models.ProductVariant{}).Where("id = ?", variantID)
	if delta < 0 && !allowNegative {
		q = q.Where("stock >= ?", -delta)
	}
	res := q.UpdateColumn("stock", gorm.Expr("stock + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.ProductVariant{}).Where("id = ?", variantID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrVariantNotFound
		}
		return ErrInsufficientStock
	}
	return nil
}
