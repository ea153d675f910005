package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sowraj28/GreenGrocerNew/models"
)

type DashboardStats struct {
	TotalProducts  int64          `json:"totalProducts"`
	TotalOrders    int64          `json:"totalOrders"`
	TotalCustomers int64          `json:"totalCustomers"`
	TotalRevenue   int64          `json:"totalRevenue"`
	RecentOrders   []models.Order `json:"recentOrders"`
}

// GetDashboardStats returns the back-office snapshot. Revenue sums
// TotalAmount over every non-cancelled order; nothing is cached, each
// request recomputes from the store.
// GET /admin/stats
func GetDashboardStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats := DashboardStats{}

		if err := db.Model(&models.Product{}).Where("is_active = ?", true).Count(&stats.TotalProducts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products"})
			return
		}
		if err := db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count orders"})
			return
		}
		if err := db.Model(&models.User{}).Count(&stats.TotalCustomers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count customers"})
			return
		}

		if err := db.Model(&models.Order{}).
			Where("status <> ?", models.OrderStatusCancelled).
			Select("COALESCE(SUM(total_amount), 0)").
			Scan(&stats.TotalRevenue).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate revenue"})
			return
		}

		if err := db.Preload("User").
			Order("created_at DESC").
			Limit(5).
			Find(&stats.RecentOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recent orders"})
			return
		}

		c.JSON(http.StatusOK, stats)
	}
}
