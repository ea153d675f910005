package adminController

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Sowraj28/GreenGrocerNew/models"
)

var testDBSeq int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:admintest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.Category{},
		&models.Product{},
		&models.ProductVariant{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func seedOrder(t *testing.T, db *gorm.DB, userID string, amount int, status models.OrderStatus) {
	t.Helper()
	order := models.Order{
		UserID:      userID,
		TotalAmount: amount,
		Address:     "addr",
		Phone:       "123",
		Status:      status,
	}
	require.NoError(t, db.Create(&order).Error)
}

func TestGetDashboardStats(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)

	user := models.User{Name: "Customer", Email: "c@demo.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	active := models.Product{Name: "Tomatoes", IsActive: true}
	require.NoError(t, db.Create(&active).Error)
	inactive := models.Product{Name: "Old Stock", IsActive: false}
	require.NoError(t, db.Create(&inactive).Error)

	// revenue covers all four active states but never CANCELLED
	seedOrder(t, db, user.ID, 100, models.OrderStatusPlaced)
	seedOrder(t, db, user.ID, 200, models.OrderStatusPacking)
	seedOrder(t, db, user.ID, 300, models.OrderStatusDispatched)
	seedOrder(t, db, user.ID, 400, models.OrderStatusDelivered)
	seedOrder(t, db, user.ID, 999, models.OrderStatusCancelled)

	r := gin.New()
	r.GET("/admin/stats", GetDashboardStats(db))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var stats DashboardStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))

	assert.Equal(t, int64(1), stats.TotalProducts, "inactive products are not counted")
	assert.Equal(t, int64(5), stats.TotalOrders)
	assert.Equal(t, int64(1), stats.TotalCustomers)
	assert.Equal(t, int64(1000), stats.TotalRevenue, "cancelled orders contribute nothing")
	assert.Len(t, stats.RecentOrders, 5)
}

func TestGetAllCustomers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)

	user := models.User{Name: "Customer", Email: "c@demo.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	seedOrder(t, db, user.ID, 150, models.OrderStatusPlaced)

	r := gin.New()
	r.GET("/admin/customers", GetAllCustomers(db))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/customers", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var customers []models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &customers))
	require.Len(t, customers, 1)
	assert.Len(t, customers[0].Orders, 1)
	assert.NotContains(t, w.Body.String(), `"password"`)
}
