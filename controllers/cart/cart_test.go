package cartControllers

import (
	"bytes"
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
	dsn := fmt.Sprintf("file:carttest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.ProductVariant{},
		&models.CartItem{},
	))
	return db
}

// newRouter fakes the customer guard by injecting user_id directly.
func newRouter(db *gorm.DB, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
	})
	r.GET("/cart", GetUserCart(db))
	r.POST("/cart", UpdateCartItem(db))
	r.DELETE("/cart/:variant_id", DeleteCartItem(db))
	r.DELETE("/cart", ClearUserCart(db))
	return r
}

func seedVariant(t *testing.T, db *gorm.DB) models.ProductVariant {
	t.Helper()
	product := models.Product{Name: "Fresh Tomatoes", IsActive: true}
	require.NoError(t, db.Create(&product).Error)
	variant := models.ProductVariant{ProductID: product.ID, Weight: "500g", Price: 30, Stock: 100}
	require.NoError(t, db.Create(&variant).Error)
	return variant
}

func postItem(t *testing.T, r *gin.Engine, input CartItemInput) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(input))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cart", &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateCartItem(t *testing.T) {
	t.Run("adds a new line with a price snapshot", func(t *testing.T) {
		db := newTestDB(t)
		variant := seedVariant(t, db)
		r := newRouter(db, "user-1")

		w := postItem(t, r, CartItemInput{ProductID: variant.ProductID, VariantID: variant.ID, Quantity: 2})
		require.Equal(t, http.StatusCreated, w.Code)

		var item models.CartItem
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
		assert.Equal(t, "Fresh Tomatoes", item.Name)
		assert.Equal(t, 30, item.Price)
		assert.Equal(t, 2, item.Quantity)
	})

	t.Run("posting again replaces the quantity", func(t *testing.T) {
		db := newTestDB(t)
		variant := seedVariant(t, db)
		r := newRouter(db, "user-1")

		postItem(t, r, CartItemInput{ProductID: variant.ProductID, VariantID: variant.ID, Quantity: 2})
		w := postItem(t, r, CartItemInput{ProductID: variant.ProductID, VariantID: variant.ID, Quantity: 5})
		require.Equal(t, http.StatusOK, w.Code)

		var items []models.CartItem
		require.NoError(t, db.Where("user_id = ?", "user-1").Find(&items).Error)
		require.Len(t, items, 1)
		assert.Equal(t, 5, items[0].Quantity)
	})

	t.Run("adding does not touch variant stock", func(t *testing.T) {
		db := newTestDB(t)
		variant := seedVariant(t, db)
		r := newRouter(db, "user-1")

		postItem(t, r, CartItemInput{ProductID: variant.ProductID, VariantID: variant.ID, Quantity: 50})

		var stored models.ProductVariant
		require.NoError(t, db.First(&stored, "id = ?", variant.ID).Error)
		assert.Equal(t, 100, stored.Stock)
	})

	t.Run("unknown variant is rejected", func(t *testing.T) {
		db := newTestDB(t)
		variant := seedVariant(t, db)
		r := newRouter(db, "user-1")

		w := postItem(t, r, CartItemInput{ProductID: variant.ProductID, VariantID: "missing", Quantity: 1})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteAndClearCart(t *testing.T) {
	db := newTestDB(t)
	v1 := seedVariant(t, db)
	v2 := seedVariant(t, db)
	r := newRouter(db, "user-1")

	postItem(t, r, CartItemInput{ProductID: v1.ProductID, VariantID: v1.ID, Quantity: 1})
	postItem(t, r, CartItemInput{ProductID: v2.ProductID, VariantID: v2.ID, Quantity: 1})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/cart/"+v1.ID, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", "user-1").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// deleting an absent line is a 404
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/cart/"+v1.ID, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/cart", nil))
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", "user-1").Count(&count).Error)
	assert.Zero(t, count)
}
