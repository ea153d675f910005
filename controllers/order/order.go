package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sowraj28/GreenGrocerNew/models"
)

// Delivery is free above the threshold, flat otherwise. The fee is computed
// server-side and folded into TotalAmount; it is never stored on its own.
const (
	FreeDeliveryThreshold = 500
	DeliveryFee           = 40
)

func deliveryFee(subtotal int) int {
	if subtotal >= FreeDeliveryThreshold {
		return 0
	}
	return DeliveryFee
}

// -------- Request Structs --------

type PlaceOrderItem struct {
	ProductID string `json:"product_id" binding:"required"`
	VariantID string `json:"variant_id" binding:"required"`
	Name      string `json:"name"`
	Weight    string `json:"weight"`
	Price     int    `json:"price" binding:"required,gt=0"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type PlaceOrderRequest struct {
	Items   []PlaceOrderItem `json:"items" binding:"required,min=1,dive"`
	Address string           `json:"address" binding:"required"`
	Phone   string           `json:"phone" binding:"required"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type SetItemCheckedRequest struct {
	Checked *bool `json:"checked" binding:"required"`
}

// -------- Core Logic --------

// PlaceOrder turns a customer's cart lines into a PLACED order. Stock
// decrements, cart clearing and the order insert run in one transaction so a
// mid-sequence failure never leaves stock decremented without an order.
func PlaceOrder(db *gorm.DB, userID string, req PlaceOrderRequest, policy PlacementPolicy) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		subtotal := 0
		items := make([]models.OrderItem, 0, len(req.Items))

		for _, line := range req.Items {
			if err := AdjustVariantStock(tx, line.VariantID, -line.Quantity, policy.AllowBackorder); err != nil {
				return err
			}
			subtotal += line.Price * line.Quantity
			items = append(items, models.OrderItem{
				ProductID: line.ProductID,
				VariantID: line.VariantID,
				Name:      line.Name,
				Weight:    line.Weight,
				Price:     line.Price,
				Quantity:  line.Quantity,
			})
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		order = models.Order{
			UserID:      userID,
			Items:       items,
			TotalAmount: subtotal + deliveryFee(subtotal),
			Address:     req.Address,
			Phone:       req.Phone,
			Status:      models.OrderStatusPlaced,
			CreatedAt:   time.Now(),
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// CancelOrder is the exact inverse of placement's stock adjustment. The
// status flip is a conditional UPDATE on status = PLACED, so a second cancel
// (or a concurrent admin transition) finds zero rows and fails without
// touching stock again.
func CancelOrder(db *gorm.DB, orderID, userID string) (*models.Order, error) {
	var cancelled models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if order.UserID != userID {
			return ErrForbidden
		}

		res := tx.Model(&models.Order{}).
			Where("id = ? AND status = ?", orderID, models.OrderStatusPlaced).
			Update("status", models.OrderStatusCancelled)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidTransition
		}

		// A product edit replaces the variant set wholesale, so an item may
		// reference a variant row that no longer exists. The cancellation
		// still goes through; there is just no row left to restock.
		for _, item := range order.Items {
			err := AdjustVariantStock(tx, item.VariantID, item.Quantity, true)
			if err != nil && !errors.Is(err, ErrVariantNotFound) {
				return err
			}
		}

		order.Status = models.OrderStatusCancelled
		cancelled = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &cancelled, nil
}

// SetOrderStatus applies an admin transition. Only strictly forward moves
// among the four active states are valid; CANCELLED is reachable solely
// through CancelOrder. Stock is untouched here.
func SetOrderStatus(db *gorm.DB, orderID string, next models.OrderStatus) (*models.Order, error) {
	var order models.Order
	if err := db.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if !order.Status.CanAdvanceTo(next) {
		return nil, ErrInvalidTransition
	}

	res := db.Model(&models.Order{}).
		Where("id = ? AND status = ?", orderID, order.Status).
		Update("status", next)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrInvalidTransition
	}

	order.Status = next
	return &order, nil
}

// SetItemChecked toggles one order item's packing flag, independent of the
// order's status.
func SetItemChecked(db *gorm.DB, orderID, itemID string, checked bool) (*models.OrderItem, error) {
	var item models.OrderItem
	if err := db.First(&item, "id = ? AND order_id = ?", itemID, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	if err := db.Model(&item).Update("checked", checked).Error; err != nil {
		return nil, err
	}
	item.Checked = checked
	return &item, nil
}

// -------- Handlers --------

// POST /orders (customer)
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := PlaceOrder(db, userID, req, PolicyFromEnv())
		if err != nil {
			c.JSON(statusCodeFor(err), gin.H{"error": err.Error()})
			return
		}

		broadcastNewOrder(*order)
		c.JSON(http.StatusCreated, order)
	}
}

// GET /orders (customer: own orders, newest first)
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /admin/orders (admin: all orders with customer identity)
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("User").
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:orderID (customer: owner only)
func GetOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		orderID := c.Param("orderID")

		var order models.Order
		if err := db.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		if order.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /admin/orders/:orderID (admin)
func AdminGetOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var order models.Order
		if err := db.Preload("User").Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// POST /orders/:orderID/cancel (customer)
func CancelOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		orderID := c.Param("orderID")

		order, err := CancelOrder(db, orderID, userID)
		if err != nil {
			if errors.Is(err, ErrInvalidTransition) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot cancel this order"})
				return
			}
			c.JSON(statusCodeFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /admin/orders/:orderID/status (admin)
func SetOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var req SetStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
			return
		}
		next, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := SetOrderStatus(db, orderID, next)
		if err != nil {
			c.JSON(statusCodeFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /admin/orders/:orderID/items/:itemID/checked (admin)
func SetItemCheckedHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		itemID := c.Param("itemID")

		var req SetItemCheckedRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Checked == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "checked is required"})
			return
		}

		item, err := SetItemChecked(db, orderID, itemID, *req.Checked)
		if err != nil {
			c.JSON(statusCodeFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}
