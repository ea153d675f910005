package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPlaced     OrderStatus = "PLACED"     // just created, cancellable
	OrderStatusPacking    OrderStatus = "PACKING"    // being packed
	OrderStatusDispatched OrderStatus = "DISPATCHED" // out for delivery
	OrderStatusDelivered  OrderStatus = "DELIVERED"  // terminal
	OrderStatusCancelled  OrderStatus = "CANCELLED"  // terminal, via cancellation only
)

// statusRank orders the four active states. CANCELLED is deliberately absent:
// it is never a target of the generic status-set operation.
var statusRank = map[OrderStatus]int{
	OrderStatusPlaced:     0,
	OrderStatusPacking:    1,
	OrderStatusDispatched: 2,
	OrderStatusDelivered:  3,
}

// ParseOrderStatus maps a request string onto one of the five states.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(strings.ToUpper(s)) {
	case OrderStatusPlaced:
		return OrderStatusPlaced, nil
	case OrderStatusPacking:
		return OrderStatusPacking, nil
	case OrderStatusDispatched:
		return OrderStatusDispatched, nil
	case OrderStatusDelivered:
		return OrderStatusDelivered, nil
	case OrderStatusCancelled:
		return OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// CanAdvanceTo reports whether an admin status change from s to next is
// allowed: both must be active states and the move must be strictly forward.
func (s OrderStatus) CanAdvanceTo(next OrderStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to > from
}

type Order struct {
	ID          string      `gorm:"primaryKey" json:"id"`
	UserID      string      `gorm:"index;not null" json:"user_id"`
	User        User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount int         `gorm:"not null" json:"total_amount"`
	Address     string      `gorm:"not null" json:"address"`
	Phone       string      `gorm:"not null" json:"phone"`
	Status      OrderStatus `gorm:"type:VARCHAR(20);default:'PLACED'" json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}

// OrderItem snapshots name, weight and price at order time so historical
// orders stay accurate when the catalog changes.
type OrderItem struct {
	ID        string `gorm:"primaryKey" json:"id"`
	OrderID   string `gorm:"index;not null" json:"order_id"`
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id"`
	Name      string `json:"name"`
	Weight    string `json:"weight"`
	Price     int    `json:"price"`
	Quantity  int    `json:"quantity"`
	Checked   bool   `gorm:"default:false" json:"checked"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == "" {
		oi.ID = uuid.NewString()
	}
	return nil
}
