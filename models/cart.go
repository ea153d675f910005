package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartItem is the server-persisted copy of a customer's cart line. Stock is
// not checked here; inventory is only adjusted at checkout.
type CartItem struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index;not null" json:"user_id"`
	ProductID string    `gorm:"not null" json:"product_id"`
	VariantID string    `gorm:"not null" json:"variant_id"`
	Name      string    `json:"name"`
	Weight    string    `json:"weight"`
	Price     int       `json:"price"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) error {
	if ci.ID == "" {
		ci.ID = uuid.NewString()
	}
	return nil
}
