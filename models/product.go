package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is never hard-deleted; deactivation keeps historical order
// references intact.
type Product struct {
	ID          string           `gorm:"primaryKey" json:"id"`
	Name        string           `gorm:"not null" json:"name"`
	Description string           `json:"description"`
	ImageURL    string           `json:"image_url"`
	CategoryID  *string          `json:"category_id"`
	Category    *Category        `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	IsActive    bool             `gorm:"default:true" json:"is_active"`
	Variants    []ProductVariant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variants"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ProductVariant is a purchasable size option. The variant set is replaced
// wholesale when a product is edited.
type ProductVariant struct {
	ID        string `gorm:"primaryKey" json:"id"`
	ProductID string `gorm:"index;not null" json:"product_id"`
	Weight    string `gorm:"not null" json:"weight"`
	Price     int    `gorm:"not null" json:"price"`
	Stock     int    `gorm:"not null;default:0" json:"stock"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (v *ProductVariant) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
