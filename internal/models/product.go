package models

import "gorm.io/gorm"

// Purity is the gold fineness grade of a product.
type Purity string

const (
	Purity18K Purity = "18K Gold"
	Purity22K Purity = "22K Gold"
	Purity24K Purity = "24K Gold"
)

// Product represents a catalog item in the store.
type Product struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string  `json:"name" validate:"required,min=3,max=100"`
	Category    string  `json:"category" validate:"required,max=100"`
	Purity      Purity  `json:"purity" validate:"required,oneof='18K Gold' '22K Gold' '24K Gold'"`
	Weight      float64 `json:"weight" validate:"gt=0"` // grams
	Stock       int     `json:"stock" validate:"gte=0"`
	Price       int64   `json:"price" validate:"required,gt=0"` // rupees per unit
	PriceChange float64 `json:"price_change"`                   // display-only daily delta, percent
	ImageURL    string  `json:"image_url" validate:"omitempty,url"`
	gorm.Model  // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
