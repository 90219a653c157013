package models

import (
	"time"

	"gorm.io/gorm"
)

// Customer represents an entry in the customer directory. TotalOrders and
// LastPurchase are maintained by order submission, not settable directly.
type Customer struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name         string    `json:"name" validate:"required,min=2,max=100"`
	AvatarURL    string    `json:"avatar_url" validate:"omitempty,url"`
	LastPurchase time.Time `json:"last_purchase"`
	TotalOrders  int       `json:"total_orders" validate:"gte=0"`
	Phone        string    `json:"phone,omitempty" validate:"omitempty,max=20"`
	Email        string    `json:"email,omitempty" validate:"omitempty,email"`
	gorm.Model   // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
