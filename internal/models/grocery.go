package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is one item in the grocery store catalog. The catalog is seeded
// at boot and read-only at runtime.
type Product struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null;size:150" json:"name"`
	Category    string    `gorm:"not null;size:100;index" json:"category"`
	Price       float64   `gorm:"not null" json:"price"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `gorm:"type:text" json:"imageUrl"`
	ModelURL    string    `gorm:"type:text" json:"modelUrl"`
	CreatedAt   time.Time `json:"-"`
}

// CartItem is one product in a user's grocery cart.
type CartItem struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email     string    `gorm:"not null;size:255;index" json:"email"`
	ProductID int       `gorm:"not null" json:"product_id"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"-"`
}
