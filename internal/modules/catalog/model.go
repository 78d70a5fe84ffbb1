package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products in the shop (e.g. Piercing, Aftercare, Merch).
type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Product is a shop item with a stock count. Stock never goes below zero;
// it is decremented only when an order is confirmed.
type Product struct {
	ID          uuid.UUID `json:"id"`
	CategoryID  uuid.UUID `json:"category_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ServiceItem is a bookable studio service (haircut, beard, tattoo session).
type ServiceItem struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Icon      string    `json:"icon,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SaveProductRequest holds data for creating or updating a product.
type SaveProductRequest struct {
	CategoryID  string  `json:"category_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"image_url"`
}

// SaveServiceRequest holds data for creating or updating a studio service.
type SaveServiceRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Icon     string  `json:"icon"`
	IsActive *bool   `json:"is_active,omitempty"`
}
