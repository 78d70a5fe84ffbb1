package order

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusConfirmed OrderStatus = "CONFIRMED"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// PaymentMethod is how the customer settles the order out-of-band.
type PaymentMethod string

const (
	PaymentMoney PaymentMethod = "money"
	PaymentCard  PaymentMethod = "card"
	PaymentPix   PaymentMethod = "pix"
)

// Address is where a delivery order goes.
type Address struct {
	Neighborhood string `json:"neighborhood"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Reference    string `json:"reference,omitempty"`
}

// OrderItem is an immutable snapshot of a product at checkout time. Catalog
// edits after the sale never change what the customer agreed to pay.
type OrderItem struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	LineTotal float64   `json:"line_total"`
}

// Order is a customer's shop order. Payment happens over WhatsApp; the order
// record is informational plus the stock it reserves on confirmation.
type Order struct {
	ID            uuid.UUID     `json:"id"`
	Items         []*OrderItem  `json:"items"`
	CustomerName  string        `json:"customer_name"`
	Phone         string        `json:"phone"`
	Delivery      bool          `json:"delivery"`
	DeliveryFee   float64       `json:"delivery_fee"`
	Address       *Address      `json:"address,omitempty"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	ChangeFor     *float64      `json:"change_for,omitempty"`
	Subtotal      float64       `json:"subtotal"`
	Discount      float64       `json:"discount"`
	Total         float64       `json:"total"`
	CouponCode    string        `json:"coupon_code,omitempty"`
	Status        OrderStatus   `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// CheckoutItem names a product and how many of it the customer wants.
type CheckoutItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CheckoutRequest is the payload for converting a cart into an order.
type CheckoutRequest struct {
	Items         []CheckoutItem `json:"items"`
	CustomerName  string         `json:"customer_name"`
	Phone         string         `json:"phone"`
	Delivery      bool           `json:"delivery"`
	Address       *Address       `json:"address,omitempty"`
	PaymentMethod string         `json:"payment_method"`
	ChangeFor     *float64       `json:"change_for,omitempty"`
	CouponCode    string         `json:"coupon_code,omitempty"`
}

// UpdateStatusRequest is the payload for advancing an order's status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
