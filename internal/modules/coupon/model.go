package coupon

import "time"

// Coupon is a percentage discount code. Codes are unique case-insensitively.
type Coupon struct {
	Code      string    `json:"code"`
	Percent   float64   `json:"percent"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SaveCouponRequest creates a coupon or overwrites the one with the same code.
type SaveCouponRequest struct {
	Code    string  `json:"code"`
	Percent float64 `json:"percent"`
	Active  bool    `json:"active"`
}

// ValidateRequest asks what a code is worth against a cart subtotal.
type ValidateRequest struct {
	Code     string  `json:"code"`
	Subtotal float64 `json:"subtotal"`
}

// ValidateResponse reports the discount for a valid code, or an error message.
type ValidateResponse struct {
	Valid    bool    `json:"valid"`
	Code     string  `json:"code,omitempty"`
	Percent  float64 `json:"percent,omitempty"`
	Discount float64 `json:"discount"`
	Message  string  `json:"message,omitempty"`
}
