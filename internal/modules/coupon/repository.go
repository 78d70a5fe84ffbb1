package coupon

import "context"

// Repository defines data access for coupons.
type Repository interface {
	// GetByCode looks a coupon up case-insensitively. A missing code
	// returns (nil, nil) so the service can answer without a store error.
	GetByCode(ctx context.Context, code string) (*Coupon, error)

	// Save creates or overwrites a coupon by code.
	Save(ctx context.Context, c *Coupon) error

	// List returns all coupons.
	List(ctx context.Context) ([]*Coupon, error)

	// Delete removes a coupon by code.
	Delete(ctx context.Context, code string) error
}
