package order

import "context"

// Repository defines data access for orders.
type Repository interface {
	// CreateOrder persists a new order and its items atomically in a transaction.
	CreateOrder(ctx context.Context, o *Order) error

	// GetOrderByID retrieves an order with its items by UUID.
	GetOrderByID(ctx context.Context, id string) (*Order, error)

	// ListOrders returns all orders, optionally filtered by status, newest first.
	ListOrders(ctx context.Context, status string) ([]*Order, error)

	// UpdateStatus moves an order to a new status without side effects.
	UpdateStatus(ctx context.Context, id string, status OrderStatus) error

	// ConfirmOrder sets the order CONFIRMED and decrements stock for every
	// line item, floored at zero, in one transaction. The status guard
	// makes the decrement fire at most once: it reports false, with no
	// stock change, when the order was already CONFIRMED.
	ConfirmOrder(ctx context.Context, id string) (bool, error)

	// GetProductForSale fetches the current name, price and stock of a product.
	GetProductForSale(ctx context.Context, productID string) (name string, price float64, stock int, err error)
}
