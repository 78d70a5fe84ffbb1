package catalog

import "context"

// CategoryRepository defines data access for product categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *Category) error
	List(ctx context.Context) ([]*Category, error)
}

// ProductRepository defines data access for products.
type ProductRepository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, categoryID string) ([]*Product, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id string) error
}

// ServiceRepository defines data access for bookable studio services.
type ServiceRepository interface {
	Save(ctx context.Context, s *ServiceItem) error
	GetByID(ctx context.Context, id string) (*ServiceItem, error)
	List(ctx context.Context, activeOnly bool) ([]*ServiceItem, error)
	Delete(ctx context.Context, id string) error
}
