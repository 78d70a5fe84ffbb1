package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lielsontattoo/studio-backend/internal/events"
)

// Service defines catalog business logic for categories, products and
// bookable studio services.
type Service interface {
	// Categories
	CreateCategory(ctx context.Context, name string) (*Category, error)
	ListCategories(ctx context.Context) ([]*Category, error)

	// Products
	CreateProduct(ctx context.Context, req SaveProductRequest) (*Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	ListProducts(ctx context.Context, categoryID string) ([]*Product, error)
	UpdateProduct(ctx context.Context, id string, req SaveProductRequest) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error

	// Studio services
	SaveService(ctx context.Context, id string, req SaveServiceRequest) (*ServiceItem, error)
	ListServices(ctx context.Context, activeOnly bool) ([]*ServiceItem, error)
	DeleteService(ctx context.Context, id string) error
}

type service struct {
	categoryRepo CategoryRepository
	productRepo  ProductRepository
	serviceRepo  ServiceRepository
	hub          *events.Hub
}

// NewService creates a new catalog service.
func NewService(categoryRepo CategoryRepository, productRepo ProductRepository, serviceRepo ServiceRepository, hub *events.Hub) Service {
	return &service{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		serviceRepo:  serviceRepo,
		hub:          hub,
	}
}

func (s *service) CreateCategory(ctx context.Context, name string) (*Category, error) {
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	c := &Category{ID: uuid.New(), Name: name}
	if err := s.categoryRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) ListCategories(ctx context.Context) ([]*Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *service) CreateProduct(ctx context.Context, req SaveProductRequest) (*Product, error) {
	p, err := productFromRequest(req)
	if err != nil {
		return nil, err
	}
	p.ID = uuid.New()
	if err := s.productRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.hub.Publish(events.TopicProducts, "created", p)
	return p, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

func (s *service) ListProducts(ctx context.Context, categoryID string) ([]*Product, error) {
	return s.productRepo.List(ctx, categoryID)
}

func (s *service) UpdateProduct(ctx context.Context, id string, req SaveProductRequest) (*Product, error) {
	p, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updated, err := productFromRequest(req)
	if err != nil {
		return nil, err
	}
	p.CategoryID = updated.CategoryID
	p.Name = updated.Name
	p.Description = updated.Description
	p.Price = updated.Price
	p.Stock = updated.Stock
	p.ImageURL = updated.ImageURL
	if err := s.productRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.hub.Publish(events.TopicProducts, "updated", p)
	return p, nil
}

func (s *service) DeleteProduct(ctx context.Context, id string) error {
	return s.productRepo.Delete(ctx, id)
}

// SaveService creates a service when id is empty, otherwise updates it.
func (s *service) SaveService(ctx context.Context, id string, req SaveServiceRequest) (*ServiceItem, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("service name is required")
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("service price must be >= 0")
	}
	item := &ServiceItem{
		Name:     req.Name,
		Price:    req.Price,
		Icon:     req.Icon,
		IsActive: true,
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	if id == "" {
		item.ID = uuid.New()
	} else {
		sid, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("invalid service id: %w", err)
		}
		item.ID = sid
	}
	if err := s.serviceRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *service) ListServices(ctx context.Context, activeOnly bool) ([]*ServiceItem, error) {
	return s.serviceRepo.List(ctx, activeOnly)
}

func (s *service) DeleteService(ctx context.Context, id string) error {
	return s.serviceRepo.Delete(ctx, id)
}

func productFromRequest(req SaveProductRequest) (*Product, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if req.Price <= 0 {
		return nil, fmt.Errorf("product price must be > 0")
	}
	if req.Stock < 0 {
		return nil, fmt.Errorf("product stock must be >= 0")
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("invalid category_id: %w", err)
	}
	return &Product{
		CategoryID:  categoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
	}, nil
}
