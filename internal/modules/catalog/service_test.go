package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

type fakeCategoryRepo struct{ categories map[string]*Category }

func (f *fakeCategoryRepo) Create(ctx context.Context, c *Category) error {
	f.categories[c.ID.String()] = c
	return nil
}
func (f *fakeCategoryRepo) List(ctx context.Context) ([]*Category, error) { return nil, nil }

type fakeProductRepo struct{ products map[string]*Product }

func (f *fakeProductRepo) Create(ctx context.Context, p *Product) error {
	f.products[p.ID.String()] = p
	return nil
}
func (f *fakeProductRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, errors.New("no rows")
	}
	return p, nil
}
func (f *fakeProductRepo) List(ctx context.Context, categoryID string) ([]*Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Update(ctx context.Context, p *Product) error {
	f.products[p.ID.String()] = p
	return nil
}
func (f *fakeProductRepo) Delete(ctx context.Context, id string) error {
	delete(f.products, id)
	return nil
}

type fakeServiceRepo struct{ items map[string]*ServiceItem }

func (f *fakeServiceRepo) Save(ctx context.Context, s *ServiceItem) error {
	f.items[s.ID.String()] = s
	return nil
}
func (f *fakeServiceRepo) GetByID(ctx context.Context, id string) (*ServiceItem, error) {
	s, ok := f.items[id]
	if !ok {
		return nil, errors.New("no rows")
	}
	return s, nil
}
func (f *fakeServiceRepo) List(ctx context.Context, activeOnly bool) ([]*ServiceItem, error) {
	return nil, nil
}
func (f *fakeServiceRepo) Delete(ctx context.Context, id string) error {
	delete(f.items, id)
	return nil
}

func newTestService() (Service, *fakeProductRepo, *fakeServiceRepo) {
	products := &fakeProductRepo{products: make(map[string]*Product)}
	services := &fakeServiceRepo{items: make(map[string]*ServiceItem)}
	categories := &fakeCategoryRepo{categories: make(map[string]*Category)}
	return NewService(categories, products, services, nil), products, services
}

func TestCreateProductValidation(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	categoryID := uuid.New().String()

	cases := []struct {
		name string
		req  SaveProductRequest
	}{
		{"missing name", SaveProductRequest{CategoryID: categoryID, Price: 10, Stock: 1}},
		{"zero price", SaveProductRequest{CategoryID: categoryID, Name: "X", Price: 0, Stock: 1}},
		{"negative stock", SaveProductRequest{CategoryID: categoryID, Name: "X", Price: 10, Stock: -1}},
		{"bad category id", SaveProductRequest{CategoryID: "nope", Name: "X", Price: 10, Stock: 1}},
	}
	for _, tc := range cases {
		if _, err := svc.CreateProduct(ctx, tc.req); err == nil {
			t.Errorf("%s: should be refused", tc.name)
		}
	}

	p, err := svc.CreateProduct(ctx, SaveProductRequest{
		CategoryID: categoryID, Name: "Pomada Cicatrizante", Price: 15, Stock: 20,
	})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if p.ID == uuid.Nil {
		t.Errorf("created product has no id")
	}
	if p.Stock != 20 || p.Price != 15 {
		t.Errorf("product = %+v", p)
	}
}

func TestUpdateProductReplacesFields(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()
	categoryID := uuid.New().String()

	p, err := svc.CreateProduct(ctx, SaveProductRequest{
		CategoryID: categoryID, Name: "Pomada", Price: 15, Stock: 20,
	})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	updated, err := svc.UpdateProduct(ctx, p.ID.String(), SaveProductRequest{
		CategoryID: categoryID, Name: "Pomada Premium", Price: 18, Stock: 12,
	})
	if err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}
	if updated.Name != "Pomada Premium" || updated.Price != 18 || updated.Stock != 12 {
		t.Errorf("updated product = %+v", updated)
	}
	if updated.ID != p.ID {
		t.Errorf("update must keep the id")
	}
	if stored := repo.products[p.ID.String()]; stored.Name != "Pomada Premium" {
		t.Errorf("repository not updated: %+v", stored)
	}
}

func TestSaveServiceCreateAndUpdate(t *testing.T) {
	svc, _, repo := newTestService()
	ctx := context.Background()

	item, err := svc.SaveService(ctx, "", SaveServiceRequest{Name: "Corte de Cabelo", Price: 35})
	if err != nil {
		t.Fatalf("SaveService: %v", err)
	}
	if item.ID == uuid.Nil {
		t.Fatalf("created service has no id")
	}
	if !item.IsActive {
		t.Errorf("new service should default to active")
	}

	inactive := false
	updated, err := svc.SaveService(ctx, item.ID.String(), SaveServiceRequest{
		Name: "Corte de Cabelo", Price: 40, IsActive: &inactive,
	})
	if err != nil {
		t.Fatalf("SaveService update: %v", err)
	}
	if updated.ID != item.ID {
		t.Errorf("update must keep the id")
	}
	if updated.Price != 40 || updated.IsActive {
		t.Errorf("updated service = %+v", updated)
	}
	if len(repo.items) != 1 {
		t.Errorf("update must not create a second row, have %d", len(repo.items))
	}
}

func TestSaveServiceValidation(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.SaveService(ctx, "", SaveServiceRequest{Price: 35}); err == nil {
		t.Errorf("nameless service should be refused")
	}
	if _, err := svc.SaveService(ctx, "", SaveServiceRequest{Name: "X", Price: -1}); err == nil {
		t.Errorf("negative price should be refused")
	}
	if _, err := svc.SaveService(ctx, "not-a-uuid", SaveServiceRequest{Name: "X", Price: 1}); err == nil {
		t.Errorf("bad id should be refused")
	}
}

func TestCreateCategory(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.CreateCategory(ctx, ""); err == nil {
		t.Errorf("nameless category should be refused")
	}
	c, err := svc.CreateCategory(ctx, "Piercing")
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if c.Name != "Piercing" || c.ID == uuid.Nil {
		t.Errorf("category = %+v", c)
	}
}
