package catalog

import (
	"context"
	"database/sql"
	"time"
)

// ── categories ───────────────────────────────────────────────────────────────

type categoryPostgresRepo struct{ db *sql.DB }

func NewCategoryPostgresRepository(db *sql.DB) CategoryRepository {
	return &categoryPostgresRepo{db: db}
}

func (r *categoryPostgresRepo) Create(ctx context.Context, c *Category) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (id, name) VALUES ($1,$2)`, c.ID, c.Name)
	return err
}

func (r *categoryPostgresRepo) List(ctx context.Context) ([]*Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, created_at, updated_at FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var cats []*Category
	for rows.Next() {
		c := &Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// ── products ─────────────────────────────────────────────────────────────────

type productPostgresRepo struct{ db *sql.DB }

func NewProductPostgresRepository(db *sql.DB) ProductRepository {
	return &productPostgresRepo{db: db}
}

func (r *productPostgresRepo) Create(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products (id, category_id, name, description, price, stock, image_url)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		p.ID, p.CategoryID, p.Name, p.Description, p.Price, p.Stock, p.ImageURL)
	return err
}

func (r *productPostgresRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	p := &Product{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, category_id, name, description, price, stock, image_url, created_at, updated_at
		FROM products WHERE id=$1`, id).Scan(
		&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.Price, &p.Stock,
		&p.ImageURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *productPostgresRepo) List(ctx context.Context, categoryID string) ([]*Product, error) {
	query := `SELECT id, category_id, name, description, price, stock, image_url, created_at, updated_at
	          FROM products`
	args := []interface{}{}
	if categoryID != "" {
		query += ` WHERE category_id=$1`
		args = append(args, categoryID)
	}
	query += ` ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var products []*Product
	for rows.Next() {
		p := &Product{}
		if err := rows.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.Price,
			&p.Stock, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *productPostgresRepo) Update(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET category_id=$1, name=$2, description=$3, price=$4, stock=$5, image_url=$6, updated_at=$7
		WHERE id=$8`,
		p.CategoryID, p.Name, p.Description, p.Price, p.Stock, p.ImageURL, time.Now(), p.ID)
	return err
}

func (r *productPostgresRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id=$1`, id)
	return err
}

// ── studio services ──────────────────────────────────────────────────────────

type servicePostgresRepo struct{ db *sql.DB }

func NewServicePostgresRepository(db *sql.DB) ServiceRepository {
	return &servicePostgresRepo{db: db}
}

func (r *servicePostgresRepo) Save(ctx context.Context, s *ServiceItem) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO services (id, name, price, icon, is_active)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (id) DO UPDATE
		SET name=EXCLUDED.name, price=EXCLUDED.price, icon=EXCLUDED.icon,
		    is_active=EXCLUDED.is_active, updated_at=now()`,
		s.ID, s.Name, s.Price, s.Icon, s.IsActive)
	return err
}

func (r *servicePostgresRepo) GetByID(ctx context.Context, id string) (*ServiceItem, error) {
	s := &ServiceItem{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, price, icon, is_active, created_at, updated_at
		FROM services WHERE id=$1`, id).Scan(
		&s.ID, &s.Name, &s.Price, &s.Icon, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *servicePostgresRepo) List(ctx context.Context, activeOnly bool) ([]*ServiceItem, error) {
	query := `SELECT id, name, price, icon, is_active, created_at, updated_at FROM services`
	if activeOnly {
		query += ` WHERE is_active=true`
	}
	query += ` ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*ServiceItem
	for rows.Next() {
		s := &ServiceItem{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Price, &s.Icon, &s.IsActive,
			&s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

func (r *servicePostgresRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id=$1`, id)
	return err
}
