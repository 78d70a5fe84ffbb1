package coupon

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) GetByCode(ctx context.Context, code string) (*Coupon, error) {
	c := &Coupon{}
	err := r.db.QueryRowContext(ctx, `
		SELECT code, percent, active, created_at, updated_at
		FROM coupons WHERE LOWER(code)=LOWER($1)`, code).Scan(
		&c.Code, &c.Percent, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *postgresRepo) Save(ctx context.Context, c *Coupon) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO coupons (code, percent, active)
		VALUES ($1,$2,$3)
		ON CONFLICT (code) DO UPDATE
		SET percent=EXCLUDED.percent, active=EXCLUDED.active, updated_at=now()`,
		c.Code, c.Percent, c.Active)
	return err
}

func (r *postgresRepo) List(ctx context.Context) ([]*Coupon, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT code, percent, active, created_at, updated_at
		FROM coupons ORDER BY code ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var coupons []*Coupon
	for rows.Next() {
		c := &Coupon{}
		if err := rows.Scan(&c.Code, &c.Percent, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		coupons = append(coupons, c)
	}
	return coupons, rows.Err()
}

func (r *postgresRepo) Delete(ctx context.Context, code string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM coupons WHERE LOWER(code)=LOWER($1)`, code)
	return err
}
