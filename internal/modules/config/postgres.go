package config

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

// The studio_config table holds a single row keyed by id=1.

func (r *postgresRepo) Get(ctx context.Context) (*StudioConfig, error) {
	c := &StudioConfig{}
	err := r.db.QueryRowContext(ctx, `
		SELECT logo_url, primary_color, accent_color, admin_email, admin_pass_hash,
		       closed_dates, delivery_fee, updated_at
		FROM studio_config WHERE id=1`).Scan(
		&c.LogoURL, &c.PrimaryColor, &c.AccentColor, &c.AdminEmail, &c.AdminPassHash,
		pq.Array(&c.ClosedDates), &c.DeliveryFee, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *postgresRepo) Save(ctx context.Context, c *StudioConfig) error {
	c.UpdatedAt = time.Now()
	_, err := r.db.ExecContext(ctx, `
		UPDATE studio_config
		SET logo_url=$1, primary_color=$2, accent_color=$3, admin_email=$4,
		    admin_pass_hash=$5, closed_dates=$6, delivery_fee=$7, updated_at=$8
		WHERE id=1`,
		c.LogoURL, c.PrimaryColor, c.AccentColor, c.AdminEmail,
		c.AdminPassHash, pq.Array(c.ClosedDates), c.DeliveryFee, c.UpdatedAt)
	return err
}
