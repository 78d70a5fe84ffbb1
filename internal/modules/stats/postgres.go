package stats

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) ListOrderRecords(ctx context.Context) ([]OrderRecord, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, total, created_at FROM orders`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var records []OrderRecord
	for rows.Next() {
		var rec OrderRecord
		if err := rows.Scan(&rec.Status, &rec.Total, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *postgresRepo) CountPendingAppointments(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM appointments WHERE status='PENDING'`).Scan(&n)
	return n, err
}
