package booking

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

// CreateIfSlotFree inserts the appointment guarded by a NOT EXISTS check so
// two racing bookings for the same slot cannot both land. The enforcement
// lives in the database, not in client logic.
func (r *postgresRepo) CreateIfSlotFree(ctx context.Context, a *Appointment) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO appointments
		  (id, service_id, service_name, price, customer_name, phone,
		   date, time, status, notes, tattoo_image_url, tattoo_size, tattoo_location, created_at)
		SELECT $1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14
		WHERE NOT EXISTS (
		  SELECT 1 FROM appointments
		  WHERE date=$7 AND time=$8 AND status <> 'CANCELLED')`,
		a.ID, a.ServiceID, a.ServiceName, a.Price, a.CustomerName, a.Phone,
		a.Date, a.Time, a.Status, a.Notes, a.TattooImageURL, a.TattooSize,
		a.TattooLocation, a.CreatedAt)
	if err != nil {
		// the partial unique index on (date, time) catches the race the
		// NOT EXISTS read misses
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return false, nil
		}
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Appointment, error) {
	return scanAppointment(r.db.QueryRowContext(ctx, `
		SELECT id, service_id, service_name, price, customer_name, phone,
		       date, time, status, notes, tattoo_image_url, tattoo_size, tattoo_location,
		       created_at, updated_at
		FROM appointments WHERE id=$1`, id))
}

func (r *postgresRepo) List(ctx context.Context, includeCancelled bool) ([]*Appointment, error) {
	query := `SELECT id, service_id, service_name, price, customer_name, phone,
	                 date, time, status, notes, tattoo_image_url, tattoo_size, tattoo_location,
	                 created_at, updated_at
	          FROM appointments`
	if !includeCancelled {
		query += ` WHERE status <> 'CANCELLED'`
	}
	query += ` ORDER BY date DESC, time DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var appts []*Appointment
	for rows.Next() {
		a, err := scanAppointmentRows(rows)
		if err != nil {
			return nil, err
		}
		appts = append(appts, a)
	}
	return appts, rows.Err()
}

func (r *postgresRepo) BookedTimes(ctx context.Context, date string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT time FROM appointments
		WHERE date=$1 AND status <> 'CANCELLED'
		ORDER BY time ASC`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var times []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		times = append(times, t)
	}
	return times, rows.Err()
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id string, status AppointmentStatus) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE appointments SET status=$1, updated_at=$2 WHERE id=$3`,
		status, time.Now(), id)
	return err
}

// ── helpers ──────────────────────────────────────────────────────────────────

func scanAppointment(row *sql.Row) (*Appointment, error) {
	a := &Appointment{}
	err := row.Scan(
		&a.ID, &a.ServiceID, &a.ServiceName, &a.Price, &a.CustomerName, &a.Phone,
		&a.Date, &a.Time, &a.Status, &a.Notes, &a.TattooImageURL, &a.TattooSize,
		&a.TattooLocation, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func scanAppointmentRows(rows *sql.Rows) (*Appointment, error) {
	a := &Appointment{}
	err := rows.Scan(
		&a.ID, &a.ServiceID, &a.ServiceName, &a.Price, &a.CustomerName, &a.Phone,
		&a.Date, &a.Time, &a.Status, &a.Notes, &a.TattooImageURL, &a.TattooSize,
		&a.TattooLocation, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}
