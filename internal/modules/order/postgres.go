package order

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

// CreateOrder inserts the order and all its items inside a single transaction.
func (r *postgresRepo) CreateOrder(ctx context.Context, o *Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var neighborhood, street, number, reference sql.NullString
	if o.Address != nil {
		neighborhood = sql.NullString{String: o.Address.Neighborhood, Valid: true}
		street = sql.NullString{String: o.Address.Street, Valid: true}
		number = sql.NullString{String: o.Address.Number, Valid: true}
		reference = sql.NullString{String: o.Address.Reference, Valid: true}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders
		  (id, customer_name, phone, delivery, delivery_fee,
		   addr_neighborhood, addr_street, addr_number, addr_reference,
		   payment_method, change_for, subtotal, discount, total, coupon_code, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)`,
		o.ID, o.CustomerName, o.Phone, o.Delivery, o.DeliveryFee,
		neighborhood, street, number, reference,
		o.PaymentMethod, o.ChangeFor, o.Subtotal, o.Discount, o.Total,
		nullIfEmpty(o.CouponCode), o.Status)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, item := range o.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (id, order_id, product_id, name, price, quantity, line_total)
			VALUES ($1,$2,$3,$4,$5,$6,$7)`,
			item.ID, o.ID, item.ProductID, item.Name, item.Price, item.Quantity, item.LineTotal)
		if err != nil {
			return fmt.Errorf("insert order_item: %w", err)
		}
	}

	return tx.Commit()
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, id string) (*Order, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	o, err := scanOrder(r.db.QueryRowContext(ctx, selectOrder+` WHERE id=$1`, uid))
	if err != nil {
		return nil, err
	}
	o.Items, err = r.listItems(ctx, o.ID)
	return o, err
}

func (r *postgresRepo) ListOrders(ctx context.Context, status string) ([]*Order, error) {
	query := selectOrder
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status=$1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var orders []*Order
	for rows.Next() {
		o, err := scanOrderRows(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range orders {
		if o.Items, err = r.listItems(ctx, o.ID); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id string, status OrderStatus) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status=$1, updated_at=$2 WHERE id=$3`,
		status, time.Now(), id)
	return err
}

// ConfirmOrder guards the stock decrement with the status flip itself: only
// the transaction that moves the row off a non-CONFIRMED status performs the
// decrements, so racing confirmations decrement at most once.
func (r *postgresRepo) ConfirmOrder(ctx context.Context, id string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE orders SET status=$1, updated_at=$2
		WHERE id=$3 AND status <> $1`,
		StatusConfirmed, time.Now(), id)
	if err != nil {
		return false, fmt.Errorf("confirm order: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n == 0 {
		// already confirmed; nothing to decrement
		return false, tx.Commit()
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE products p
		SET stock = GREATEST(p.stock - oi.quantity, 0), updated_at = $2
		FROM order_items oi
		WHERE oi.order_id = $1 AND oi.product_id = p.id`,
		id, time.Now())
	if err != nil {
		return false, fmt.Errorf("decrement stock: %w", err)
	}

	return true, tx.Commit()
}

func (r *postgresRepo) GetProductForSale(ctx context.Context, productID string) (string, float64, int, error) {
	var name string
	var price float64
	var stock int
	err := r.db.QueryRowContext(ctx,
		`SELECT name, price, stock FROM products WHERE id=$1`, productID).
		Scan(&name, &price, &stock)
	return name, price, stock, err
}

// ── helpers ──────────────────────────────────────────────────────────────────

const selectOrder = `
	SELECT id, customer_name, phone, delivery, delivery_fee,
	       addr_neighborhood, addr_street, addr_number, addr_reference,
	       payment_method, change_for, subtotal, discount, total, coupon_code,
	       status, created_at, updated_at
	FROM orders`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row *sql.Row) (*Order, error)    { return scanOrderFrom(row) }
func scanOrderRows(rows *sql.Rows) (*Order, error) { return scanOrderFrom(rows) }

func scanOrderFrom(row rowScanner) (*Order, error) {
	o := &Order{}
	var neighborhood, street, number, reference, couponCode sql.NullString
	var changeFor sql.NullFloat64
	err := row.Scan(
		&o.ID, &o.CustomerName, &o.Phone, &o.Delivery, &o.DeliveryFee,
		&neighborhood, &street, &number, &reference,
		&o.PaymentMethod, &changeFor, &o.Subtotal, &o.Discount, &o.Total,
		&couponCode, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if street.Valid || neighborhood.Valid {
		o.Address = &Address{
			Neighborhood: neighborhood.String,
			Street:       street.String,
			Number:       number.String,
			Reference:    reference.String,
		}
	}
	if changeFor.Valid {
		o.ChangeFor = &changeFor.Float64
	}
	o.CouponCode = couponCode.String
	return o, nil
}

func (r *postgresRepo) listItems(ctx context.Context, orderID uuid.UUID) ([]*OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, name, price, quantity, line_total
		FROM order_items WHERE order_id=$1`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*OrderItem
	for rows.Next() {
		item := &OrderItem{}
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID,
			&item.Name, &item.Price, &item.Quantity, &item.LineTotal); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
