package order

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/Bart563/KBZ-Computers/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, o domain.Order) error {
	const q = `
INSERT INTO orders (id, customer_id, order_date, status, address, payment, lines,
                    subtotal_cents, discount_cents, shipping_cents, tax_cents, total_cents, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NULLIF($13, ''))
`
	_, err := r.pool.Exec(ctx, q,
		o.ID,
		o.UserID,
		o.OrderDate,
		string(o.Status),
		o.ShippingAddress,
		o.Payment,
		o.Lines,
		o.SubtotalCents,
		o.DiscountCents,
		o.ShippingCents,
		o.TaxCents,
		o.TotalCents,
		o.Notes,
	)
	if err != nil {
		r.logger.Printf("order repo: create id=%s error=%v", o.ID, err)
	}
	return err
}

const orderColumns = `
id, customer_id::text, order_date, status, address, payment, lines,
subtotal_cents, discount_cents, shipping_cents, tax_cents, total_cents,
COALESCE(notes, ''), COALESCE(tracking_number, ''), COALESCE(estimated_delivery, '')
`

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders WHERE customer_id = $1 ORDER BY order_date DESC`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		r.logger.Printf("order repo: list customer_id=%s error=%v", userID, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) Get(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders WHERE customer_id = $1 AND id = $2`
	o, err := scanOrder(r.pool.QueryRow(ctx, q, userID, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: get id=%s error=%v", orderID, err)
		return nil, err
	}
	return &o, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var o domain.Order
	var status string
	err := row.Scan(
		&o.ID,
		&o.UserID,
		&o.OrderDate,
		&status,
		&o.ShippingAddress,
		&o.Payment,
		&o.Lines,
		&o.SubtotalCents,
		&o.DiscountCents,
		&o.ShippingCents,
		&o.TaxCents,
		&o.TotalCents,
		&o.Notes,
		&o.TrackingNumber,
		&o.EstimatedDelivery,
	)
	o.Status = domain.OrderStatus(status)
	return o, err
}
