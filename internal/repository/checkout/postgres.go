package checkout

import (
	"context"
	"errors"

	"github.com/Bart563/KBZ-Computers/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Get(ctx context.Context, userID string) (*domain.CheckoutSession, error) {
	const q = `
SELECT user_id::text, step, address, payment, updated_at
FROM checkout_sessions
WHERE user_id = $1
`
	var s domain.CheckoutSession
	var step string
	err := r.pool.QueryRow(ctx, q, userID).Scan(&s.UserID, &step, &s.Address, &s.Payment, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	s.Step = domain.CheckoutStep(step)
	return &s, nil
}

func (r *postgresRepo) Save(ctx context.Context, s domain.CheckoutSession) error {
	const q = `
INSERT INTO checkout_sessions (user_id, step, address, payment, updated_at)
VALUES ($1, $2, $3, $4, now())
ON CONFLICT (user_id) DO UPDATE SET
    step = EXCLUDED.step,
    address = EXCLUDED.address,
    payment = EXCLUDED.payment,
    updated_at = now()
`
	_, err := r.pool.Exec(ctx, q, s.UserID, string(s.Step), s.Address, s.Payment)
	return err
}

func (r *postgresRepo) Delete(ctx context.Context, userID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM checkout_sessions WHERE user_id = $1`, userID)
	return err
}
