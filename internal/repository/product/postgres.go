package product

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

const productColumns = `
id, name, COALESCE(description, ''), price_cents, original_price_cents,
COALESCE(image, ''), images, rating, review_count, COALESCE(badge, ''),
category, brand, in_stock, stock_count, specifications, created_at
`

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	q := `SELECT ` + productColumns + ` FROM products ORDER BY created_at ASC, id ASC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	q := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	row := r.pool.QueryRow(ctx, q, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) GetByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	q := `SELECT ` + productColumns + ` FROM products WHERE id = ANY($1)`
	rows, err := r.pool.Query(ctx, q, ids)
	if err != nil {
		r.logger.Printf("product repo: get by ids error=%v", err)
		return nil, err
	}
	defer rows.Close()

	byID := make(map[string]domain.Product, len(ids))
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		byID[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Preserve the caller's ordering, skipping unresolved ids.
	result := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, product domain.Product) error {
	const q = `
INSERT INTO products (id, name, description, price_cents, original_price_cents, image, images,
                      rating, review_count, badge, category, brand, in_stock, stock_count, specifications)
VALUES ($1, $2, NULLIF($3, ''), $4, $5, NULLIF($6, ''), $7, $8, $9, NULLIF($10, ''), $11, $12, $13, $14, $15)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents,
    original_price_cents = EXCLUDED.original_price_cents,
    image = EXCLUDED.image,
    images = EXCLUDED.images,
    rating = EXCLUDED.rating,
    review_count = EXCLUDED.review_count,
    badge = EXCLUDED.badge,
    category = EXCLUDED.category,
    brand = EXCLUDED.brand,
    in_stock = EXCLUDED.in_stock,
    stock_count = EXCLUDED.stock_count,
    specifications = EXCLUDED.specifications
`
	_, err := r.pool.Exec(ctx, q,
		product.ID,
		product.Name,
		product.Description,
		product.PriceCents,
		product.OriginalPriceCents,
		product.Image,
		product.Images,
		product.Rating,
		product.ReviewCount,
		product.Badge,
		product.Category,
		product.Brand,
		product.InStock,
		product.StockCount,
		product.Specifications,
	)
	if err != nil {
		r.logger.Printf("product repo: upsert id=%s error=%v", product.ID, err)
	}
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.PriceCents,
		&p.OriginalPriceCents,
		&p.Image,
		&p.Images,
		&p.Rating,
		&p.ReviewCount,
		&p.Badge,
		&p.Category,
		&p.Brand,
		&p.InStock,
		&p.StockCount,
		&p.Specifications,
		&p.CreatedAt,
	)
	return p, err
}
