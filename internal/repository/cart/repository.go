package cart

import (
	"context"

	"github.com/Bart563/KBZ-Computers/internal/domain"
)

type Repository interface {
	// GetOrCreate returns the customer's cart with its lines, creating
	// an empty cart on first use.
	GetOrCreate(ctx context.Context, customerID string) (*domain.Cart, error)
	// UpsertLine sets the absolute quantity for a product line,
	// inserting the line when absent.
	UpsertLine(ctx context.Context, cartID, productID string, quantity int, unitPriceCents int64) error
	// DeleteLine removes a product line; deleting an absent line is a no-op.
	DeleteLine(ctx context.Context, cartID, productID string) error
	// Clear removes every line from the cart.
	Clear(ctx context.Context, cartID string) error
}
