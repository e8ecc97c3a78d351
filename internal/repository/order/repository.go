package order

import (
	"context"

	"github.com/Bart563/KBZ-Computers/internal/domain"
)

type Repository interface {
	// Create persists a freshly placed order. Orders are never updated
	// through this repository; status transitions belong to fulfillment.
	Create(ctx context.Context, order domain.Order) error
	// ListByUser returns the user's orders newest first.
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	// Get returns the order only when it belongs to the given user.
	Get(ctx context.Context, userID, orderID string) (*domain.Order, error)
}
