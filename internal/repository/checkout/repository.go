package checkout

import (
	"context"

	"github.com/Bart563/KBZ-Computers/internal/domain"
)

type Repository interface {
	// Get returns the user's in-progress session or domain.ErrNotFound.
	Get(ctx context.Context, userID string) (*domain.CheckoutSession, error)
	// Save upserts the session keyed by user.
	Save(ctx context.Context, session domain.CheckoutSession) error
	// Delete removes the session; deleting an absent session is a no-op.
	Delete(ctx context.Context, userID string) error
}
