package alert

import (
	"context"

	"github.com/Bart563/KBZ-Computers/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, alert domain.PriceAlert) (string, error)
	// ListActive returns the user's live alerts, newest first.
	ListActive(ctx context.Context, userID string) ([]domain.PriceAlert, error)
	// Deactivate marks an alert inactive; fulfillment-side workers use
	// the same flag after firing an alert.
	Deactivate(ctx context.Context, userID, alertID string) error
}
