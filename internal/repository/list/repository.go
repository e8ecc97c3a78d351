package list

import (
	"context"

	"github.com/Bart563/KBZ-Computers/internal/domain"
)

// Store is the remote list store boundary. Implementations persist one
// document per membership, queryable by user and orderable by creation
// time. Uniqueness is not enforced here; toggle semantics at the
// service layer prevent duplicates.
type Store interface {
	// Create persists a new entry and returns the store-assigned id.
	Create(ctx context.Context, kind domain.ListKind, entry domain.ListEntry) (string, error)
	// Find returns all of the user's entries, newest first.
	Find(ctx context.Context, kind domain.ListKind, userID string) ([]domain.ListEntry, error)
	// DeleteMatching removes every entry for (user, product). Removing
	// nothing is success.
	DeleteMatching(ctx context.Context, kind domain.ListKind, userID, productID string) error
	// Clear removes every entry for the user in one batch.
	Clear(ctx context.Context, kind domain.ListKind, userID string) error
}
