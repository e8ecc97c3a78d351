// Package list synchronizes the per-user wishlist and compare sets
// against the remote document store. Membership uses toggle semantics:
// add-if-absent, remove-if-present. The local view is a read-through of
// the store; after every mutation the set is fully reloaded so a
// successful call is immediately visible to the next read.
package list

import (
	"context"
	"time"

	"github.com/Bart563/KBZ-Computers/internal/domain"
	liststore "github.com/Bart563/KBZ-Computers/internal/repository/list"
)

type Service struct {
	store      liststore.Store
	timeout    time.Duration
	compareMax int
	now        func() time.Time
}

func New(store liststore.Store, timeout time.Duration, compareMax int) *Service {
	return &Service{
		store:      store,
		timeout:    timeout,
		compareMax: compareMax,
		now:        time.Now,
	}
}

// List returns the user's entries, newest first.
func (s *Service) List(ctx context.Context, kind domain.ListKind, userID string) ([]domain.ListEntry, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.store.Find(ctx, kind, userID)
}

// Add inserts the product into the set and reloads it. Adding a product
// already present is a no-op; a full compare set rejects the add
// without touching the stored entries.
func (s *Service) Add(ctx context.Context, kind domain.ListKind, userID, productID string) ([]domain.ListEntry, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	entries, err := s.store.Find(ctx, kind, userID)
	if err != nil {
		return nil, err
	}
	if contains(entries, productID) {
		return entries, nil
	}
	if kind == domain.ListCompare && len(entries) >= s.compareMax {
		return nil, domain.ErrCompareFull
	}

	// The write must fully complete before the reload, otherwise the
	// reload may miss it.
	_, err = s.store.Create(ctx, kind, domain.ListEntry{
		UserID:    userID,
		ProductID: productID,
		DateAdded: s.now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	return s.store.Find(ctx, kind, userID)
}

// Remove purges every entry matching the product (remove by value) and
// reloads. Removing an absent product succeeds.
func (s *Service) Remove(ctx context.Context, kind domain.ListKind, userID, productID string) ([]domain.ListEntry, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.store.DeleteMatching(ctx, kind, userID, productID); err != nil {
		return nil, err
	}
	return s.store.Find(ctx, kind, userID)
}

// Toggle removes the product when present, adds it otherwise. The two
// remote calls are not atomic; concurrent toggles on the same product
// from the same user can race, which is accepted for single-session use.
func (s *Service) Toggle(ctx context.Context, kind domain.ListKind, userID, productID string) ([]domain.ListEntry, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	findCtx, cancel := s.withTimeout(ctx)
	entries, err := s.store.Find(findCtx, kind, userID)
	cancel()
	if err != nil {
		return nil, err
	}
	if contains(entries, productID) {
		return s.Remove(ctx, kind, userID, productID)
	}
	return s.Add(ctx, kind, userID, productID)
}

// Clear empties the user's set in one batch.
func (s *Service) Clear(ctx context.Context, kind domain.ListKind, userID string) error {
	if userID == "" {
		return domain.ErrUnauthenticated
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.store.Clear(ctx, kind, userID)
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func contains(entries []domain.ListEntry, productID string) bool {
	for _, e := range entries {
		if e.ProductID == productID {
			return true
		}
	}
	return false
}
