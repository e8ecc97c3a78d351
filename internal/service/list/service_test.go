package list

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Bart563/KBZ-Computers/internal/domain"
)

type stubStore struct {
	entries map[domain.ListKind][]domain.ListEntry
	nextID  int
	err     error
}

func newStubStore() *stubStore {
	return &stubStore{entries: make(map[domain.ListKind][]domain.ListEntry)}
}

func (s *stubStore) Create(_ context.Context, kind domain.ListKind, entry domain.ListEntry) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.nextID++
	entry.ID = fmt.Sprintf("doc-%d", s.nextID)
	s.entries[kind] = append(s.entries[kind], entry)
	return entry.ID, nil
}

func (s *stubStore) Find(_ context.Context, kind domain.ListKind, userID string) ([]domain.ListEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []domain.ListEntry
	// Newest first, matching the store's sort order.
	all := s.entries[kind]
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].UserID == userID {
			out = append(out, all[i])
		}
	}
	return out, nil
}

func (s *stubStore) DeleteMatching(_ context.Context, kind domain.ListKind, userID, productID string) error {
	if s.err != nil {
		return s.err
	}
	kept := s.entries[kind][:0]
	for _, e := range s.entries[kind] {
		if e.UserID == userID && e.ProductID == productID {
			continue
		}
		kept = append(kept, e)
	}
	s.entries[kind] = kept
	return nil
}

func (s *stubStore) Clear(_ context.Context, kind domain.ListKind, userID string) error {
	if s.err != nil {
		return s.err
	}
	kept := s.entries[kind][:0]
	for _, e := range s.entries[kind] {
		if e.UserID != userID {
			kept = append(kept, e)
		}
	}
	s.entries[kind] = kept
	return nil
}

func productIDs(entries []domain.ListEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ProductID
	}
	return out
}

func TestAddRequiresAuthentication(t *testing.T) {
	svc := New(newStubStore(), time.Second, 4)

	if _, err := svc.Add(context.Background(), domain.ListWishlist, "", "p1"); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAddIsVisibleToNextRead(t *testing.T) {
	svc := New(newStubStore(), time.Second, 4)
	ctx := context.Background()

	entries, err := svc.Add(ctx, domain.ListWishlist, "u1", "p1")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(entries) != 1 || entries[0].ProductID != "p1" {
		t.Fatalf("expected the add reflected in the returned set, got %v", productIDs(entries))
	}
	listed, err := svc.List(ctx, domain.ListWishlist, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 entry on reload, got %d", len(listed))
	}
}

func TestAddDuplicateIsNoop(t *testing.T) {
	store := newStubStore()
	svc := New(store, time.Second, 4)
	ctx := context.Background()

	if _, err := svc.Add(ctx, domain.ListWishlist, "u1", "p1"); err != nil {
		t.Fatalf("first add: %v", err)
	}
	entries, err := svc.Add(ctx, domain.ListWishlist, "u1", "p1")
	if err != nil {
		t.Fatalf("duplicate add: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected no duplicate entry, got %v", productIDs(entries))
	}
}

func TestCompareCapRejectsWithoutChange(t *testing.T) {
	store := newStubStore()
	svc := New(store, time.Second, 4)
	ctx := context.Background()

	for i := 1; i <= 4; i++ {
		if _, err := svc.Add(ctx, domain.ListCompare, "u1", fmt.Sprintf("p%d", i)); err != nil {
			t.Fatalf("add p%d: %v", i, err)
		}
	}
	if _, err := svc.Add(ctx, domain.ListCompare, "u1", "p5"); !errors.Is(err, domain.ErrCompareFull) {
		t.Fatalf("expected ErrCompareFull, got %v", err)
	}
	entries, err := svc.List(ctx, domain.ListCompare, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("rejected add must leave the set unchanged, got %d entries", len(entries))
	}
	// Re-adding a member of a full set still succeeds as a no-op.
	if _, err := svc.Add(ctx, domain.ListCompare, "u1", "p1"); err != nil {
		t.Fatalf("re-add existing member: %v", err)
	}
}

func TestWishlistHasNoCap(t *testing.T) {
	svc := New(newStubStore(), time.Second, 4)
	ctx := context.Background()

	for i := 1; i <= 10; i++ {
		if _, err := svc.Add(ctx, domain.ListWishlist, "u1", fmt.Sprintf("p%d", i)); err != nil {
			t.Fatalf("add p%d: %v", i, err)
		}
	}
}

func TestToggleIsSelfInverse(t *testing.T) {
	svc := New(newStubStore(), time.Second, 4)
	ctx := context.Background()

	entries, err := svc.Toggle(ctx, domain.ListWishlist, "u1", "p1")
	if err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected membership after first toggle, got %v", productIDs(entries))
	}
	entries, err = svc.Toggle(ctx, domain.ListWishlist, "u1", "p1")
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty set after second toggle, got %v", productIDs(entries))
	}
}

func TestRemoveAbsentSucceeds(t *testing.T) {
	svc := New(newStubStore(), time.Second, 4)

	entries, err := svc.Remove(context.Background(), domain.ListWishlist, "u1", "missing")
	if err != nil {
		t.Fatalf("remove absent: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty set, got %v", productIDs(entries))
	}
}

func TestRemoveDoesNotTouchOtherUsers(t *testing.T) {
	store := newStubStore()
	svc := New(store, time.Second, 4)
	ctx := context.Background()

	if _, err := svc.Add(ctx, domain.ListWishlist, "u1", "p1"); err != nil {
		t.Fatalf("add for u1: %v", err)
	}
	if _, err := svc.Add(ctx, domain.ListWishlist, "u2", "p1"); err != nil {
		t.Fatalf("add for u2: %v", err)
	}
	if _, err := svc.Remove(ctx, domain.ListWishlist, "u1", "p1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	entries, err := svc.List(ctx, domain.ListWishlist, "u2")
	if err != nil {
		t.Fatalf("list u2: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected u2's entry untouched, got %v", productIDs(entries))
	}
}

func TestStoreErrorSurfacesAsNetwork(t *testing.T) {
	store := newStubStore()
	store.err = domain.ErrNetwork
	svc := New(store, time.Second, 4)

	if _, err := svc.List(context.Background(), domain.ListWishlist, "u1"); !errors.Is(err, domain.ErrNetwork) {
		t.Fatalf("expected ErrNetwork, got %v", err)
	}
	if _, err := svc.Toggle(context.Background(), domain.ListWishlist, "u1", "p1"); !errors.Is(err, domain.ErrNetwork) {
		t.Fatalf("expected ErrNetwork from toggle, got %v", err)
	}
}

func TestClearEmptiesOnlyThatKind(t *testing.T) {
	store := newStubStore()
	svc := New(store, time.Second, 4)
	ctx := context.Background()

	if _, err := svc.Add(ctx, domain.ListWishlist, "u1", "p1"); err != nil {
		t.Fatalf("add wishlist: %v", err)
	}
	if _, err := svc.Add(ctx, domain.ListCompare, "u1", "p1"); err != nil {
		t.Fatalf("add compare: %v", err)
	}
	if err := svc.Clear(ctx, domain.ListCompare, "u1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	compare, _ := svc.List(ctx, domain.ListCompare, "u1")
	wishlist, _ := svc.List(ctx, domain.ListWishlist, "u1")
	if len(compare) != 0 {
		t.Fatalf("expected compare cleared, got %v", productIDs(compare))
	}
	if len(wishlist) != 1 {
		t.Fatalf("expected wishlist untouched, got %v", productIDs(wishlist))
	}
}
