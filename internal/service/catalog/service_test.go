package catalog

import (
	"context"
	"testing"

	"github.com/Bart563/KBZ-Computers/internal/domain"
)

type stubRepo struct {
	products []domain.Product
}

func (r *stubRepo) List(_ context.Context) ([]domain.Product, error) {
	return r.products, nil
}

func (r *stubRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubRepo) GetByIDs(_ context.Context, ids []string) ([]domain.Product, error) {
	var out []domain.Product
	for _, id := range ids {
		for _, p := range r.products {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func (r *stubRepo) Upsert(_ context.Context, _ domain.Product) error {
	return nil
}

func testService() *Service {
	return New(&stubRepo{products: []domain.Product{
		{
			ID: "phone-1", Name: "iPhone 15 Pro Max", Description: "Titanium flagship",
			PriceCents: 12990, Rating: 4.8, Category: "phones", Brand: "Apple",
			Specifications: map[string]string{"Chip": "A17 Pro", "Display": "6.7-inch"},
		},
		{
			ID: "phone-2", Name: "Galaxy S24 Ultra", Description: "Galaxy AI flagship",
			PriceCents: 11490, Rating: 4.7, Category: "phones", Brand: "Samsung",
			Specifications: map[string]string{"Chip": "Snapdragon 8 Gen 3", "S Pen": "Built-in"},
		},
		{
			ID: "laptop-1", Name: "Gaming Laptop", Description: "RTX 4080 inside",
			PriceCents: 28500, Rating: 4.6, Category: "laptops", Brand: "ASUS",
			Specifications: map[string]string{"GPU": "RTX 4080"},
		},
	}})
}

func ids(products []domain.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestListFiltersByCategory(t *testing.T) {
	svc := testService()

	got, err := svc.List(context.Background(), Filter{Category: "Phones"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 phones, got %v", ids(got))
	}
}

func TestListFiltersByBrandCaseInsensitive(t *testing.T) {
	svc := testService()

	got, err := svc.List(context.Background(), Filter{Brand: "apple"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].ID != "phone-1" {
		t.Fatalf("expected only phone-1, got %v", ids(got))
	}
}

func TestListSearchesNameDescriptionBrand(t *testing.T) {
	svc := testService()

	got, err := svc.List(context.Background(), Filter{Query: "rtx"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].ID != "laptop-1" {
		t.Fatalf("expected laptop-1 via description match, got %v", ids(got))
	}

	got, err = svc.List(context.Background(), Filter{Query: "samsung"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].ID != "phone-2" {
		t.Fatalf("expected phone-2 via brand match, got %v", ids(got))
	}
}

func TestListSorts(t *testing.T) {
	svc := testService()
	ctx := context.Background()

	got, err := svc.List(ctx, Filter{Sort: SortPriceAsc})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"phone-2", "phone-1", "laptop-1"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("price-asc order mismatch: got %v, want %v", ids(got), want)
		}
	}

	got, err = svc.List(ctx, Filter{Sort: SortRating})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if got[0].ID != "phone-1" || got[2].ID != "laptop-1" {
		t.Fatalf("rating order mismatch: got %v", ids(got))
	}
}

func TestCompareBuildsKeyUnion(t *testing.T) {
	svc := testService()

	table, err := svc.Compare(context.Background(), []string{"phone-1", "phone-2"})
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if len(table.Products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(table.Products))
	}
	wantKeys := []string{"Chip", "Display", "S Pen"}
	if len(table.Rows) != len(wantKeys) {
		t.Fatalf("expected %d rows, got %d", len(wantKeys), len(table.Rows))
	}
	for i, k := range wantKeys {
		if table.Rows[i].Key != k {
			t.Fatalf("row %d: expected key %q, got %q", i, k, table.Rows[i].Key)
		}
	}
	// phone-2 has no Display entry; its cell is empty.
	if table.Rows[1].Values[0] != "6.7-inch" || table.Rows[1].Values[1] != "" {
		t.Fatalf("display row mismatch: %v", table.Rows[1].Values)
	}
}

func TestCompareSkipsUnknownIDs(t *testing.T) {
	svc := testService()

	table, err := svc.Compare(context.Background(), []string{"phone-1", "ghost"})
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if len(table.Products) != 1 || table.Products[0].ID != "phone-1" {
		t.Fatalf("expected unknown id skipped, got %v", ids(table.Products))
	}
}
