package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/Bart563/KBZ-Computers/internal/domain"
	productrepo "github.com/Bart563/KBZ-Computers/internal/repository/product"
)

// Service serves read-only catalog views: listings with filter/sort,
// single products, and the side-by-side compare table.
type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

type Filter struct {
	Category string
	Brand    string
	Query    string
	Sort     string
}

const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortRating    = "rating"
)

// List returns catalog products matching the filter. Filtering and
// sorting happen in memory over the full catalog, which is small and
// read-only seed data.
func (s *Service) List(ctx context.Context, f Filter) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Product, 0, len(products))
	query := strings.ToLower(strings.TrimSpace(f.Query))
	for _, p := range products {
		if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
			continue
		}
		if f.Brand != "" && !strings.EqualFold(p.Brand, f.Brand) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) &&
			!strings.Contains(strings.ToLower(p.Brand), query) {
			continue
		}
		result = append(result, p)
	}

	switch f.Sort {
	case SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].PriceCents < result[j].PriceCents })
	case SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].PriceCents > result[j].PriceCents })
	case SortRating:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Rating > result[j].Rating })
	}
	return result, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// CompareTable holds the products being compared and one row per
// specification key, with values aligned to the product order.
type CompareTable struct {
	Products []domain.Product `json:"products"`
	Rows     []CompareRow     `json:"rows"`
}

type CompareRow struct {
	Key    string   `json:"key"`
	Values []string `json:"values"`
}

// Compare resolves the given products and builds the specification
// table. Keys are the union across products, ordered by first-seen
// product with each product's keys alphabetical; products missing a key
// get an empty value. Unresolved ids are skipped.
func (s *Service) Compare(ctx context.Context, ids []string) (*CompareTable, error) {
	products, err := s.repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	var keys []string
	seen := make(map[string]bool)
	for _, p := range products {
		ownKeys := make([]string, 0, len(p.Specifications))
		for k := range p.Specifications {
			ownKeys = append(ownKeys, k)
		}
		sort.Strings(ownKeys)
		for _, k := range ownKeys {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}

	table := &CompareTable{Products: products}
	for _, k := range keys {
		row := CompareRow{Key: k, Values: make([]string, len(products))}
		for i, p := range products {
			row.Values[i] = p.Specifications[k]
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}
