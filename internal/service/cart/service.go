package cart

import (
	"context"

	"github.com/Bart563/KBZ-Computers/internal/domain"
	"github.com/Bart563/KBZ-Computers/internal/pricing"
)

// Service owns the per-customer cart: line mutations with stock checks
// and on-demand totals. Totals are never cached; every call reprices
// against the current catalog.
type Service struct {
	repo     cartRepo
	products productRepo
	policy   pricing.Policy
}

type cartRepo interface {
	GetOrCreate(ctx context.Context, customerID string) (*domain.Cart, error)
	UpsertLine(ctx context.Context, cartID, productID string, quantity int, unitPriceCents int64) error
	DeleteLine(ctx context.Context, cartID, productID string) error
	Clear(ctx context.Context, cartID string) error
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetByIDs(ctx context.Context, ids []string) ([]domain.Product, error)
}

func New(repo cartRepo, products productRepo, policy pricing.Policy) *Service {
	return &Service{repo: repo, products: products, policy: policy}
}

func (s *Service) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	return s.repo.GetOrCreate(ctx, userID)
}

// AddLine merges the quantity into an existing line or appends a new
// one. The merged quantity is checked against available stock before
// anything is written.
func (s *Service) AddLine(ctx context.Context, userID, productID string, quantity int) (*domain.Cart, error) {
	if quantity <= 0 {
		return nil, &domain.ValidationError{Fields: map[string]string{"quantity": "must be positive"}}
	}
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.Sellable() {
		return nil, domain.ErrOutOfStock
	}

	cart, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	newQty := quantity
	for _, line := range cart.Lines {
		if line.ProductID == productID {
			newQty += line.Quantity
			break
		}
	}
	if newQty > product.StockCount {
		return nil, domain.ErrInsufficientStock
	}
	if err := s.repo.UpsertLine(ctx, cart.ID, productID, newQty, product.PriceCents); err != nil {
		return nil, err
	}
	return s.repo.GetOrCreate(ctx, userID)
}

// SetQuantity overwrites a line's quantity; zero or less removes the line.
func (s *Service) SetQuantity(ctx context.Context, userID, productID string, quantity int) (*domain.Cart, error) {
	cart, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if quantity <= 0 {
		if err := s.repo.DeleteLine(ctx, cart.ID, productID); err != nil {
			return nil, err
		}
		return s.repo.GetOrCreate(ctx, userID)
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.Sellable() {
		return nil, domain.ErrOutOfStock
	}
	if quantity > product.StockCount {
		return nil, domain.ErrInsufficientStock
	}
	if err := s.repo.UpsertLine(ctx, cart.ID, productID, quantity, product.PriceCents); err != nil {
		return nil, err
	}
	return s.repo.GetOrCreate(ctx, userID)
}

// RemoveLine is idempotent; removing an absent line is a no-op.
func (s *Service) RemoveLine(ctx context.Context, userID, productID string) (*domain.Cart, error) {
	cart, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.DeleteLine(ctx, cart.ID, productID); err != nil {
		return nil, err
	}
	return s.repo.GetOrCreate(ctx, userID)
}

// Clear drops every line; used after a successful order placement.
func (s *Service) Clear(ctx context.Context, userID string) error {
	cart, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}
	return s.repo.Clear(ctx, cart.ID)
}

// Totals reprices the cart against the current catalog with the
// configured policy and optional coupon code.
func (s *Service) Totals(ctx context.Context, userID, coupon string) (pricing.Totals, []domain.CartLine, error) {
	cart, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return pricing.Totals{}, nil, err
	}
	catalog, err := s.resolveCatalog(ctx, cart.Lines)
	if err != nil {
		return pricing.Totals{}, nil, err
	}
	return pricing.Compute(cart.Lines, catalog, coupon, s.policy), cart.Lines, nil
}

func (s *Service) resolveCatalog(ctx context.Context, lines []domain.CartLine) (map[string]domain.Product, error) {
	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}
	products, err := s.products.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	catalog := make(map[string]domain.Product, len(products))
	for _, p := range products {
		catalog[p.ID] = p
	}
	return catalog, nil
}
