package alert

import (
	"context"
	"time"

	"github.com/Bart563/KBZ-Computers/internal/domain"
	alertrepo "github.com/Bart563/KBZ-Computers/internal/repository/alert"
)

// Service manages price alerts. Alerts are only created and listed
// here; firing them is a fulfillment-side concern.
type Service struct {
	repo     alertrepo.Repository
	products productRepo
	timeout  time.Duration
	now      func() time.Time
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

func New(repo alertrepo.Repository, products productRepo, timeout time.Duration) *Service {
	return &Service{repo: repo, products: products, timeout: timeout, now: time.Now}
}

type CreateInput struct {
	ProductID      string           `json:"productId"`
	ThresholdCents int64            `json:"thresholdCents"`
	AlertType      domain.AlertType `json:"alertType"`
}

func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (*domain.PriceAlert, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	if !in.AlertType.Valid() {
		return nil, &domain.ValidationError{Fields: map[string]string{"alertType": "must be price_drop or back_in_stock"}}
	}
	if in.AlertType == domain.AlertPriceDrop && in.ThresholdCents <= 0 {
		return nil, &domain.ValidationError{Fields: map[string]string{"thresholdCents": "must be positive for price drop alerts"}}
	}
	if _, err := s.products.GetByID(ctx, in.ProductID); err != nil {
		return nil, err
	}

	alert := domain.PriceAlert{
		UserID:         userID,
		ProductID:      in.ProductID,
		ThresholdCents: in.ThresholdCents,
		AlertType:      in.AlertType,
		Active:         true,
		CreatedAt:      s.now().UTC(),
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	id, err := s.repo.Create(ctx, alert)
	if err != nil {
		return nil, err
	}
	alert.ID = id
	return &alert, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]domain.PriceAlert, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.ListActive(ctx, userID)
}

func (s *Service) Deactivate(ctx context.Context, userID, alertID string) error {
	if userID == "" {
		return domain.ErrUnauthenticated
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.Deactivate(ctx, userID, alertID)
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}
