package order

import (
	"context"

	"github.com/Bart563/KBZ-Computers/internal/domain"
	orderrepo "github.com/Bart563/KBZ-Computers/internal/repository/order"
)

// Service is the read-only projection of placed orders. Status values
// come from fulfillment as-is; this service only decorates them with
// the dashboard progress percentage.
type Service struct {
	repo orderrepo.Repository
}

func New(repo orderrepo.Repository) *Service {
	return &Service{repo: repo}
}

// View is an order plus its display progress.
type View struct {
	domain.Order
	Progress int `json:"progress"`
}

func (s *Service) List(ctx context.Context, userID string) ([]View, error) {
	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	views := make([]View, 0, len(orders))
	for _, o := range orders {
		views = append(views, View{Order: o, Progress: o.Status.Progress()})
	}
	return views, nil
}

func (s *Service) Get(ctx context.Context, userID, orderID string) (*View, error) {
	o, err := s.repo.Get(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	return &View{Order: *o, Progress: o.Status.Progress()}, nil
}
