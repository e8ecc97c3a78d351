package customer

import (
	"context"

	"github.com/Bart563/KBZ-Computers/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, customer domain.Customer) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	Update(ctx context.Context, customer domain.Customer) (*domain.Customer, error)
}
