// Package checkout drives the three-phase wizard: address, payment,
// review. Forward transitions are gated by validation of the current
// step; going back is always allowed and keeps entered data. Placing
// from review emits exactly one immutable order.
package checkout

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Bart563/KBZ-Computers/internal/domain"
	"github.com/Bart563/KBZ-Computers/internal/payment"
	"github.com/Bart563/KBZ-Computers/internal/pricing"
	"github.com/google/uuid"
)

var (
	// ErrWrongStep is returned when an operation is attempted outside
	// its wizard phase.
	ErrWrongStep = errors.New("operation not allowed at this checkout step")
	// ErrEmptyCart prevents placing an order with nothing in it.
	ErrEmptyCart = errors.New("cart is empty")
)

type Service struct {
	sessions sessionRepo
	cart     cartService
	products productRepo
	orders   orderRepo
	gateway  payment.Gateway
	now      func() time.Time
	newID    func() string
}

type sessionRepo interface {
	Get(ctx context.Context, userID string) (*domain.CheckoutSession, error)
	Save(ctx context.Context, session domain.CheckoutSession) error
	Delete(ctx context.Context, userID string) error
}

type cartService interface {
	Totals(ctx context.Context, userID, coupon string) (pricing.Totals, []domain.CartLine, error)
	Clear(ctx context.Context, userID string) error
}

type productRepo interface {
	GetByIDs(ctx context.Context, ids []string) ([]domain.Product, error)
}

type orderRepo interface {
	Create(ctx context.Context, order domain.Order) error
}

func New(sessions sessionRepo, cart cartService, products productRepo, orders orderRepo, gateway payment.Gateway) *Service {
	return &Service{
		sessions: sessions,
		cart:     cart,
		products: products,
		orders:   orders,
		gateway:  gateway,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Session returns the user's wizard state, starting a fresh one at the
// address step when none exists.
func (s *Service) Session(ctx context.Context, userID string) (*domain.CheckoutSession, error) {
	sess, err := s.sessions.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.CheckoutSession{UserID: userID, Step: domain.StepAddress}, nil
		}
		return nil, err
	}
	return sess, nil
}

// SubmitAddress validates the address step and advances to payment.
func (s *Service) SubmitAddress(ctx context.Context, userID string, addr domain.ShippingAddress) (*domain.CheckoutSession, error) {
	if verr := validateAddress(addr); verr != nil {
		return nil, verr
	}
	sess, err := s.Session(ctx, userID)
	if err != nil {
		return nil, err
	}
	sess.Address = &addr
	sess.Step = domain.StepPayment
	if err := s.sessions.Save(ctx, *sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// SubmitPayment validates the payment step and advances to review. The
// address step must have been completed first.
func (s *Service) SubmitPayment(ctx context.Context, userID string, info domain.PaymentInfo) (*domain.CheckoutSession, error) {
	sess, err := s.Session(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sess.Address == nil {
		return nil, ErrWrongStep
	}
	if verr := validatePayment(info); verr != nil {
		return nil, verr
	}
	sess.Payment = &info
	sess.Step = domain.StepReview
	if err := s.sessions.Save(ctx, *sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Back steps the wizard backwards without clearing entered data.
func (s *Service) Back(ctx context.Context, userID string) (*domain.CheckoutSession, error) {
	sess, err := s.Session(ctx, userID)
	if err != nil {
		return nil, err
	}
	sess.Step = sess.Step.Prev()
	if err := s.sessions.Save(ctx, *sess); err != nil {
		return nil, err
	}
	return sess, nil
}

type PlaceInput struct {
	CouponCode string `json:"couponCode,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// Place confirms the review step: snapshots the cart by value, prices
// it at this moment, authorizes payment and persists the order. The
// cart and session are cleared afterwards so the order can be placed
// exactly once.
func (s *Service) Place(ctx context.Context, userID string, in PlaceInput) (*domain.Order, error) {
	sess, err := s.Session(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sess.Step != domain.StepReview || sess.Address == nil || sess.Payment == nil {
		return nil, ErrWrongStep
	}

	totals, lines, err := s.cart.Totals(ctx, userID, in.CouponCode)
	if err != nil {
		return nil, err
	}
	orderLines, err := s.snapshotLines(ctx, lines, totals.Unavailable)
	if err != nil {
		return nil, err
	}
	if len(orderLines) == 0 {
		return nil, ErrEmptyCart
	}

	if err := s.gateway.Authorize(ctx, payment.AuthorizeRequest{
		Method:      sess.Payment.Method,
		AmountCents: totals.TotalCents,
		CardNumber:  sess.Payment.CardNumber,
		CardName:    sess.Payment.CardName,
	}); err != nil {
		return nil, err
	}

	order := domain.Order{
		ID:              s.newID(),
		UserID:          userID,
		OrderDate:       s.now().UTC(),
		Status:          domain.OrderPending,
		ShippingAddress: *sess.Address,
		Payment:         maskPayment(*sess.Payment),
		Lines:           orderLines,
		SubtotalCents:   totals.SubtotalCents,
		DiscountCents:   totals.DiscountCents,
		ShippingCents:   totals.ShippingCents,
		TaxCents:        totals.TaxCents,
		TotalCents:      totals.TotalCents,
		Notes:           strings.TrimSpace(in.Notes),
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	if err := s.cart.Clear(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.sessions.Delete(ctx, userID); err != nil {
		return nil, err
	}
	return &order, nil
}

// snapshotLines copies cart lines by value into order lines, skipping
// products that no longer resolve (the same lines the totals excluded).
func (s *Service) snapshotLines(ctx context.Context, lines []domain.CartLine, unavailable []string) ([]domain.OrderLine, error) {
	missing := make(map[string]bool, len(unavailable))
	for _, id := range unavailable {
		missing[id] = true
	}
	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		if !missing[line.ProductID] {
			ids = append(ids, line.ProductID)
		}
	}
	products, err := s.products.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(products))
	prices := make(map[string]int64, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
		prices[p.ID] = p.PriceCents
	}

	var out []domain.OrderLine
	for _, line := range lines {
		if missing[line.ProductID] {
			continue
		}
		out = append(out, domain.OrderLine{
			ProductID:      line.ProductID,
			ProductName:    names[line.ProductID],
			Quantity:       line.Quantity,
			UnitPriceCents: prices[line.ProductID],
		})
	}
	return out, nil
}

// maskPayment keeps only the last four card digits on the stored order.
func maskPayment(p domain.PaymentInfo) domain.PaymentInfo {
	masked := domain.PaymentInfo{Method: p.Method, CardName: p.CardName}
	digits := make([]rune, 0, len(p.CardNumber))
	for _, r := range p.CardNumber {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) >= 4 {
		masked.CardNumber = "**** " + string(digits[len(digits)-4:])
	}
	return masked
}
