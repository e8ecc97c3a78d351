// Package payment defines the gateway boundary used at order
// placement. A real processor integration slots in behind Gateway; the
// stub shipped here accepts every authorization.
package payment

import (
	"context"
	"io"
	"log"

	"github.com/Bart563/KBZ-Computers/internal/domain"
)

type AuthorizeRequest struct {
	Method      domain.PaymentMethod
	AmountCents int64
	CardNumber  string
	CardName    string
}

// Gateway authorizes a payment. A rejection is returned as
// *domain.PaymentError; any other error means the gateway could not be
// reached.
type Gateway interface {
	Authorize(ctx context.Context, req AuthorizeRequest) error
}

type stubGateway struct {
	logger *log.Logger
}

// NewStub returns a gateway that approves everything. It keeps the call
// shape of a real processor so swapping one in is wiring, not redesign.
func NewStub(logger *log.Logger) Gateway {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &stubGateway{logger: logger}
}

func (g *stubGateway) Authorize(_ context.Context, req AuthorizeRequest) error {
	g.logger.Printf("payment stub: authorized method=%s amount=%d", req.Method, req.AmountCents)
	return nil
}
