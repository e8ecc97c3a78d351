// Package pricing computes cart totals. It is a pure function of the
// cart lines, the resolved catalog and the pricing policy: no state, no
// caching, identical inputs always produce identical totals.
package pricing

import (
	"strings"

	"github.com/Bart563/KBZ-Computers/internal/domain"
)

// Policy carries the pricing business rules. Values come from
// configuration so thresholds and rates can change without touching
// the computation.
type Policy struct {
	FreeShippingThresholdCents int64
	ShippingFeeCents           int64
	TaxRateBasisPoints         int64
	CouponCode                 string
	CouponBasisPoints          int64
}

type Totals struct {
	SubtotalCents int64 `json:"subtotalCents"`
	DiscountCents int64 `json:"discountCents"`
	ShippingCents int64 `json:"shippingCents"`
	TaxCents      int64 `json:"taxCents"`
	TotalCents    int64 `json:"totalCents"`
	// CouponApplied is false both when no coupon was passed and when an
	// unrecognized code was ignored; callers inspect it for feedback.
	CouponApplied bool `json:"couponApplied"`
	// Unavailable lists product IDs of lines that no longer resolve in
	// the catalog. Those lines contribute nothing to the totals but are
	// not pruned from storage here.
	Unavailable []string `json:"unavailable,omitempty"`
}

// Compute prices the given lines against the catalog. Lines whose
// product is missing from the catalog are excluded from the subtotal
// and reported in Unavailable.
func Compute(lines []domain.CartLine, catalog map[string]domain.Product, coupon string, p Policy) Totals {
	var t Totals
	for _, line := range lines {
		product, ok := catalog[line.ProductID]
		if !ok {
			t.Unavailable = append(t.Unavailable, line.ProductID)
			continue
		}
		t.SubtotalCents += int64(line.Quantity) * product.PriceCents
	}

	if coupon != "" && strings.EqualFold(coupon, p.CouponCode) {
		t.DiscountCents = roundBasisPoints(t.SubtotalCents, p.CouponBasisPoints)
		t.CouponApplied = true
	}

	if len(lines) > len(t.Unavailable) && t.SubtotalCents < p.FreeShippingThresholdCents {
		t.ShippingCents = p.ShippingFeeCents
	}

	t.TaxCents = roundBasisPoints(t.SubtotalCents, p.TaxRateBasisPoints)

	t.TotalCents = t.SubtotalCents - t.DiscountCents + t.ShippingCents + t.TaxCents
	if t.TotalCents < 0 {
		t.TotalCents = 0
	}
	return t
}

// roundBasisPoints applies a basis-point rate with round-half-up
// semantics on the minor currency unit.
func roundBasisPoints(amount, bp int64) int64 {
	return (amount*bp + 5000) / 10000
}
