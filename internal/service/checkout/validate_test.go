package checkout

import (
	"testing"

	"github.com/Bart563/KBZ-Computers/internal/domain"
)

func validAddress() domain.ShippingAddress {
	return domain.ShippingAddress{
		FirstName:  "Aye",
		LastName:   "Chan",
		Email:      "aye.chan@example.com",
		Phone:      "09-7712-3456",
		Address:    "12 Anawrahta Road",
		City:       "Yangon",
		State:      "Yangon Region",
		PostalCode: "11181",
	}
}

func validCardPayment() domain.PaymentInfo {
	return domain.PaymentInfo{
		Method:     domain.PaymentCard,
		CardNumber: "4242 4242 4242 4242",
		ExpiryDate: "12/27",
		CVV:        "123",
		CardName:   "AYE CHAN",
	}
}

func TestValidateAddressAccepts(t *testing.T) {
	if verr := validateAddress(validAddress()); verr != nil {
		t.Fatalf("expected valid address, got %v", verr)
	}
}

func TestValidateAddressRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.ShippingAddress)
		field  string
	}{
		{"missing first name", func(a *domain.ShippingAddress) { a.FirstName = "  " }, "firstName"},
		{"missing last name", func(a *domain.ShippingAddress) { a.LastName = "" }, "lastName"},
		{"bad email", func(a *domain.ShippingAddress) { a.Email = "not-an-email" }, "email"},
		{"short phone", func(a *domain.ShippingAddress) { a.Phone = "123" }, "phone"},
		{"short street", func(a *domain.ShippingAddress) { a.Address = "x" }, "address"},
		{"missing city", func(a *domain.ShippingAddress) { a.City = "" }, "city"},
		{"missing state", func(a *domain.ShippingAddress) { a.State = "" }, "state"},
		{"short postal code", func(a *domain.ShippingAddress) { a.PostalCode = "1" }, "postalCode"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			addr := validAddress()
			tc.mutate(&addr)
			verr := validateAddress(addr)
			if verr == nil {
				t.Fatal("expected a validation error")
			}
			if _, ok := verr.Fields[tc.field]; !ok {
				t.Fatalf("expected field %q flagged, got %v", tc.field, verr.Fields)
			}
		})
	}
}

func TestValidatePaymentAccepts(t *testing.T) {
	if verr := validatePayment(validCardPayment()); verr != nil {
		t.Fatalf("expected valid payment, got %v", verr)
	}
}

func TestValidatePaymentRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.PaymentInfo)
		field  string
	}{
		{"unknown method", func(p *domain.PaymentInfo) { p.Method = "crypto" }, "method"},
		{"short card number", func(p *domain.PaymentInfo) { p.CardNumber = "4242" }, "cardNumber"},
		{"bad expiry", func(p *domain.PaymentInfo) { p.ExpiryDate = "2027-12" }, "expiryDate"},
		{"short cvv", func(p *domain.PaymentInfo) { p.CVV = "12" }, "cvv"},
		{"non-numeric cvv", func(p *domain.PaymentInfo) { p.CVV = "12a" }, "cvv"},
		{"missing card name", func(p *domain.PaymentInfo) { p.CardName = " " }, "cardName"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			info := validCardPayment()
			tc.mutate(&info)
			verr := validatePayment(info)
			if verr == nil {
				t.Fatal("expected a validation error")
			}
			if _, ok := verr.Fields[tc.field]; !ok {
				t.Fatalf("expected field %q flagged, got %v", tc.field, verr.Fields)
			}
		})
	}
}

func TestValidatePaymentNonCardSkipsCardFields(t *testing.T) {
	info := domain.PaymentInfo{Method: domain.PaymentBank}
	if verr := validatePayment(info); verr != nil {
		t.Fatalf("expected bank transfer to need no card details, got %v", verr)
	}
}
