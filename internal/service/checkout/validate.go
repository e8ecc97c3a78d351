package checkout

import (
	"regexp"
	"strings"

	"github.com/Bart563/KBZ-Computers/internal/domain"
)

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	expiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)
)

const (
	minPhoneDigits  = 7
	minStreetLength = 5
	minPostalLength = 3
	minCardDigits   = 12
)

// validateAddress checks the address step; a nil return means the step
// may advance.
func validateAddress(a domain.ShippingAddress) *domain.ValidationError {
	fields := map[string]string{}

	if strings.TrimSpace(a.FirstName) == "" {
		fields["firstName"] = "first name is required"
	}
	if strings.TrimSpace(a.LastName) == "" {
		fields["lastName"] = "last name is required"
	}
	if !emailPattern.MatchString(strings.TrimSpace(a.Email)) {
		fields["email"] = "a valid email address is required"
	}
	if digitCount(a.Phone) < minPhoneDigits {
		fields["phone"] = "a valid phone number is required"
	}
	if len(strings.TrimSpace(a.Address)) < minStreetLength {
		fields["address"] = "street address is required"
	}
	if strings.TrimSpace(a.City) == "" {
		fields["city"] = "city is required"
	}
	if strings.TrimSpace(a.State) == "" {
		fields["state"] = "state is required"
	}
	if len(strings.TrimSpace(a.PostalCode)) < minPostalLength {
		fields["postalCode"] = "postal code is required"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// validatePayment checks the payment step. Card sub-fields are only
// required for the card method.
func validatePayment(p domain.PaymentInfo) *domain.ValidationError {
	fields := map[string]string{}

	if !p.Method.Valid() {
		fields["method"] = "payment method must be card, bank or wallet"
	}
	if p.Method == domain.PaymentCard {
		if digitCount(p.CardNumber) < minCardDigits {
			fields["cardNumber"] = "a valid card number is required"
		}
		if !expiryPattern.MatchString(strings.TrimSpace(p.ExpiryDate)) {
			fields["expiryDate"] = "expiry date must be MM/YY"
		}
		if n := digitCount(p.CVV); n < 3 || n > 4 || n != len(strings.TrimSpace(p.CVV)) {
			fields["cvv"] = "a valid CVV is required"
		}
		if strings.TrimSpace(p.CardName) == "" {
			fields["cardName"] = "name on card is required"
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
