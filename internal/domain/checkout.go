package domain

import "time"

// CheckoutStep is the wizard position. Transitions are strictly linear
// going forward and always permitted going back; placed is terminal.
type CheckoutStep string

const (
	StepAddress CheckoutStep = "address"
	StepPayment CheckoutStep = "payment"
	StepReview  CheckoutStep = "review"
	StepPlaced  CheckoutStep = "placed"
)

func (s CheckoutStep) IsTerminal() bool {
	return s == StepPlaced
}

// Prev returns the step reached by going back, staying on address at
// the start of the wizard.
func (s CheckoutStep) Prev() CheckoutStep {
	switch s {
	case StepPayment:
		return StepAddress
	case StepReview:
		return StepPayment
	}
	return s
}

type ShippingAddress struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Notes      string `json:"notes,omitempty"`
}

type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "card"
	PaymentBank   PaymentMethod = "bank"
	PaymentWallet PaymentMethod = "wallet"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentCard || m == PaymentBank || m == PaymentWallet
}

// PaymentInfo carries the chosen method; the card sub-fields are only
// meaningful when Method is card.
type PaymentInfo struct {
	Method     PaymentMethod `json:"method"`
	CardNumber string        `json:"cardNumber,omitempty"`
	ExpiryDate string        `json:"expiryDate,omitempty"`
	CVV        string        `json:"cvv,omitempty"`
	CardName   string        `json:"cardName,omitempty"`
}

// CheckoutSession holds the wizard state between requests. Data entered
// at earlier steps survives going back.
type CheckoutSession struct {
	UserID    string           `json:"-"`
	Step      CheckoutStep     `json:"step"`
	Address   *ShippingAddress `json:"shippingAddress,omitempty"`
	Payment   *PaymentInfo     `json:"payment,omitempty"`
	UpdatedAt time.Time        `json:"updatedAt"`
}
