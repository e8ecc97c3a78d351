package domain

import "time"

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered:
		return true
	}
	return false
}

// Progress maps a status to the monotonic completion percentage shown
// on the order dashboard.
func (s OrderStatus) Progress() int {
	switch s {
	case OrderPending:
		return 25
	case OrderProcessing:
		return 50
	case OrderShipped:
		return 75
	case OrderDelivered:
		return 100
	}
	return 0
}

// Order is immutable once placed. Status transitions are owned by the
// fulfillment side; this service only stores and projects them.
type Order struct {
	ID                string          `json:"orderId"`
	UserID            string          `json:"-"`
	OrderDate         time.Time       `json:"orderDate"`
	Status            OrderStatus     `json:"status"`
	ShippingAddress   ShippingAddress `json:"shippingAddress"`
	Payment           PaymentInfo     `json:"payment"`
	Lines             []OrderLine     `json:"items"`
	SubtotalCents     int64           `json:"subtotalCents"`
	DiscountCents     int64           `json:"discountCents"`
	ShippingCents     int64           `json:"shippingCents"`
	TaxCents          int64           `json:"taxCents"`
	TotalCents        int64           `json:"totalCents"`
	Notes             string          `json:"notes,omitempty"`
	TrackingNumber    string          `json:"trackingNumber,omitempty"`
	EstimatedDelivery string          `json:"estimatedDelivery,omitempty"`
}

// OrderLine is a by-value snapshot of a cart line at placement time.
// Later cart or catalog changes must not alter it.
type OrderLine struct {
	ProductID      string `json:"productId"`
	ProductName    string `json:"productName"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
}
