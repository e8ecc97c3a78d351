package domain

import "time"

// ListKind selects one of the per-user product lists kept in the
// remote document store.
type ListKind string

const (
	ListWishlist ListKind = "wishlist"
	ListCompare  ListKind = "compare"
)

// ListEntry is a single membership record in a wishlist or compare set.
// The ID is assigned by the store on creation.
type ListEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	ProductID string    `json:"productId"`
	DateAdded time.Time `json:"dateAdded"`
}

type AlertType string

const (
	AlertPriceDrop   AlertType = "price_drop"
	AlertBackInStock AlertType = "back_in_stock"
)

func (t AlertType) Valid() bool {
	return t == AlertPriceDrop || t == AlertBackInStock
}

type PriceAlert struct {
	ID             string    `json:"id"`
	UserID         string    `json:"-"`
	ProductID      string    `json:"productId"`
	ThresholdCents int64     `json:"thresholdCents"`
	AlertType      AlertType `json:"alertType"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"createdAt"`
}
