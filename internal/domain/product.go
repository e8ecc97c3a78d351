package domain

import "time"

type Product struct {
	ID                 string            `json:"id"`
	Name               string            `json:"name"`
	Description        string            `json:"description,omitempty"`
	PriceCents         int64             `json:"priceCents"`
	OriginalPriceCents *int64            `json:"originalPriceCents,omitempty"`
	Image              string            `json:"image,omitempty"`
	Images             []string          `json:"images,omitempty"`
	Rating             float64           `json:"rating"`
	ReviewCount        int               `json:"reviewCount"`
	Badge              string            `json:"badge,omitempty"`
	Category           string            `json:"category"`
	Brand              string            `json:"brand"`
	InStock            bool              `json:"inStock"`
	StockCount         int               `json:"stockCount"`
	Specifications     map[string]string `json:"specifications,omitempty"`
	CreatedAt          time.Time         `json:"createdAt"`
}

// Sellable reports whether the product can be added to a cart at all.
func (p Product) Sellable() bool {
	return p.InStock && p.StockCount > 0
}
