// Package seed loads a starter catalog so a fresh environment has
// something to browse. Upserts keep it safe to run repeatedly.
package seed

import (
	"context"
	"fmt"
	"log"

	"github.com/Bart563/KBZ-Computers/internal/domain"
)

type productRepo interface {
	Upsert(ctx context.Context, p domain.Product) error
}

// Run writes the built-in catalog through the product repository.
func Run(ctx context.Context, repo productRepo, logger *log.Logger) error {
	products := Products()
	for _, p := range products {
		if err := repo.Upsert(ctx, p); err != nil {
			return fmt.Errorf("seed product %s: %w", p.ID, err)
		}
	}
	if logger != nil {
		logger.Printf("seeded %d products", len(products))
	}
	return nil
}

func int64ptr(v int64) *int64 { return &v }

// Products returns the built-in catalog.
func Products() []domain.Product {
	return []domain.Product{
		{
			ID:                 "phone-1",
			Name:               "iPhone 15 Pro Max",
			Description:        "The most advanced iPhone with titanium design, A17 Pro chip and a 48MP camera system.",
			PriceCents:         12990,
			OriginalPriceCents: int64ptr(13990),
			Image:              "/images/products/iphone-15-pro-max.jpg",
			Images: []string{
				"/images/products/iphone-15-pro-max.jpg",
				"/images/products/iphone-15-pro-max-back.jpg",
			},
			Rating:      4.8,
			ReviewCount: 245,
			Badge:       "Best Seller",
			Category:    "phones",
			Brand:       "Apple",
			InStock:     true,
			StockCount:  15,
			Specifications: map[string]string{
				"Display":  "6.7-inch Super Retina XDR",
				"Chip":     "A17 Pro",
				"Camera":   "48MP Main",
				"Storage":  "256GB",
				"Battery":  "Up to 29 hours video",
				"Material": "Titanium",
			},
		},
		{
			ID:                 "phone-2",
			Name:               "Samsung Galaxy S24 Ultra",
			Description:        "Galaxy AI flagship with built-in S Pen, 200MP camera and a 6.8-inch QHD+ display.",
			PriceCents:         11490,
			OriginalPriceCents: int64ptr(12490),
			Image:              "/images/products/galaxy-s24-ultra.jpg",
			Images:             []string{"/images/products/galaxy-s24-ultra.jpg"},
			Rating:             4.7,
			ReviewCount:        189,
			Badge:              "New",
			Category:           "phones",
			Brand:              "Samsung",
			InStock:            true,
			StockCount:         22,
			Specifications: map[string]string{
				"Display": "6.8-inch Dynamic AMOLED 2X",
				"Chip":    "Snapdragon 8 Gen 3",
				"Camera":  "200MP Main",
				"Storage": "512GB",
				"S Pen":   "Built-in",
			},
		},
		{
			ID:                 "laptop-1",
			Name:               "Gaming Laptop RTX 4080",
			Description:        "Desktop-class gaming on the go with an RTX 4080, 32GB RAM and a 240Hz QHD panel.",
			PriceCents:         28500,
			OriginalPriceCents: int64ptr(32000),
			Image:              "/images/products/gaming-laptop-4080.jpg",
			Images:             []string{"/images/products/gaming-laptop-4080.jpg"},
			Rating:             4.6,
			ReviewCount:        98,
			Badge:              "Sale",
			Category:           "laptops",
			Brand:              "ASUS",
			InStock:            true,
			StockCount:         8,
			Specifications: map[string]string{
				"GPU":     "NVIDIA RTX 4080 12GB",
				"CPU":     "Intel Core i9-14900HX",
				"RAM":     "32GB DDR5",
				"Storage": "1TB NVMe SSD",
				"Display": "16-inch QHD 240Hz",
			},
		},
		{
			ID:          "laptop-2",
			Name:        "MacBook Air M3",
			Description: "Strikingly thin and fast, with up to 18 hours of battery life and a Liquid Retina display.",
			PriceCents:  13990,
			Image:       "/images/products/macbook-air-m3.jpg",
			Images:      []string{"/images/products/macbook-air-m3.jpg"},
			Rating:      4.9,
			ReviewCount: 312,
			Category:    "laptops",
			Brand:       "Apple",
			InStock:     true,
			StockCount:  19,
			Specifications: map[string]string{
				"Chip":    "Apple M3",
				"RAM":     "16GB unified",
				"Storage": "512GB SSD",
				"Display": "13.6-inch Liquid Retina",
				"Weight":  "1.24 kg",
			},
		},
		{
			ID:          "tablet-1",
			Name:        "iPad Pro 13-inch",
			Description: "Impossibly thin iPad Pro with the M4 chip and an Ultra Retina XDR display.",
			PriceCents:  14990,
			Image:       "/images/products/ipad-pro-13.jpg",
			Images:      []string{"/images/products/ipad-pro-13.jpg"},
			Rating:      4.8,
			ReviewCount: 156,
			Badge:       "New",
			Category:    "tablets",
			Brand:       "Apple",
			InStock:     true,
			StockCount:  12,
			Specifications: map[string]string{
				"Chip":    "Apple M4",
				"Display": "13-inch Ultra Retina XDR",
				"Storage": "256GB",
				"Pencil":  "Apple Pencil Pro support",
			},
		},
		{
			ID:          "gaming-1",
			Name:        "PlayStation 5 Pro",
			Description: "The most powerful PlayStation yet, with advanced ray tracing and 2TB of storage.",
			PriceCents:  7990,
			Image:       "/images/products/ps5-pro.jpg",
			Images:      []string{"/images/products/ps5-pro.jpg"},
			Rating:      4.7,
			ReviewCount: 421,
			Badge:       "Best Seller",
			Category:    "gaming",
			Brand:       "Sony",
			InStock:     true,
			StockCount:  30,
			Specifications: map[string]string{
				"GPU":     "Custom RDNA with ray tracing",
				"Storage": "2TB SSD",
				"Output":  "8K support",
			},
		},
		{
			ID:                 "headphones-1",
			Name:               "Sony WH-1000XM5",
			Description:        "Industry-leading noise cancellation with 30-hour battery life and crystal-clear calls.",
			PriceCents:         3490,
			OriginalPriceCents: int64ptr(3990),
			Image:              "/images/products/sony-wh1000xm5.jpg",
			Images:             []string{"/images/products/sony-wh1000xm5.jpg"},
			Rating:             4.6,
			ReviewCount:        534,
			Badge:              "Sale",
			Category:           "headphones",
			Brand:              "Sony",
			InStock:            true,
			StockCount:         45,
			Specifications: map[string]string{
				"Type":    "Over-ear wireless",
				"ANC":     "Dual-processor noise cancelling",
				"Battery": "30 hours",
				"Codec":   "LDAC",
			},
		},
		{
			ID:          "accessory-1",
			Name:        "Mechanical Keyboard RGB",
			Description: "Hot-swappable mechanical keyboard with per-key RGB and PBT keycaps.",
			PriceCents:  890,
			Image:       "/images/products/mech-keyboard.jpg",
			Images:      []string{"/images/products/mech-keyboard.jpg"},
			Rating:      4.4,
			ReviewCount: 87,
			Category:    "accessories",
			Brand:       "Keychron",
			InStock:     false,
			StockCount:  0,
			Specifications: map[string]string{
				"Switches":   "Gateron Brown, hot-swappable",
				"Layout":     "75%",
				"Connection": "Bluetooth / USB-C",
			},
		},
	}
}
