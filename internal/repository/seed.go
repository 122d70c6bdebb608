package repository

import (
	"strconv"

	"github.com/shopspring/decimal"

	"storefront/internal/model"
)

// DefaultProducts is the catalog loaded at startup. Ids are "1".."12" in
// listing order.
func DefaultProducts() []model.Product {
	products := []model.Product{
		{
			Name:        "Premium Wireless Headphones",
			Price:       decimal.RequireFromString("299.99"),
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=800&h=800&fit=crop",
			Description: "Crystal-clear audio with active noise cancellation, 30-hour battery life and all-day comfort.",
			Category:    "Electronics",
		},
		{
			Name:        "Smart Watch Pro",
			Price:       decimal.RequireFromString("399.99"),
			Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=800&h=800&fit=crop",
			Description: "Health tracking, GPS and smartphone integration on your wrist.",
			Category:    "Electronics",
		},
		{
			Name:        "Designer Backpack",
			Price:       decimal.RequireFromString("149.99"),
			Image:       "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=800&h=800&fit=crop",
			Description: "Durable everyday backpack with a laptop sleeve and water-resistant fabric.",
			Category:    "Accessories",
		},
		{
			Name:        "Minimalist Wallet",
			Price:       decimal.RequireFromString("79.99"),
			Image:       "https://images.unsplash.com/photo-1627123424574-724758594e93?w=800&h=800&fit=crop",
			Description: "Slim leather wallet with RFID protection, holds up to 8 cards.",
			Category:    "Accessories",
		},
		{
			Name:        "Bluetooth Speaker",
			Price:       decimal.RequireFromString("129.99"),
			Image:       "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=800&h=800&fit=crop",
			Description: "Waterproof 360-degree speaker with 12-hour battery life.",
			Category:    "Electronics",
		},
		{
			Name:        "Fitness Tracker",
			Price:       decimal.RequireFromString("99.99"),
			Image:       "https://images.unsplash.com/photo-1557935728-e6d1eaabe558?w=800&h=800&fit=crop",
			Description: "Heart rate, sleep, steps and calories in one band.",
			Category:    "Electronics",
		},
		{
			Name:        "Polarized Sunglasses",
			Price:       decimal.RequireFromString("159.99"),
			Image:       "https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=800&h=800&fit=crop",
			Description: "Polarized lenses with full UV protection.",
			Category:    "Accessories",
		},
		{
			Name:        "Aluminum Laptop Stand",
			Price:       decimal.RequireFromString("89.99"),
			Image:       "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=800&h=800&fit=crop",
			Description: "Adjustable aluminum stand for better posture and airflow.",
			Category:    "Office",
		},
		{
			Name:        "Wireless Mouse",
			Price:       decimal.RequireFromString("59.99"),
			Image:       "https://images.unsplash.com/photo-1527814050087-3793815479db?w=800&h=800&fit=crop",
			Description: "Ergonomic mouse with silent clicks and adjustable DPI.",
			Category:    "Office",
		},
		{
			Name:        "Mechanical Keyboard",
			Price:       decimal.RequireFromString("179.99"),
			Image:       "https://images.unsplash.com/photo-1587829741301-dc798b83add3?w=800&h=800&fit=crop",
			Description: "RGB backlit keyboard with tactile switches.",
			Category:    "Office",
		},
		{
			Name:        "USB-C Hub",
			Price:       decimal.RequireFromString("69.99"),
			Image:       "https://images.unsplash.com/photo-1625948515291-69613efd103f?w=800&h=800&fit=crop",
			Description: "7-in-1 hub with HDMI, USB 3.0, SD reader and power delivery.",
			Category:    "Office",
		},
		{
			Name:        "Desk Organizer",
			Price:       decimal.RequireFromString("49.99"),
			Image:       "https://images.unsplash.com/photo-1611532736597-de2d4265fba3?w=800&h=800&fit=crop",
			Description: "Bamboo organizer with compartments for pens, notes and accessories.",
			Category:    "Office",
		},
	}

	for i := range products {
		products[i].ID = strconv.Itoa(i + 1)
	}
	return products
}
