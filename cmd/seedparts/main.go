// cmd/seedparts — loads a handful of demo spare parts for local development.
// Usage: go run ./cmd/seedparts
package main

import (
	"context"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}

	type seed struct {
		gsm, category, unit string
		price, cost         float64
		stock, minimum      int
	}
	parts := []seed{
		{"GSM-1001", "Brake Pads", "set", 1500, 1100, 12, 5},
		{"GSM-1002", "Oil Filter", "piece", 350, 220, 40, 15},
		{"GSM-1003", "Clutch Plate", "piece", 2800, 2100, 3, 6},
		{"GSM-1004", "Headlight Bulb", "piece", 180, 95, 60, 20},
		{"GSM-1005", "Air Filter", "piece", 420, 260, 8, 10},
	}

	ctx := context.Background()
	for _, p := range parts {
		result := db.WithContext(ctx).Exec(`
			INSERT INTO spare_parts (gsm_number, category, price, cost_price, stock_quantity, minimum_stock, unit)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (gsm_number) DO UPDATE
			SET price = EXCLUDED.price,
			    cost_price = EXCLUDED.cost_price,
			    stock_quantity = EXCLUDED.stock_quantity,
			    minimum_stock = EXCLUDED.minimum_stock`,
			p.gsm, p.category, p.price, p.cost, p.stock, p.minimum)
		if result.Error != nil {
			log.Fatalf("seed %s: %v", p.gsm, result.Error)
		}
	}
	log.Printf("seeded %d parts", len(parts))
}
