package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/Reown-Commerce/reown-storefront-backend/catalog"
	"github.com/Reown-Commerce/reown-storefront-backend/config"
	"github.com/Reown-Commerce/reown-storefront-backend/models"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main loads the embedded seed catalog into Postgres so the API can serve
// from a database instead of the embedded source.
// Usage: go run cmd/seed/main.go
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("REOWN Storefront - Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	if !config.InitDB() {
		fmt.Println("❌ STOREFRONT_DB_URL must be set to seed a database")
		os.Exit(1)
	}
	defer config.CloseDB()
	log.Println("✓ Connected to database")

	if err := config.StorefrontGorm.AutoMigrate(&models.Product{}); err != nil {
		log.Fatalf("Failed to migrate products table: %v", err)
	}
	log.Println("✓ Products table ready")

	products, err := catalog.SeedProducts()
	if err != nil {
		log.Fatalf("Failed to load seed catalog: %v", err)
	}

	seeded, skipped := 0, 0
	for _, p := range products {
		var existing models.Product
		if err := config.StorefrontGorm.Where("id = ?", p.ID).First(&existing).Error; err == nil {
			skipped++
			continue
		}
		if err := config.StorefrontGorm.Create(&p).Error; err != nil {
			log.Fatalf("Failed to seed product %s: %v", p.ID, err)
		}
		seeded++
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Catalog Seeded Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("Seeded:  %d products\n", seeded)
	fmt.Printf("Skipped: %d already present\n", skipped)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the API: go run main.go")
	fmt.Println("2. Browse products at GET /api/v1/store/products")
	fmt.Println()
}
