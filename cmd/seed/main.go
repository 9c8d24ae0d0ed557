package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Nautica-Marine/nautica-store-backend/config"
	"github.com/Nautica-Marine/nautica-store-backend/models"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main seeds the admin account and the starter catalog
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("NAUTICA MARINE STORE - Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	log.Println("✓ Connected to database")

	seedAdmin()
	seedBrands()
	seedProducts()

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Seeding complete")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Login at POST /api/admin/login with the seeded credentials")
	fmt.Println("3. Use the returned token for authenticated requests")
	fmt.Println()
}

// seedAdmin creates the back-office account from ADMIN_USERNAME and
// ADMIN_PASSWORD. Skipped when the account already exists.
func seedAdmin() {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		fmt.Println("⚠ ADMIN_USERNAME / ADMIN_PASSWORD not set, skipping admin account")
		return
	}
	if len(password) < 8 {
		log.Fatal("❌ ADMIN_PASSWORD must be at least 8 characters")
	}

	var existing models.AdminUser
	err := config.StoreGorm.Where("username = ?", username).First(&existing).Error
	if err == nil {
		fmt.Printf("✓ Admin '%s' already exists, skipping\n", username)
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatalf("Database error: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := models.AdminUser{Username: username, PasswordHash: string(hash)}
	if err := config.StoreGorm.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}
	fmt.Printf("✓ Admin '%s' created\n", username)
}

func seedBrands() {
	brands := []models.Brand{
		{Name: "Nordline", Logo: "/images/brands/nordline.png"},
		{Name: "Marex", Logo: "/images/brands/marex.png"},
		{Name: "Silver", Logo: "/images/brands/silver.png"},
	}
	result := config.StoreGorm.
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&brands)
	if result.Error != nil {
		log.Fatalf("Failed to seed brands: %v", result.Error)
	}
	fmt.Printf("✓ Brands seeded (%d new)\n", result.RowsAffected)
}

func seedProducts() {
	var count int64
	if err := config.StoreGorm.Model(&models.Product{}).Count(&count).Error; err != nil {
		log.Fatalf("Failed to count products: %v", err)
	}
	if count > 0 {
		fmt.Println("✓ Products already present, skipping catalog seed")
		return
	}

	products := []models.Product{
		{
			Name:         "Nordline 48 Fisher",
			Category:     "Nordline",
			Price:        15990,
			Stock:        3,
			Description:  "Sturdy all-weather fishing boat with a heated cabin.",
			Images:       models.ImageList{"/images/products/nordline-48.jpg"},
			DisplayOrder: 1,
			SpecsColumns: 2,
			Specs: models.SpecsList{
				{Key: "Length", Value: "4.8 m"},
				{Key: "Beam", Value: "2.05 m"},
				{Key: "Max power", Value: "60 hp"},
			},
			Options: models.OptionsList{
				{
					Name:     "Engine",
					Type:     "radio",
					Required: true,
					Choices: []models.Choice{
						{Label: "40 hp", Price: 0},
						{Label: "50 hp", Price: 1200},
						{Label: "60 hp", Price: 2400},
					},
				},
				{
					Name: "Extras",
					Type: "checkbox",
					Choices: []models.Choice{
						{Label: "GPS plotter", Price: 650},
						{Label: "Bow rail", Price: 300},
					},
				},
			},
			StandardEquipment: models.EquipmentList{
				{Header: "Deck", Items: []string{"Navigation lights", "Rod holders"}},
			},
		},
		{
			Name:         "Marex 310 Sun Cruiser",
			Category:     "Marex",
			Price:        219000,
			Stock:        1,
			Description:  "Family cruiser with a full-beam aft cabin.",
			Images:       models.ImageList{"/images/products/marex-310.jpg"},
			DisplayOrder: 2,
			SpecsColumns: 2,
			Specs: models.SpecsList{
				{Key: "Length", Value: "9.99 m"},
				{Key: "Berths", Value: "4+2"},
			},
		},
	}
	if err := config.StoreGorm.Create(&products).Error; err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}
	fmt.Printf("✓ Catalog seeded (%d products)\n", len(products))
}
