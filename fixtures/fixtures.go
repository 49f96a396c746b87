// Package fixtures seeds reference data so a fresh database is browsable.
package fixtures

import (
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/models"
)

// Load seeds categories, products and users when the catalog is empty.
// Safe to call on every boot.
func Load(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("ℹ️ Catalog already populated, skipping fixtures")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		categories := []models.Category{
			{Name: "Electronics", Description: "Phones, laptops and accessories", Active: true},
			{Name: "Books", Description: "Paper and audio books", Active: true},
			{Name: "Grocery", Description: "Everyday food items", Active: true},
		}
		if err := tx.Create(&categories).Error; err != nil {
			return err
		}

		products := []models.Product{
			{Name: "Wireless Mouse", Description: "Bluetooth mouse", Price: decimal.NewFromFloat(19.90), Stock: 120, Active: true, CategoryID: categories[0].ID},
			{Name: "Mechanical Keyboard", Description: "Tenkeyless, brown switches", Price: decimal.NewFromFloat(89.00), Stock: 35, Active: true, CategoryID: categories[0].ID},
			{Name: "USB-C Charger", Description: "65W fast charger", Price: decimal.NewFromFloat(29.50), Stock: 80, Active: true, CategoryID: categories[0].ID},
			{Name: "The Go Programming Language", Description: "Donovan & Kernighan", Price: decimal.NewFromFloat(39.99), Stock: 15, Active: true, CategoryID: categories[1].ID},
			{Name: "Coffee Beans 1kg", Description: "Medium roast arabica", Price: decimal.NewFromFloat(14.75), Stock: 200, Active: true, CategoryID: categories[2].ID},
		}
		if err := tx.Create(&products).Error; err != nil {
			return err
		}

		users := []models.User{
			{Name: "Admin", Email: "admin@boutique.local", PasswordHash: "$2a$10$seeded", Roles: []string{string(models.RoleAdmin)}, Active: true},
			{Name: "Alice", Email: "alice@example.com", PasswordHash: "$2a$10$seeded", Roles: []string{string(models.RoleCustomer)}, Active: true},
			{Name: "Driss", Email: "driss@boutique.local", PasswordHash: "$2a$10$seeded", Roles: []string{string(models.RoleDelivery)}, Active: true},
		}
		if err := tx.Create(&users).Error; err != nil {
			return err
		}

		log.Printf("✅ Seeded %d categories, %d products, %d users",
			len(categories), len(products), len(users))
		return nil
	})
}
