package repository_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Category{}, &models.Product{},
		&models.Order{}, &models.OrderItem{}, &models.Payment{},
	))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name, description string, price float64, stock int, categoryID uint) models.Product {
	t.Helper()
	product := models.Product{
		Name:        name,
		Description: description,
		Price:       decimal.NewFromFloat(price),
		Stock:       stock,
		Active:      true,
		CategoryID:  categoryID,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func seedCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name, Active: true}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func seedOrder(t *testing.T, db *gorm.DB, userID uint, status models.OrderStatus, total float64, items ...models.OrderItem) models.Order {
	t.Helper()
	order := models.Order{
		Reference: fmt.Sprintf("ref-%s-%d", t.Name(), len(items)+int(userID)*100+int(total*100)),
		UserID:    userID,
		Status:    status,
		Total:     decimal.NewFromFloat(total),
		Items:     items,
	}
	require.NoError(t, db.Create(&order).Error)
	return order
}
