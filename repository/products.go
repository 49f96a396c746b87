package repository

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/models"
	"github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/softdelete"
)

type Products struct {
	db *gorm.DB
}

func NewProducts(db *gorm.DB) *Products {
	return &Products{db: db}
}

// Search matches name or description, case-insensitive.
func (r *Products) Search(term string, mode softdelete.Mode) ([]models.Product, error) {
	like := "%" + term + "%"
	var products []models.Product
	err := r.db.Scopes(softdelete.Scope(mode)).
		Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", like, like).
		Order("name ASC").
		Find(&products).Error
	return products, err
}

func (r *Products) InPriceRange(min, max decimal.Decimal, mode softdelete.Mode) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Scopes(softdelete.Scope(mode)).
		Where("price >= ? AND price <= ?", min, max).
		Order("price ASC").
		Find(&products).Error
	return products, err
}

func (r *Products) ByCategory(categoryID uint, mode softdelete.Mode) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Scopes(softdelete.Scope(mode)).
		Where("category_id = ?", categoryID).
		Order("name ASC").
		Find(&products).Error
	return products, err
}

// OutOfStock lists live products whose stock has run dry.
func (r *Products) OutOfStock(mode softdelete.Mode) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Scopes(softdelete.Scope(mode)).
		Where("stock <= 0").
		Order("name ASC").
		Find(&products).Error
	return products, err
}

// ProductSales is a raw aggregate projection, not an entity row.
type ProductSales struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	UnitsSold int    `json:"units_sold"`
}

// TopSellers ranks products by units sold across non-cancelled, live orders.
// The product join is deliberately unscoped: a product sold and later
// retired from the catalog still counts toward the ranking.
func (r *Products) TopSellers(limit int) ([]ProductSales, error) {
	var sales []ProductSales
	err := r.db.Model(&models.OrderItem{}).
		Select("order_items.product_id AS product_id, products.name AS name, SUM(order_items.quantity) AS units_sold").
		Joins("JOIN orders ON orders.id = order_items.order_id AND orders.deleted_at IS NULL AND orders.status <> ?", models.OrderStatusCancelled).
		Joins("JOIN products ON products.id = order_items.product_id").
		Group("order_items.product_id, products.name").
		Order("units_sold DESC").
		Limit(limit).
		Scan(&sales).Error
	return sales, err
}
