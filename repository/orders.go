package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/models"
	"github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/softdelete"
)

type Orders struct {
	db *gorm.DB
}

func NewOrders(db *gorm.DB) *Orders {
	return &Orders{db: db}
}

func (r *Orders) ByStatus(status models.OrderStatus, mode softdelete.Mode) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Scopes(softdelete.Scope(mode)).
		Preload("Items").
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *Orders) ByUser(userID uint, mode softdelete.Mode) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Scopes(softdelete.Scope(mode)).
		Preload("Items").
		Preload("Payments").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *Orders) ByReference(ref string, mode softdelete.Mode) (*models.Order, error) {
	var order models.Order
	err := r.db.Scopes(softdelete.Scope(mode)).
		Preload("Items").
		Preload("Payments").
		Where("reference = ?", ref).
		First(&order).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *Orders) CreatedBetween(from, to time.Time, mode softdelete.Mode) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Scopes(softdelete.Scope(mode)).
		Preload("Items").
		Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *Orders) CountByStatus() (map[models.OrderStatus]int64, error) {
	var rows []struct {
		Status models.OrderStatus
		Count  int64
	}
	err := r.db.Model(&models.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[models.OrderStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// StatusRevenue is a raw aggregate projection grouped by order status.
type StatusRevenue struct {
	Status  models.OrderStatus `json:"status"`
	Orders  int64              `json:"orders"`
	Revenue decimal.Decimal    `json:"revenue"`
	Average decimal.Decimal    `json:"average"`
}

// RevenueByStatus sums and averages order totals per status over live,
// non-cancelled orders.
func (r *Orders) RevenueByStatus() ([]StatusRevenue, error) {
	var rows []StatusRevenue
	err := r.db.Model(&models.Order{}).
		Select("status, COUNT(*) AS orders, SUM(total) AS revenue, AVG(total) AS average").
		Where("status <> ?", models.OrderStatusCancelled).
		Group("status").
		Order("status ASC").
		Scan(&rows).Error
	return rows, err
}
