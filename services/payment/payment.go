// Package payment records payments against orders and keeps the order's
// payment state in step with what has actually been paid.
package payment

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/models"
)

var (
	ErrOrderNotFound   = errors.New("order does not exist")
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrPaymentNotFound = errors.New("payment does not exist")
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Record books a successful payment. When the paid total reaches the order
// total, the order flips to paid.
func (s *Service) Record(orderID uint, amount decimal.Decimal, method, transactionRef string) (*models.Payment, error) {
	return s.record(orderID, amount, method, transactionRef, models.PaymentStatusPaid)
}

// RecordFailed books a failed attempt; it never changes the order's state.
func (s *Service) RecordFailed(orderID uint, amount decimal.Decimal, method, transactionRef string) (*models.Payment, error) {
	return s.record(orderID, amount, method, transactionRef, models.PaymentStatusFailed)
}

func (s *Service) record(orderID uint, amount decimal.Decimal, method, transactionRef string, status models.PaymentStatus) (*models.Payment, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	var order models.Order
	if err := s.db.First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	pay := models.Payment{
		OrderID:        order.ID,
		Amount:         amount.Round(2),
		Method:         method,
		Status:         status,
		TransactionRef: transactionRef,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&pay).Error; err != nil {
			return err
		}
		if status != models.PaymentStatusPaid {
			return nil
		}
		paid, err := s.paidTotal(tx, order.ID)
		if err != nil {
			return err
		}
		if paid.GreaterThanOrEqual(order.Total) {
			return tx.Model(&order).Update("payment_status", models.PaymentStatusPaid).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &pay, nil
}

// Refund reverses a payment. The order only drops out of paid when the
// remaining paid payments no longer cover its total.
func (s *Service) Refund(paymentID uint) (*models.Payment, error) {
	var pay models.Payment
	if err := s.db.First(&pay, "id = ?", paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	var order models.Order
	if err := s.db.First(&order, "id = ?", pay.OrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&pay).Update("status", models.PaymentStatusRefunded).Error; err != nil {
			return err
		}
		paid, err := s.paidTotal(tx, pay.OrderID)
		if err != nil {
			return err
		}
		// A duplicate charge can leave the order covered after a refund.
		if paid.GreaterThanOrEqual(order.Total) {
			return nil
		}
		if order.PaymentStatus == models.PaymentStatusPaid {
			return tx.Model(&order).Update("payment_status", models.PaymentStatusRefunded).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	pay.Status = models.PaymentStatusRefunded
	return &pay, nil
}

// ByOrder lists a live order's payments, newest first.
func (s *Service) ByOrder(orderID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.db.Where("order_id = ?", orderID).
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}

// paidTotal sums live paid payments for an order.
func (s *Service) paidTotal(tx *gorm.DB, orderID uint) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	err := tx.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("order_id = ? AND status = ?", orderID, models.PaymentStatusPaid).
		Scan(&row).Error
	return row.Total, err
}
