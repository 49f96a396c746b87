package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"  // Payment not completed yet
	PaymentStatusPaid     PaymentStatus = "paid"     // Payment completed successfully
	PaymentStatusFailed   PaymentStatus = "failed"   // Payment attempt failed
	PaymentStatusRefunded PaymentStatus = "refunded" // Money returned to customer
)

type Payment struct {
	ID             uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID        uint            `gorm:"index;not null" json:"order_id"`
	Amount         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Method         string          `json:"method"` // e.g. "card", "cod"
	Status         PaymentStatus   `gorm:"type:varchar(20);default:'pending'" json:"status"`
	TransactionRef string          `gorm:"index" json:"transaction_ref"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (p *Payment) DeletionStamp() *gorm.DeletedAt { return &p.DeletedAt }
