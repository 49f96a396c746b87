package models

import (
	"time"

	"gorm.io/gorm"
)

type DeliveryStatus string

const (
	DeliveryStatusAssigned  DeliveryStatus = "assigned"
	DeliveryStatusPickedUp  DeliveryStatus = "picked_up"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
)

// Delivery links an order to the agent carrying it. The unique index on
// OrderID keeps it at one delivery per order.
type Delivery struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID     uint           `gorm:"uniqueIndex;not null" json:"order_id"`
	AgentID     uint           `gorm:"index;not null" json:"agent_id"`
	Agent       User           `gorm:"foreignKey:AgentID" json:"agent,omitempty"`
	Status      DeliveryStatus `gorm:"type:varchar(20);default:'assigned'" json:"status"`
	AssignedAt  time.Time      `json:"assigned_at"`
	DeliveredAt *time.Time     `json:"delivered_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (d *Delivery) DeletionStamp() *gorm.DeletedAt { return &d.DeletedAt }
