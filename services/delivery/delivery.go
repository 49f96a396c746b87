// Package delivery assigns orders to delivery agents and tracks the
// handover through to the customer.
package delivery

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/models"
)

var (
	ErrOrderNotFound    = errors.New("order does not exist")
	ErrNotDeliveryAgent = errors.New("user is not an active delivery agent")
	ErrAlreadyAssigned  = errors.New("order already has a delivery")
	ErrNotFound         = errors.New("delivery does not exist")
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Assign creates the one delivery an order may have and hands it to an
// active user holding the delivery role.
func (s *Service) Assign(orderID, agentID uint) (*models.Delivery, error) {
	var order models.Order
	if err := s.db.First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	var agent models.User
	if err := s.db.First(&agent, "id = ?", agentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotDeliveryAgent
		}
		return nil, err
	}
	if !agent.Active || !agent.HasRole(models.RoleDelivery) {
		return nil, ErrNotDeliveryAgent
	}

	var existing models.Delivery
	err := s.db.Where("order_id = ?", order.ID).First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyAssigned
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	d := models.Delivery{
		OrderID:    order.ID,
		AgentID:    agent.ID,
		Status:     models.DeliveryStatusAssigned,
		AssignedAt: time.Now(),
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&d).Error; err != nil {
			return err
		}
		return tx.Model(&order).Update("status", models.OrderStatusConfirmed).Error
	})
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// MarkPickedUp moves the parcel out of the door; the order goes to shipped.
func (s *Service) MarkPickedUp(deliveryID uint) (*models.Delivery, error) {
	return s.transition(deliveryID, models.DeliveryStatusPickedUp, models.OrderStatusShipped, false)
}

// MarkDelivered stamps the handover time; the order goes to delivered.
func (s *Service) MarkDelivered(deliveryID uint) (*models.Delivery, error) {
	return s.transition(deliveryID, models.DeliveryStatusDelivered, models.OrderStatusDelivered, true)
}

func (s *Service) transition(deliveryID uint, ds models.DeliveryStatus, os models.OrderStatus, stamp bool) (*models.Delivery, error) {
	var d models.Delivery
	if err := s.db.First(&d, "id = ?", deliveryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updates := map[string]any{"status": ds}
	if stamp {
		now := time.Now()
		updates["delivered_at"] = &now
		d.DeliveredAt = &now
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&d).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Model(&models.Order{}).Where("id = ?", d.OrderID).
			Update("status", os).Error
	})
	if err != nil {
		return nil, err
	}
	d.Status = ds
	return &d, nil
}

// ByAgent lists an agent's deliveries, most recent assignment first.
func (s *Service) ByAgent(agentID uint) ([]models.Delivery, error) {
	var deliveries []models.Delivery
	err := s.db.Where("agent_id = ?", agentID).
		Order("assigned_at DESC").
		Find(&deliveries).Error
	return deliveries, err
}
