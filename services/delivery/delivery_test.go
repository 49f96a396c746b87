package delivery_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/models"
	"github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/services/delivery"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Order{}, &models.OrderItem{}, &models.Delivery{},
	))
	return db
}

func seedAgent(t *testing.T, db *gorm.DB, roles ...string) models.User {
	t.Helper()
	user := models.User{
		Name:         "Agent",
		Email:        fmt.Sprintf("agent-%d@example.com", len(roles)),
		PasswordHash: "x",
		Roles:        roles,
		Active:       true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedOrder(t *testing.T, db *gorm.DB) models.Order {
	t.Helper()
	order := models.Order{
		Reference: "ref-" + strings.ReplaceAll(t.Name(), "/", "-"),
		UserID:    1,
		Status:    models.OrderStatusPending,
		Total:     decimal.NewFromInt(10),
	}
	require.NoError(t, db.Create(&order).Error)
	return order
}

func TestAssignRequiresDeliveryRole(t *testing.T) {
	db := setupTestDB(t)
	svc := delivery.NewService(db)
	order := seedOrder(t, db)
	customer := seedAgent(t, db, string(models.RoleCustomer))

	_, err := svc.Assign(order.ID, customer.ID)
	assert.ErrorIs(t, err, delivery.ErrNotDeliveryAgent)

	_, err = svc.Assign(order.ID, customer.ID+100)
	assert.ErrorIs(t, err, delivery.ErrNotDeliveryAgent)

	_, err = svc.Assign(order.ID+100, customer.ID)
	assert.ErrorIs(t, err, delivery.ErrOrderNotFound)
}

func TestAssignIsUniquePerOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := delivery.NewService(db)
	order := seedOrder(t, db)
	agent := seedAgent(t, db, string(models.RoleDelivery))

	d, err := svc.Assign(order.ID, agent.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DeliveryStatusAssigned, d.Status)
	assert.False(t, d.AssignedAt.IsZero())

	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, "id = ?", order.ID).Error)
	assert.Equal(t, models.OrderStatusConfirmed, reloaded.Status)

	_, err = svc.Assign(order.ID, agent.ID)
	assert.ErrorIs(t, err, delivery.ErrAlreadyAssigned)
}

func TestDeliveryLifecycle(t *testing.T) {
	db := setupTestDB(t)
	svc := delivery.NewService(db)
	order := seedOrder(t, db)
	agent := seedAgent(t, db, string(models.RoleDelivery))

	d, err := svc.Assign(order.ID, agent.ID)
	require.NoError(t, err)

	picked, err := svc.MarkPickedUp(d.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DeliveryStatusPickedUp, picked.Status)

	done, err := svc.MarkDelivered(d.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DeliveryStatusDelivered, done.Status)
	require.NotNil(t, done.DeliveredAt)

	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, "id = ?", order.ID).Error)
	assert.Equal(t, models.OrderStatusDelivered, reloaded.Status)

	_, err = svc.MarkDelivered(d.ID + 100)
	assert.ErrorIs(t, err, delivery.ErrNotFound)
}

func TestByAgent(t *testing.T) {
	db := setupTestDB(t)
	svc := delivery.NewService(db)
	order := seedOrder(t, db)
	agent := seedAgent(t, db, string(models.RoleDelivery))

	_, err := svc.Assign(order.ID, agent.ID)
	require.NoError(t, err)

	deliveries, err := svc.ByAgent(agent.ID)
	require.NoError(t, err)
	assert.Len(t, deliveries, 1)
}
