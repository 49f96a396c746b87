package payment_test

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
	"github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/services/payment"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Order{}, &models.OrderItem{}, &models.Payment{}))
	return db
}

func seedOrder(t *testing.T, db *gorm.DB, total float64) models.Order {
	t.Helper()
	order := models.Order{
		Reference:     "ref-" + strings.ReplaceAll(t.Name(), "/", "-"),
		UserID:        1,
		Status:        models.OrderStatusPending,
		PaymentStatus: models.PaymentStatusPending,
		Total:         decimal.NewFromFloat(total),
	}
	require.NoError(t, db.Create(&order).Error)
	return order
}

func reloadOrder(t *testing.T, db *gorm.DB, id uint) models.Order {
	t.Helper()
	var order models.Order
	require.NoError(t, db.First(&order, "id = ?", id).Error)
	return order
}

func TestRecordValidatesInput(t *testing.T) {
	db := setupTestDB(t)
	svc := payment.NewService(db)
	order := seedOrder(t, db, 50)

	_, err := svc.Record(order.ID, decimal.Zero, "card", "tx-0")
	assert.ErrorIs(t, err, payment.ErrInvalidAmount)

	_, err = svc.Record(order.ID+1, decimal.NewFromInt(10), "card", "tx-1")
	assert.ErrorIs(t, err, payment.ErrOrderNotFound)
}

func TestPartialThenFullPaymentFlipsOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := payment.NewService(db)
	order := seedOrder(t, db, 50)

	_, err := svc.Record(order.ID, decimal.NewFromInt(20), "card", "tx-1")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, reloadOrder(t, db, order.ID).PaymentStatus)

	_, err = svc.Record(order.ID, decimal.NewFromInt(30), "card", "tx-2")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, reloadOrder(t, db, order.ID).PaymentStatus)
}

func TestFailedPaymentsNeverCountTowardTotal(t *testing.T) {
	db := setupTestDB(t)
	svc := payment.NewService(db)
	order := seedOrder(t, db, 50)

	pay, err := svc.RecordFailed(order.ID, decimal.NewFromInt(50), "card", "tx-1")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusFailed, pay.Status)
	assert.Equal(t, models.PaymentStatusPending, reloadOrder(t, db, order.ID).PaymentStatus)
}

func TestRefund(t *testing.T) {
	db := setupTestDB(t)
	svc := payment.NewService(db)
	order := seedOrder(t, db, 50)

	pay, err := svc.Record(order.ID, decimal.NewFromInt(50), "card", "tx-1")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, reloadOrder(t, db, order.ID).PaymentStatus)

	refunded, err := svc.Refund(pay.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusRefunded, refunded.Status)
	assert.Equal(t, models.PaymentStatusRefunded, reloadOrder(t, db, order.ID).PaymentStatus)

	_, err = svc.Refund(pay.ID + 100)
	assert.ErrorIs(t, err, payment.ErrPaymentNotFound)
}

func TestRefundKeepsOrderPaidWhileStillCovered(t *testing.T) {
	db := setupTestDB(t)
	svc := payment.NewService(db)
	order := seedOrder(t, db, 50)

	// A double charge: the order is covered twice over.
	_, err := svc.Record(order.ID, decimal.NewFromInt(50), "card", "tx-1")
	require.NoError(t, err)
	duplicate, err := svc.Record(order.ID, decimal.NewFromInt(50), "card", "tx-2")
	require.NoError(t, err)

	// Refunding the duplicate leaves the order fully paid.
	_, err = svc.Refund(duplicate.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, reloadOrder(t, db, order.ID).PaymentStatus)
}

func TestRefundOfPartialPaymentLeavesOrderPending(t *testing.T) {
	db := setupTestDB(t)
	svc := payment.NewService(db)
	order := seedOrder(t, db, 50)

	pay, err := svc.Record(order.ID, decimal.NewFromInt(20), "card", "tx-1")
	require.NoError(t, err)
	require.Equal(t, models.PaymentStatusPending, reloadOrder(t, db, order.ID).PaymentStatus)

	refunded, err := svc.Refund(pay.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusRefunded, refunded.Status)
	assert.Equal(t, models.PaymentStatusPending, reloadOrder(t, db, order.ID).PaymentStatus)
}

func TestByOrderListsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := payment.NewService(db)
	order := seedOrder(t, db, 50)

	_, err := svc.Record(order.ID, decimal.NewFromInt(10), "card", "tx-1")
	require.NoError(t, err)
	_, err = svc.RecordFailed(order.ID, decimal.NewFromInt(40), "card", "tx-2")
	require.NoError(t, err)

	payments, err := svc.ByOrder(order.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 2)
}
