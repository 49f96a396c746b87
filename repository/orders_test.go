package repository_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/models"
	"github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/repository"
	"github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/softdelete"
)

func TestOrdersByStatusAndUser(t *testing.T) {
	db := setupTestDB(t)
	seedOrder(t, db, 1, models.OrderStatusPending, 10)
	seedOrder(t, db, 1, models.OrderStatusDelivered, 20)
	seedOrder(t, db, 2, models.OrderStatusPending, 30)

	repo := repository.NewOrders(db)

	pending, err := repo.ByStatus(models.OrderStatusPending, softdelete.Live)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	mine, err := repo.ByUser(1, softdelete.Live)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestOrdersByStatusExcludesDeleted(t *testing.T) {
	db := setupTestDB(t)
	order := seedOrder(t, db, 1, models.OrderStatusPending, 10)
	require.NoError(t, softdelete.Delete(db, &order))

	repo := repository.NewOrders(db)
	live, err := repo.ByStatus(models.OrderStatusPending, softdelete.Live)
	require.NoError(t, err)
	assert.Empty(t, live)

	deleted, err := repo.ByStatus(models.OrderStatusPending, softdelete.Deleted)
	require.NoError(t, err)
	assert.Len(t, deleted, 1)
}

func TestOrdersByReference(t *testing.T) {
	db := setupTestDB(t)
	order := seedOrder(t, db, 1, models.OrderStatusPending, 10)

	repo := repository.NewOrders(db)
	found, err := repo.ByReference(order.Reference, softdelete.Live)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, order.ID, found.ID)

	missing, err := repo.ByReference("no-such-ref", softdelete.Live)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestOrdersCreatedBetween(t *testing.T) {
	db := setupTestDB(t)
	old := seedOrder(t, db, 1, models.OrderStatusDelivered, 10)
	require.NoError(t, db.Model(&old).
		Update("created_at", time.Now().Add(-72*time.Hour)).Error)
	seedOrder(t, db, 1, models.OrderStatusPending, 20)

	repo := repository.NewOrders(db)
	recent, err := repo.CreatedBetween(time.Now().Add(-24*time.Hour), time.Now().Add(time.Hour), softdelete.Live)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}

func TestCountByStatusSkipsDeletedOrders(t *testing.T) {
	db := setupTestDB(t)
	seedOrder(t, db, 1, models.OrderStatusPending, 10)
	seedOrder(t, db, 2, models.OrderStatusPending, 20)
	gone := seedOrder(t, db, 3, models.OrderStatusPending, 30)
	require.NoError(t, softdelete.Delete(db, &gone))

	repo := repository.NewOrders(db)
	counts, err := repo.CountByStatus()
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[models.OrderStatusPending])
}

func TestRevenueByStatus(t *testing.T) {
	db := setupTestDB(t)
	seedOrder(t, db, 1, models.OrderStatusDelivered, 10)
	seedOrder(t, db, 2, models.OrderStatusDelivered, 30)
	seedOrder(t, db, 3, models.OrderStatusCancelled, 500)

	repo := repository.NewOrders(db)
	rows, err := repo.RevenueByStatus()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, models.OrderStatusDelivered, rows[0].Status)
	assert.Equal(t, int64(2), rows[0].Orders)
	assert.True(t, rows[0].Revenue.Equal(decimal.NewFromInt(40)), "revenue = %s", rows[0].Revenue)
	assert.True(t, rows[0].Average.Equal(decimal.NewFromInt(20)), "average = %s", rows[0].Average)
}
