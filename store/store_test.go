package store_test

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
	"github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/softdelete"
	"github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/store"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Category{}, &models.Product{}, &models.Cart{}, &models.CartItem{},
	))
	return db
}

func seedCatalog(t *testing.T, db *gorm.DB) (models.Category, []models.Product) {
	t.Helper()
	category := models.Category{Name: "Toys", Active: true}
	require.NoError(t, db.Create(&category).Error)
	products := []models.Product{
		{Name: "Kite", Price: decimal.NewFromFloat(12.00), Stock: 5, Active: true, CategoryID: category.ID},
		{Name: "Ball", Price: decimal.NewFromFloat(4.50), Stock: 8, Active: true, CategoryID: category.ID},
		{Name: "Puzzle", Price: decimal.NewFromFloat(7.25), Stock: 0, Active: true, CategoryID: category.ID},
	}
	require.NoError(t, db.Create(&products).Error)
	return category, products
}

func TestFindByIDRespectsMode(t *testing.T) {
	db := setupTestDB(t)
	_, products := seedCatalog(t, db)
	kite := products[0]

	require.NoError(t, softdelete.Delete(db, &kite))

	found, err := store.FindByID[models.Product](db, kite.ID, softdelete.Live)
	require.NoError(t, err)
	assert.Nil(t, found)

	found, err = store.FindByID[models.Product](db, kite.ID, softdelete.Deleted)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Kite", found.Name)

	found, err = store.FindByID[models.Product](db, kite.ID, softdelete.All)
	require.NoError(t, err)
	assert.NotNil(t, found)
}

func TestFindAllDefaultsExcludeDeleted(t *testing.T) {
	db := setupTestDB(t)
	_, products := seedCatalog(t, db)
	require.NoError(t, softdelete.Delete(db, &products[1]))

	live, err := store.FindAll[models.Product](db, softdelete.Live)
	require.NoError(t, err)
	assert.Len(t, live, 2)

	all, err := store.FindAll[models.Product](db, softdelete.All)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	deleted, err := store.FindAll[models.Product](db, softdelete.Deleted)
	require.NoError(t, err)
	require.Len(t, deleted, 1)
	assert.Equal(t, "Ball", deleted[0].Name)
}

func TestFindByCriteriaOrderingAndPaging(t *testing.T) {
	db := setupTestDB(t)
	category, _ := seedCatalog(t, db)

	results, err := store.FindBy[models.Product](db, store.Query{
		Criteria: map[string]any{"category_id": category.ID},
		OrderBy:  "price ASC",
		Limit:    2,
	}, softdelete.Live)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Ball", results[0].Name)
	assert.Equal(t, "Puzzle", results[1].Name)

	offset, err := store.FindBy[models.Product](db, store.Query{
		Criteria: map[string]any{"category_id": category.ID},
		OrderBy:  "price ASC",
		Limit:    2,
		Offset:   2,
	}, softdelete.Live)
	require.NoError(t, err)
	require.Len(t, offset, 1)
	assert.Equal(t, "Kite", offset[0].Name)
}

func TestModeIsIgnoredForTypesWithoutStamp(t *testing.T) {
	db := setupTestDB(t)
	_, products := seedCatalog(t, db)

	cart := models.Cart{UserID: 1}
	require.NoError(t, db.Create(&cart).Error)
	line := models.CartItem{CartID: cart.ID, ProductID: products[0].ID, Quantity: 2}
	require.NoError(t, db.Create(&line).Error)

	// CartItem has no deleted_at column; every mode sees the same rows.
	for _, mode := range []softdelete.Mode{softdelete.Live, softdelete.Deleted, softdelete.All} {
		items, err := store.FindAll[models.CartItem](db, mode)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	}
}

func TestSoftDeleteRejectsUnsupportedEntity(t *testing.T) {
	db := setupTestDB(t)
	_, products := seedCatalog(t, db)

	cart := models.Cart{UserID: 1}
	require.NoError(t, db.Create(&cart).Error)
	line := models.CartItem{CartID: cart.ID, ProductID: products[0].ID, Quantity: 1}
	require.NoError(t, db.Create(&line).Error)

	err := store.SoftDelete(db, &line)
	assert.ErrorIs(t, err, softdelete.ErrUnsupportedEntity)
	assert.ErrorIs(t, store.RestoreDeleted(db, &line), softdelete.ErrUnsupportedEntity)

	// The typed path still works through the same entry point.
	require.NoError(t, store.SoftDelete(db, &products[0]))
	require.NoError(t, store.RestoreDeleted(db, &products[0]))
}

func TestRemoveSoftDeletesStampedTypes(t *testing.T) {
	db := setupTestDB(t)
	_, products := seedCatalog(t, db)

	require.NoError(t, store.Remove(db, &products[0]))

	var liveCount, allCount int64
	require.NoError(t, db.Model(&models.Product{}).Count(&liveCount).Error)
	require.NoError(t, db.Unscoped().Model(&models.Product{}).Count(&allCount).Error)
	assert.Equal(t, int64(2), liveCount)
	assert.Equal(t, int64(3), allCount)
}
