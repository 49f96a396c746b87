// Package store is the generic persistence surface the services read and
// write through. Every finder takes a softdelete.Mode so deleted-row
// visibility is decided at the call site, never implicitly.
package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/softdelete"
)

// Query parameterizes FindBy: column equality criteria plus optional
// ordering and paging.
type Query struct {
	Criteria map[string]any
	OrderBy  string
	Limit    int
	Offset   int
}

// scoped applies the soft-delete scope for types that carry a deletion
// stamp; types without one (cart and order lines) ignore the mode.
func scoped[T any](db *gorm.DB, mode softdelete.Mode) *gorm.DB {
	var probe T
	if _, ok := any(&probe).(softdelete.Deletable); ok {
		return db.Scopes(softdelete.Scope(mode))
	}
	return db
}

// FindByID returns the entity with the given id, or nil when no row is
// visible under the mode.
func FindByID[T any](db *gorm.DB, id uint, mode softdelete.Mode) (*T, error) {
	var out T
	err := scoped[T](db, mode).First(&out, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func FindAll[T any](db *gorm.DB, mode softdelete.Mode) ([]T, error) {
	var out []T
	if err := scoped[T](db, mode).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func FindBy[T any](db *gorm.DB, q Query, mode softdelete.Mode) ([]T, error) {
	tx := scoped[T](db, mode)
	for column, value := range q.Criteria {
		tx = tx.Where(column+" = ?", value)
	}
	if q.OrderBy != "" {
		tx = tx.Order(q.OrderBy)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	if q.Offset > 0 {
		tx = tx.Offset(q.Offset)
	}
	var out []T
	if err := tx.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Persist writes the entity (insert or update).
func Persist(db *gorm.DB, entity any) error {
	return db.Save(entity).Error
}

// Remove deletes the entity. GORM soft-deletes types carrying a deletion
// stamp and hard-deletes the rest, which matches the entity model.
func Remove(db *gorm.DB, entity any) error {
	return db.Delete(entity).Error
}

// Atomically runs fn inside a transaction; an error rolls everything back.
func Atomically(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.Transaction(fn)
}

// SoftDelete is the type-erased entry point for callers that lost the static
// type; it fails hard on entities without a deletion stamp.
func SoftDelete(db *gorm.DB, entity any) error {
	d, ok := entity.(softdelete.Deletable)
	if !ok {
		return softdelete.ErrUnsupportedEntity
	}
	return softdelete.Delete(db, d)
}

// RestoreDeleted is the type-erased counterpart of SoftDelete.
func RestoreDeleted(db *gorm.DB, entity any) error {
	d, ok := entity.(softdelete.Deletable)
	if !ok {
		return softdelete.ErrUnsupportedEntity
	}
	return softdelete.Restore(db, d)
}
