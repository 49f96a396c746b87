// Package softdelete turns deletes into timestamp writes and makes the
// visibility of deleted rows an explicit choice at every read.
package softdelete

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ErrUnsupportedEntity is returned by type-erased call paths when the value
// does not carry a deletion stamp. The typed API below cannot hit it.
var ErrUnsupportedEntity = errors.New("entity type does not support soft delete")

// Deletable is implemented by every entity that carries a deletion stamp.
// Declaring the capability on the type keeps misuse a compile error instead
// of a runtime probe.
type Deletable interface {
	DeletionStamp() *gorm.DeletedAt
}

// Mode selects which rows a read sees. The zero value is Live, so every
// finder that threads a Mode through excludes deleted rows unless the caller
// opts in.
type Mode int

const (
	Live    Mode = iota // exclude soft-deleted rows (default)
	Deleted             // only soft-deleted rows
	All                 // everything
)

// Scope returns a GORM scope applying the mode. Live relies on GORM's own
// deleted_at filter; the other modes lift it via Unscoped.
func Scope(mode Mode) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch mode {
		case Deleted:
			return db.Unscoped().Where("deleted_at IS NOT NULL")
		case All:
			return db.Unscoped()
		default:
			return db
		}
	}
}

// Delete stamps the entity as deleted and persists the stamp immediately.
// Deleting an already-deleted entity is a no-op.
func Delete(db *gorm.DB, e Deletable) error {
	if e.DeletionStamp().Valid {
		return nil
	}
	now := time.Now()
	if err := db.Unscoped().Model(e).Update("deleted_at", now).Error; err != nil {
		return err
	}
	*e.DeletionStamp() = gorm.DeletedAt{Time: now, Valid: true}
	return nil
}

// Restore clears the stamp, making the entity visible to live reads again.
func Restore(db *gorm.DB, e Deletable) error {
	if !e.DeletionStamp().Valid {
		return nil
	}
	if err := db.Unscoped().Model(e).Update("deleted_at", nil).Error; err != nil {
		return err
	}
	*e.DeletionStamp() = gorm.DeletedAt{}
	return nil
}

func IsDeleted(e Deletable) bool {
	return e.DeletionStamp().Valid
}

// DeleteAll stamps every entity inside one transaction; a failure on any
// element rolls back the whole batch. In-memory stamps are only set once the
// transaction has committed, so a failed batch leaves the entities untouched.
func DeleteAll(db *gorm.DB, entities []Deletable) error {
	now := time.Now()
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, e := range entities {
			if e.DeletionStamp().Valid {
				continue
			}
			if err := tx.Unscoped().Model(e).Update("deleted_at", now).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	for _, e := range entities {
		if !e.DeletionStamp().Valid {
			*e.DeletionStamp() = gorm.DeletedAt{Time: now, Valid: true}
		}
	}
	return nil
}

// RestoreAll clears every stamp inside one transaction, all-or-nothing.
func RestoreAll(db *gorm.DB, entities []Deletable) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, e := range entities {
			if !e.DeletionStamp().Valid {
				continue
			}
			if err := tx.Unscoped().Model(e).Update("deleted_at", nil).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	for _, e := range entities {
		*e.DeletionStamp() = gorm.DeletedAt{}
	}
	return nil
}
