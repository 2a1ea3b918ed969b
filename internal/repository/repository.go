package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tpc/ocean/internal/resource"
)

// ErrReferenceNotFound is returned by Save when a referenced id does not
// resolve in its target table.
var ErrReferenceNotFound = errors.New("referenced record not found")

// Repository is the gorm-backed store for one entity kind.
type Repository[T any] struct {
	db   *gorm.DB
	kind resource.Kind[T]
	refs []resource.Reference[T]
}

func New[T any](db *gorm.DB, kind resource.Kind[T]) *Repository[T] {
	return &Repository[T]{db: db, kind: kind, refs: kind.References()}
}

// FindPage returns the records of the zero-based page in id order together
// with the total number of records.
func (r *Repository[T]) FindPage(ctx context.Context, page, size int) ([]T, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(new(T)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	records := make([]T, 0)
	if page < 0 || size <= 0 || total == 0 || int64(page) > (total-1)/int64(size) {
		return records, total, nil
	}

	// page*size < total here, so the offset cannot overflow.
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(int(int64(page) * int64(size))).
		Limit(size).
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// FindByID returns gorm.ErrRecordNotFound when no record has the id.
func (r *Repository[T]) FindByID(ctx context.Context, id uint64) (*T, error) {
	var rec T
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// Save inserts rec when it has no identity yet and rewrites the full row
// otherwise, failing with gorm.ErrRecordNotFound if the row is gone.
// Referenced ids are checked in the same transaction.
func (r *Repository[T]) Save(ctx context.Context, rec *T) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.checkReferences(tx, rec); err != nil {
			return err
		}
		if r.kind.ID(rec) == 0 {
			return tx.Create(rec).Error
		}
		// Select("*") writes zero values too; the row must still exist.
		res := tx.Model(rec).Select("*").Updates(rec)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// DeleteByID returns gorm.ErrRecordNotFound when nothing was removed.
func (r *Repository[T]) DeleteByID(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repository[T]) checkReferences(tx *gorm.DB, rec *T) error {
	for _, ref := range r.refs {
		id := ref.Get(rec)
		if id == 0 {
			continue
		}
		var count int64
		if err := tx.Table(ref.Table).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("%w: %s %d", ErrReferenceNotFound, ref.Column, id)
		}
	}
	return nil
}
