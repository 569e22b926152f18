package resource

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned by Delete when no row matched the id.
var ErrNotFound = errors.New("not found")

// ============================
// 🗄 Generic Resource Store
//
// One store implementation drives the create/list/delete contract for
// every record kind; the descriptor supplies the table, the type
// parameter the row shape. Each call is a single autocommitted
// statement, so a failure never leaves a partial record.
type Store[T any] struct {
	db   *gorm.DB
	desc Descriptor
}

func NewStore[T any](db *gorm.DB, desc Descriptor) *Store[T] {
	return &Store[T]{db: db, desc: desc}
}

// List returns every row, newest first.
func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	rows := make([]T, 0)
	err := s.db.WithContext(ctx).
		Table(s.desc.Table).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

// Create inserts rec and fills in its generated id and timestamp.
func (s *Store[T]) Create(ctx context.Context, rec *T) error {
	return s.db.WithContext(ctx).Table(s.desc.Table).Create(rec).Error
}

// Delete removes at most one row by exact id. Deleting an id that does
// not exist reports ErrNotFound rather than succeeding silently.
func (s *Store[T]) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).
		Table(s.desc.Table).
		Where("id = ?", id).
		Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
