package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BaseRepository provides transaction management capabilities for database operations.
type BaseRepository interface {
	Begin(ctx context.Context) *gorm.DB
	Reader(ctx context.Context) *gorm.DB
}

type baseRepository struct {
	db *gorm.DB
}

// NewBaseRepository creates a new base repository instance with database connection.
func NewBaseRepository(db *gorm.DB) BaseRepository {
	return &baseRepository{
		db: db,
	}
}

func (r *baseRepository) Begin(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Begin()
}

func (r *baseRepository) Reader(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// orDefault returns tx when the caller passed one, otherwise the repository's own handle.
func orDefault(tx, db *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return db
}

// forUpdate adds a row lock so a concurrent writer on the same scope waits for this transaction.
func forUpdate(db *gorm.DB) *gorm.DB {
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

// sqlDate renders a calendar date as a DATE literal parameter.
func sqlDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// activeOn builds the range-containment predicate for table: start <= d <= end (open end allowed).
func activeOn(table string) string {
	return fmt.Sprintf("%[1]s.start_dt <= ? AND (%[1]s.end_dt IS NULL OR %[1]s.end_dt >= ?)", table)
}

// overlapping builds the predicate matching rows whose range overlaps [start, end]; end may be open.
func overlapping(db *gorm.DB, table string, start time.Time, end *time.Time) *gorm.DB {
	db = db.Where(fmt.Sprintf("(%[1]s.end_dt IS NULL OR %[1]s.end_dt >= ?)", table), sqlDate(start))
	if end != nil {
		db = db.Where(fmt.Sprintf("%s.start_dt <= ?", table), sqlDate(*end))
	}
	return db
}
