// Package repository owns all SQL and every status transition. The legacy
// system issued ad hoc statements from each screen; here the transition
// rules for rooms, reservations, tables and orders live in one place and
// every multi-statement write runs inside a single transaction.
package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/shoab414/Hotel-Management/internal/billing"
)

// Error kinds. Handlers map these onto HTTP status codes; everything else
// is treated as an internal failure.
var (
	ErrNotFound          = errors.New("record not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrRoomUnavailable   = errors.New("room not available")
	ErrMenuItemInUse     = errors.New("menu item is referenced by existing orders")
	ErrEmptyOrder        = errors.New("order must have at least one line")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrValidation        = errors.New("validation failed")
)

type Repository struct {
	db   *gorm.DB
	calc billing.Calculator
}

func New(db *gorm.DB, gstRate float64) *Repository {
	return &Repository{db: db, calc: billing.NewCalculator(gstRate)}
}

// Calculator exposes the billing arithmetic configured for this repository.
func (r *Repository) Calculator() billing.Calculator {
	return r.calc
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
