// Package repo implements the data persistence layer for café records,
// backed by GORM. This file provides repository functions for the Cafe model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions. They follow the "thin repository"
// approach: no business rules, only persistence and query composition.
//
// Error semantics:
//   - When a café is not found, functions return ErrNotFound
//     (an alias of gorm.ErrRecordNotFound).
//   - Duplicate names violate the unique index and surface as the raw DB
//     error (gorm.ErrDuplicatedKey when the dialect translates it). The
//     service layer maps that to a domain error.
//   - Other DB errors are propagated unchanged.
//
// Functions:
//
//   - ListCafes(ctx, db, filter) -> []domain.Cafe, error
//     Returns the matching cafés ordered by name ascending.
//
//   - CountCafes(ctx, db) -> int64, error
//
//   - GetCafe(ctx, db, id) -> *domain.Cafe, error
//
//   - CreateCafe(ctx, db, cafe) -> error
//     Inserts and fills in the generated ID.
//
//   - UpdateCafePrice(ctx, db, id, price) -> error
//     Sets coffee_price (nil clears it). ErrNotFound if no row matched.
//
//   - DeleteCafe(ctx, db, id) -> error
//     Hard-deletes the row. ErrNotFound if no row matched.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/spencergreen21/cafeWebsite/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// ListCafes returns every café matching f, ordered by name ascending. It
// returns an empty slice when nothing matches.
func ListCafes(ctx context.Context, db *gorm.DB, f domain.CafeFilter) ([]domain.Cafe, error) {
	out := []domain.Cafe{}
	err := db.WithContext(ctx).
		Scopes(FilterScope(f)).
		Order("name asc").
		Find(&out).Error
	return out, err
}

// CountCafes returns the total number of stored cafés.
func CountCafes(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.Cafe{}).Count(&total).Error
	return total, err
}

// GetCafe fetches a single café by ID or returns ErrNotFound.
func GetCafe(ctx context.Context, db *gorm.DB, id uint) (*domain.Cafe, error) {
	var c domain.Cafe
	if err := db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCafe inserts c. On success c.ID holds the assigned key.
func CreateCafe(ctx context.Context, db *gorm.DB, c *domain.Cafe) error {
	return db.WithContext(ctx).Create(c).Error
}

// UpdateCafePrice sets the coffee price for id. A nil price stores NULL.
func UpdateCafePrice(ctx context.Context, db *gorm.DB, id uint, price *string) error {
	res := db.WithContext(ctx).
		Model(&domain.Cafe{}).
		Where("id = ?", id).
		Update("coffee_price", price)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCafe removes the café with the given id.
func DeleteCafe(ctx context.Context, db *gorm.DB, id uint) error {
	res := db.WithContext(ctx).Delete(&domain.Cafe{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
