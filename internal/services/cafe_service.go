// Package services – CafeService
//
// This file implements the CafeService, which manages the lifecycle of café
// records. It normalizes and validates submitted fields, enforces name
// uniqueness, and coordinates repository operations for listing, creating,
// re-pricing and deleting cafés. Mutations that depend on an existence check
// run inside a single transaction.
//
// Service-level errors (ErrCafeNotFound, ErrDuplicateCafe, ErrMissingField)
// are returned for predictable cases so handlers can map them to HTTP
// results consistently.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"

	"github.com/spencergreen21/cafeWebsite/internal/domain"
	"github.com/spencergreen21/cafeWebsite/internal/repo"
)

// CafeRepo defines the repository contract required by CafeService.
type CafeRepo interface {
	// ListCafes returns cafés matching the filter, ordered by name.
	ListCafes(ctx context.Context, db *gorm.DB, f domain.CafeFilter) ([]domain.Cafe, error)

	// CountCafes returns the number of stored cafés.
	CountCafes(ctx context.Context, db *gorm.DB) (int64, error)

	// GetCafe fetches a café by id.
	GetCafe(ctx context.Context, db *gorm.DB, id uint) (*domain.Cafe, error)

	// CreateCafe inserts a new café row.
	CreateCafe(ctx context.Context, db *gorm.DB, c *domain.Cafe) error

	// UpdateCafePrice sets (or clears, when nil) the coffee price.
	UpdateCafePrice(ctx context.Context, db *gorm.DB, id uint, price *string) error

	// DeleteCafe removes a café row.
	DeleteCafe(ctx context.Context, db *gorm.DB, id uint) error
}

// NewCafe carries the submitted fields for a café to be created.
type NewCafe struct {
	Name         string
	MapURL       string
	ImgURL       string
	Location     string
	Seats        string
	HasToilet    bool
	HasWifi      bool
	HasSockets   bool
	CanTakeCalls bool
	CoffeePrice  string // optional; empty stores NULL
}

// CafeService provides the directory use-cases on top of a CafeRepo.
type CafeService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the café repository used by this service.
	Repo CafeRepo
}

// NewCafeService constructs a CafeService.
func NewCafeService(db *gorm.DB, r CafeRepo) *CafeService {
	return &CafeService{DB: db, Repo: r}
}

// List returns cafés matching f, ordered by name ascending.
func (s *CafeService) List(ctx context.Context, f domain.CafeFilter) ([]domain.Cafe, error) {
	f.Location = clean(f.Location)
	return s.Repo.ListCafes(ctx, s.DB, f)
}

// Count returns the number of stored cafés.
func (s *CafeService) Count(ctx context.Context) (int64, error) {
	return s.Repo.CountCafes(ctx, s.DB)
}

// Get returns the café with the given id or ErrCafeNotFound.
func (s *CafeService) Get(ctx context.Context, id uint) (*domain.Cafe, error) {
	c, err := s.Repo.GetCafe(ctx, s.DB, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrCafeNotFound
		}
		return nil, err
	}
	return c, nil
}

// Create validates in and inserts it.
//
// Text fields are trimmed and NFC-normalized first, so "Café" typed with a
// combining accent collides with the precomposed spelling. Required fields
// are name, map_url, img_url, location and seats; the first empty one yields
// ErrMissingField wrapped with its name. A name collision yields
// ErrDuplicateCafe. Nothing is written on error.
func (s *CafeService) Create(ctx context.Context, in NewCafe) (*domain.Cafe, error) {
	c := &domain.Cafe{
		Name:         clean(in.Name),
		MapURL:       clean(in.MapURL),
		ImgURL:       clean(in.ImgURL),
		Location:     clean(in.Location),
		Seats:        clean(in.Seats),
		HasToilet:    in.HasToilet,
		HasWifi:      in.HasWifi,
		HasSockets:   in.HasSockets,
		CanTakeCalls: in.CanTakeCalls,
		CoffeePrice:  optional(in.CoffeePrice),
	}

	for _, f := range []struct{ name, value string }{
		{"name", c.Name},
		{"map_url", c.MapURL},
		{"img_url", c.ImgURL},
		{"location", c.Location},
		{"seats", c.Seats},
	} {
		if f.value == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}

	if err := s.Repo.CreateCafe(ctx, s.DB, c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicate(err) {
			return nil, ErrDuplicateCafe
		}
		return nil, err
	}
	return c, nil
}

// UpdatePrice sets the coffee price of café id and returns the updated
// record. An empty price clears it. Returns ErrCafeNotFound for unknown ids.
func (s *CafeService) UpdatePrice(ctx context.Context, id uint, price string) (*domain.Cafe, error) {
	var out *domain.Cafe
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		c, err := s.Repo.GetCafe(ctx, tx, id)
		if err != nil {
			if isNotFound(err) {
				return ErrCafeNotFound
			}
			return err
		}
		p := optional(clean(price))
		// MySQL reports zero affected rows when the value is unchanged; the
		// row is known to exist here, so that is not a miss.
		if err := s.Repo.UpdateCafePrice(ctx, tx, id, p); err != nil && !isNotFound(err) {
			return err
		}
		c.CoffeePrice = p
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes café id and returns the record as it was before deletion.
// Returns ErrCafeNotFound for unknown ids.
func (s *CafeService) Delete(ctx context.Context, id uint) (*domain.Cafe, error) {
	var out *domain.Cafe
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		c, err := s.Repo.GetCafe(ctx, tx, id)
		if err != nil {
			if isNotFound(err) {
				return ErrCafeNotFound
			}
			return err
		}
		if err := s.Repo.DeleteCafe(ctx, tx, id); err != nil {
			if isNotFound(err) {
				return ErrCafeNotFound
			}
			return err
		}
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// clean trims surrounding whitespace and applies Unicode NFC normalization.
func clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// optional maps "" to nil.
func optional(s string) *string {
	s = clean(s)
	if s == "" {
		return nil
	}
	return &s
}

// isNotFound treats repo-level not found sentinels as "not found".
func isNotFound(err error) bool {
	return errors.Is(err, repo.ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}

// isDuplicate detects unique-constraint violations across drivers that may
// not map to gorm.ErrDuplicatedKey.
func isDuplicate(err error) bool {
	// SQLite: "UNIQUE constraint failed"; MySQL: "Duplicate entry ... for key"
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate entry") ||
		strings.Contains(msg, "duplicate key")
}
