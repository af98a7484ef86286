package repo

import (
	"gorm.io/gorm"

	"github.com/spencergreen21/cafeWebsite/internal/domain"
)

// FilterScope translates a CafeFilter into a GORM scope. Each present option
// adds one WHERE clause; GORM joins successive clauses with AND. A zero filter
// leaves the query untouched.
func FilterScope(f domain.CafeFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Location != "" {
			db = db.Where("location = ?", f.Location)
		}
		if f.Sockets {
			db = db.Where("has_sockets = ?", true)
		}
		if f.Toilet {
			db = db.Where("has_toilet = ?", true)
		}
		if f.Wifi {
			db = db.Where("has_wifi = ?", true)
		}
		if f.Calls {
			db = db.Where("can_take_calls = ?", true)
		}
		return db
	}
}
