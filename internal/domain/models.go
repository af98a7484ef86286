// Package domain defines the persistence model for café records and the
// filter options used to narrow listings. The Cafe type is mapped with GORM
// and forms the core data layer of the directory.
package domain

// Cafe represents a single café and its amenities.
//
// Fields:
//   - ID: system-assigned integer primary key, immutable once set.
//   - Name: unique display name.
//   - MapURL / ImgURL: opaque links (not validated).
//   - Location: area name used by the exact-match location filter.
//   - Seats: free-form capacity description (e.g. "20-30").
//   - HasToilet / HasWifi / HasSockets / CanTakeCalls: amenity flags, never null.
//   - CoffeePrice: optional price label (e.g. "£2.50"); the only field
//     mutable after creation.
type Cafe struct {
	ID           uint    `json:"id"             gorm:"primaryKey;autoIncrement"`
	Name         string  `json:"name"           gorm:"type:varchar(250);not null;uniqueIndex:ux_cafe_name"`
	MapURL       string  `json:"map_url"        gorm:"column:map_url;type:varchar(500);not null"`
	ImgURL       string  `json:"img_url"        gorm:"column:img_url;type:varchar(500);not null"`
	Location     string  `json:"location"       gorm:"type:varchar(250);not null;index"`
	Seats        string  `json:"seats"          gorm:"type:varchar(250);not null"`
	HasToilet    bool    `json:"has_toilet"     gorm:"not null"`
	HasWifi      bool    `json:"has_wifi"       gorm:"not null"`
	HasSockets   bool    `json:"has_sockets"    gorm:"not null"`
	CanTakeCalls bool    `json:"can_take_calls" gorm:"not null"`
	CoffeePrice  *string `json:"coffee_price"   gorm:"type:varchar(250)"`
}

// TableName returns the database table name for Cafe.
func (Cafe) TableName() string { return "cafe" }

// ToMap serializes the record with one entry per column. A missing price is
// reported as nil.
func (c Cafe) ToMap() map[string]any {
	var price any
	if c.CoffeePrice != nil {
		price = *c.CoffeePrice
	}
	return map[string]any{
		"id":             c.ID,
		"name":           c.Name,
		"map_url":        c.MapURL,
		"img_url":        c.ImgURL,
		"location":       c.Location,
		"seats":          c.Seats,
		"has_toilet":     c.HasToilet,
		"has_wifi":       c.HasWifi,
		"has_sockets":    c.HasSockets,
		"can_take_calls": c.CanTakeCalls,
		"coffee_price":   price,
	}
}

// Price returns the coffee price or "" when none is recorded.
func (c Cafe) Price() string {
	if c.CoffeePrice == nil {
		return ""
	}
	return *c.CoffeePrice
}
