package domain

import (
	"net/url"
	"strings"
)

// Query parameter names recognized by FilterFromQuery.
const (
	QueryLocation = "location"
	QuerySockets  = "sockets"
	QueryToilet   = "toilet"
	QueryWifi     = "wifi"
	QueryCalls    = "calls"
)

// CafeFilter narrows a café listing. The zero value matches every record.
//
// Location, when non-empty, requires an exact match. Each amenity flag, when
// true, requires the corresponding column to be true; false means "no
// constraint", never "must be false". All present options are ANDed.
type CafeFilter struct {
	Location string
	Sockets  bool
	Toilet   bool
	Wifi     bool
	Calls    bool
}

// IsZero reports whether the filter imposes no constraint.
func (f CafeFilter) IsZero() bool { return f == CafeFilter{} }

// FilterFromQuery builds a CafeFilter from URL query values. Unknown keys are
// ignored and empty values count as absent. An amenity flag is present when
// its value is any non-empty string.
func FilterFromQuery(q url.Values) CafeFilter {
	present := func(k string) bool { return strings.TrimSpace(q.Get(k)) != "" }
	return CafeFilter{
		Location: strings.TrimSpace(q.Get(QueryLocation)),
		Sockets:  present(QuerySockets),
		Toilet:   present(QueryToilet),
		Wifi:     present(QueryWifi),
		Calls:    present(QueryCalls),
	}
}

// Values renders the filter back into query values, omitting absent options.
func (f CafeFilter) Values() url.Values {
	v := url.Values{}
	if f.Location != "" {
		v.Set(QueryLocation, f.Location)
	}
	for k, on := range map[string]bool{
		QuerySockets: f.Sockets,
		QueryToilet:  f.Toilet,
		QueryWifi:    f.Wifi,
		QueryCalls:   f.Calls,
	} {
		if on {
			v.Set(k, "1")
		}
	}
	return v
}
