package pkpass

import (
	"github.com/shopspring/decimal"
)

// Location is a geographic point where the pass becomes relevant.
// Coordinates are kept as exact decimals so they serialize without
// binary floating-point drift.
type Location struct {
	// Latitude of the location in degrees.
	Latitude decimal.Decimal
	// Longitude of the location in degrees.
	Longitude decimal.Decimal
	// Distance is the optional notification radius in meters.
	// Emitted only when positive.
	Distance uint64
	// RelevantText is the optional lock-screen text shown near the location.
	RelevantText string

	// altitude in meters, emitted only when set.
	altitude    decimal.Decimal
	hasAltitude bool
}

// NewLocation returns a location for the provided coordinate strings.
// Malformed coordinates coerce to zero instead of failing.
func NewLocation(latitude, longitude string) *Location {
	loc, _ := ParseLocation(latitude, longitude)
	return loc
}

// ParseLocation behaves like NewLocation and additionally reports whether
// both coordinates parsed cleanly.
func ParseLocation(latitude, longitude string) (*Location, bool) {
	lat, latOK := coerceDecimal(latitude)
	lon, lonOK := coerceDecimal(longitude)

	return &Location{
		Latitude:  lat,
		Longitude: lon,
	}, latOK && lonOK
}

// SetAltitude sets the altitude in meters. Malformed input coerces to zero.
func (l *Location) SetAltitude(altitude string) {
	l.altitude, _ = coerceDecimal(altitude)
	l.hasAltitude = true
}

func (l *Location) jsonDict() map[string]any {
	d := map[string]any{
		"latitude":  l.Latitude,
		"longitude": l.Longitude,
	}

	if l.hasAltitude {
		d["altitude"] = l.altitude
	}

	if l.Distance > 0 {
		d["distance"] = l.Distance
	}

	if l.RelevantText != "" {
		d["relevantText"] = l.RelevantText
	}

	return d
}

// coerceDecimal parses s as an exact decimal, falling back to zero.
func coerceDecimal(s string) (decimal.Decimal, bool) {
	value, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}

	return value, true
}
