package pkpass

import (
	"fmt"

	"github.com/google/uuid"
)

// IBeacon describes a Bluetooth beacon near which the pass is relevant.
type IBeacon struct {
	// ProximityUUID identifies the beacon region (canonical UUID form).
	ProximityUUID string
	// RelevantText is the optional lock-screen text shown near the beacon.
	RelevantText string

	major, minor       uint16
	hasMajor, hasMinor bool
}

// NewIBeacon returns a beacon for the provided proximity UUID.
// The UUID is validated and normalized to its canonical form.
func NewIBeacon(proximityUUID string) (*IBeacon, error) {
	id, err := uuid.Parse(proximityUUID)
	if err != nil {
		return nil, fmt.Errorf("parse proximity UUID: %w", err)
	}

	return &IBeacon{
		ProximityUUID: id.String(),
	}, nil
}

// SetMajor sets the major beacon identifier.
func (b *IBeacon) SetMajor(major uint16) {
	b.major = major
	b.hasMajor = true
}

// SetMinor sets the minor beacon identifier.
func (b *IBeacon) SetMinor(minor uint16) {
	b.minor = minor
	b.hasMinor = true
}

func (b *IBeacon) jsonDict() map[string]any {
	d := map[string]any{
		"proximityUUID": b.ProximityUUID,
	}

	if b.hasMajor {
		d["major"] = b.major
	}

	if b.hasMinor {
		d["minor"] = b.minor
	}

	if b.RelevantText != "" {
		d["relevantText"] = b.RelevantText
	}

	return d
}
