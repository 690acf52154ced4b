package pkpass

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNewLocationLenientCoercion verifies malformed coordinates coerce to
// zero instead of failing.
func TestNewLocationLenientCoercion(t *testing.T) {
	t.Parallel()

	location := NewLocation("not-a-number", "13.4050")
	require.True(t, location.Latitude.IsZero())
	require.Equal(t, "13.405", location.Longitude.String())

	_, ok := ParseLocation("52.5200", "13.4050")
	require.True(t, ok)

	_, ok = ParseLocation("52.5200", "east")
	require.False(t, ok)
}

// TestLocationExactDecimalSerialization ensures coordinates serialize with
// their exact decimal digits, not a binary float approximation.
func TestLocationExactDecimalSerialization(t *testing.T) {
	t.Parallel()

	location := NewLocation("37.332159959259255", "-122.03066475040715")

	encoded, err := json.Marshal(location.jsonDict())
	require.NoError(t, err)
	require.Contains(t, string(encoded), `"37.332159959259255"`)
	require.Contains(t, string(encoded), `"-122.03066475040715"`)
}

// TestLocationOptionalEmission checks that unset optionals never appear.
func TestLocationOptionalEmission(t *testing.T) {
	t.Parallel()

	location := NewLocation("52.5200", "13.4050")

	d := location.jsonDict()
	require.Contains(t, d, "latitude")
	require.Contains(t, d, "longitude")
	require.NotContains(t, d, "altitude")
	require.NotContains(t, d, "distance")
	require.NotContains(t, d, "relevantText")

	location.SetAltitude("34.5")
	location.Distance = 100
	location.RelevantText = "Welcome back"

	d = location.jsonDict()
	require.Contains(t, d, "altitude")
	require.EqualValues(t, uint64(100), d["distance"])
	require.Equal(t, "Welcome back", d["relevantText"])
}

// TestIBeacon validates proximity UUID handling and optional major/minor.
func TestIBeacon(t *testing.T) {
	t.Parallel()

	_, err := NewIBeacon("garbage")
	require.Error(t, err)

	beacon, err := NewIBeacon("F7E0A383-4C2F-4E10-8AC1-4E2C8AD3B7DA")
	require.NoError(t, err)
	require.Equal(t, "f7e0a383-4c2f-4e10-8ac1-4e2c8ad3b7da", beacon.ProximityUUID)

	d := beacon.jsonDict()
	require.NotContains(t, d, "major")
	require.NotContains(t, d, "minor")

	beacon.SetMajor(7)
	beacon.SetMinor(12)

	d = beacon.jsonDict()
	require.EqualValues(t, uint16(7), d["major"])
	require.EqualValues(t, uint16(12), d["minor"])
}
