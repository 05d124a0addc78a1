package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpeedUnit(t *testing.T) {
	tests := []struct {
		in      string
		want    SpeedUnit
		wantErr bool
	}{
		{in: "kmh", want: UnitKmh},
		{in: "KM/H", want: UnitKmh},
		{in: "kph", want: UnitKmh},
		{in: "ms", want: UnitMetersPerSecond},
		{in: " m/s ", want: UnitMetersPerSecond},
		{in: "mps", want: UnitMetersPerSecond},
		{in: "mph", want: UnitMph},
		{in: "mi/h", want: UnitMph},
		{in: "knots", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSpeedUnit(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidUnit)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToKmh(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		unit  SpeedUnit
		want  float64
	}{
		{name: "km/h identity", value: 75, unit: UnitKmh, want: 75},
		{name: "empty unit is km/h", value: 75, unit: "", want: 75},
		{name: "meters per second", value: 20, unit: UnitMetersPerSecond, want: 72},
		{name: "miles per hour", value: 60, unit: UnitMph, want: 96.56064},
		{name: "negative passes through", value: -1, unit: UnitMetersPerSecond, want: -3.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToKmh(tt.value, tt.unit)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}

	_, err := ToKmh(1, "furlongs")
	assert.ErrorIs(t, err, ErrInvalidUnit)
}

func TestFromKmh_RoundTrip(t *testing.T) {
	for _, unit := range []SpeedUnit{UnitKmh, UnitMetersPerSecond, UnitMph} {
		v, err := FromKmh(90, unit)
		require.NoError(t, err)
		back, err := ToKmh(v, unit)
		require.NoError(t, err)
		assert.InDelta(t, 90, back, 1e-9, "unit %s", unit)
	}

	_, err := FromKmh(90, "furlongs")
	assert.ErrorIs(t, err, ErrInvalidUnit)
}

func TestSpeedUnit_Label(t *testing.T) {
	assert.Equal(t, "km/h", UnitKmh.Label())
	assert.Equal(t, "m/s", UnitMetersPerSecond.Label())
	assert.Equal(t, "mph", UnitMph.Label())
}
