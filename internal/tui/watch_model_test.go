package tui

import (
	"math"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/headway/internal/advisor"
	"github.com/rshade/headway/internal/track"
)

// newTestWatchModel builds a model over 20, 50, 130 and 10 km/h samples one
// second apart, advancing one sample per tick.
func newTestWatchModel(t *testing.T) *WatchModel {
	t.Helper()
	tr := &track.Track{
		Name: "test-drive",
		Unit: advisor.UnitKmh,
		Samples: []track.Sample{
			{T: 0, Speed: 20},
			{T: 1, Speed: 50},
			{T: 2, Speed: 130},
			{T: 3, Speed: 10},
		},
	}
	m, err := NewWatchModel(advisor.NewAdvisor(advisor.DefaultCalibration()), tr, WatchOptions{
		TickInterval: time.Second,
		Precision:    1,
	})
	require.NoError(t, err)
	return m
}

func tick(t *testing.T, m *WatchModel) tea.Cmd {
	t.Helper()
	_, cmd := m.Update(tickMsg(time.Now()))
	return cmd
}

func TestNewWatchModel(t *testing.T) {
	t.Run("starts on first sample", func(t *testing.T) {
		m := newTestWatchModel(t)
		assert.Equal(t, WatchStatePlaying, m.State())
		assert.Equal(t, advisor.RegimeBelowMinimum, m.Current().Regime)
		assert.Equal(t, 14.0, m.Current().Distance)
		assert.False(t, m.Warning())
		assert.NotNil(t, m.Init())
	})

	t.Run("rejects empty track", func(t *testing.T) {
		_, err := NewWatchModel(advisor.NewAdvisor(advisor.Calibration{}), &track.Track{}, WatchOptions{})
		assert.ErrorIs(t, err, track.ErrEmptyTrack)
	})

	t.Run("rejects unknown unit", func(t *testing.T) {
		tr := &track.Track{Unit: "knots", Samples: []track.Sample{{T: 0, Speed: 1}}}
		_, err := NewWatchModel(advisor.NewAdvisor(advisor.Calibration{}), tr, WatchOptions{})
		assert.ErrorIs(t, err, advisor.ErrInvalidUnit)
	})

	t.Run("single sample finishes immediately", func(t *testing.T) {
		tr := &track.Track{Unit: advisor.UnitKmh, Samples: []track.Sample{{T: 5, Speed: 75}}}
		m, err := NewWatchModel(advisor.NewAdvisor(advisor.Calibration{}), tr, WatchOptions{})
		require.NoError(t, err)
		assert.Equal(t, WatchStateFinished, m.State())
		assert.InDelta(t, 31.5, m.Current().Distance, 1e-9)
		assert.Nil(t, m.Init())
	})
}

func TestWatchModel_Playback(t *testing.T) {
	m := newTestWatchModel(t)

	cmd := tick(t, m)
	assert.NotNil(t, cmd)
	assert.Equal(t, advisor.RegimeInRange, m.Current().Regime)
	assert.True(t, m.Warning(), "leaving below_minimum raises the warning")
	assert.Contains(t, m.View(), "WARNING")

	tick(t, m)
	assert.Equal(t, advisor.RegimeAboveMaximum, m.Current().Regime)
	assert.True(t, m.Warning())
	assert.Equal(t, 49.0, m.Current().Distance)

	cmd = tick(t, m)
	assert.Nil(t, cmd, "no more ticks after the last sample")
	assert.Equal(t, WatchStateFinished, m.State())
	assert.False(t, m.Warning(), "returning below the minimum clears the warning")
	assert.NotContains(t, m.View(), "WARNING")
	assert.Contains(t, m.View(), "[finished]")
}

func TestWatchModel_Speedup(t *testing.T) {
	tr := &track.Track{
		Unit:    advisor.UnitKmh,
		Samples: []track.Sample{{T: 0, Speed: 0}, {T: 4, Speed: 60}, {T: 8, Speed: 0}},
	}
	m, err := NewWatchModel(advisor.NewAdvisor(advisor.Calibration{}), tr, WatchOptions{
		TickInterval: time.Second,
		Speedup:      4,
	})
	require.NoError(t, err)

	tick(t, m)
	assert.Equal(t, 60.0, m.Current().SpeedKmh)
	tick(t, m)
	assert.Equal(t, WatchStateFinished, m.State())
}

func TestWatchModel_InvalidSpeedupPlaysInRealTime(t *testing.T) {
	tests := []struct {
		name    string
		speedup float64
	}{
		{"NaN", math.NaN()},
		{"positive infinity", math.Inf(1)},
		{"negative infinity", math.Inf(-1)},
		{"negative", -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestWatchModel(t)
			m.opts.Speedup = tt.speedup
			m.opts = m.opts.withDefaults()

			tick(t, m)
			assert.Equal(t, 50.0, m.Current().SpeedKmh, "one tick advances one second")
			tick(t, m)
			tick(t, m)
			assert.Equal(t, WatchStateFinished, m.State())
		})
	}

	t.Run("through the constructor", func(t *testing.T) {
		tr := &track.Track{Unit: advisor.UnitKmh, Samples: []track.Sample{{T: 0, Speed: 0}, {T: 1, Speed: 60}}}
		m, err := NewWatchModel(advisor.NewAdvisor(advisor.Calibration{}), tr, WatchOptions{
			TickInterval: time.Second,
			Speedup:      math.NaN(),
		})
		require.NoError(t, err)

		tick(t, m)
		assert.Equal(t, WatchStateFinished, m.State())
	})
}

func TestWatchModel_Keys(t *testing.T) {
	t.Run("space pauses and resumes", func(t *testing.T) {
		m := newTestWatchModel(t)

		m.Update(tea.KeyMsg{Type: tea.KeySpace})
		assert.Equal(t, WatchStatePaused, m.State())
		assert.Contains(t, m.View(), "[paused]")

		cmd := tick(t, m)
		assert.NotNil(t, cmd, "paused model keeps ticking")
		assert.Equal(t, advisor.RegimeBelowMinimum, m.Current().Regime, "paused model does not advance")

		m.Update(tea.KeyMsg{Type: tea.KeySpace})
		assert.Equal(t, WatchStatePlaying, m.State())
		tick(t, m)
		assert.Equal(t, advisor.RegimeInRange, m.Current().Regime)
	})

	t.Run("r restarts a finished replay", func(t *testing.T) {
		m := newTestWatchModel(t)
		for range 3 {
			tick(t, m)
		}
		require.Equal(t, WatchStateFinished, m.State())

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
		assert.NotNil(t, cmd, "restart resumes ticking")
		assert.Equal(t, WatchStatePlaying, m.State())
		assert.Equal(t, 20.0, m.Current().SpeedKmh)
		assert.Contains(t, m.View(), "sample 1/4")
	})

	quitKeys := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}
	for _, tt := range quitKeys {
		t.Run(tt.name+" quits", func(t *testing.T) {
			m := newTestWatchModel(t)
			_, cmd := m.Update(tt.msg)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.Equal(t, WatchStateQuitting, m.State())
			assert.Empty(t, m.View())
		})
	}
}

func TestWatchModel_View(t *testing.T) {
	m := newTestWatchModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	view := m.View()
	assert.Contains(t, view, "test-drive")
	assert.Contains(t, view, "20.0 km/h")
	assert.Contains(t, view, "14.0 meters")
	assert.Contains(t, view, "below_minimum")
	assert.Contains(t, view, "sample 1/4")
	assert.Contains(t, view, "q quit")

	tick(t, m)
	assert.Contains(t, m.View(), "below_minimum -> in_range at 1.0s")
}

func TestWatchModel_DisplayUnits(t *testing.T) {
	tr := &track.Track{Unit: advisor.UnitMetersPerSecond, Samples: []track.Sample{{T: 0, Speed: 20}}}
	m, err := NewWatchModel(advisor.NewAdvisor(advisor.Calibration{}), tr, WatchOptions{
		SpeedUnit:    advisor.UnitMph,
		DistanceUnit: advisor.DistanceFeet,
		Precision:    0,
	})
	require.NoError(t, err)

	view := m.View()
	assert.Contains(t, view, "45 mph")
	assert.Contains(t, view, "feet")
}
