package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/headway/internal/advisor"
	"github.com/rshade/headway/internal/config"
)

// newDefaultTarget returns a Config with known non-default values so tests can
// verify that absent overlay keys leave the original values intact.
func newDefaultTarget() *config.Config {
	length := 9.0
	return &config.Config{
		Version: "1.0.0",
		Calibration: config.CalibrationConfig{
			Preset:  advisor.PresetMidsize,
			LengthM: &length,
		},
		Output: config.OutputConfig{
			SpeedUnit:    "mph",
			DistanceUnit: "ft",
			Precision:    2,
			Format:       config.FormatTable,
		},
		Logging: config.LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// writeOverlay writes YAML content to a temp file and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestShallowMergeYAML_SingleKeyOverride(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
output:
  format: json
  precision: 4
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	// Output is replaced as a whole.
	assert.Equal(t, config.FormatJSON, target.Output.Format)
	assert.Equal(t, 4, target.Output.Precision)
	assert.Empty(t, target.Output.SpeedUnit)

	// Other sections are unchanged.
	assert.Equal(t, advisor.PresetMidsize, target.Calibration.Preset)
	require.NotNil(t, target.Calibration.LengthM)
	assert.Equal(t, 9.0, *target.Calibration.LengthM)
	assert.Equal(t, "info", target.Logging.Level)
}

func TestShallowMergeYAML_CalibrationReplacesOverrides(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
calibration:
  preset: large
  min_speed_kmh: 40
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, advisor.PresetLarge, target.Calibration.Preset)
	assert.Nil(t, target.Calibration.LengthM, "overlay section replaces the old one entirely")
	require.NotNil(t, target.Calibration.MinSpeedKmh)
	assert.Equal(t, 40.0, *target.Calibration.MinSpeedKmh)

	c, err := target.Calibration.Build()
	require.NoError(t, err)
	assert.Equal(t, 10.0, c.LengthUnit())
}

func TestShallowMergeYAML_UnknownKeysIgnored(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
plugins:
  something: true
logging:
  level: debug
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, "debug", target.Logging.Level)
	assert.Empty(t, target.Logging.Format)
}

func TestShallowMergeYAML_EmptyFile(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, "# nothing here\n")

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, newDefaultTarget().Output, target.Output)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	t.Run("nil target", func(t *testing.T) {
		err := config.ShallowMergeYAML(nil, "whatever.yaml")
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.ShallowMergeYAML(newDefaultTarget(), filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading overlay file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		overlay := writeOverlay(t, "output: [unclosed\n")
		err := config.ShallowMergeYAML(newDefaultTarget(), overlay)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing overlay YAML")
	})

	t.Run("wrong section type", func(t *testing.T) {
		overlay := writeOverlay(t, "output: 42\n")
		err := config.ShallowMergeYAML(newDefaultTarget(), overlay)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `applying overlay section "output"`)
	})

	t.Run("unsupported version", func(t *testing.T) {
		overlay := writeOverlay(t, "version: 2.0.0\n")
		err := config.ShallowMergeYAML(newDefaultTarget(), overlay)
		assert.ErrorIs(t, err, config.ErrUnsupportedVersion)
	})
}
