package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/headway/internal/advisor"
	"github.com/rshade/headway/internal/cli"
	"github.com/rshade/headway/internal/config"
)

func TestConfigInit(t *testing.T) {
	home := setupCLITest(t)
	configPath := filepath.Join(home, "config.yaml")

	out, err := executeCmd(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized successfully")
	assert.Contains(t, out, configPath)

	loaded, err := config.Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, config.SchemaVersion, loaded.Version)
	assert.Equal(t, advisor.PresetStandard, loaded.Calibration.Preset)

	_, err = executeCmd(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = executeCmd(t, "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigInit_CustomPath(t *testing.T) {
	home := setupCLITest(t)
	target := filepath.Join(home, "nested", "headway.yaml")

	_, err := executeCmd(t, "config", "init", "--config", target)
	require.NoError(t, err)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestConfigValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		setupCLITest(t)
		out, err := executeCmd(t, "config", "validate")
		require.NoError(t, err)
		assert.Contains(t, out, "Configuration is valid")
		assert.NotContains(t, out, "Configuration details")
	})

	t.Run("verbose", func(t *testing.T) {
		home := setupCLITest(t)
		writeFile(t, home, "config.yaml", "version: 1.2.0\ncalibration:\n  preset: midsize\n  length_m: 9\n")

		out, err := executeCmd(t, "config", "validate", "-v")
		require.NoError(t, err)
		assert.Contains(t, out, "Calibration preset: midsize")
		assert.Contains(t, out, "Calibration overrides: yes")
		assert.Contains(t, out, "Speed range: 30.0 km/h to 120.0 km/h")
		assert.Contains(t, out, "Distance range: 18.0 meters to 63.0 meters")
	})

	t.Run("invalid calibration", func(t *testing.T) {
		home := setupCLITest(t)
		writeFile(t, home, "config.yaml", "calibration:\n  min_distance_factor: 7\n  max_distance_factor: 2\n")

		_, err := executeCmd(t, "config", "validate")
		require.Error(t, err)
		assert.ErrorIs(t, err, advisor.ErrInvalidConfiguration)
		assert.True(t, cli.IsConfigurationError(err))
	})

	t.Run("unsupported schema version", func(t *testing.T) {
		home := setupCLITest(t)
		writeFile(t, home, "config.yaml", "version: 2.0.0\n")

		_, err := executeCmd(t, "config", "validate")
		assert.ErrorIs(t, err, config.ErrUnsupportedVersion)
		assert.False(t, cli.IsConfigurationError(err))
	})

	t.Run("bad precision", func(t *testing.T) {
		home := setupCLITest(t)
		writeFile(t, home, "config.yaml", "output:\n  precision: 9\n")

		_, err := executeCmd(t, "config", "validate")
		assert.ErrorIs(t, err, config.ErrPrecisionOutOfRange)
	})
}

func TestConfigShow(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		setupCLITest(t)
		out, err := executeCmd(t, "config", "show", "--preset", "large")
		require.NoError(t, err)
		assert.Contains(t, out, "preset: large")
		assert.Contains(t, out, "format: table")
	})

	t.Run("json", func(t *testing.T) {
		setupCLITest(t)
		out, err := executeCmd(t, "config", "show", "-o", "json")
		require.NoError(t, err)
		assert.Contains(t, out, `"preset": "standard"`)
	})

	t.Run("works with broken file", func(t *testing.T) {
		home := setupCLITest(t)
		writeFile(t, home, "config.yaml", "calibration: [not, a, map]\n")

		_, err := executeCmd(t, "config", "show")
		require.NoError(t, err)
	})
}

func TestRootCmd(t *testing.T) {
	setupCLITest(t)

	cmd := cli.NewRootCmd("1.2.3")
	assert.Equal(t, "headway", cmd.Use)
	assert.Equal(t, "1.2.3", cmd.Version)

	for _, name := range []string{"advise", "table", "replay", "watch", "presets", "config"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}
	for _, flag := range []string{"debug", "config", "preset", "project-dir"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), flag)
	}
}

func TestRootCmd_LogFile(t *testing.T) {
	home := setupCLITest(t)
	logPath := filepath.Join(home, "logs", "headway.log")
	writeFile(t, home, "config.yaml", "logging:\n  level: info\n  format: json\n  file: "+logPath+"\n")
	t.Setenv("HEADWAY_LOG_LEVEL", "")

	out, err := executeCmd(t, "advise", "75")
	require.NoError(t, err)
	assert.Contains(t, out, "Logging to "+logPath)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"command started"`)
	assert.Contains(t, string(data), `"trace_id"`)
}

func TestProjectOverlay(t *testing.T) {
	t.Run("overlay calibration applies to advise", func(t *testing.T) {
		setupCLITest(t)
		project := t.TempDir()
		writeFile(t, project, config.ProjectConfigName, "calibration:\n  preset: large\n")

		out, err := executeCmd(t, "advise", "75", "--project-dir", project)
		require.NoError(t, err)
		assert.Contains(t, out, "45.0 meters")
	})

	t.Run("overlay replaces the calibration section of the global file", func(t *testing.T) {
		home := setupCLITest(t)
		writeFile(t, home, "config.yaml", "calibration:\n  preset: midsize\n  length_m: 12\n")
		project := t.TempDir()
		writeFile(t, project, config.ProjectConfigName, "calibration:\n  preset: standard\n")

		out, err := executeCmd(t, "advise", "200", "--project-dir", project)
		require.NoError(t, err)
		assert.Contains(t, out, "49.0 meters")
	})

	t.Run("preset flag wins over overlay", func(t *testing.T) {
		setupCLITest(t)
		project := t.TempDir()
		writeFile(t, project, config.ProjectConfigName, "calibration:\n  preset: large\n")

		out, err := executeCmd(t, "config", "show", "--project-dir", project, "--preset", "midsize")
		require.NoError(t, err)
		assert.Contains(t, out, "preset: midsize")
	})

	t.Run("invalid overlay calibration fails at startup", func(t *testing.T) {
		setupCLITest(t)
		project := t.TempDir()
		writeFile(t, project, config.ProjectConfigName,
			"calibration:\n  min_speed_kmh: 100\n  max_speed_kmh: 50\n")

		_, err := executeCmd(t, "advise", "75", "--project-dir", project)
		require.Error(t, err)
		assert.True(t, cli.IsConfigurationError(err))

		_, err = executeCmd(t, "config", "validate", "--project-dir", project)
		assert.ErrorIs(t, err, advisor.ErrInvalidConfiguration)
	})

	t.Run("unparsable overlay", func(t *testing.T) {
		setupCLITest(t)
		project := t.TempDir()
		writeFile(t, project, config.ProjectConfigName, "output: [1, 2\n")

		_, err := executeCmd(t, "advise", "75", "--project-dir", project)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "merging project config")
	})
}
