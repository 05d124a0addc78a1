package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rshade/headway/internal/cli"
	"github.com/rshade/headway/internal/config"
)

// setupCLITest isolates the headway home directory and quiets logging.
// It returns the home directory.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvConfig, "")
	t.Setenv("HEADWAY_LOG_LEVEL", "error")
	t.Setenv("HEADWAY_LOG_FORMAT", "")
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

// executeCmd runs the root command with args and returns combined output.
func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// writeFile writes content to name inside dir and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const commuteTrack = `name: commute
unit: ms
samples:
  - {t: 0, speed: 0}
  - {t: 1, speed: 5}
  - {t: 2, speed: 10}
  - {t: 4, speed: 20}
  - {t: 6, speed: 35}
  - {t: 8, speed: -1}
`
