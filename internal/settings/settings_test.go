package settings

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	zerrors "github.com/alexisbeaulieu97/zoomies/pkg/errors"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("zoomies", pflag.ContinueOnError)
	RegisterFlags(fs)
	RegisterServeFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "zoomies.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	s, err := Load(newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestLoadPrecedence(t *testing.T) {
	path := writeConfig(t, "appearance: dark\nlog-level: debug\nserve:\n  address: 0.0.0.0:2222\n  idle-timeout: 30s\n")
	t.Setenv("ZOOMIES_LOG_LEVEL", "warn")

	s, err := Load(newFlags(t, "--config", path, "--address", "127.0.0.1:2200"))
	require.NoError(t, err)

	assert.Equal(t, "dark", s.Appearance, "from file")
	assert.Equal(t, "warn", s.LogLevel, "env beats file")
	assert.Equal(t, "127.0.0.1:2200", s.Serve.Address, "flag beats file")
	assert.Equal(t, 30*time.Second, s.Serve.IdleTimeout)
}

func TestLoadNestedEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ZOOMIES_SERVE_HOST_KEY", "/tmp/key")
	t.Setenv("ZOOMIES_HUMAN_LOGS", "false")

	s, err := Load(newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/key", s.Serve.HostKey)
	assert.False(t, s.HumanLogs)
}

func TestLoadRejectsInvalidAppearance(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load(newFlags(t, "--appearance", "sepia"))
	var validationErr *zerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "appearance", validationErr.Field)
}

func TestLoadRejectsBadAddress(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load(newFlags(t, "--address", "nowhere"))
	var validationErr *zerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "serve.address", validationErr.Field)
}

func TestLoadMissingExplicitConfig(t *testing.T) {
	_, err := Load(newFlags(t, "--config", filepath.Join(t.TempDir(), "missing.yaml")))
	var parseErr *zerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestLoadWithoutFlags(t *testing.T) {
	t.Chdir(t.TempDir())

	s, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "auto", s.Appearance)
}
