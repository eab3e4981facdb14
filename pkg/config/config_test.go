package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")
	require.NoError(t, os.WriteFile(path, []byte("env: test\nhttp:\n  port: 9100\n"), 0o600))

	conf := getConfig(path)
	assert.Equal(t, "test", conf.GetString("env"))
	assert.Equal(t, 9100, conf.GetInt("http.port"))
	assert.Equal(t, "sqlite", conf.GetString("data.db.user.driver"))
}

func TestGetConfigEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")
	require.NoError(t, os.WriteFile(path, []byte("security:\n  jwt:\n    key: from-file\n"), 0o600))
	t.Setenv("AVD_SECURITY_JWT_KEY", "from-env")

	conf := getConfig(path)
	assert.Equal(t, "from-env", conf.GetString("security.jwt.key"))
}
