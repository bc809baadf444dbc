package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Load_defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8687", cfg.Listen)
	assert.Equal(t, "forthwith.db", cfg.HistoryPath)
	assert.Equal(t, 5*time.Second, cfg.EvalTimeout.Duration())
	assert.False(t, cfg.Trace)
}

func Test_Load_file(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
listen: ":9999"
history_path: /tmp/progs.db
eval_timeout: 250ms
trace: true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Listen)
	assert.Equal(t, "/tmp/progs.db", cfg.HistoryPath)
	assert.Equal(t, 250*time.Millisecond, cfg.EvalTimeout.Duration())
	assert.True(t, cfg.Trace)
}

func Test_Load_partial_file_keeps_defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("listen: ':7000'\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Listen)
	assert.Equal(t, "forthwith.db", cfg.HistoryPath)
	assert.Equal(t, 5*time.Second, cfg.EvalTimeout.Duration())
}

func Test_Load_env_override(t *testing.T) {
	t.Setenv("FORTHWITH_HISTORY", "/elsewhere/history.db")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/elsewhere/history.db", cfg.HistoryPath)
}

func Test_Load_bad_duration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("eval_timeout: soon\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func Test_Load_missing_file(t *testing.T) {
	_, err := Load("/no/such/config.yml")
	assert.Error(t, err)
}
