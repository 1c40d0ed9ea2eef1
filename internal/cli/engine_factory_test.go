package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/balance/internal/config"
	"github.com/aretw0/balance/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEnv(t *testing.T) *Environment {
	t.Helper()
	env, err := NewEnvironment(config.Default(), false)
	require.NoError(t, err)
	return env
}

func TestNewEnvironment_RejectsBadLevel(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "loud"

	_, err := NewEnvironment(cfg, false)
	assert.Error(t, err)

	// --debug ignores the configured level
	_, err = NewEnvironment(cfg, true)
	assert.NoError(t, err)
}

func TestEnvironment_CloseWritesMetrics(t *testing.T) {
	cfg := config.Default()
	cfg.MetricsFile = filepath.Join(t.TempDir(), "balance.prom")
	env, err := NewEnvironment(cfg, false)
	require.NoError(t, err)

	_, err = env.Engine.Validate(t.Context(), "([])")
	require.NoError(t, err)
	require.NoError(t, env.Close())

	data, err := os.ReadFile(cfg.MetricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `balance_verdicts_total{reason="none",status="valid_accepted"} 1`)
}

func TestEnvironment_CloseWithoutMetricsFile(t *testing.T) {
	assert.NoError(t, newTestEnv(t).Close())
}

func TestCreateLoader(t *testing.T) {
	loader, err := createLoader("")
	require.NoError(t, err)
	ids, err := loader.ListExercises()
	require.NoError(t, err)
	assert.NotEmpty(t, ids, "the built-in set is used without a directory")

	dir := testutils.LessonsDir(t, map[string]string{
		"pair.md": "---\ninput: \"()\"\nexpect: valid\n---\n",
	})
	loader, err = createLoader(dir)
	require.NoError(t, err)
	ids, err = loader.ListExercises()
	require.NoError(t, err)
	assert.Equal(t, []string{"pair"}, ids)
}

func TestLessonsDir(t *testing.T) {
	env := newTestEnv(t)
	env.Config.LessonsDir = "from-config"

	assert.Equal(t, "from-flag", env.lessonsDir("from-flag"))
	assert.Equal(t, "from-config", env.lessonsDir(""))
}
