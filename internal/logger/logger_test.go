package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWritesToFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "logs", "run.log")

	require.NoError(t, Init(Options{Level: "debug", File: file, MaxSizeMB: 1}))
	Get().Info().Str("marker", "hello-from-test").Msg("logger smoke test")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello-from-test")
}

func TestInitBadLevelFallsBackToInfo(t *testing.T) {
	require.NoError(t, Init(Options{Level: "nonsense"}))
	assert.Equal(t, "info", Get().GetLevel().String())
}
