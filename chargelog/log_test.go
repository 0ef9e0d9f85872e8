package chargelog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ocharge/chargepath/chargelog"
)

func TestNewStdoutLoggerHasNoFile(t *testing.T) {
	l, err := chargelog.New(chargelog.DefaultConfig())
	require.NoError(t, err)
	require.NotNil(t, l.Logger)
	assert.NoError(t, l.Close())
}

func TestNewFileLoggerCreatesDirAndWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "runner.log")

	cfg := chargelog.DefaultConfig()
	cfg.Path = path
	l, err := chargelog.New(cfg)
	require.NoError(t, err)

	l.Info("hello", "n", 1)
	require.NoError(t, l.Close())

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
