package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tada/internal/config"
)

func TestNew_JSONToFallback(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Defaults()
	cfg.LogLevel = "debug"
	cfg.LogFormat = "json"

	logger, closer, err := New(cfg, &buf)
	require.NoError(t, err)
	defer closer.Close()

	Component(logger, "store").Debug("hello")

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.Contains(t, buf.String(), `"component":"store"`)
	assert.Contains(t, buf.String(), `"msg":"hello"`)
}

func TestNew_FileSink(t *testing.T) {
	cfg := config.Defaults()
	cfg.LogFile = filepath.Join(t.TempDir(), "tada.log")

	logger, closer, err := New(cfg, nil)
	require.NoError(t, err)
	logger.Info("to file")
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), "to file")
}

func TestNew_InfoDropsDebug(t *testing.T) {
	var buf bytes.Buffer

	logger, _, err := New(config.Defaults(), &buf)
	require.NoError(t, err)
	logger.Debug("quiet")

	assert.Empty(t, buf.String())
}

func TestNew_BadLevel(t *testing.T) {
	cfg := config.Defaults()
	cfg.LogLevel = "loud"

	_, _, err := New(cfg, nil)

	assert.Error(t, err)
}
