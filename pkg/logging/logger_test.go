/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logger_test.go
Description: Unit tests for the logging system. Covers configuration validation,
file output creation and cleanup, and the silent no-sink mode used by hook runs.
*/

package logging_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kleascm/akaylee-csvlint/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	cfg := logging.DefaultConfig()
	assert.NoError(t, cfg.Validate())

	bad := *cfg
	bad.Format = "xml"
	assert.Error(t, bad.Validate())

	bad = *cfg
	bad.Level = "loud"
	assert.Error(t, bad.Validate())

	bad = *cfg
	bad.OutputDir = t.TempDir()
	bad.MaxFiles = 0
	assert.Error(t, bad.Validate())
}

func TestNewLoggerDefaults(t *testing.T) {
	logger, err := logging.NewLogger(nil)
	require.NoError(t, err)
	defer logger.Close()
	assert.NotNil(t, logger.GetLogger())
}

func TestLoggerFileOutput(t *testing.T) {
	dir := t.TempDir()
	logger, err := logging.NewLogger(&logging.LoggerConfig{
		Level:     logging.LogLevelInfo,
		Format:    logging.LogFormatCustom,
		OutputDir: dir,
		MaxFiles:  3,
		Console:   false,
		Timestamp: true,
	})
	require.NoError(t, err)

	logger.Info("validation started", map[string]interface{}{"file": "data.csv", "rows": 10})
	require.NoError(t, logger.Close())

	files, err := filepath.Glob(filepath.Join(dir, "akaylee-csvlint_*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	content, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(content), "validation started")
	// Fields render in sorted key order
	assert.Less(t,
		strings.Index(string(content), "file="),
		strings.Index(string(content), "rows="))
}

func TestLoggerSilentMode(t *testing.T) {
	// No file output, no console: constructed but discards everything
	logger, err := logging.NewLogger(&logging.LoggerConfig{
		Level:    logging.LogLevelDebug,
		Format:   logging.LogFormatJSON,
		MaxFiles: 1,
	})
	require.NoError(t, err)
	defer logger.Close()

	logger.Debug("quiet", nil)
	logger.Error("still quiet", map[string]interface{}{"k": "v"})
}
