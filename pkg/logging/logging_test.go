/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logging_test.go
Description: Unit tests for the logging system: configuration validation,
logger setup with file output, and custom formatter rendering.
*/

package logging_test

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/lineage/pkg/logging"
)

func validConfig(dir string) *logging.LoggerConfig {
	return &logging.LoggerConfig{
		Level:     logging.LogLevelInfo,
		Format:    logging.LogFormatCustom,
		OutputDir: dir,
		MaxFiles:  3,
		Timestamp: true,
		Colors:    false,
	}
}

func TestLoggerConfigValidate(t *testing.T) {
	cfg := validConfig("./logs")
	assert.NoError(t, cfg.Validate())

	cfg = validConfig("")
	assert.Error(t, cfg.Validate())

	cfg = validConfig("./logs")
	cfg.MaxFiles = 0
	assert.Error(t, cfg.Validate())

	cfg = validConfig("./logs")
	cfg.Format = "xml"
	assert.Error(t, cfg.Validate())

	cfg = validConfig("./logs")
	cfg.Level = "verbose"
	assert.Error(t, cfg.Validate())
}

func TestNewLoggerCreatesLogFile(t *testing.T) {
	dir := t.TempDir()

	logger, err := logging.NewLogger(validConfig(dir))
	require.NoError(t, err)
	defer logger.Close()

	logger.LogRunStarted("run-1", 3, 1, nil)
	logger.LogRunCompleted("run-1", 54, 10*time.Millisecond, nil)
	logger.LogEvidenceRejected("run-1", "zero mass", nil)

	assert.NotNil(t, logger.GetLogger())
}

func TestNewLoggerDefaults(t *testing.T) {
	logger, err := logging.NewLogger(nil)
	require.NoError(t, err)
	defer logger.Close()

	assert.Equal(t, logrus.InfoLevel, logger.GetLogger().GetLevel())
}

func TestCustomFormatterRendersFields(t *testing.T) {
	formatter := &logging.CustomFormatter{Timestamp: false, Colors: false}

	entry := &logrus.Entry{
		Logger:  logrus.New(),
		Level:   logrus.InfoLevel,
		Message: "Inference run completed",
		Data:    logrus.Fields{"run_id": "run-1", "members": 3},
		Time:    time.Now(),
	}

	out, err := formatter.Format(entry)
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "INFO")
	assert.Contains(t, s, "Inference run completed")
	assert.Contains(t, s, "members=3")
	assert.Contains(t, s, "run_id=run-1")
}
