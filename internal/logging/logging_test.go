package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ppinet/internal/logging"
)

func TestNewWithOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.NewWithOutput(&buf, "debug", logging.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log.WithFields(logrus.Fields{"stage": "filter", "nodes": 12}).Info("stage done")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "filter", entry["stage"])
	assert.Equal(t, 12.0, entry["nodes"])
	assert.Equal(t, "stage done", entry["msg"])
}

func TestNewWithOutput_TextFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.NewWithOutput(&buf, "warn", logging.FormatText)
	require.NoError(t, err)
	log.Info("hidden")
	log.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_Errors(t *testing.T) {
	_, err := logging.New("loud", logging.FormatText)
	assert.Error(t, err)
	_, err = logging.New("info", "xml")
	assert.Error(t, err)
}
