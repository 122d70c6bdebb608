package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/config"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(&buf, config.Log{Level: "warn", Format: "json"})
	require.NoError(t, err)

	log.Info("dropped")
	log.Warn("kept", "order_id", "o-1")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "kept", line["msg"])
	assert.Equal(t, "o-1", line["order_id"])
}

func TestNewWithWriter_Text(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(&buf, config.Log{Level: "debug", Format: "text"})
	require.NoError(t, err)

	log.Debug("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestNewWithWriter_RejectsBadConfig(t *testing.T) {
	_, err := NewWithWriter(&bytes.Buffer{}, config.Log{Level: "loud", Format: "json"})
	assert.Error(t, err)

	_, err = NewWithWriter(&bytes.Buffer{}, config.Log{Level: "info", Format: "xml"})
	assert.Error(t, err)
}
