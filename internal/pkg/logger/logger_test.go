package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel(" DEBUG "))
	assert.Equal(t, WarnLevel, ParseLevel("warn"))
	assert.Equal(t, InfoLevel, ParseLevel("verbose"))
	assert.Equal(t, InfoLevel, ParseLevel(""))
}

func TestPgxTraceLevel(t *testing.T) {
	assert.Equal(t, tracelog.LogLevelDebug, PgxTraceLevel(DebugLevel))
	assert.Equal(t, tracelog.LogLevelInfo, PgxTraceLevel(InfoLevel))
	assert.Equal(t, tracelog.LogLevelWarn, PgxTraceLevel(WarnLevel))
	assert.Equal(t, tracelog.LogLevelError, PgxTraceLevel(ErrorLevel))
}

func TestConfigure_JSONOutput(t *testing.T) {
	defer Configure(Config{Level: InfoLevel, Pretty: true})

	var buf bytes.Buffer
	Configure(Config{Level: WarnLevel, Output: &buf})

	Info().Msg("dropped")
	Warn().Str("table", "employees").Msg("kept")

	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "employees", entry["table"])
	assert.Equal(t, "warn", entry["level"])
}
