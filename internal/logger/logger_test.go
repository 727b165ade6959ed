package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerRedactsSensitiveKeys(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := FromZap(zap.New(core))

	log.Info("reminder sent",
		"owner_id", "owner-1",
		"email", "skater@example.com",
		"auth_token", "abc",
		"note", "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiJvd25lci0xIn0.sig",
	)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "owner-1", fields["owner_id"])
	assert.Equal(t, "[REDACTED]", fields["email"])
	assert.Equal(t, "[REDACTED]", fields["auth_token"])
	assert.Equal(t, "[REDACTED]", fields["note"])
}

func TestLoggerWithCarriesFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := FromZap(zap.New(core)).With("request_id", "r-1")

	log.Debug("hidden")
	log.Warn("visible", "status", 404)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "visible", entry.Message)
	assert.Equal(t, "r-1", entry.ContextMap()["request_id"])
	assert.EqualValues(t, 404, entry.ContextMap()["status"])
}

func TestNewModes(t *testing.T) {
	for _, mode := range []string{"prod", "dev", ""} {
		l, err := New(mode)
		require.NoError(t, err, mode)
		assert.NotNil(t, l.SugaredLogger)
	}
}
