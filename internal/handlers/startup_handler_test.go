package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartupStatusProgress(t *testing.T) {
	s := NewStartupStatus(StepDatabase, StepMigrations, StepServices, StepScheduler)

	s.CompleteStep(StepDatabase)
	assert.Equal(t, 25, s.Progress)
	s.CompleteStep("unknown step")
	assert.Equal(t, 25, s.Progress)
	s.CompleteStep(StepMigrations)
	assert.Equal(t, 50, s.Progress)
	assert.False(t, s.IsReady())

	s.MarkReady()
	assert.True(t, s.IsReady())
	assert.Equal(t, 100, s.Progress)
}

func TestHealth(t *testing.T) {
	status := NewStartupStatus(StepDatabase, StepMigrations)
	h := NewHealthHandler(status, nil)

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var starting healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &starting))
	assert.Equal(t, "starting", starting.Status)
	assert.Len(t, starting.Steps, 2)

	status.MarkReady()
	rec = httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","current":"Server ready","progress":100}`, rec.Body.String())
}
