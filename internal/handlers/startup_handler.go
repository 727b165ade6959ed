package handlers

import (
	"net/http"
	"sync"

	"skatejournal/internal/database"
)

// StartupStatus tracks the initialization progress
type StartupStatus struct {
	mu       sync.RWMutex
	Ready    bool          `json:"ready"`
	Current  string        `json:"current"`
	Progress int           `json:"progress"`
	Steps    []StartupStep `json:"steps"`
}

type StartupStep struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

const (
	StepDatabase   = "Database connection"
	StepMigrations = "Running migrations"
	StepServices   = "Initializing services"
	StepScheduler  = "Starting reminder scheduler"
)

// NewStartupStatus creates a status with the given steps pending
func NewStartupStatus(steps ...string) *StartupStatus {
	s := &StartupStatus{Current: "Initializing..."}
	for _, name := range steps {
		s.Steps = append(s.Steps, StartupStep{Name: name})
	}
	return s
}

// SetCurrentStep updates the current initialization step
func (s *StartupStatus) SetCurrentStep(step string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Current = step
}

// CompleteStep marks a step as completed and updates progress
func (s *StartupStatus) CompleteStep(stepName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.Steps {
		if s.Steps[i].Name == stepName {
			s.Steps[i].Completed = true
			break
		}
	}

	completed := 0
	for _, step := range s.Steps {
		if step.Completed {
			completed++
		}
	}
	if len(s.Steps) > 0 {
		s.Progress = (completed * 100) / len(s.Steps)
	}
}

// MarkReady marks the server as fully initialized
func (s *StartupStatus) MarkReady() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Ready = true
	s.Current = "Server ready"
	s.Progress = 100
}

// IsReady returns whether the server is fully initialized
func (s *StartupStatus) IsReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Ready
}

type healthResponse struct {
	Status   string        `json:"status"`
	Current  string        `json:"current,omitempty"`
	Progress int           `json:"progress"`
	Steps    []StartupStep `json:"steps,omitempty"`
	Database string        `json:"database,omitempty"`
}

// HealthHandler reports startup progress and database reachability
type HealthHandler struct {
	status *StartupStatus
	db     *database.DB
}

// NewHealthHandler creates a new health handler. db may be nil until connected.
func NewHealthHandler(status *StartupStatus, db *database.DB) *HealthHandler {
	return &HealthHandler{status: status, db: db}
}

// Health answers 200 once ready and the database responds, 503 otherwise
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.status.mu.RLock()
	resp := healthResponse{
		Status:   "starting",
		Current:  h.status.Current,
		Progress: h.status.Progress,
		Steps:    append([]StartupStep(nil), h.status.Steps...),
	}
	ready := h.status.Ready
	h.status.mu.RUnlock()

	if !ready {
		respondJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	if h.db != nil {
		if err := h.db.PingContext(r.Context()); err != nil {
			resp.Status = "degraded"
			resp.Database = "unreachable"
			respondJSON(w, http.StatusServiceUnavailable, resp)
			return
		}
		resp.Database = "ok"
	}

	resp.Status = "ok"
	resp.Steps = nil
	respondJSON(w, http.StatusOK, resp)
}
