package handlers

import (
	"net/http"

	"skatejournal/internal/metrics"
)

const apiPrefix = "/api/v1"

// Handlers groups the route handlers registered by NewRouter
type Handlers struct {
	Journal  *JournalHandler
	Goals    *GoalHandler
	Progress *ProgressHandler
	Reports  *ReportHandler
	Health   *HealthHandler
}

// NewRouter registers the health check and the authenticated JSON API
func NewRouter(mw *Middleware, h Handlers) *http.ServeMux {
	mux := http.NewServeMux()
	auth := mw.RequireAuth

	mux.HandleFunc("GET /health", h.Health.Health)

	// Profile and daily logs
	mux.HandleFunc("GET "+apiPrefix+"/profile", auth(h.Journal.GetProfile))
	mux.HandleFunc("PUT "+apiPrefix+"/profile", auth(h.Journal.UpdateProfile))
	mux.HandleFunc("GET "+apiPrefix+"/journal", auth(h.Journal.ListEntries))
	mux.HandleFunc("POST "+apiPrefix+"/journal", auth(h.Journal.CreateEntry))
	mux.HandleFunc("DELETE "+apiPrefix+"/journal/{id}", auth(h.Journal.DeleteEntry))
	mux.HandleFunc("GET "+apiPrefix+"/sessions", auth(h.Journal.ListSessions))
	mux.HandleFunc("POST "+apiPrefix+"/sessions", auth(h.Journal.CreateSession))
	mux.HandleFunc("DELETE "+apiPrefix+"/sessions/{id}", auth(h.Journal.DeleteSession))
	mux.HandleFunc("GET "+apiPrefix+"/jumps", auth(h.Journal.ListJumps))
	mux.HandleFunc("POST "+apiPrefix+"/jumps", auth(h.Journal.CreateJump))
	mux.HandleFunc("DELETE "+apiPrefix+"/jumps/{id}", auth(h.Journal.DeleteJump))

	// Goals
	mux.HandleFunc("GET "+apiPrefix+"/goals", auth(h.Goals.ListGoals))
	mux.HandleFunc("POST "+apiPrefix+"/goals", auth(h.Goals.CreateGoal))
	mux.HandleFunc("PUT "+apiPrefix+"/goals/{id}/progress", auth(h.Goals.SetProgress))
	mux.HandleFunc("PUT "+apiPrefix+"/goals/{id}/completed", auth(h.Goals.SetCompleted))
	mux.HandleFunc("DELETE "+apiPrefix+"/goals/{id}", auth(h.Goals.DeleteGoal))
	mux.HandleFunc("GET "+apiPrefix+"/weekly-goals", auth(h.Goals.ListWeeklyGoals))
	mux.HandleFunc("PUT "+apiPrefix+"/weekly-goals", auth(h.Goals.UpsertWeeklyGoal))

	// Progress
	mux.HandleFunc("GET "+apiPrefix+"/progress/summary", auth(h.Progress.Summary))
	mux.HandleFunc("GET "+apiPrefix+"/progress/streak", auth(h.Progress.Streak))
	mux.HandleFunc("GET "+apiPrefix+"/progress/compare", auth(h.Progress.Compare))
	mux.HandleFunc("GET "+apiPrefix+"/progress/weekly-goal", auth(h.Progress.WeeklyGoal))
	mux.HandleFunc("GET "+apiPrefix+"/progress/jumps", auth(h.Progress.Jumps))

	// Report and backup
	mux.HandleFunc("GET "+apiPrefix+"/report", auth(h.Reports.Report))
	mux.HandleFunc("GET "+apiPrefix+"/export", auth(h.Reports.Export))
	mux.HandleFunc("POST "+apiPrefix+"/import", auth(h.Reports.Import))

	return mux
}

// Chain wraps the router with request id, logging, rate limiting and
// metrics, outermost first. m may be nil.
func Chain(router http.Handler, mw *Middleware, m *metrics.Metrics) http.Handler {
	h := router
	if m != nil {
		h = m.Middleware(h)
	}
	h = mw.RateLimit(h)
	h = mw.Logging(h)
	return RequestID(h)
}
