package handlers

import (
	"net/http"

	"skatejournal/internal/logger"
	"skatejournal/internal/progress"
	"skatejournal/internal/service"
	"skatejournal/internal/validation"
)

// ProgressHandler serves the dashboard aggregations
type ProgressHandler struct {
	progressService *service.ProgressService
	log             *logger.Logger
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(progressService *service.ProgressService, log *logger.Logger) *ProgressHandler {
	return &ProgressHandler{progressService: progressService, log: log}
}

// Summary returns the full dashboard summary
func (h *ProgressHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.progressService.Summary(GetOwnerFromContext(r.Context()))
	if err != nil {
		respondServiceError(h.log, w, "build summary", err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// Streak returns the current and longest journaling streak
func (h *ProgressHandler) Streak(w http.ResponseWriter, r *http.Request) {
	streak, err := h.progressService.Streak(GetOwnerFromContext(r.Context()))
	if err != nil {
		respondServiceError(h.log, w, "compute streak", err)
		return
	}
	respondJSON(w, http.StatusOK, streak)
}

// Compare returns ?metric= for this period against the last (?period=week|month)
func (h *ProgressHandler) Compare(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	kind, err := progress.ParsePeriodKind(q.Get("period"))
	if err != nil {
		respondServiceError(h.log, w, "parse period", validation.ValidationError{Field: "period", Message: "must be week or month"})
		return
	}
	cmp, err := h.progressService.Compare(GetOwnerFromContext(r.Context()), q.Get("metric"), kind)
	if err != nil {
		respondServiceError(h.log, w, "compare periods", err)
		return
	}
	respondJSON(w, http.StatusOK, cmp)
}

// WeeklyGoal returns progress against the weekly goal holding ?date= (default today)
func (h *ProgressHandler) WeeklyGoal(w http.ResponseWriter, r *http.Request) {
	day, err := dayParam(r, "date")
	if err != nil {
		respondServiceError(h.log, w, "parse date", err)
		return
	}
	wp, err := h.progressService.WeeklyGoalProgress(GetOwnerFromContext(r.Context()), day)
	if err != nil {
		respondServiceError(h.log, w, "compute weekly goal progress", err)
		return
	}
	respondJSON(w, http.StatusOK, wp)
}

// Jumps returns per jump and level statistics for ?from= to ?to=
func (h *ProgressHandler) Jumps(w http.ResponseWriter, r *http.Request) {
	from, to, err := dayRange(r)
	if err != nil {
		respondServiceError(h.log, w, "parse range", err)
		return
	}
	stats, err := h.progressService.JumpStatistics(GetOwnerFromContext(r.Context()), from, to)
	if err != nil {
		respondServiceError(h.log, w, "compute jump statistics", err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}
