package handlers

import (
	"net/http"

	"skatejournal/internal/logger"
	"skatejournal/internal/models"
	"skatejournal/internal/service"
	"skatejournal/internal/validation"
)

// GoalHandler serves goals and weekly targets
type GoalHandler struct {
	goalService *service.GoalService
	log         *logger.Logger
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(goalService *service.GoalService, log *logger.Logger) *GoalHandler {
	return &GoalHandler{goalService: goalService, log: log}
}

type progressRequest struct {
	Progress *int `json:"progress"`
}

type completedRequest struct {
	Completed *bool `json:"completed"`
}

// ListGoals returns the caller's goals
func (h *GoalHandler) ListGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := h.goalService.ListGoals(GetOwnerFromContext(r.Context()))
	if err != nil {
		respondServiceError(h.log, w, "list goals", err)
		return
	}
	respondJSON(w, http.StatusOK, goals)
}

// CreateGoal stores a new goal
func (h *GoalHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var g models.Goal
	if err := decodeJSON(w, r, &g); err != nil {
		respondServiceError(h.log, w, "decode goal", err)
		return
	}
	if err := h.goalService.CreateGoal(GetOwnerFromContext(r.Context()), &g); err != nil {
		respondServiceError(h.log, w, "create goal", err)
		return
	}
	respondJSON(w, http.StatusCreated, g)
}

// SetProgress updates a goal's progress
func (h *GoalHandler) SetProgress(w http.ResponseWriter, r *http.Request) {
	var req progressRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondServiceError(h.log, w, "decode progress", err)
		return
	}
	if req.Progress == nil {
		respondServiceError(h.log, w, "decode progress", validation.ValidationError{Field: "progress", Message: "progress is required"})
		return
	}
	g, err := h.goalService.SetProgress(GetOwnerFromContext(r.Context()), r.PathValue("id"), *req.Progress)
	if err != nil {
		respondServiceError(h.log, w, "update goal progress", err)
		return
	}
	respondJSON(w, http.StatusOK, g)
}

// SetCompleted completes or reopens a goal
func (h *GoalHandler) SetCompleted(w http.ResponseWriter, r *http.Request) {
	var req completedRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondServiceError(h.log, w, "decode completion", err)
		return
	}
	if req.Completed == nil {
		respondServiceError(h.log, w, "decode completion", validation.ValidationError{Field: "completed", Message: "completed is required"})
		return
	}
	g, err := h.goalService.SetCompleted(GetOwnerFromContext(r.Context()), r.PathValue("id"), *req.Completed)
	if err != nil {
		respondServiceError(h.log, w, "update goal completion", err)
		return
	}
	respondJSON(w, http.StatusOK, g)
}

// DeleteGoal removes a goal
func (h *GoalHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	if err := h.goalService.DeleteGoal(GetOwnerFromContext(r.Context()), r.PathValue("id")); err != nil {
		respondServiceError(h.log, w, "delete goal", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListWeeklyGoals returns every weekly goal, or with ?date= only the one
// for the week holding that day
func (h *GoalHandler) ListWeeklyGoals(w http.ResponseWriter, r *http.Request) {
	ownerID := GetOwnerFromContext(r.Context())
	day, err := dayParam(r, "date")
	if err != nil {
		respondServiceError(h.log, w, "parse date", err)
		return
	}
	if !day.IsZero() {
		g, err := h.goalService.GetWeeklyGoal(ownerID, day)
		if err != nil {
			respondServiceError(h.log, w, "load weekly goal", err)
			return
		}
		respondJSON(w, http.StatusOK, g)
		return
	}

	goals, err := h.goalService.ListWeeklyGoals(ownerID)
	if err != nil {
		respondServiceError(h.log, w, "list weekly goals", err)
		return
	}
	respondJSON(w, http.StatusOK, goals)
}

// UpsertWeeklyGoal sets the targets for a week
func (h *GoalHandler) UpsertWeeklyGoal(w http.ResponseWriter, r *http.Request) {
	var g models.WeeklyGoal
	if err := decodeJSON(w, r, &g); err != nil {
		respondServiceError(h.log, w, "decode weekly goal", err)
		return
	}
	if err := h.goalService.UpsertWeeklyGoal(GetOwnerFromContext(r.Context()), &g); err != nil {
		respondServiceError(h.log, w, "save weekly goal", err)
		return
	}
	respondJSON(w, http.StatusOK, g)
}
