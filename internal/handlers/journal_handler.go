package handlers

import (
	"net/http"

	"skatejournal/internal/logger"
	"skatejournal/internal/models"
	"skatejournal/internal/service"
)

// JournalHandler serves the profile and the daily activity logs
type JournalHandler struct {
	journalService *service.JournalService
	log            *logger.Logger
}

// NewJournalHandler creates a new journal handler
func NewJournalHandler(journalService *service.JournalService, log *logger.Logger) *JournalHandler {
	return &JournalHandler{journalService: journalService, log: log}
}

// GetProfile returns the caller's profile
func (h *JournalHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.journalService.GetProfile(GetOwnerFromContext(r.Context()))
	if err != nil {
		respondServiceError(h.log, w, "load profile", err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// UpdateProfile replaces the caller's profile
func (h *JournalHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var p models.Profile
	if err := decodeJSON(w, r, &p); err != nil {
		respondServiceError(h.log, w, "decode profile", err)
		return
	}
	if err := h.journalService.UpdateProfile(GetOwnerFromContext(r.Context()), &p); err != nil {
		respondServiceError(h.log, w, "update profile", err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// ListEntries returns journal entries, newest first
func (h *JournalHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	from, to, err := dayRange(r)
	if err != nil {
		respondServiceError(h.log, w, "parse range", err)
		return
	}
	entries, err := h.journalService.ListEntries(GetOwnerFromContext(r.Context()), from, to)
	if err != nil {
		respondServiceError(h.log, w, "list journal entries", err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

// CreateEntry stores a journal entry
func (h *JournalHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var e models.JournalEntry
	if err := decodeJSON(w, r, &e); err != nil {
		respondServiceError(h.log, w, "decode journal entry", err)
		return
	}
	if err := h.journalService.CreateEntry(GetOwnerFromContext(r.Context()), &e); err != nil {
		respondServiceError(h.log, w, "create journal entry", err)
		return
	}
	respondJSON(w, http.StatusCreated, e)
}

// DeleteEntry removes a journal entry
func (h *JournalHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	if err := h.journalService.DeleteEntry(GetOwnerFromContext(r.Context()), r.PathValue("id")); err != nil {
		respondServiceError(h.log, w, "delete journal entry", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListSessions returns training sessions, newest first
func (h *JournalHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	from, to, err := dayRange(r)
	if err != nil {
		respondServiceError(h.log, w, "parse range", err)
		return
	}
	sessions, err := h.journalService.ListSessions(GetOwnerFromContext(r.Context()), from, to)
	if err != nil {
		respondServiceError(h.log, w, "list training sessions", err)
		return
	}
	respondJSON(w, http.StatusOK, sessions)
}

// CreateSession stores a training session
func (h *JournalHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var ts models.TrainingSession
	if err := decodeJSON(w, r, &ts); err != nil {
		respondServiceError(h.log, w, "decode training session", err)
		return
	}
	if err := h.journalService.CreateSession(GetOwnerFromContext(r.Context()), &ts); err != nil {
		respondServiceError(h.log, w, "create training session", err)
		return
	}
	respondJSON(w, http.StatusCreated, ts)
}

// DeleteSession removes a training session
func (h *JournalHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.journalService.DeleteSession(GetOwnerFromContext(r.Context()), r.PathValue("id")); err != nil {
		respondServiceError(h.log, w, "delete training session", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListJumps returns jump attempts, newest first
func (h *JournalHandler) ListJumps(w http.ResponseWriter, r *http.Request) {
	from, to, err := dayRange(r)
	if err != nil {
		respondServiceError(h.log, w, "parse range", err)
		return
	}
	jumps, err := h.journalService.ListJumps(GetOwnerFromContext(r.Context()), from, to)
	if err != nil {
		respondServiceError(h.log, w, "list jump attempts", err)
		return
	}
	respondJSON(w, http.StatusOK, jumps)
}

// CreateJump stores a jump attempt
func (h *JournalHandler) CreateJump(w http.ResponseWriter, r *http.Request) {
	var j models.JumpAttempt
	if err := decodeJSON(w, r, &j); err != nil {
		respondServiceError(h.log, w, "decode jump attempt", err)
		return
	}
	if err := h.journalService.CreateJump(GetOwnerFromContext(r.Context()), &j); err != nil {
		respondServiceError(h.log, w, "create jump attempt", err)
		return
	}
	respondJSON(w, http.StatusCreated, j)
}

// DeleteJump removes a jump attempt
func (h *JournalHandler) DeleteJump(w http.ResponseWriter, r *http.Request) {
	if err := h.journalService.DeleteJump(GetOwnerFromContext(r.Context()), r.PathValue("id")); err != nil {
		respondServiceError(h.log, w, "delete jump attempt", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
