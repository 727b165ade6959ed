package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"skatejournal/internal/logger"
	"skatejournal/internal/security"
	"skatejournal/internal/service"
	"skatejournal/internal/validation"
)

// errorResponse is the JSON body of every error reply
type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func respondWithError(log *logger.Logger, w http.ResponseWriter, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		log.Error(logMsg, "status", status, "error", err)
	}

	respondJSON(w, status, errorResponse{Error: userMsg})
}

// respondServiceError maps service and validation errors to status codes
func respondServiceError(log *logger.Logger, w http.ResponseWriter, action string, err error) {
	var verr validation.ValidationError
	switch {
	case errors.As(err, &verr):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Message, Field: verr.Field})
	case errors.Is(err, service.ErrNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: ErrNotFound})
	case errors.Is(err, security.ErrInvalidToken):
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: ErrUnauthorized})
	default:
		respondWithError(log, w, http.StatusInternalServerError, ErrInternalServerError, "failed to "+action, err)
	}
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// decodeJSON reads a size-limited JSON body into v
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return validation.ValidationError{Field: "body", Message: ErrInvalidJSON}
	}
	return nil
}
