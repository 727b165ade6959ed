package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"skatejournal/internal/logger"
	"skatejournal/internal/report"
	"skatejournal/internal/service"
)

// ReportHandler serves the PDF report and the local-store backup
type ReportHandler struct {
	progressService *service.ProgressService
	backupService   *service.BackupService
	renderer        *report.Renderer
	appName         string
	log             *logger.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(progressService *service.ProgressService, backupService *service.BackupService, renderer *report.Renderer, appName string, log *logger.Logger) *ReportHandler {
	return &ReportHandler{
		progressService: progressService,
		backupService:   backupService,
		renderer:        renderer,
		appName:         appName,
		log:             log,
	}
}

// Report renders the caller's history as a PDF download
func (h *ReportHandler) Report(w http.ResponseWriter, r *http.Request) {
	snap, err := h.progressService.Snapshot(GetOwnerFromContext(r.Context()))
	if err != nil {
		respondServiceError(h.log, w, "load report data", err)
		return
	}

	in := report.Input{
		Profile:  snap.Profile,
		Entries:  snap.Entries,
		Sessions: snap.Sessions,
		Jumps:    snap.Jumps,
		Goals:    snap.Goals,
		Today:    h.progressService.Today(snap.Profile),
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, in); err != nil {
		respondWithError(h.log, w, http.StatusInternalServerError, ErrInternalServerError, "failed to render report", err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.renderer.Filename(in)))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buf.Len()))
	if _, err := buf.WriteTo(w); err != nil {
		h.log.Warn("report download interrupted", "error", err)
	}
}

// Export downloads everything the caller recorded in the local store format
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	store, err := h.backupService.Export(GetOwnerFromContext(r.Context()))
	if err != nil {
		respondServiceError(h.log, w, "export data", err)
		return
	}

	var name string
	if store.Profile != nil {
		name = store.Profile.Name
	}
	filename := fmt.Sprintf("%s-%s-%s.json", report.Slugify(h.appName), report.Slugify(name), h.progressService.Today(store.Profile))

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(store); err != nil {
		h.log.Warn("export download interrupted", "error", err)
	}
}

// Import loads a local store document into the caller's account
func (h *ReportHandler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportBytes)
	result, err := h.backupService.ReadImport(r.Body, GetOwnerFromContext(r.Context()))
	if err != nil {
		respondServiceError(h.log, w, "import data", err)
		return
	}
	h.log.Info("local store imported", "owner_id", GetOwnerFromContext(r.Context()),
		"journal_entries", result.JournalEntries, "skipped", result.Skipped, "duplicates", result.Duplicates)
	respondJSON(w, http.StatusOK, result)
}
