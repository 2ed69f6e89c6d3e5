package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jcmexdev/ecommerce-integration/internal/coordinator/runlog"
	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/app"
	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/domain"
	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/ports"
)

// Handler serves the admin API of the integration service.
type Handler struct {
	runner      ports.BatchRunner
	runLog      runlog.Reader // nil when the run log is disabled
	defaultPath string
}

func NewHandler(runner ports.BatchRunner, runLog runlog.Reader, defaultPath string) *Handler {
	return &Handler{runner: runner, runLog: runLog, defaultPath: defaultPath}
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ProcessBatch runs a batch synchronously. An empty body processes the
// configured input file.
func (h *Handler) ProcessBatch(w http.ResponseWriter, r *http.Request) {
	var req ProcessBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	path := req.FilePath
	if path == "" {
		path = h.defaultPath
	}

	summary, err := h.runner.Run(r.Context(), path)
	if err != nil {
		slog.ErrorContext(r.Context(), "batch failed", "file", path, "error", err)
		switch {
		case errors.Is(err, app.ErrBatchAborted):
			writeError(w, http.StatusUnprocessableEntity, "batch_aborted", err.Error())
		case errors.Is(err, domain.ErrSink):
			writeError(w, http.StatusInternalServerError, "sink_failed", err.Error())
		default:
			writeError(w, http.StatusBadRequest, "batch_failed", err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, BatchResponse{
		BatchID:   summary.BatchID,
		Total:     summary.Total,
		Processed: summary.Processed,
		Skipped:   summary.Skipped,
	})
}

func (h *Handler) ListBatchRecords(w http.ResponseWriter, r *http.Request) {
	if h.runLog == nil {
		writeError(w, http.StatusNotFound, "run_log_disabled", "")
		return
	}
	batchID := chi.URLParam(r, "batchID")

	entries, err := h.runLog.ListBatch(r.Context(), batchID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "run_log_error", err.Error())
		return
	}
	if len(entries) == 0 {
		writeError(w, http.StatusNotFound, "batch_not_found", batchID)
		return
	}

	out := make([]RecordLogResponse, len(entries))
	for i, e := range entries {
		out[i] = RecordLogResponse{
			RecordID:      e.RecordID,
			Status:        string(e.Status),
			Step:          e.Step,
			ErrorMessages: decodeMessages(e.ErrorMessages),
			TraceID:       e.TraceID,
			UpdatedAt:     e.UpdatedAt.Format(time.RFC3339Nano),
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func decodeMessages(raw string) []string {
	if raw == "" {
		return nil
	}
	var msgs []string
	if err := json.Unmarshal([]byte(raw), &msgs); err != nil {
		return []string{raw}
	}
	return msgs
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{
		Error:   code,
		Message: msg,
	})
}
