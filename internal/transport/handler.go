// Package transport exposes the spell checker over HTTP.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"spellchecker/internal/corrector"
	"spellchecker/internal/transport/middleware"
)

// Service is what the handlers need from the application.
type Service interface {
	Correct(text string) corrector.CorrectionResult
	CorrectBatch(ctx context.Context, texts []string) ([]corrector.CorrectionResult, error)
	AddCustomWord(ctx context.Context, word string) error
	RemoveCustomWord(ctx context.Context, word string) error
}

type handler struct {
	svc      Service
	maxBatch int
	logger   *slog.Logger
}

// NewHandler returns the API mux wrapped in request id, logging and panic
// recovery middleware.
func NewHandler(svc Service, maxBatch int, logger *slog.Logger) http.Handler {
	h := &handler{svc: svc, maxBatch: maxBatch, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/correct", h.correct)
	mux.HandleFunc("POST /api/v1/correct/batch", h.correctBatch)
	mux.HandleFunc("POST /api/v1/custom-word", h.addCustomWord)
	mux.HandleFunc("DELETE /api/v1/custom-word/{word}", h.removeCustomWord)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
	)(mux)
}

func (h *handler) correct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Correct(req.Text))
}

func (h *handler) correctBatch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Texts []string `json:"texts"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Texts) == 0 {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if len(req.Texts) > h.maxBatch {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("batch holds %d texts, limit is %d", len(req.Texts), h.maxBatch))
		return
	}
	results, err := h.svc.CorrectBatch(r.Context(), req.Texts)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

func (h *handler) addCustomWord(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Word string `json:"word"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Word) == "" {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := h.svc.AddCustomWord(r.Context(), req.Word); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

func (h *handler) removeCustomWord(w http.ResponseWriter, r *http.Request) {
	word := strings.TrimSpace(r.PathValue("word"))
	if word == "" {
		writeError(w, http.StatusBadRequest, "word is required")
		return
	}
	if err := h.svc.RemoveCustomWord(r.Context(), word); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.ErrorContext(r.Context(), "request failed",
		slog.String("path", r.URL.Path),
		slog.String("request_id", middleware.RequestIDFromCtx(r.Context())),
		slog.String("error", err.Error()),
	)
	writeError(w, http.StatusInternalServerError, err.Error())
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
