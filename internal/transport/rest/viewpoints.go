package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/asanmartin/bimviewer-backend/internal/domain"
	"github.com/asanmartin/bimviewer-backend/internal/service/viewpoint"
)

// viewpointService defines the minimal interface needed by ViewpointHandler.
type viewpointService interface {
	Capture(ctx context.Context, input viewpoint.CaptureInput) (*domain.Viewpoint, error)
	Refresh(ctx context.Context, input viewpoint.RefreshInput) (*domain.Viewpoint, error)
	GetViewpoint(ctx context.Context, guid uuid.UUID) (*domain.Viewpoint, error)
	GetSnapshot(ctx context.Context, viewpointGUID uuid.UUID) ([]byte, error)
}

// ViewpointHandler serves viewpoint REST endpoints.
type ViewpointHandler struct {
	svc viewpointService
	log *slog.Logger
}

// NewViewpointHandler creates a ViewpointHandler.
func NewViewpointHandler(svc viewpointService, logger *slog.Logger) *ViewpointHandler {
	return &ViewpointHandler{svc: svc, log: logger.With("handler", "viewpoint")}
}

// Capture handles POST /api/rdis/{guid}/viewpoints. The camera arrives in
// viewer space and is transformed to BCF space exactly once, here on entry.
func (h *ViewpointHandler) Capture(w http.ResponseWriter, r *http.Request) {
	guid, err := pathUUID(r, "guid")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rdi guid")
		return
	}

	var req captureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	vp, err := h.svc.Capture(r.Context(), viewpoint.CaptureInput{
		TopicGUID: guid,
		Title:     req.Title,
		Camera:    req.Camera.toDomain(),
		Snapshot:  req.Snapshot,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toViewpointResponse(vp))
}

// Get handles GET /api/viewpoints/{guid}.
func (h *ViewpointHandler) Get(w http.ResponseWriter, r *http.Request) {
	guid, err := pathUUID(r, "guid")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid viewpoint guid")
		return
	}

	vp, err := h.svc.GetViewpoint(r.Context(), guid)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toViewpointResponse(vp))
}

// Refresh handles PUT /api/viewpoints/{guid}: re-capture camera state for an
// existing viewpoint, keeping its GUID.
func (h *ViewpointHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	guid, err := pathUUID(r, "guid")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid viewpoint guid")
		return
	}

	var req captureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	vp, err := h.svc.Refresh(r.Context(), viewpoint.RefreshInput{
		ViewpointGUID: guid,
		Camera:        req.Camera.toDomain(),
		Snapshot:      req.Snapshot,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toViewpointResponse(vp))
}

// Snapshot handles GET /api/viewpoints/{guid}/snapshot, serving the raw
// PNG bytes.
func (h *ViewpointHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	guid, err := pathUUID(r, "guid")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid viewpoint guid")
		return
	}

	data, err := h.svc.GetSnapshot(r.Context(), guid)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(data) //nolint:errcheck
}
