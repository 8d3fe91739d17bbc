package rest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/asanmartin/bimviewer-backend/internal/service/bcfpkg"
)

// bcfService defines the minimal interface needed by BCFHandler.
type bcfService interface {
	Export(ctx context.Context, projectID uuid.UUID, topicGUIDs []uuid.UUID) (*bcfpkg.ExportResult, error)
	Import(ctx context.Context, projectID uuid.UUID, data []byte) (*bcfpkg.ImportResult, error)
}

// BCFHandler serves BCF archive exchange endpoints.
type BCFHandler struct {
	svc      bcfService
	log      *slog.Logger
	maxBytes int64
}

// NewBCFHandler creates a BCFHandler. maxBytes caps the accepted upload size.
func NewBCFHandler(svc bcfService, logger *slog.Logger, maxBytes int64) *BCFHandler {
	return &BCFHandler{svc: svc, log: logger.With("handler", "bcf"), maxBytes: maxBytes}
}

// Export handles GET /api/projects/{id}/bcf. Repeated rdi query parameters
// narrow the export to the named topics; without them the whole project is
// packaged.
func (h *BCFHandler) Export(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	var topicGUIDs []uuid.UUID
	for _, raw := range r.URL.Query()["rdi"] {
		guid, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid rdi guid %q", raw))
			return
		}
		topicGUIDs = append(topicGUIDs, guid)
	}

	result, err := h.svc.Export(r.Context(), projectID, topicGUIDs)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	w.WriteHeader(http.StatusOK)
	w.Write(result.Data) //nolint:errcheck
}

type importResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// Import handles POST /api/projects/{id}/bcf. The archive arrives either as
// a multipart "file" part or as the raw request body.
func (h *BCFHandler) Import(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	data, err := h.readArchive(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.svc.Import(r.Context(), projectID, data)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, importResponse{
		Imported: result.Imported,
		Skipped:  result.Skipped,
	})
}

func (h *BCFHandler) readArchive(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		file, header, err := r.FormFile("file")
		if err != nil {
			return nil, fmt.Errorf("missing multipart file part")
		}
		defer file.Close()

		if !strings.HasSuffix(strings.ToLower(header.Filename), ".bcf") {
			return nil, fmt.Errorf("expected a .bcf archive, got %q", header.Filename)
		}
		data, err := io.ReadAll(file)
		if err != nil {
			return nil, fmt.Errorf("upload too large or unreadable")
		}
		return data, nil
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("upload too large or unreadable")
	}
	return data, nil
}
