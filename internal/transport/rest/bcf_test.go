package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/asanmartin/bimviewer-backend/internal/service/bcfpkg"
)

type bcfServiceMock struct {
	ExportFunc func(ctx context.Context, projectID uuid.UUID, topicGUIDs []uuid.UUID) (*bcfpkg.ExportResult, error)
	ImportFunc func(ctx context.Context, projectID uuid.UUID, data []byte) (*bcfpkg.ImportResult, error)
}

func (m *bcfServiceMock) Export(ctx context.Context, projectID uuid.UUID, topicGUIDs []uuid.UUID) (*bcfpkg.ExportResult, error) {
	return m.ExportFunc(ctx, projectID, topicGUIDs)
}

func (m *bcfServiceMock) Import(ctx context.Context, projectID uuid.UUID, data []byte) (*bcfpkg.ImportResult, error) {
	return m.ImportFunc(ctx, projectID, data)
}

func TestExportHandler_SetsDownloadHeaders(t *testing.T) {
	t.Parallel()

	projectID := uuid.New()
	archive := []byte("PK\x03\x04fake")
	svc := &bcfServiceMock{
		ExportFunc: func(ctx context.Context, pid uuid.UUID, topicGUIDs []uuid.UUID) (*bcfpkg.ExportResult, error) {
			if pid != projectID {
				t.Errorf("project: got %v, want %v", pid, projectID)
			}
			return &bcfpkg.ExportResult{Data: archive, FileName: "Office_Tower.bcf"}, nil
		},
	}
	h := NewBCFHandler(svc, slog.Default(), 1<<20)

	req := httptest.NewRequest(http.MethodGet, "/api/projects/"+projectID.String()+"/bcf", nil)
	req.SetPathValue("id", projectID.String())
	rec := httptest.NewRecorder()

	h.Export(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="Office_Tower.bcf"` {
		t.Errorf("content disposition: got %q", got)
	}
	if !bytes.Equal(rec.Body.Bytes(), archive) {
		t.Error("response body must be the archive bytes")
	}
}

func TestExportHandler_ForwardsTopicSelection(t *testing.T) {
	t.Parallel()

	projectID := uuid.New()
	g1, g2 := uuid.New(), uuid.New()
	svc := &bcfServiceMock{
		ExportFunc: func(ctx context.Context, pid uuid.UUID, topicGUIDs []uuid.UUID) (*bcfpkg.ExportResult, error) {
			if len(topicGUIDs) != 2 || topicGUIDs[0] != g1 || topicGUIDs[1] != g2 {
				t.Errorf("selection: got %v, want [%v %v]", topicGUIDs, g1, g2)
			}
			return &bcfpkg.ExportResult{Data: []byte("x"), FileName: "p.bcf"}, nil
		},
	}
	h := NewBCFHandler(svc, slog.Default(), 1<<20)

	url := "/api/projects/" + projectID.String() + "/bcf?rdi=" + g1.String() + "&rdi=" + g2.String()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	req.SetPathValue("id", projectID.String())
	rec := httptest.NewRecorder()

	h.Export(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestImportHandler_RawBody(t *testing.T) {
	t.Parallel()

	projectID := uuid.New()
	payload := []byte("PK\x03\x04fake-archive")
	svc := &bcfServiceMock{
		ImportFunc: func(ctx context.Context, pid uuid.UUID, data []byte) (*bcfpkg.ImportResult, error) {
			if !bytes.Equal(data, payload) {
				t.Error("service must receive the raw upload bytes")
			}
			return &bcfpkg.ImportResult{Imported: 2, Skipped: 1}, nil
		},
	}
	h := NewBCFHandler(svc, slog.Default(), 1<<20)

	req := httptest.NewRequest(http.MethodPost, "/api/projects/"+projectID.String()+"/bcf", bytes.NewReader(payload))
	req.SetPathValue("id", projectID.String())
	rec := httptest.NewRecorder()

	h.Import(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp importResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Imported != 2 || resp.Skipped != 1 {
		t.Errorf("result: got %+v, want 2 imported, 1 skipped", resp)
	}
}

func TestImportHandler_InvalidProjectID(t *testing.T) {
	t.Parallel()

	h := NewBCFHandler(&bcfServiceMock{}, slog.Default(), 1<<20)

	req := httptest.NewRequest(http.MethodPost, "/api/projects/nope/bcf", bytes.NewReader([]byte("x")))
	req.SetPathValue("id", "nope")
	rec := httptest.NewRecorder()

	h.Import(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}
