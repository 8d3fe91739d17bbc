package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/asanmartin/bimviewer-backend/internal/domain"
	"github.com/asanmartin/bimviewer-backend/internal/service/rdi"
	"github.com/asanmartin/bimviewer-backend/internal/service/viewpoint"
)

// rdiService defines the minimal interface needed by RDIHandler.
type rdiService interface {
	CreateRDI(ctx context.Context, input rdi.CreateRDIInput) (*domain.Topic, error)
	GetRDI(ctx context.Context, guid uuid.UUID) (*domain.Topic, error)
	ListRDIs(ctx context.Context, input rdi.ListRDIsInput) ([]*domain.Topic, error)
	UpdateRDI(ctx context.Context, input rdi.UpdateRDIInput) (*domain.Topic, error)
	ChangeStatus(ctx context.Context, input rdi.ChangeStatusInput) (*domain.Topic, error)
	SetCurrentViewpoint(ctx context.Context, topicGUID, viewpointGUID uuid.UUID) error
	DeleteRDI(ctx context.Context, guid uuid.UUID) error
	ClearAll(ctx context.Context, projectID uuid.UUID) error
	AddComment(ctx context.Context, input rdi.AddCommentInput) (*domain.Comment, error)
	ListComments(ctx context.Context, topicGUID uuid.UUID) ([]domain.Comment, error)
}

// captureService is the slice of the viewpoint service used when an RDI is
// created together with its first viewpoint.
type captureService interface {
	Capture(ctx context.Context, input viewpoint.CaptureInput) (*domain.Viewpoint, error)
}

// RDIHandler serves RDI (issue topic) REST endpoints.
type RDIHandler struct {
	svc      rdiService
	captures captureService
	log      *slog.Logger
}

// NewRDIHandler creates an RDIHandler.
func NewRDIHandler(svc rdiService, captures captureService, logger *slog.Logger) *RDIHandler {
	return &RDIHandler{svc: svc, captures: captures, log: logger.With("handler", "rdi")}
}

type captureRequest struct {
	Title    string    `json:"title"`
	Camera   cameraDTO `json:"camera"`
	Snapshot []byte    `json:"snapshot,omitempty"` // base64 PNG
}

type createRDIRequest struct {
	Title       string          `json:"title"`
	TopicType   string          `json:"topicType"`
	TopicStatus string          `json:"topicStatus"`
	Label       *string         `json:"label,omitempty"`
	Description *string         `json:"description,omitempty"`
	DueDate     *time.Time      `json:"dueDate,omitempty"`
	AssignedTo  *string         `json:"assignedTo,omitempty"`
	Viewpoint   *captureRequest `json:"viewpoint,omitempty"`
}

type createRDIResponse struct {
	Topic     topicResponse      `json:"topic"`
	Viewpoint *viewpointResponse `json:"viewpoint,omitempty"`
}

// Create handles POST /api/projects/{id}/rdis. The request may carry the
// initial camera capture; the viewpoint is then created and attached in the
// same call and becomes the topic's current one.
func (h *RDIHandler) Create(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	var req createRDIRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	topic, err := h.svc.CreateRDI(r.Context(), rdi.CreateRDIInput{
		ProjectID:   projectID,
		Title:       req.Title,
		TopicType:   req.TopicType,
		TopicStatus: req.TopicStatus,
		Label:       req.Label,
		Description: req.Description,
		DueDate:     req.DueDate,
		AssignedTo:  req.AssignedTo,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := createRDIResponse{Topic: toTopicResponse(topic)}

	if req.Viewpoint != nil {
		vp, err := h.captures.Capture(r.Context(), viewpoint.CaptureInput{
			TopicGUID: topic.GUID,
			Title:     req.Viewpoint.Title,
			Camera:    req.Viewpoint.Camera.toDomain(),
			Snapshot:  req.Viewpoint.Snapshot,
		})
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		vpResp := toViewpointResponse(vp)
		resp.Viewpoint = &vpResp

		if refreshed, err := h.svc.GetRDI(r.Context(), topic.GUID); err == nil {
			resp.Topic = toTopicResponse(refreshed)
		}
	}

	writeJSON(w, http.StatusCreated, resp)
}

// List handles GET /api/projects/{id}/rdis with optional type and status
// query filters.
func (h *RDIHandler) List(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	topics, err := h.svc.ListRDIs(r.Context(), rdi.ListRDIsInput{
		ProjectID:    projectID,
		TypeFilter:   r.URL.Query().Get("type"),
		StatusFilter: r.URL.Query().Get("status"),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]topicResponse, len(topics))
	for i, t := range topics {
		resp[i] = toTopicResponse(t)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/rdis/{guid}.
func (h *RDIHandler) Get(w http.ResponseWriter, r *http.Request) {
	guid, err := pathUUID(r, "guid")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rdi guid")
		return
	}

	topic, err := h.svc.GetRDI(r.Context(), guid)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTopicResponse(topic))
}

type updateRDIRequest struct {
	Title       *string    `json:"title,omitempty"`
	TopicType   *string    `json:"topicType,omitempty"`
	TopicStatus *string    `json:"topicStatus,omitempty"`
	Label       *string    `json:"label,omitempty"`
	Description *string    `json:"description,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	AssignedTo  *string    `json:"assignedTo,omitempty"`
}

// Update handles PATCH /api/rdis/{guid}.
func (h *RDIHandler) Update(w http.ResponseWriter, r *http.Request) {
	guid, err := pathUUID(r, "guid")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rdi guid")
		return
	}

	var req updateRDIRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	topic, err := h.svc.UpdateRDI(r.Context(), rdi.UpdateRDIInput{
		GUID:        guid,
		Title:       req.Title,
		TopicType:   req.TopicType,
		TopicStatus: req.TopicStatus,
		Label:       req.Label,
		Description: req.Description,
		DueDate:     req.DueDate,
		AssignedTo:  req.AssignedTo,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTopicResponse(topic))
}

type changeStatusRequest struct {
	Status string `json:"status"`
}

// ChangeStatus handles POST /api/rdis/{guid}/status.
func (h *RDIHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	guid, err := pathUUID(r, "guid")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rdi guid")
		return
	}

	var req changeStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	topic, err := h.svc.ChangeStatus(r.Context(), rdi.ChangeStatusInput{
		GUID:   guid,
		Status: req.Status,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTopicResponse(topic))
}

// SetCurrentViewpoint handles PUT /api/rdis/{guid}/viewpoints/{vp}/current.
func (h *RDIHandler) SetCurrentViewpoint(w http.ResponseWriter, r *http.Request) {
	guid, err := pathUUID(r, "guid")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rdi guid")
		return
	}
	vpGUID, err := pathUUID(r, "vp")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid viewpoint guid")
		return
	}

	if err := h.svc.SetCurrentViewpoint(r.Context(), guid, vpGUID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /api/rdis/{guid}.
func (h *RDIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	guid, err := pathUUID(r, "guid")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rdi guid")
		return
	}

	if err := h.svc.DeleteRDI(r.Context(), guid); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ClearAll handles DELETE /api/projects/{id}/rdis.
func (h *RDIHandler) ClearAll(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	if err := h.svc.ClearAll(r.Context(), projectID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type addCommentRequest struct {
	Body string `json:"body"`
}

// AddComment handles POST /api/rdis/{guid}/comments.
func (h *RDIHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	guid, err := pathUUID(r, "guid")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rdi guid")
		return
	}

	var req addCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	comment, err := h.svc.AddComment(r.Context(), rdi.AddCommentInput{
		TopicGUID: guid,
		Body:      req.Body,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCommentResponse(*comment))
}

// ListComments handles GET /api/rdis/{guid}/comments.
func (h *RDIHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	guid, err := pathUUID(r, "guid")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rdi guid")
		return
	}

	comments, err := h.svc.ListComments(r.Context(), guid)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]commentResponse, len(comments))
	for i, c := range comments {
		resp[i] = toCommentResponse(c)
	}
	writeJSON(w, http.StatusOK, resp)
}
