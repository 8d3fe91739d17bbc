package rest

import "net/http"

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Auth       *AuthHandler
	Health     *HealthHandler
	Projects   *ProjectHandler
	RDIs       *RDIHandler
	Viewpoints *ViewpointHandler
	BCF        *BCFHandler
}

// NewRouter mounts all REST routes on a ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Ready)

	mux.HandleFunc("POST /auth/register", h.Auth.Register)
	mux.HandleFunc("POST /auth/login", h.Auth.Login)

	mux.HandleFunc("GET /api/projects", h.Projects.List)
	mux.HandleFunc("POST /api/projects", h.Projects.Create)
	mux.HandleFunc("GET /api/projects/{id}", h.Projects.Get)
	mux.HandleFunc("DELETE /api/projects/{id}", h.Projects.Delete)

	mux.HandleFunc("GET /api/projects/{id}/rdis", h.RDIs.List)
	mux.HandleFunc("POST /api/projects/{id}/rdis", h.RDIs.Create)
	mux.HandleFunc("DELETE /api/projects/{id}/rdis", h.RDIs.ClearAll)

	mux.HandleFunc("GET /api/rdis/{guid}", h.RDIs.Get)
	mux.HandleFunc("PATCH /api/rdis/{guid}", h.RDIs.Update)
	mux.HandleFunc("DELETE /api/rdis/{guid}", h.RDIs.Delete)
	mux.HandleFunc("POST /api/rdis/{guid}/status", h.RDIs.ChangeStatus)
	mux.HandleFunc("POST /api/rdis/{guid}/comments", h.RDIs.AddComment)
	mux.HandleFunc("GET /api/rdis/{guid}/comments", h.RDIs.ListComments)

	mux.HandleFunc("POST /api/rdis/{guid}/viewpoints", h.Viewpoints.Capture)
	mux.HandleFunc("PUT /api/rdis/{guid}/viewpoints/{vp}/current", h.RDIs.SetCurrentViewpoint)
	mux.HandleFunc("GET /api/viewpoints/{guid}", h.Viewpoints.Get)
	mux.HandleFunc("PUT /api/viewpoints/{guid}", h.Viewpoints.Refresh)
	mux.HandleFunc("GET /api/viewpoints/{guid}/snapshot", h.Viewpoints.Snapshot)

	mux.HandleFunc("GET /api/projects/{id}/bcf", h.BCF.Export)
	mux.HandleFunc("POST /api/projects/{id}/bcf", h.BCF.Import)

	return mux
}
