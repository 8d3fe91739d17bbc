package rest

import (
	"time"

	"github.com/asanmartin/bimviewer-backend/internal/domain"
)

// vectorDTO is the JSON shape for a 3D vector in viewer (Y-up) or BCF (Z-up)
// space depending on direction of travel.
type vectorDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type cameraDTO struct {
	ViewPoint   vectorDTO `json:"viewPoint"`
	Direction   vectorDTO `json:"direction"`
	UpVector    vectorDTO `json:"upVector"`
	AspectRatio float64   `json:"aspectRatio"`
	FieldOfView *float64  `json:"fieldOfView,omitempty"`
}

func (d cameraDTO) toDomain() domain.Camera {
	return domain.Camera{
		ViewPoint:   domain.Vector{X: d.ViewPoint.X, Y: d.ViewPoint.Y, Z: d.ViewPoint.Z},
		Direction:   domain.Vector{X: d.Direction.X, Y: d.Direction.Y, Z: d.Direction.Z},
		UpVector:    domain.Vector{X: d.UpVector.X, Y: d.UpVector.Y, Z: d.UpVector.Z},
		AspectRatio: d.AspectRatio,
		FieldOfView: d.FieldOfView,
	}
}

func toCameraDTO(c domain.Camera) cameraDTO {
	return cameraDTO{
		ViewPoint:   vectorDTO{X: c.ViewPoint.X, Y: c.ViewPoint.Y, Z: c.ViewPoint.Z},
		Direction:   vectorDTO{X: c.Direction.X, Y: c.Direction.Y, Z: c.Direction.Z},
		UpVector:    vectorDTO{X: c.UpVector.X, Y: c.UpVector.Y, Z: c.UpVector.Z},
		AspectRatio: c.AspectRatio,
		FieldOfView: c.FieldOfView,
	}
}

type topicResponse struct {
	GUID             string     `json:"guid"`
	ProjectID        string     `json:"projectId"`
	Title            string     `json:"title"`
	TopicType        string     `json:"topicType"`
	TopicStatus      string     `json:"topicStatus"`
	Label            *string    `json:"label,omitempty"`
	Description      *string    `json:"description,omitempty"`
	CreationAuthor   string     `json:"creationAuthor"`
	CreationDate     time.Time  `json:"creationDate"`
	DueDate          *time.Time `json:"dueDate,omitempty"`
	AssignedTo       *string    `json:"assignedTo,omitempty"`
	ViewpointGUIDs   []string   `json:"viewpointGuids"`
	CurrentViewpoint *string    `json:"currentViewpoint,omitempty"`
}

func toTopicResponse(t *domain.Topic) topicResponse {
	vps := make([]string, len(t.ViewpointGUIDs))
	for i, g := range t.ViewpointGUIDs {
		vps[i] = g.String()
	}
	resp := topicResponse{
		GUID:           t.GUID.String(),
		ProjectID:      t.ProjectID.String(),
		Title:          t.Title,
		TopicType:      t.TopicType,
		TopicStatus:    t.TopicStatus,
		Label:          t.Label,
		Description:    t.Description,
		CreationAuthor: t.CreationAuthor,
		CreationDate:   t.CreationDate,
		DueDate:        t.DueDate,
		AssignedTo:     t.AssignedTo,
		ViewpointGUIDs: vps,
	}
	if t.CurrentViewpoint != nil {
		s := t.CurrentViewpoint.String()
		resp.CurrentViewpoint = &s
	}
	return resp
}

type viewpointResponse struct {
	GUID        string    `json:"guid"`
	Title       string    `json:"title,omitempty"`
	Camera      cameraDTO `json:"camera"`
	HasSnapshot bool      `json:"hasSnapshot"`
}

func toViewpointResponse(vp *domain.Viewpoint) viewpointResponse {
	return viewpointResponse{
		GUID:        vp.GUID.String(),
		Title:       vp.Title,
		Camera:      toCameraDTO(vp.Camera),
		HasSnapshot: vp.HasSnapshot(),
	}
}

type commentResponse struct {
	ID        string    `json:"id"`
	TopicGUID string    `json:"topicGuid"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

func toCommentResponse(c domain.Comment) commentResponse {
	return commentResponse{
		ID:        c.ID.String(),
		TopicGUID: c.TopicGUID.String(),
		Author:    c.Author,
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
	}
}

type projectResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toProjectResponse(p *domain.Project) projectResponse {
	return projectResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
