package bcf

import (
	"encoding/xml"
	"time"

	"github.com/google/uuid"

	"github.com/asanmartin/bimviewer-backend/internal/domain"
)

// Fixed file names inside a BCF package.
const (
	versionFile   = "bcf.version"
	markupFile    = "markup.bcf"
	viewpointFile = "viewpoint.bcfv"
	snapshotFile  = "snapshot.png"
)

// BCFVersion is the version this codec reads and writes.
const BCFVersion = "3.0"

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// versionXML is the top-level bcf.version file.
type versionXML struct {
	XMLName         xml.Name `xml:"Version"`
	VersionID       string   `xml:"VersionId,attr"`
	DetailedVersion string   `xml:"DetailedVersion"`
}

// markupXML is the per-topic markup.bcf file.
type markupXML struct {
	XMLName xml.Name `xml:"Markup"`
	Topic   topicXML `xml:"Topic"`
}

type topicXML struct {
	GUID           string        `xml:"Guid,attr"`
	TopicType      string        `xml:"TopicType,attr"`
	TopicStatus    string        `xml:"TopicStatus,attr"`
	Title          string        `xml:"Title"`
	CreationAuthor string        `xml:"CreationAuthor"`
	CreationDate   string        `xml:"CreationDate"`
	DueDate        string        `xml:"DueDate,omitempty"`
	Description    string        `xml:"Description,omitempty"`
	AssignedTo     string        `xml:"AssignedTo,omitempty"`
	Labels         []string      `xml:"Labels"`
	Viewpoints     viewpointsXML `xml:"Viewpoints"`
}

// viewpointsXML references the viewpoint and snapshot files of the topic
// folder from within markup.bcf.
type viewpointsXML struct {
	GUID      string `xml:"Guid,attr"`
	Viewpoint string `xml:"Viewpoint"`
	Snapshot  string `xml:"Snapshot,omitempty"`
}

// visualizationInfoXML is the per-topic viewpoint.bcfv file. Camera vectors
// are serialized as-is: stored viewpoints are already in BCF space.
type visualizationInfoXML struct {
	XMLName           xml.Name             `xml:"VisualizationInfo"`
	GUID              string               `xml:"Guid,attr"`
	PerspectiveCamera perspectiveCameraXML `xml:"PerspectiveCamera"`
}

type perspectiveCameraXML struct {
	CameraViewPoint pointXML `xml:"CameraViewPoint"`
	CameraDirection pointXML `xml:"CameraDirection"`
	CameraUpVector  pointXML `xml:"CameraUpVector"`
	AspectRatio     float64  `xml:"AspectRatio"`
	FieldOfView     *float64 `xml:"FieldOfView,omitempty"`
}

type pointXML struct {
	X float64 `xml:"X"`
	Y float64 `xml:"Y"`
	Z float64 `xml:"Z"`
}

func toPointXML(v domain.Vector) pointXML {
	return pointXML{X: v.X, Y: v.Y, Z: v.Z}
}

func (p pointXML) vector() domain.Vector {
	return domain.Vector{X: p.X, Y: p.Y, Z: p.Z}
}

func toMarkupXML(t *domain.Topic, vp *domain.Viewpoint) markupXML {
	m := markupXML{
		Topic: topicXML{
			GUID:           t.GUID.String(),
			TopicType:      t.TopicType,
			TopicStatus:    t.TopicStatus,
			Title:          t.Title,
			CreationAuthor: t.CreationAuthor,
			CreationDate:   t.CreationDate.UTC().Format(time.RFC3339),
			Viewpoints: viewpointsXML{
				GUID:      vp.GUID.String(),
				Viewpoint: viewpointFile,
			},
		},
	}
	if t.DueDate != nil {
		m.Topic.DueDate = t.DueDate.UTC().Format(time.RFC3339)
	}
	if t.Description != nil {
		m.Topic.Description = *t.Description
	}
	if t.AssignedTo != nil {
		m.Topic.AssignedTo = *t.AssignedTo
	}
	if t.Label != nil {
		m.Topic.Labels = []string{*t.Label}
	}
	if vp.HasSnapshot() {
		m.Topic.Viewpoints.Snapshot = snapshotFile
	}
	return m
}

func toVisualizationInfoXML(vp *domain.Viewpoint) visualizationInfoXML {
	return visualizationInfoXML{
		GUID: vp.GUID.String(),
		PerspectiveCamera: perspectiveCameraXML{
			CameraViewPoint: toPointXML(vp.Camera.ViewPoint),
			CameraDirection: toPointXML(vp.Camera.Direction),
			CameraUpVector:  toPointXML(vp.Camera.UpVector),
			AspectRatio:     vp.Camera.AspectRatio,
			FieldOfView:     vp.Camera.FieldOfView,
		},
	}
}

func (m markupXML) topic(projectID uuid.UUID) (*domain.Topic, error) {
	guid, err := uuid.Parse(m.Topic.GUID)
	if err != nil {
		return nil, parseErrorf("markup: topic guid %q: %v", m.Topic.GUID, err)
	}

	created, err := time.Parse(time.RFC3339, m.Topic.CreationDate)
	if err != nil {
		return nil, parseErrorf("markup: creation date %q: %v", m.Topic.CreationDate, err)
	}

	t := &domain.Topic{
		GUID:           guid,
		ProjectID:      projectID,
		Title:          m.Topic.Title,
		TopicType:      m.Topic.TopicType,
		TopicStatus:    m.Topic.TopicStatus,
		CreationAuthor: m.Topic.CreationAuthor,
		CreationDate:   created,
	}
	if m.Topic.DueDate != "" {
		due, err := time.Parse(time.RFC3339, m.Topic.DueDate)
		if err != nil {
			return nil, parseErrorf("markup: due date %q: %v", m.Topic.DueDate, err)
		}
		t.DueDate = &due
	}
	if m.Topic.Description != "" {
		desc := m.Topic.Description
		t.Description = &desc
	}
	if m.Topic.AssignedTo != "" {
		assigned := m.Topic.AssignedTo
		t.AssignedTo = &assigned
	}
	if len(m.Topic.Labels) > 0 {
		label := m.Topic.Labels[0]
		t.Label = &label
	}
	return t, nil
}

func (v visualizationInfoXML) viewpoint(title string) (*domain.Viewpoint, error) {
	guid, err := uuid.Parse(v.GUID)
	if err != nil {
		return nil, parseErrorf("viewpoint: guid %q: %v", v.GUID, err)
	}

	return &domain.Viewpoint{
		GUID:  guid,
		Title: title,
		Camera: domain.Camera{
			ViewPoint:   v.PerspectiveCamera.CameraViewPoint.vector(),
			Direction:   v.PerspectiveCamera.CameraDirection.vector(),
			UpVector:    v.PerspectiveCamera.CameraUpVector.vector(),
			AspectRatio: v.PerspectiveCamera.AspectRatio,
			FieldOfView: v.PerspectiveCamera.FieldOfView,
		},
	}, nil
}
