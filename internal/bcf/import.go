package bcf

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/asanmartin/bimviewer-backend/internal/domain"
)

// Package is the parsed content of a BCF archive. Viewpoints and snapshot
// bytes are keyed by viewpoint GUID; wiring snapshot references is the
// store's job, not the codec's.
type Package struct {
	Topics     []*domain.Topic
	Viewpoints map[uuid.UUID]*domain.Viewpoint
	Snapshots  map[uuid.UUID][]byte
}

// Import parses a BCF ZIP archive into topics and viewpoints belonging to
// projectID. Parsing is all-or-nothing: any malformed entry fails the whole
// import with ErrParse and no partial result.
func Import(data []byte, projectID uuid.UUID) (*Package, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, parseErrorf("open archive: %v", err)
	}

	type folder struct {
		markup    *markupXML
		visinfo   *visualizationInfoXML
		snapshot  []byte
		guidOrder int
	}
	folders := make(map[string]*folder)
	var order []string

	get := func(dir string) *folder {
		f, ok := folders[dir]
		if !ok {
			f = &folder{}
			folders[dir] = f
			order = append(order, dir)
		}
		return f
	}

	for _, zf := range zr.File {
		name := path.Clean(zf.Name)
		if strings.HasPrefix(name, "..") {
			return nil, parseErrorf("entry escapes archive: %q", zf.Name)
		}
		if name == versionFile {
			continue // tolerated, version pinned by this codec
		}

		dir, base := path.Split(name)
		dir = strings.TrimSuffix(dir, "/")
		if dir == "" || strings.Contains(dir, "/") {
			continue // not a per-topic folder entry
		}

		switch base {
		case markupFile:
			var m markupXML
			if err := readXMLEntry(zf, &m); err != nil {
				return nil, err
			}
			get(dir).markup = &m
		case viewpointFile:
			var v visualizationInfoXML
			if err := readXMLEntry(zf, &v); err != nil {
				return nil, err
			}
			get(dir).visinfo = &v
		case snapshotFile:
			raw, err := readEntry(zf)
			if err != nil {
				return nil, err
			}
			get(dir).snapshot = raw
		}
	}

	if len(folders) == 0 {
		return nil, parseErrorf("archive contains no topic folders")
	}

	pkg := &Package{
		Viewpoints: make(map[uuid.UUID]*domain.Viewpoint),
		Snapshots:  make(map[uuid.UUID][]byte),
	}

	for _, dir := range order {
		f := folders[dir]
		if f.markup == nil {
			return nil, parseErrorf("folder %s: missing %s", dir, markupFile)
		}
		if f.visinfo == nil {
			return nil, parseErrorf("folder %s: missing %s", dir, viewpointFile)
		}

		topic, err := f.markup.topic(projectID)
		if err != nil {
			return nil, err
		}
		if topic.GUID.String() != dir {
			return nil, parseErrorf("folder %s: topic guid mismatch (%s)", dir, topic.GUID)
		}

		vp, err := f.visinfo.viewpoint(topic.Title)
		if err != nil {
			return nil, err
		}

		topic.ViewpointGUIDs = []uuid.UUID{vp.GUID}
		current := vp.GUID
		topic.CurrentViewpoint = &current

		pkg.Topics = append(pkg.Topics, topic)
		pkg.Viewpoints[vp.GUID] = vp
		if f.snapshot != nil {
			pkg.Snapshots[vp.GUID] = f.snapshot
		}
	}

	return pkg, nil
}

func readEntry(zf *zip.File) ([]byte, error) {
	rc, err := zf.Open()
	if err != nil {
		return nil, parseErrorf("open %s: %v", zf.Name, err)
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return nil, parseErrorf("read %s: %v", zf.Name, err)
	}
	return raw, nil
}

func readXMLEntry(zf *zip.File, v any) error {
	raw, err := readEntry(zf)
	if err != nil {
		return err
	}
	if err := xml.Unmarshal(raw, v); err != nil {
		return parseErrorf("decode %s: %v", zf.Name, err)
	}
	return nil
}
