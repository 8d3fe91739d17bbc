package bcf

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/asanmartin/bimviewer-backend/internal/domain"
)

// ExportTopic bundles one topic with its resolved viewpoint and optional
// snapshot bytes for packaging. Viewpoint is the topic's current viewpoint
// (or the first attached one); the BCF 3.0 layout carries one viewpoint.bcfv
// per topic folder.
type ExportTopic struct {
	Topic     *domain.Topic
	Viewpoint *domain.Viewpoint
	Snapshot  []byte // nil when the binary could not be resolved
}

// Export serializes topics into a BCF 3.0 ZIP package: one folder per topic
// named by the topic GUID, each holding markup.bcf, viewpoint.bcfv and, when
// present, snapshot.png, plus a single top-level bcf.version file.
//
// A topic without a resolvable viewpoint is an error; a missing snapshot is
// not (the file is simply omitted).
func Export(topics []ExportTopic) ([]byte, error) {
	if len(topics) == 0 {
		return nil, fmt.Errorf("export: no topics given")
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	if err := writeXMLEntry(zw, versionFile, versionXML{
		VersionID:       BCFVersion,
		DetailedVersion: BCFVersion,
	}); err != nil {
		return nil, err
	}

	for _, et := range topics {
		if et.Viewpoint == nil {
			return nil, fmt.Errorf("export topic %s: %w", et.Topic.GUID, ErrNoViewpoint)
		}

		dir := et.Topic.GUID.String() + "/"

		if err := writeXMLEntry(zw, dir+markupFile, toMarkupXML(et.Topic, et.Viewpoint)); err != nil {
			return nil, err
		}
		if err := writeXMLEntry(zw, dir+viewpointFile, toVisualizationInfoXML(et.Viewpoint)); err != nil {
			return nil, err
		}
		if et.Snapshot != nil {
			w, err := zw.Create(dir + snapshotFile)
			if err != nil {
				return nil, fmt.Errorf("export: create %s: %w", dir+snapshotFile, err)
			}
			if _, err := w.Write(et.Snapshot); err != nil {
				return nil, fmt.Errorf("export: write %s: %w", dir+snapshotFile, err)
			}
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("export: close archive: %w", err)
	}

	return buf.Bytes(), nil
}

func writeXMLEntry(zw *zip.Writer, name string, v any) error {
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", name, err)
	}
	if _, err := w.Write([]byte(xmlHeader)); err != nil {
		return fmt.Errorf("export: write %s: %w", name, err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("export: encode %s: %w", name, err)
	}
	return nil
}

// SafeFileName derives a download file name from a topic title: every
// non-alphanumeric rune is replaced by an underscore. The ".bcf" extension
// is the caller's business.
func SafeFileName(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "topics"
	}
	return b.String()
}
