package bcf

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asanmartin/bimviewer-backend/internal/domain"
)

var pngStub = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00}

func testTopic(t *testing.T, title string) (*domain.Topic, *domain.Viewpoint) {
	t.Helper()

	vpGUID := uuid.New()
	snapRef := uuid.New()
	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	desc := "leak above axis 4"
	label := "Plumbing"
	fov := 45.0

	topic := &domain.Topic{
		GUID:             uuid.New(),
		ProjectID:        uuid.New(),
		Title:            title,
		TopicType:        "Clash",
		TopicStatus:      "Open",
		Label:            &label,
		Description:      &desc,
		CreationAuthor:   "reviewer@example.com",
		CreationDate:     time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC),
		DueDate:          &due,
		ViewpointGUIDs:   []uuid.UUID{vpGUID},
		CurrentViewpoint: &vpGUID,
	}
	vp := &domain.Viewpoint{
		GUID:  vpGUID,
		Title: title,
		Camera: domain.Camera{
			ViewPoint:   domain.Vector{X: 12.5, Y: -3.25, Z: 7.0},
			Direction:   domain.Vector{X: 0.577, Y: 0.577, Z: -0.577},
			UpVector:    domain.Vector{X: 0, Y: 0, Z: 1},
			AspectRatio: 1.7777777777777777,
			FieldOfView: &fov,
		},
		SnapshotRef: &snapRef,
	}
	return topic, vp
}

func zipEntries(t *testing.T, pkg []byte) map[string][]byte {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(pkg), int64(len(pkg)))
	require.NoError(t, err)

	entries := make(map[string][]byte)
	for _, zf := range zr.File {
		rc, err := zf.Open()
		require.NoError(t, err)
		raw, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		entries[zf.Name] = raw
	}
	return entries
}

func TestExport_SingleTopicLayout(t *testing.T) {
	t.Parallel()

	topic, vp := testTopic(t, "Pipe clash")

	pkg, err := Export([]ExportTopic{{Topic: topic, Viewpoint: vp, Snapshot: pngStub}})
	require.NoError(t, err)

	entries := zipEntries(t, pkg)
	dir := topic.GUID.String() + "/"

	require.Contains(t, entries, versionFile)
	require.Contains(t, entries, dir+markupFile)
	require.Contains(t, entries, dir+viewpointFile)
	require.Contains(t, entries, dir+snapshotFile)

	version := string(entries[versionFile])
	assert.Contains(t, version, `VersionId="3.0"`)
	assert.Contains(t, version, "<DetailedVersion>3.0</DetailedVersion>")

	markup := string(entries[dir+markupFile])
	assert.Contains(t, markup, `Guid="`+topic.GUID.String()+`"`)
	assert.Contains(t, markup, `TopicType="Clash"`)
	assert.Contains(t, markup, `TopicStatus="Open"`)
	assert.Contains(t, markup, "<Title>Pipe clash</Title>")
	assert.Contains(t, markup, "<CreationDate>2026-08-20T10:30:00Z</CreationDate>")
	assert.Contains(t, markup, "<DueDate>2026-09-01T00:00:00Z</DueDate>")
	assert.Contains(t, markup, "<Labels>Plumbing</Labels>")
	assert.Contains(t, markup, "<Viewpoint>viewpoint.bcfv</Viewpoint>")
	assert.Contains(t, markup, "<Snapshot>snapshot.png</Snapshot>")

	assert.Equal(t, pngStub, entries[dir+snapshotFile])
}

func TestExport_TwoTopicsTwoFolders(t *testing.T) {
	t.Parallel()

	t1, vp1 := testTopic(t, "First")
	t2, vp2 := testTopic(t, "Second")

	pkg, err := Export([]ExportTopic{
		{Topic: t1, Viewpoint: vp1, Snapshot: pngStub},
		{Topic: t2, Viewpoint: vp2},
	})
	require.NoError(t, err)

	var dirs []string
	for name := range zipEntries(t, pkg) {
		if i := strings.IndexByte(name, '/'); i > 0 {
			dirs = append(dirs, name[:i])
		}
	}
	sort.Strings(dirs)
	dirs = dedup(dirs)

	want := []string{t1.GUID.String(), t2.GUID.String()}
	sort.Strings(want)
	require.Equal(t, want, dirs)

	entries := zipEntries(t, pkg)
	for _, guid := range want {
		assert.Contains(t, entries, guid+"/"+markupFile)
		assert.Contains(t, entries, guid+"/"+viewpointFile)
	}
	// Second topic had no snapshot bytes: file must be omitted, not empty.
	assert.NotContains(t, entries, t2.GUID.String()+"/"+snapshotFile)
}

func TestExport_TopicWithoutViewpointFails(t *testing.T) {
	t.Parallel()

	topic, _ := testTopic(t, "Orphan")

	_, err := Export([]ExportTopic{{Topic: topic}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoViewpoint))
}

func TestSafeFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Pipe clash #42", "Pipe_clash__42"},
		{"simple", "simple"},
		{"", "topics"},
		{"фасад", "_____"},
	}
	for _, tt := range tests {
		if got := SafeFileName(tt.in); got != tt.want {
			t.Errorf("SafeFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func dedup(sorted []string) []string {
	var out []string
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			out = append(out, s)
		}
	}
	return out
}
