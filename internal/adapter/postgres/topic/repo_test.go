package topic

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/asanmartin/bimviewer-backend/internal/adapter/postgres/testhelper"
	"github.com/asanmartin/bimviewer-backend/internal/domain"
)

var topicCols = []string{
	"guid", "project_id", "title", "topic_type", "topic_status", "label",
	"description", "creation_author", "creation_date", "due_date", "assigned_to",
	"current_viewpoint",
}

func testRow(guid, projectID uuid.UUID, now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(topicCols).
		AddRow(guid, projectID, "Pipe clash", "Clash", "Open", nil,
			nil, "reviewer@example.com", now, nil, nil, nil)
}

func TestRepo_GetByGUID(t *testing.T) {
	guid := uuid.New()
	projectID := uuid.New()
	now := time.Now()

	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT .* FROM topics`).
					WithArgs(guid).
					WillReturnRows(testRow(guid, projectID, now))
				mock.ExpectQuery(`SELECT topic_guid, viewpoint_guid`).
					WithArgs(pgxmock.AnyArg()).
					WillReturnRows(pgxmock.NewRows([]string{"topic_guid", "viewpoint_guid"}))
			},
		},
		{
			name: "not found maps to domain.ErrNotFound",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT .* FROM topics`).
					WithArgs(guid).
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "driver failure maps to domain.ErrStorage",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT .* FROM topics`).
					WithArgs(guid).
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: domain.ErrStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := testhelper.NewMockPool(t)
			tt.setup(mock)
			repo := New(mock)

			got, err := repo.GetByGUID(context.Background(), guid)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v in chain", err, tt.wantErr)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got.GUID != guid {
					t.Errorf("guid = %v, want %v", got.GUID, guid)
				}
				if got.ViewpointGUIDs == nil {
					t.Error("viewpoint GUIDs must be an empty slice, not nil")
				}
			}

			testhelper.ExpectationsWereMet(t, mock)
		})
	}
}

func TestRepo_List_InsertionOrder(t *testing.T) {
	projectID := uuid.New()
	now := time.Now()
	first := uuid.New()
	second := uuid.New()

	mock := testhelper.NewMockPool(t)
	rows := pgxmock.NewRows(topicCols).
		AddRow(first, projectID, "A", "Clash", "Open", nil, nil, "a@x", now, nil, nil, nil).
		AddRow(second, projectID, "B", "Inquiry", "Closed", nil, nil, "a@x", now, nil, nil, nil)
	mock.ExpectQuery(`SELECT .* FROM topics .*ORDER BY seq ASC`).
		WithArgs(projectID).
		WillReturnRows(rows)
	mock.ExpectQuery(`SELECT topic_guid, viewpoint_guid`).
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"topic_guid", "viewpoint_guid"}).
			AddRow(first, second)) // second is attached to first as a viewpoint guid stand-in

	repo := New(mock)
	got, err := repo.List(context.Background(), projectID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].GUID != first || got[1].GUID != second {
		t.Error("insertion order not preserved")
	}
	if len(got[0].ViewpointGUIDs) != 1 {
		t.Errorf("first topic viewpoints = %v", got[0].ViewpointGUIDs)
	}

	testhelper.ExpectationsWereMet(t, mock)
}

func TestRepo_Create(t *testing.T) {
	mock := testhelper.NewMockPool(t)
	mock.ExpectExec(`INSERT INTO topics`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), "Pipe clash", "Clash", "Open",
			pgxmock.AnyArg(), pgxmock.AnyArg(), "reviewer@example.com", pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := New(mock)
	_, err := repo.Create(context.Background(), &domain.Topic{
		GUID:           uuid.New(),
		ProjectID:      uuid.New(),
		Title:          "Pipe clash",
		TopicType:      "Clash",
		TopicStatus:    "Open",
		CreationAuthor: "reviewer@example.com",
		CreationDate:   time.Now(),
		DueDate:        ptrTime(time.Now().Add(24 * time.Hour)),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testhelper.ExpectationsWereMet(t, mock)
}

func TestRepo_Delete_NotFound(t *testing.T) {
	guid := uuid.New()

	mock := testhelper.NewMockPool(t)
	mock.ExpectExec(`DELETE FROM topics`).
		WithArgs(guid).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	repo := New(mock)
	err := repo.Delete(context.Background(), guid)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("error = %v, want domain.ErrNotFound", err)
	}

	testhelper.ExpectationsWereMet(t, mock)
}

func TestRepo_AttachViewpoint_Idempotent(t *testing.T) {
	topicGUID := uuid.New()
	vpGUID := uuid.New()

	mock := testhelper.NewMockPool(t)
	// ON CONFLICT DO NOTHING: zero rows affected is still success.
	mock.ExpectExec(`INSERT INTO topic_viewpoints`).
		WithArgs(topicGUID, vpGUID).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	repo := New(mock)
	if err := repo.AttachViewpoint(context.Background(), topicGUID, vpGUID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testhelper.ExpectationsWereMet(t, mock)
}

func ptrTime(t time.Time) *time.Time { return &t }
