package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/asanmartin/bimviewer-backend/internal/domain"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil passes", nil, nil},
		{"no rows", pgx.ErrNoRows, domain.ErrNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, domain.ErrAlreadyExists},
		{"fk violation", &pgconn.PgError{Code: "23503"}, domain.ErrNotFound},
		{"check violation", &pgconn.PgError{Code: "23514"}, domain.ErrValidation},
		{"context canceled passes through", context.Canceled, context.Canceled},
		{"context deadline passes through", context.DeadlineExceeded, context.DeadlineExceeded},
		{"unknown becomes storage error", errors.New("socket closed"), domain.ErrStorage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := MapError(tt.in, "topic get")
			if tt.want == nil {
				if got != nil {
					t.Fatalf("expected nil, got %v", got)
				}
				return
			}
			if !errors.Is(got, tt.want) {
				t.Errorf("MapError(%v) = %v, want %v in chain", tt.in, got, tt.want)
			}
		})
	}
}

func TestMapError_StorageErrorKeepsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	got := MapError(cause, "topic list")

	var se *domain.StorageError
	if !errors.As(got, &se) {
		t.Fatalf("expected *domain.StorageError, got %T", got)
	}
	if se.Cause != cause {
		t.Errorf("cause not preserved: %v", se.Cause)
	}
	if se.Op != "topic list" {
		t.Errorf("op not preserved: %q", se.Op)
	}
}
