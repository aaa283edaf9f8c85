package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/grouponesailor/group6-tips-server/internal/domain"
)

func TestMapError_Nil(t *testing.T) {
	t.Parallel()

	if got := mapError(nil, "find topics"); got != nil {
		t.Errorf("mapError(nil) = %v, want nil", got)
	}
}

func TestMapError_NoRows(t *testing.T) {
	t.Parallel()

	got := mapError(fmt.Errorf("scan row: %w", pgx.ErrNoRows), "count tips")

	if !errors.Is(got, domain.ErrNotFound) {
		t.Errorf("mapError(ErrNoRows) does not wrap domain.ErrNotFound: %v", got)
	}
	if want := "count tips: not found"; got.Error() != want {
		t.Errorf("mapError(ErrNoRows).Error() = %q, want %q", got.Error(), want)
	}
}

func TestMapError_PgCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		code    string
		wantErr error
	}{
		{"unique_violation", "23505", domain.ErrAlreadyExists},
		{"foreign_key_violation", "23503", domain.ErrNotFound},
		{"check_violation", "23514", domain.ErrInvalidOrderKey},
		{"undefined_table", "42P01", domain.ErrStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			wrapped := fmt.Errorf("exec: %w", &pgconn.PgError{Code: tt.code})
			got := mapError(wrapped, "insert tips")

			if !errors.Is(got, tt.wantErr) {
				t.Errorf("mapError(code %s) does not wrap %v: %v", tt.code, tt.wantErr, got)
			}
		})
	}
}

func TestMapError_UnknownPgErrorKeepsDriverError(t *testing.T) {
	t.Parallel()

	got := mapError(&pgconn.PgError{Code: "42P01", Message: "relation does not exist"}, "find tips")

	var pgErr *pgconn.PgError
	if !errors.As(got, &pgErr) {
		t.Fatalf("mapError(unknown PgError) does not wrap *pgconn.PgError: %v", got)
	}
	if errors.Is(got, domain.ErrNotFound) || errors.Is(got, domain.ErrAlreadyExists) {
		t.Error("mapError(unknown PgError) should not map to NotFound or AlreadyExists")
	}
}

func TestMapError_Context(t *testing.T) {
	t.Parallel()

	for _, ctxErr := range []error{context.Canceled, context.DeadlineExceeded} {
		got := mapError(ctxErr, "find topics")
		if !errors.Is(got, ctxErr) {
			t.Errorf("mapError(%v) does not wrap the context error: %v", ctxErr, got)
		}
		if errors.Is(got, domain.ErrStoreUnavailable) {
			t.Errorf("mapError(%v) should not be reported as store unavailable", ctxErr)
		}
	}
}

func TestMapError_Unknown(t *testing.T) {
	t.Parallel()

	original := errors.New("connection reset")
	got := mapError(original, "find topics")

	if !errors.Is(got, original) || !errors.Is(got, domain.ErrStoreUnavailable) {
		t.Errorf("mapError(unknown) = %v, want both original and ErrStoreUnavailable", got)
	}
	if want := "find topics: store unavailable: connection reset"; got.Error() != want {
		t.Errorf("mapError(unknown).Error() = %q, want %q", got.Error(), want)
	}
}

func checkViolation() error {
	return &pgconn.PgError{Code: "23514", Message: "violates check constraint"}
}
