package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestUniqueViolationField(t *testing.T) {
	tests := []struct {
		constraint string
		field      string
	}{
		{"idx_professionals_email", "email"},
		{"idx_professionals_slug", "slug"},
		{"idx_clients_professional_phone", "phone"},
		{"idx_something_else", ""},
	}

	for _, tc := range tests {
		err := &pgconn.PgError{Code: "23505", ConstraintName: tc.constraint}
		field, ok := UniqueViolationField(err)
		if !ok {
			t.Fatalf("expected %s to be a unique violation", tc.constraint)
		}
		if field != tc.field {
			t.Fatalf("constraint %s: expected field %q, got %q", tc.constraint, tc.field, field)
		}
	}

	// Erro embrulhado ainda é reconhecido.
	wrapped := fmt.Errorf("create professional: %w", &pgconn.PgError{Code: "23505", ConstraintName: "idx_professionals_email"})
	if field, ok := UniqueViolationField(wrapped); !ok || field != "email" {
		t.Fatalf("expected wrapped error to resolve to email, got %q/%v", field, ok)
	}

	if _, ok := UniqueViolationField(&pgconn.PgError{Code: "23503"}); ok {
		t.Fatalf("expected foreign key violation to be ignored")
	}
	if _, ok := UniqueViolationField(errors.New("boom")); ok {
		t.Fatalf("expected plain error to be ignored")
	}
}

func TestIsBusiness(t *testing.T) {
	err := ErrBusiness("slot_unavailable")
	if !IsBusiness(err, "slot_unavailable") {
		t.Fatalf("expected match")
	}
	if IsBusiness(err, "invalid_transition") {
		t.Fatalf("expected code mismatch")
	}
	if IsBusiness(errors.New("slot_unavailable"), "slot_unavailable") {
		t.Fatalf("expected plain error not to match")
	}

	wrapped := fmt.Errorf("booking: %w", err)
	if !IsBusiness(wrapped, "slot_unavailable") {
		t.Fatalf("expected wrapped business error to match")
	}
}
