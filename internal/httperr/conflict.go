package httperr

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// UniqueViolationField traduz um erro de constraint única do Postgres para o
// campo que colidiu ("email", "slug", "phone"), em vez de vazar o texto cru
// do banco para o profissional.
func UniqueViolationField(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return "", false
	}

	name := strings.ToLower(pgErr.ConstraintName)
	switch {
	case strings.Contains(name, "email"):
		return "email", true
	case strings.Contains(name, "slug"):
		return "slug", true
	case strings.Contains(name, "phone"):
		return "phone", true
	default:
		return "", true
	}
}
