package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código SQLSTATE de Postgres para unique_violation.
const codeUniqueViolation = "23505"

// isUniqueViolation detecta el choque contra un índice único, por ejemplo el
// de email en users.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}
