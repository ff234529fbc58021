package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors shared by all repositories.  Handlers map these to HTTP
// statuses: ErrNotFound -> 404, ErrDuplicate -> the Conflict response.
var (
	ErrNotFound  = errors.New("registro no encontrado")
	ErrDuplicate = errors.New("registro duplicado")
)

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).  Duplicate prevention relies on the schema's
// unique constraints; application-level pre-checks are advisory only, so
// concurrent submissions always land here rather than racing past a check.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// translateUnique converts a unique violation into ErrDuplicate and passes
// every other error through.
func translateUnique(err error) error {
	if IsUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}
