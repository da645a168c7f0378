package errors

import (
	stderrs "errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE values the repos react to
const (
	SQLStateUniqueViolation  = "23505"
	SQLStateNotNullViolation = "23502"
	SQLStateInvalidText      = "22P02"
	SQLStateInvalidJSON      = "22032"
	SQLStateUndefinedTable   = "42P01"
	SQLStateReadOnly         = "25006"
	SQLStateCannotConnectNow = "57P03"
	SQLStateAdminShutdown    = "57P01"
)

// PgError finds a postgres error anywhere in err's chain
func PgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsSQLState reports whether err carries the given SQLSTATE
func IsSQLState(err error, state string) bool {
	pgErr, ok := PgError(err)
	return ok && pgErr.Code == state
}

// IsUndefinedTable reports a query against a table that does not exist
func IsUndefinedTable(err error) bool { return IsSQLState(err, SQLStateUndefinedTable) }

// DBErrorCode classifies a postgres error; ok is false when err is not one
func DBErrorCode(err error) (code ErrorCode, ok bool) {
	pgErr, ok := PgError(err)
	if !ok {
		return ErrorCodeUnknown, false
	}
	switch pgErr.Code {
	case SQLStateUniqueViolation:
		return ErrorCodeDuplicateKey, true
	case SQLStateNotNullViolation, SQLStateInvalidText, SQLStateInvalidJSON:
		return ErrorCodeInvalidArgument, true
	case SQLStateUndefinedTable:
		return ErrorCodeDataset, true
	case SQLStateReadOnly, SQLStateCannotConnectNow, SQLStateAdminShutdown:
		return ErrorCodeUnavailable, true
	default:
		return ErrorCodeDB, true
	}
}

// FromPostgres wraps err under its mapped code; other errors become DB errors.
// The constraint or column postgres blamed, if any, becomes the field.
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	code, ok := DBErrorCode(err)
	if !ok {
		return Wrap(err, ErrorCodeDB, msg)
	}
	out := Wrap(err, code, msg)
	pgErr, _ := PgError(err)
	switch {
	case pgErr.ColumnName != "":
		out = WithField(out, pgErr.ColumnName)
	case pgErr.ConstraintName != "":
		out = WithField(out, pgErr.ConstraintName)
	}
	return out
}

// FromPostgresf is FromPostgres with formatting
func FromPostgresf(err error, format string, a ...any) error {
	return FromPostgres(err, fmt.Sprintf(format, a...))
}
