package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/AnyaAven/jobly/internal/httperrors"
)

// PostgreSQL SQLSTATE codes the API translates.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// MapError translates driver errors into API errors. what names the row
// being touched and appears in not-found and duplicate messages.
//
// sql.ErrNoRows and foreign key violations map to not found, unique
// violations and check violations to bad request. Anything else is wrapped
// with httperrors.ErrDatabaseOperation.
func MapError(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return httperrors.NewNotFound("No " + what)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case codeUniqueViolation:
			return httperrors.NewBadRequest("Duplicate " + what)
		case codeForeignKeyViolation:
			return httperrors.NewNotFound("No " + what)
		case codeCheckViolation:
			return httperrors.NewBadRequest(fmt.Sprintf("Invalid %s: %s", what, pqErr.Constraint))
		}
	}

	return fmt.Errorf("%w: %v", httperrors.ErrDatabaseOperation, err)
}
