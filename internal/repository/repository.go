package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pantrystack/pantry-tracker/internal/apperr"
)

// postgres error code for unique_violation
const uniqueViolationCode = "23505"

// translateConstraintError maps a unique constraint violation to the
// matching app error. Any other error is returned unchanged.
func translateConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return err
	}

	switch pgErr.ConstraintName {
	case "products_upc_key":
		return apperr.DuplicateUPCErr.WrapParent(err)
	case "products_uuid_key", "containers_uuid_key":
		return apperr.DuplicateIdentifierErr.WrapParent(err)
	default:
		return err
	}
}
