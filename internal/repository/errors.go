package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domainerrors "github.com/snnyvrz/bookshelf/internal/errors"
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// classify maps driver failures onto domain errors. Unknown causes become
// internal errors carrying msg.
func classify(err error, msg string) error {
	if err == nil {
		return nil
	}

	var derr *domainerrors.Error
	if errors.As(err, &derr) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainerrors.Wrap(err, domainerrors.CodeNotFound, msg)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return domainerrors.Wrap(err, domainerrors.CodeValidation, "referenced record does not exist")
		case pgUniqueViolation:
			return domainerrors.Wrap(err, domainerrors.CodeConflict, "record already exists")
		}
	}

	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return domainerrors.Wrap(err, domainerrors.CodeValidation, "referenced record does not exist")
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainerrors.Wrap(err, domainerrors.CodeConflict, "record already exists")
	}

	return domainerrors.Wrap(err, domainerrors.CodeInternal, msg)
}
