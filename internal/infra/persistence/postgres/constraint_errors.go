package postgres

import (
	"strings"

	"idstore/internal/domain/repository"
	"idstore/internal/errors"

	"gorm.io/gorm"
)

// translateError maps driver errors onto the repository sentinels.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repository.ErrNotFound
	case isUniqueConstraintViolation(err):
		return errors.Wrap(repository.ErrDuplicate, err.Error())
	default:
		return err
	}
}

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// pgLib opens the database without TranslateError, so match the driver text too.
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "sqlstate 23505")
}
