package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Constraint checks rely on GORM's translated errors where available and fall
// back to message inspection only for violations GORM does not translate.

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isNotNullConstraintViolation(err error) bool {
	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "null value") ||
		strings.Contains(msg, "not null") ||
		strings.Contains(msg, "23502") // PostgreSQL not_null_violation
}
