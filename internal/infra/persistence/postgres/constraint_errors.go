package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pgUniqueViolation is the SQLSTATE of unique_violation.
const pgUniqueViolation = "23505"

// isUniqueConstraintViolation matches both the translated GORM error and the raw pgx
// error text, which carries the SQLSTATE.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return strings.Contains(err.Error(), pgUniqueViolation)
}
