// Package pgerr распознает ошибки PostgreSQL, важные для репозиториев
package pgerr

import (
	"errors"

	"github.com/lib/pq"
)

// UniqueViolation код SQLSTATE нарушения уникального индекса
const UniqueViolation = "23505"

// IsUniqueViolation returns true if err is a PostgreSQL unique_violation
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == UniqueViolation
	}
	return false
}
