// file: internals/helpers/db_errors.go
package helper

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// IsUniqueViolation detecta violación de constraint único (23505).
// GORM puede envolver el error del driver, por eso también se matchea el texto.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "violates unique constraint") ||
		strings.Contains(s, "sqlstate 23505")
}
