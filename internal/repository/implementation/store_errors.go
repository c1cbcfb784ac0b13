// FILE: internal/repository/implementation/store_errors.go
package implementation

import (
	"errors"

	"feature-prefs-be/internal/pkg/apperrors"

	"gorm.io/gorm"
)

// translate maps raw GORM errors onto the service error taxonomy.
// Requires TranslateError on the gorm.Config so driver duplicate-key
// errors surface as gorm.ErrDuplicatedKey.
func translate(message string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ConstraintViolation(message, err)
	}
	return apperrors.StoreUnavailable(message, err)
}
