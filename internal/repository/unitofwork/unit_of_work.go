package unitofwork

import (
	"context"

	"feature-prefs-be/internal/repository/contract"
)

// UnitOfWork scopes repository access to one request, and optionally to one
// store transaction. Between Begin and Commit every accessor is bound to the
// same transaction; readers outside the transaction observe either the
// pre-Begin state or the fully committed one, never an intermediate.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	GroupRepository() contract.GroupRepository
	FeatureRepository() contract.FeatureRepository
	PreferenceRepository() contract.PreferenceRepository
	UserRepository() contract.UserRepository
}
