// FILE: internal/repository/contract/user_repository.go
package contract

import (
	"context"

	"feature-prefs-be/internal/entity"
	"feature-prefs-be/internal/repository/specification"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)

	CreateRefreshToken(ctx context.Context, token *entity.UserRefreshToken) error
	RevokeRefreshTokenByHash(ctx context.Context, hash string) error
}
