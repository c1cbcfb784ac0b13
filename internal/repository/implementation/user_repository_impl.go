// FILE: internal/repository/implementation/user_repository_impl.go
// GORM implementation of UserRepository
package implementation

import (
	"context"
	"errors"

	"feature-prefs-be/internal/entity"
	"feature-prefs-be/internal/mapper"
	"feature-prefs-be/internal/model"
	"feature-prefs-be/internal/repository/contract"
	"feature-prefs-be/internal/repository/specification"

	"gorm.io/gorm"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewUserRepository(db *gorm.DB) contract.UserRepository {
	return &UserRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *UserRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *entity.User) error {
	m := r.mapper.ToModel(user)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translate("failed to create user", err)
	}
	*user = *r.mapper.ToEntity(m)
	return nil
}

func (r *UserRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	var m model.User
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translate("failed to find user", err)
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *UserRepositoryImpl) CreateRefreshToken(ctx context.Context, token *entity.UserRefreshToken) error {
	m := r.mapper.TokenToModel(token)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translate("failed to create refresh token", err)
	}
	*token = *r.mapper.TokenToEntity(m)
	return nil
}

func (r *UserRepositoryImpl) RevokeRefreshTokenByHash(ctx context.Context, hash string) error {
	err := r.db.WithContext(ctx).
		Model(&model.UserRefreshToken{}).
		Where("token_hash = ?", hash).
		Update("revoked", true).Error
	return translate("failed to revoke refresh token", err)
}
