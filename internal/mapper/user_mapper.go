package mapper

import (
	"feature-prefs-be/internal/entity"
	"feature-prefs-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(mdl *model.User) *entity.User {
	if mdl == nil {
		return nil
	}
	return &entity.User{
		Id:           mdl.Id,
		Email:        mdl.Email,
		FullName:     mdl.FullName,
		PasswordHash: mdl.PasswordHash,
		CreatedAt:    mdl.CreatedAt,
		UpdatedAt:    mdl.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(ent *entity.User) *model.User {
	if ent == nil {
		return nil
	}
	return &model.User{
		Id:           ent.Id,
		Email:        ent.Email,
		FullName:     ent.FullName,
		PasswordHash: ent.PasswordHash,
		CreatedAt:    ent.CreatedAt,
		UpdatedAt:    ent.UpdatedAt,
	}
}

func (m *UserMapper) TokenToEntity(mdl *model.UserRefreshToken) *entity.UserRefreshToken {
	if mdl == nil {
		return nil
	}
	return &entity.UserRefreshToken{
		Id:        mdl.Id,
		UserId:    mdl.UserId,
		TokenHash: mdl.TokenHash,
		ExpiresAt: mdl.ExpiresAt,
		Revoked:   mdl.Revoked,
		IpAddress: mdl.IpAddress,
		UserAgent: mdl.UserAgent,
		CreatedAt: mdl.CreatedAt,
	}
}

func (m *UserMapper) TokenToModel(ent *entity.UserRefreshToken) *model.UserRefreshToken {
	if ent == nil {
		return nil
	}
	return &model.UserRefreshToken{
		Id:        ent.Id,
		UserId:    ent.UserId,
		TokenHash: ent.TokenHash,
		ExpiresAt: ent.ExpiresAt,
		Revoked:   ent.Revoked,
		IpAddress: ent.IpAddress,
		UserAgent: ent.UserAgent,
		CreatedAt: ent.CreatedAt,
	}
}
