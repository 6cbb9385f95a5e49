package mappers

import (
	"mediticket/internal/domain/user"
	"mediticket/internal/infrastructure/persistence/models"
)

type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type userMapper struct{}

func NewUserMapper() UserMapper {
	return &userMapper{}
}

func (m *userMapper) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		ItsmeID:      u.ItsmeID(),
		RegisteredAt: u.RegisteredAt(),
	}
}

func (m *userMapper) ToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(model.ID, model.ItsmeID, model.RegisteredAt)
}
