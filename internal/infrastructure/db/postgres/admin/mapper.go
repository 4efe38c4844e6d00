package admin

import (
	domain "filedrop-api/internal/domain/admin"
)

func fromDBModel(model *AdminUser) *domain.AdminUser {
	var a = &domain.AdminUser{
		ID:           domain.ID(model.ID),
		Username:     model.Username,
		PasswordHash: model.PasswordHash,

		CreatedAt: model.CreatedAt,
	}

	return a
}
