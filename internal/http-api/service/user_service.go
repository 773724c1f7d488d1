package service

import (
	"storyhive/internal/auth"
	"storyhive/internal/http-api/dto"
	"storyhive/internal/models"
	"storyhive/internal/store"
)

type UserService interface {
	GetByID(id int64) (models.User, bool)
	Update(id int64, in dto.UpdateUserDTO) (models.User, bool, error)
}

type userService struct {
	store *store.Store
}

func NewUserService(s *store.Store) UserService {
	return &userService{store: s}
}

func (s *userService) GetByID(id int64) (models.User, bool) {
	return s.store.GetUser(id)
}

// Update applies a partial patch. A new password is hashed before it
// reaches the store; everything else passes through the allow-list.
func (s *userService) Update(id int64, in dto.UpdateUserDTO) (models.User, bool, error) {
	patch := in.ToPatch()
	if in.Password != nil {
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return models.User{}, false, err
		}
		patch.PasswordHash = &hash
	}
	user, ok := s.store.UpdateUser(id, patch)
	return user, ok, nil
}
