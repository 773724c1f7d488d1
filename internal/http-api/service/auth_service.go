package service

import (
	"errors"
	"strings"

	"storyhive/internal/auth"
	"storyhive/internal/http-api/dto"
	"storyhive/internal/models"
	"storyhive/internal/store"
)

var (
	ErrNameInUse          = store.ErrUsernameTaken
	ErrEmailInUse         = store.ErrEmailTaken
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService interface {
	Register(req dto.RegisterRequest) (models.User, error)
	Login(username, password string) (models.User, error)
}

type authService struct {
	store *store.Store
}

func NewAuthService(s *store.Store) AuthService {
	return &authService{store: s}
}

// Register hashes the password and creates the user. Uniqueness of
// username and email is enforced inside the store, under its lock.
func (s *authService) Register(req dto.RegisterRequest) (models.User, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return models.User{}, err
	}
	user := models.User{
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: hash,
		DisplayName:  req.DisplayName,
		Email:        strings.TrimSpace(req.Email),
		Bio:          req.Bio,
		AvatarURL:    req.AvatarURL,
		IsCreator:    req.IsCreator,
		PrimaryGenre: req.PrimaryGenre,
		SocialLinks:  req.SocialLinks,
	}
	return s.store.CreateUser(user)
}

// Login requires an exact password match against the stored hash. An
// unknown username and a wrong password are indistinguishable to the
// caller.
func (s *authService) Login(username, password string) (models.User, error) {
	user, ok := s.store.GetUserByUsername(username)
	if !ok {
		return models.User{}, ErrInvalidCredentials
	}
	if err := auth.VerifyPassword(user.PasswordHash, password); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}
