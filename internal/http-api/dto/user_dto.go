package dto

import (
	"encoding/json"
	"time"

	"storyhive/internal/models"
)

// UserResponse is the public shape of a user. The password hash never
// leaves the server.
type UserResponse struct {
	ID           int64           `json:"id"`
	Username     string          `json:"username"`
	DisplayName  *string         `json:"display_name,omitempty"`
	Email        string          `json:"email"`
	Bio          *string         `json:"bio,omitempty"`
	AvatarURL    *string         `json:"avatar_url,omitempty"`
	IsCreator    bool            `json:"is_creator"`
	PrimaryGenre *string         `json:"primary_genre,omitempty"`
	SocialLinks  json.RawMessage `json:"social_links,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// UpdateUserDTO used for PATCH /api/users/:id (partial updates allowed)
type UpdateUserDTO struct {
	Username     *string         `json:"username,omitempty" binding:"omitempty,min=3,max=50"`
	Password     *string         `json:"password,omitempty" binding:"omitempty,min=8"`
	DisplayName  *string         `json:"display_name,omitempty"`
	Email        *string         `json:"email,omitempty" binding:"omitempty,email"`
	Bio          *string         `json:"bio,omitempty"`
	AvatarURL    *string         `json:"avatar_url,omitempty"`
	IsCreator    *bool           `json:"is_creator,omitempty"`
	PrimaryGenre *string         `json:"primary_genre,omitempty"`
	SocialLinks  json.RawMessage `json:"social_links,omitempty"`
}

// ToPatch maps the DTO onto a store patch. The password is handled
// separately by the service, which hashes it first.
func (d UpdateUserDTO) ToPatch() models.UserPatch {
	return models.UserPatch{
		Username:     d.Username,
		DisplayName:  d.DisplayName,
		Email:        d.Email,
		Bio:          d.Bio,
		AvatarURL:    d.AvatarURL,
		IsCreator:    d.IsCreator,
		PrimaryGenre: d.PrimaryGenre,
		SocialLinks:  d.SocialLinks,
	}
}

func FromUserModel(u models.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		DisplayName:  u.DisplayName,
		Email:        u.Email,
		Bio:          u.Bio,
		AvatarURL:    u.AvatarURL,
		IsCreator:    u.IsCreator,
		PrimaryGenre: u.PrimaryGenre,
		SocialLinks:  u.SocialLinks,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
