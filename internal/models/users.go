package models

import (
	"encoding/json"
	"time"
)

type User struct {
	ID           int64           `json:"id"`
	Username     string          `json:"username"`
	PasswordHash string          `json:"-"`
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

// UserPatch is the allow-list of fields a user update may touch.
// Nil means "leave unchanged".
type UserPatch struct {
	Username     *string
	PasswordHash *string
	DisplayName  *string
	Email        *string
	Bio          *string
	AvatarURL    *string
	IsCreator    *bool
	PrimaryGenre *string
	SocialLinks  json.RawMessage
}

func (p UserPatch) Apply(u *User) {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.PasswordHash != nil {
		u.PasswordHash = *p.PasswordHash
	}
	if p.DisplayName != nil {
		u.DisplayName = p.DisplayName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Bio != nil {
		u.Bio = p.Bio
	}
	if p.AvatarURL != nil {
		u.AvatarURL = p.AvatarURL
	}
	if p.IsCreator != nil {
		u.IsCreator = *p.IsCreator
	}
	if p.PrimaryGenre != nil {
		u.PrimaryGenre = p.PrimaryGenre
	}
	if p.SocialLinks != nil {
		u.SocialLinks = p.SocialLinks
	}
}
