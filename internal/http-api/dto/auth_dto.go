package dto

import "encoding/json"

// Data Transfer Objects for authentication requests and responses

// RegisterRequest: payload for user registration
type RegisterRequest struct {
	Username     string  `json:"username" binding:"required,min=3,max=50"`
	Password     string  `json:"password" binding:"required,min=8"`
	Email        string  `json:"email" binding:"required,email"`
	DisplayName  *string `json:"display_name,omitempty"`
	Bio          *string `json:"bio,omitempty"`
	AvatarURL    *string `json:"avatar_url,omitempty"`
	IsCreator    bool    `json:"is_creator,omitempty"`
	PrimaryGenre *string `json:"primary_genre,omitempty"`
	SocialLinks  json.RawMessage `json:"social_links,omitempty"`
}

// LoginRequest: payload for user login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
