package store_test

import (
	"storyhive/internal/models"
	"storyhive/internal/store"
)

func i64(v int64) *int64 { return &v }

func strptr(s string) *string { return &s }

func newUser(s *store.Store, username, email string) models.User {
	u, err := s.CreateUser(models.User{
		Username:     username,
		PasswordHash: "x",
		Email:        email,
	})
	if err != nil {
		panic(err)
	}
	return u
}

func newContent(s *store.Store, userID int64, title string) models.Content {
	return s.CreateContent(models.Content{
		Title:       title,
		ContentType: models.ContentTypeWebtoon,
		Genre:       "fantasy",
		UserID:      userID,
	})
}
