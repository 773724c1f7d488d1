package service

import (
	"strings"

	"storyhive/internal/models"
	"storyhive/internal/store"
)

type ContentService interface {
	GetByID(id int64) (models.Content, bool)
	List() []models.Content
	ByGenre(genre string) []models.Content
	ByUserID(userID int64) []models.Content
	Search(query string) []models.Content
	Trending(limit int) []models.Content
	Create(c models.Content) models.Content
	Update(id int64, p models.ContentPatch) (models.Content, bool)
	Delete(id int64) bool
}

type contentService struct {
	store *store.Store
}

func NewContentService(s *store.Store) ContentService {
	return &contentService{store: s}
}

func (s *contentService) GetByID(id int64) (models.Content, bool) {
	return s.store.GetContent(id)
}

func (s *contentService) List() []models.Content {
	return s.store.ListContent()
}

func (s *contentService) ByGenre(genre string) []models.Content {
	return s.store.ContentByGenre(genre)
}

func (s *contentService) ByUserID(userID int64) []models.Content {
	return s.store.ContentByUserID(userID)
}

func (s *contentService) Search(query string) []models.Content {
	return s.store.SearchContent(query)
}

func (s *contentService) Trending(limit int) []models.Content {
	return s.store.TrendingContent(limit)
}

func (s *contentService) Create(c models.Content) models.Content {
	c.Title = strings.TrimSpace(c.Title)
	return s.store.CreateContent(c)
}

func (s *contentService) Update(id int64, p models.ContentPatch) (models.Content, bool) {
	return s.store.UpdateContent(id, p)
}

// Delete cascades to episodes, interactions and comments; the store
// owns that ordering.
func (s *contentService) Delete(id int64) bool {
	return s.store.DeleteContent(id)
}
