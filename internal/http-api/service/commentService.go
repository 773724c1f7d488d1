package service

import (
	"storyhive/internal/models"
	"storyhive/internal/store"
)

type CommentService interface {
	GetByID(id int64) (models.Comment, bool)
	ByContentID(contentID int64) []models.Comment
	ByEpisodeID(episodeID int64) []models.Comment
	Create(c models.Comment) models.Comment
	UpdateText(id int64, text string) (models.Comment, bool)
	Delete(id int64) bool
}

type commentService struct {
	store *store.Store
}

func NewCommentService(s *store.Store) CommentService {
	return &commentService{store: s}
}

func (s *commentService) GetByID(id int64) (models.Comment, bool) {
	return s.store.GetComment(id)
}

func (s *commentService) ByContentID(contentID int64) []models.Comment {
	return s.store.CommentsByContentID(contentID)
}

func (s *commentService) ByEpisodeID(episodeID int64) []models.Comment {
	return s.store.CommentsByEpisodeID(episodeID)
}

func (s *commentService) Create(c models.Comment) models.Comment {
	return s.store.CreateComment(c)
}

func (s *commentService) UpdateText(id int64, text string) (models.Comment, bool) {
	return s.store.UpdateCommentText(id, text)
}

// Delete removes the whole reply subtree along with the comment.
func (s *commentService) Delete(id int64) bool {
	return s.store.DeleteComment(id)
}
