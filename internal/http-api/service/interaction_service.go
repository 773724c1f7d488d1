package service

import (
	"storyhive/internal/models"
	"storyhive/internal/store"
)

type InteractionService interface {
	// Create returns the stored interaction and whether it was newly
	// created. A duplicate (user, content, episode, type) tuple yields
	// the existing record and false.
	Create(in models.Interaction) (models.Interaction, bool)
	Delete(id int64) bool
	CountByContent(contentID int64, t models.InteractionType) int
	CountByEpisode(episodeID int64, t models.InteractionType) int
}

type interactionService struct {
	store *store.Store
}

func NewInteractionService(s *store.Store) InteractionService {
	return &interactionService{store: s}
}

func (s *interactionService) Create(in models.Interaction) (models.Interaction, bool) {
	return s.store.CreateInteraction(in)
}

func (s *interactionService) Delete(id int64) bool {
	return s.store.DeleteInteraction(id)
}

func (s *interactionService) CountByContent(contentID int64, t models.InteractionType) int {
	return s.store.InteractionCountByContent(contentID, t)
}

func (s *interactionService) CountByEpisode(episodeID int64, t models.InteractionType) int {
	return s.store.InteractionCountByEpisode(episodeID, t)
}
