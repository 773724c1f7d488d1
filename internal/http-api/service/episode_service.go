package service

import (
	"storyhive/internal/models"
	"storyhive/internal/store"
)

type EpisodeService interface {
	GetByID(id int64) (models.Episode, bool)
	ByContentID(contentID int64) []models.Episode
	Create(e models.Episode) models.Episode
	Update(id int64, p models.EpisodePatch) (models.Episode, bool)
	Delete(id int64) bool
}

type episodeService struct {
	store *store.Store
}

func NewEpisodeService(s *store.Store) EpisodeService {
	return &episodeService{store: s}
}

func (s *episodeService) GetByID(id int64) (models.Episode, bool) {
	return s.store.GetEpisode(id)
}

func (s *episodeService) ByContentID(contentID int64) []models.Episode {
	return s.store.EpisodesByContentID(contentID)
}

func (s *episodeService) Create(e models.Episode) models.Episode {
	return s.store.CreateEpisode(e)
}

func (s *episodeService) Update(id int64, p models.EpisodePatch) (models.Episode, bool) {
	return s.store.UpdateEpisode(id, p)
}

func (s *episodeService) Delete(id int64) bool {
	return s.store.DeleteEpisode(id)
}
