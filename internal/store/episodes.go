package store

import (
	"sort"

	"storyhive/internal/models"
)

func (s *Store) GetEpisode(id int64) (models.Episode, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.episodes[id]
	return e, ok
}

// EpisodesByContentID lists a content's episodes ordered by episode
// number, insertion order on ties.
func (s *Store) EpisodesByContentID(contentID int64) []models.Episode {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.episodesByContentLocked(contentID)
}

func (s *Store) episodesByContentLocked(contentID int64) []models.Episode {
	list := make([]models.Episode, 0)
	for _, id := range sortedKeys(s.episodes) {
		if e := s.episodes[id]; e.ContentID == contentID {
			list = append(list, e)
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].EpisodeNumber < list[j].EpisodeNumber
	})
	return list
}

func (s *Store) CreateEpisode(e models.Episode) models.Episode {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextEpisodeID++
	e.ID = s.nextEpisodeID
	ts := now()
	e.CreatedAt = ts
	e.UpdatedAt = ts
	e.ViewCount = 0
	e.LikeCount = 0
	s.episodes[e.ID] = e
	return e
}

func (s *Store) UpdateEpisode(id int64, p models.EpisodePatch) (models.Episode, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.episodes[id]
	if !ok {
		return models.Episode{}, false
	}
	p.Apply(&e)
	e.UpdatedAt = now()
	s.episodes[id] = e
	return e, true
}

// DeleteEpisode removes the episode's interactions and comments before
// the episode itself.
func (s *Store) DeleteEpisode(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.deleteEpisodeLocked(id)
}

func (s *Store) deleteEpisodeLocked(id int64) bool {
	for _, iid := range sortedKeys(s.interactions) {
		if in := s.interactions[iid]; in.EpisodeID != nil && *in.EpisodeID == id {
			delete(s.interactions, iid)
		}
	}
	for _, cid := range sortedKeys(s.comments) {
		if cm := s.comments[cid]; cm.EpisodeID != nil && *cm.EpisodeID == id {
			delete(s.comments, cid)
		}
	}
	if _, ok := s.episodes[id]; !ok {
		return false
	}
	delete(s.episodes, id)
	return true
}
