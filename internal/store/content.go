package store

import (
	"sort"
	"strings"

	"storyhive/internal/models"
)

func (s *Store) GetContent(id int64) (models.Content, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.content[id]
	return c, ok
}

// ListContent returns every content record in insertion order.
func (s *Store) ListContent() []models.Content {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterContentLocked(func(models.Content) bool { return true })
}

func (s *Store) ContentByUserID(userID int64) []models.Content {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterContentLocked(func(c models.Content) bool { return c.UserID == userID })
}

func (s *Store) ContentByGenre(genre string) []models.Content {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterContentLocked(func(c models.Content) bool { return c.Genre == genre })
}

// TrendingContent ranks by viewCount + 2*likeCount, likes weighted
// double. The sort is stable, so equal scores keep insertion order.
func (s *Store) TrendingContent(limit int) []models.Content {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.filterContentLocked(func(models.Content) bool { return true })
	sort.SliceStable(list, func(i, j int) bool {
		return trendingScore(list[i]) > trendingScore(list[j])
	})
	if limit >= 0 && len(list) > limit {
		list = list[:limit]
	}
	return list
}

func trendingScore(c models.Content) int {
	return c.ViewCount + 2*c.LikeCount
}

// SearchContent matches the query case-insensitively against the title
// or the description. A nil description simply never matches.
func (s *Store) SearchContent(query string) []models.Content {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	return s.filterContentLocked(func(c models.Content) bool {
		if strings.Contains(strings.ToLower(c.Title), q) {
			return true
		}
		return c.Description != nil && strings.Contains(strings.ToLower(*c.Description), q)
	})
}

func (s *Store) filterContentLocked(match func(models.Content) bool) []models.Content {
	list := make([]models.Content, 0)
	for _, id := range sortedKeys(s.content) {
		if c := s.content[id]; match(c) {
			list = append(list, c)
		}
	}
	return list
}

func (s *Store) CreateContent(c models.Content) models.Content {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextContentID++
	c.ID = s.nextContentID
	ts := now()
	c.CreatedAt = ts
	c.UpdatedAt = ts
	c.ViewCount = 0
	c.LikeCount = 0
	if c.Status == "" {
		c.Status = models.ContentStatusDraft
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}
	s.content[c.ID] = c
	return c
}

func (s *Store) UpdateContent(id int64, p models.ContentPatch) (models.Content, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.content[id]
	if !ok {
		return models.Content{}, false
	}
	p.Apply(&c)
	c.UpdatedAt = now()
	s.content[id] = c
	return c, true
}

// DeleteContent cascades: each episode goes through the episode
// cascade first, then interactions and comments referencing the
// content directly, then the content row itself.
func (s *Store) DeleteContent(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.episodesByContentLocked(id) {
		s.deleteEpisodeLocked(e.ID)
	}
	for _, iid := range sortedKeys(s.interactions) {
		if in := s.interactions[iid]; in.ContentID != nil && *in.ContentID == id {
			delete(s.interactions, iid)
		}
	}
	for _, cid := range sortedKeys(s.comments) {
		if cm := s.comments[cid]; cm.ContentID != nil && *cm.ContentID == id {
			delete(s.comments, cid)
		}
	}
	if _, ok := s.content[id]; !ok {
		return false
	}
	delete(s.content, id)
	return true
}
