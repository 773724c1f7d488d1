package store

import (
	"sort"

	"storyhive/internal/models"
)

func (s *Store) GetComment(id int64) (models.Comment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.comments[id]
	return c, ok
}

func (s *Store) CommentsByContentID(contentID int64) []models.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterCommentsLocked(func(c models.Comment) bool {
		return c.ContentID != nil && *c.ContentID == contentID
	})
}

func (s *Store) CommentsByEpisodeID(episodeID int64) []models.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterCommentsLocked(func(c models.Comment) bool {
		return c.EpisodeID != nil && *c.EpisodeID == episodeID
	})
}

// filterCommentsLocked returns matches most-recent first. Creation
// timestamps can collide within clock resolution, so ids break ties.
func (s *Store) filterCommentsLocked(match func(models.Comment) bool) []models.Comment {
	list := make([]models.Comment, 0)
	for _, id := range sortedKeys(s.comments) {
		if c := s.comments[id]; match(c) {
			list = append(list, c)
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID > list[j].ID
	})
	return list
}

func (s *Store) CreateComment(c models.Comment) models.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextCommentID++
	c.ID = s.nextCommentID
	ts := now()
	c.CreatedAt = ts
	c.UpdatedAt = ts
	s.comments[c.ID] = c
	return c
}

func (s *Store) UpdateCommentText(id int64, text string) (models.Comment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[id]
	if !ok {
		return models.Comment{}, false
	}
	c.Text = text
	c.UpdatedAt = now()
	s.comments[id] = c
	return c, true
}

// DeleteComment removes the comment and, depth-first, every reply
// under it. The tree is acyclic by construction (a parent must exist
// before a reply can point at it), so the recursion terminates.
func (s *Store) DeleteComment(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.deleteCommentLocked(id)
}

func (s *Store) deleteCommentLocked(id int64) bool {
	for _, cid := range sortedKeys(s.comments) {
		if c := s.comments[cid]; c.ParentCommentID != nil && *c.ParentCommentID == id {
			s.deleteCommentLocked(cid)
		}
	}
	if _, ok := s.comments[id]; !ok {
		return false
	}
	delete(s.comments, id)
	return true
}
