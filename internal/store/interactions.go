package store

import "storyhive/internal/models"

func (s *Store) GetInteraction(id int64) (models.Interaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	in, ok := s.interactions[id]
	return in, ok
}

// CreateInteraction is idempotent per (user, content, episode, type)
// tuple: if a matching record exists it is returned with created=false
// and no counter moves. On genuine creation a "like" bumps the
// target's likeCount and a "view" its viewCount. When both targets are
// set the content wins and the episode id is ignored; callers depend
// on that precedence.
func (s *Store) CreateInteraction(in models.Interaction) (models.Interaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range sortedKeys(s.interactions) {
		if existing := s.interactions[id]; sameTuple(existing, in) {
			return existing, false
		}
	}

	s.nextInteractionID++
	in.ID = s.nextInteractionID
	in.CreatedAt = now()
	s.interactions[in.ID] = in

	switch in.InteractionType {
	case models.InteractionLike:
		s.adjustCountersLocked(in, func(likes, views int) (int, int) { return likes + 1, views })
	case models.InteractionView:
		s.adjustCountersLocked(in, func(likes, views int) (int, int) { return likes, views + 1 })
	}
	return in, true
}

// DeleteInteraction undoes a like's counter contribution, clamped at
// zero. Views are intentionally not decremented; a view happened even
// if the record is gone.
func (s *Store) DeleteInteraction(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	in, ok := s.interactions[id]
	if !ok {
		return false
	}
	if in.InteractionType == models.InteractionLike {
		s.adjustCountersLocked(in, func(likes, views int) (int, int) {
			if likes > 0 {
				likes--
			}
			return likes, views
		})
	}
	delete(s.interactions, id)
	return true
}

func (s *Store) InteractionCountByContent(contentID int64, t models.InteractionType) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, in := range s.interactions {
		if in.ContentID != nil && *in.ContentID == contentID && in.InteractionType == t {
			n++
		}
	}
	return n
}

func (s *Store) InteractionCountByEpisode(episodeID int64, t models.InteractionType) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, in := range s.interactions {
		if in.EpisodeID != nil && *in.EpisodeID == episodeID && in.InteractionType == t {
			n++
		}
	}
	return n
}

// adjustCountersLocked applies adjust to the interaction's target,
// content first, episode only as fallback.
func (s *Store) adjustCountersLocked(in models.Interaction, adjust func(likes, views int) (int, int)) {
	if in.ContentID != nil {
		if c, ok := s.content[*in.ContentID]; ok {
			c.LikeCount, c.ViewCount = adjust(c.LikeCount, c.ViewCount)
			c.UpdatedAt = now()
			s.content[c.ID] = c
		}
		return
	}
	if in.EpisodeID != nil {
		if e, ok := s.episodes[*in.EpisodeID]; ok {
			e.LikeCount, e.ViewCount = adjust(e.LikeCount, e.ViewCount)
			e.UpdatedAt = now()
			s.episodes[e.ID] = e
		}
	}
}

func sameTuple(a, b models.Interaction) bool {
	return a.UserID == b.UserID &&
		a.InteractionType == b.InteractionType &&
		sameRef(a.ContentID, b.ContentID) &&
		sameRef(a.EpisodeID, b.EpisodeID)
}

func sameRef(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
