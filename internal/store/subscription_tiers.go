package store

import "storyhive/internal/models"

func (s *Store) GetSubscriptionTier(id int64) (models.SubscriptionTier, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tiers[id]
	return t, ok
}

func (s *Store) SubscriptionTiersByUserID(userID int64) []models.SubscriptionTier {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]models.SubscriptionTier, 0)
	for _, id := range sortedKeys(s.tiers) {
		if t := s.tiers[id]; t.UserID == userID {
			list = append(list, t)
		}
	}
	return list
}

func (s *Store) CreateSubscriptionTier(t models.SubscriptionTier) models.SubscriptionTier {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextTierID++
	t.ID = s.nextTierID
	ts := now()
	t.CreatedAt = ts
	t.UpdatedAt = ts
	if t.Benefits == nil {
		t.Benefits = []string{}
	}
	s.tiers[t.ID] = t
	return t
}

func (s *Store) UpdateSubscriptionTier(id int64, p models.SubscriptionTierPatch) (models.SubscriptionTier, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tiers[id]
	if !ok {
		return models.SubscriptionTier{}, false
	}
	p.Apply(&t)
	t.UpdatedAt = now()
	s.tiers[id] = t
	return t, true
}

func (s *Store) DeleteSubscriptionTier(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tiers[id]; !ok {
		return false
	}
	delete(s.tiers, id)
	return true
}
