package store

import "storyhive/internal/models"

func (s *Store) GetUser(id int64) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	return u, ok
}

func (s *Store) GetUserByUsername(username string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.findUserLocked(func(u models.User) bool { return u.Username == username })
}

func (s *Store) GetUserByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.findUserLocked(func(u models.User) bool { return u.Email == email })
}

func (s *Store) findUserLocked(match func(models.User) bool) (models.User, bool) {
	for _, id := range sortedKeys(s.users) {
		if u := s.users[id]; match(u) {
			return u, true
		}
	}
	return models.User{}, false
}

// CreateUser assigns the id and timestamps and enforces username/email
// uniqueness. The check and the insert happen under one lock so two
// concurrent registrations cannot both claim the same name.
func (s *Store) CreateUser(u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.findUserLocked(func(o models.User) bool { return o.Username == u.Username }); taken {
		return models.User{}, ErrUsernameTaken
	}
	if _, taken := s.findUserLocked(func(o models.User) bool { return o.Email == u.Email }); taken {
		return models.User{}, ErrEmailTaken
	}

	s.nextUserID++
	u.ID = s.nextUserID
	ts := now()
	u.CreatedAt = ts
	u.UpdatedAt = ts
	s.users[u.ID] = u
	return u, nil
}

func (s *Store) UpdateUser(id int64, p models.UserPatch) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, false
	}
	p.Apply(&u)
	u.UpdatedAt = now()
	s.users[id] = u
	return u, true
}
