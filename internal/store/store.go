// Package store holds the whole platform state in memory: one map per
// entity type keyed by id, with monotonically increasing ids that are
// never reused. A single RWMutex serializes mutations so that cascade
// deletes and counter updates are never observed half-applied.
package store

import (
	"errors"
	"sort"
	"sync"
	"time"

	"storyhive/internal/models"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already registered")
)

type Store struct {
	mu sync.RWMutex

	users        map[int64]models.User
	content      map[int64]models.Content
	episodes     map[int64]models.Episode
	interactions map[int64]models.Interaction
	comments     map[int64]models.Comment
	tiers        map[int64]models.SubscriptionTier

	nextUserID        int64
	nextContentID     int64
	nextEpisodeID     int64
	nextInteractionID int64
	nextCommentID     int64
	nextTierID        int64
}

func New() *Store {
	return &Store{
		users:        make(map[int64]models.User),
		content:      make(map[int64]models.Content),
		episodes:     make(map[int64]models.Episode),
		interactions: make(map[int64]models.Interaction),
		comments:     make(map[int64]models.Comment),
		tiers:        make(map[int64]models.SubscriptionTier),
	}
}

func now() time.Time {
	return time.Now().UTC()
}

// sortedKeys returns a map's ids in ascending order. Ids are assigned
// monotonically and never reused, so ascending id order is insertion
// order; iterating this way keeps scans and tie-breaks deterministic.
func sortedKeys[V any](m map[int64]V) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
