package models

import "time"

type InteractionType string

const (
	InteractionLike     InteractionType = "like"
	InteractionBookmark InteractionType = "bookmark"
	InteractionView     InteractionType = "view"
)

// Interaction records a user action against a content or an episode.
// At most one interaction exists per (user, content, episode, type)
// tuple; the store deduplicates on create.
type Interaction struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"user_id"`
	ContentID       *int64          `json:"content_id,omitempty"`
	EpisodeID       *int64          `json:"episode_id,omitempty"`
	InteractionType InteractionType `json:"interaction_type"`
	CreatedAt       time.Time       `json:"created_at"`
}
