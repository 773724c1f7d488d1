package dto

import "storyhive/internal/models"

// CreateInteractionDTO used for POST /api/interactions. ContentID and
// EpisodeID are both optional; the store resolves which one the
// counters follow.
type CreateInteractionDTO struct {
	UserID          int64  `json:"user_id" binding:"required"`
	ContentID       *int64 `json:"content_id,omitempty"`
	EpisodeID       *int64 `json:"episode_id,omitempty"`
	InteractionType string `json:"interaction_type" binding:"required,oneof=like bookmark view"`
}

func (d CreateInteractionDTO) ToModel() models.Interaction {
	return models.Interaction{
		UserID:          d.UserID,
		ContentID:       d.ContentID,
		EpisodeID:       d.EpisodeID,
		InteractionType: models.InteractionType(d.InteractionType),
	}
}
