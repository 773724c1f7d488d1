package dto

import (
	"encoding/json"

	"storyhive/internal/models"
)

// CreateEpisodeDTO used for POST /api/episodes
type CreateEpisodeDTO struct {
	ContentID     int64           `json:"content_id" binding:"required"`
	Title         string          `json:"title" binding:"required"`
	EpisodeNumber int             `json:"episode_number" binding:"required"`
	ContentData   json.RawMessage `json:"content_data" binding:"required"`
	IsPremium     bool            `json:"is_premium,omitempty"`
}

// UpdateEpisodeDTO used for PATCH /api/episodes/:id (partial updates allowed)
type UpdateEpisodeDTO struct {
	ContentID     *int64          `json:"content_id,omitempty"`
	Title         *string         `json:"title,omitempty"`
	EpisodeNumber *int            `json:"episode_number,omitempty"`
	ContentData   json.RawMessage `json:"content_data,omitempty"`
	IsPremium     *bool           `json:"is_premium,omitempty"`
}

func (d CreateEpisodeDTO) ToModel() models.Episode {
	return models.Episode{
		ContentID:     d.ContentID,
		Title:         d.Title,
		EpisodeNumber: d.EpisodeNumber,
		ContentData:   d.ContentData,
		IsPremium:     d.IsPremium,
	}
}

func (d UpdateEpisodeDTO) ToPatch() models.EpisodePatch {
	return models.EpisodePatch{
		ContentID:     d.ContentID,
		Title:         d.Title,
		EpisodeNumber: d.EpisodeNumber,
		ContentData:   d.ContentData,
		IsPremium:     d.IsPremium,
	}
}
