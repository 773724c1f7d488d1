package models

import (
	"encoding/json"
	"time"
)

// Episode is a numbered installment of a Content. ContentData carries
// the episode payload (text, panel URLs, ...) and is opaque to the API.
type Episode struct {
	ID            int64           `json:"id"`
	ContentID     int64           `json:"content_id"`
	Title         string          `json:"title"`
	EpisodeNumber int             `json:"episode_number"`
	ContentData   json.RawMessage `json:"content_data"`
	ViewCount     int             `json:"view_count"`
	LikeCount     int             `json:"like_count"`
	IsPremium     bool            `json:"is_premium"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type EpisodePatch struct {
	ContentID     *int64
	Title         *string
	EpisodeNumber *int
	ContentData   json.RawMessage
	IsPremium     *bool
}

func (p EpisodePatch) Apply(e *Episode) {
	if p.ContentID != nil {
		e.ContentID = *p.ContentID
	}
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.EpisodeNumber != nil {
		e.EpisodeNumber = *p.EpisodeNumber
	}
	if p.ContentData != nil {
		e.ContentData = p.ContentData
	}
	if p.IsPremium != nil {
		e.IsPremium = *p.IsPremium
	}
}
