package models

import "time"

type ContentType string

const (
	ContentTypeWebtoon ContentType = "webtoon"
	ContentTypeNovel   ContentType = "novel"
	ContentTypeArt     ContentType = "art"
)

type ContentStatus string

const (
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusPublished ContentStatus = "published"
	ContentStatusArchived  ContentStatus = "archived"
)

// Content is a top-level creative work (webtoon, novel or art piece)
// owned by a user. ViewCount and LikeCount are denormalized counters
// maintained by the store's interaction bookkeeping.
type Content struct {
	ID            int64         `json:"id"`
	Title         string        `json:"title"`
	Description   *string       `json:"description,omitempty"`
	CoverImageURL *string       `json:"cover_image_url,omitempty"`
	ContentType   ContentType   `json:"content_type"`
	Genre         string        `json:"genre"`
	UserID        int64         `json:"user_id"`
	Status        ContentStatus `json:"status"`
	ViewCount     int           `json:"view_count"`
	LikeCount     int           `json:"like_count"`
	Tags          []string      `json:"tags"`
	IsFeature     bool          `json:"is_feature"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// ContentPatch deliberately excludes the counters; those move only
// through interaction create/delete.
type ContentPatch struct {
	Title         *string
	Description   *string
	CoverImageURL *string
	ContentType   *ContentType
	Genre         *string
	UserID        *int64
	Status        *ContentStatus
	Tags          *[]string
	IsFeature     *bool
}

func (p ContentPatch) Apply(c *Content) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Description != nil {
		c.Description = p.Description
	}
	if p.CoverImageURL != nil {
		c.CoverImageURL = p.CoverImageURL
	}
	if p.ContentType != nil {
		c.ContentType = *p.ContentType
	}
	if p.Genre != nil {
		c.Genre = *p.Genre
	}
	if p.UserID != nil {
		c.UserID = *p.UserID
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Tags != nil {
		c.Tags = *p.Tags
	}
	if p.IsFeature != nil {
		c.IsFeature = *p.IsFeature
	}
}
