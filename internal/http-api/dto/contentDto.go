package dto

import "storyhive/internal/models"

// CreateContentDTO used for POST /api/content
type CreateContentDTO struct {
	Title         string   `json:"title" binding:"required"`
	Description   *string  `json:"description,omitempty"`
	CoverImageURL *string  `json:"cover_image_url,omitempty"`
	ContentType   string   `json:"content_type" binding:"required,oneof=webtoon novel art"`
	Genre         string   `json:"genre" binding:"required"`
	UserID        int64    `json:"user_id" binding:"required"`
	Status        string   `json:"status,omitempty" binding:"omitempty,oneof=draft published archived"`
	Tags          []string `json:"tags,omitempty"`
	IsFeature     bool     `json:"is_feature,omitempty"`
}

// UpdateContentDTO used for PATCH /api/content/:id (partial updates allowed)
type UpdateContentDTO struct {
	Title         *string  `json:"title,omitempty"`
	Description   *string  `json:"description,omitempty"`
	CoverImageURL *string  `json:"cover_image_url,omitempty"`
	ContentType   *string  `json:"content_type,omitempty" binding:"omitempty,oneof=webtoon novel art"`
	Genre         *string  `json:"genre,omitempty"`
	UserID        *int64   `json:"user_id,omitempty"`
	Status        *string  `json:"status,omitempty" binding:"omitempty,oneof=draft published archived"`
	Tags          *[]string `json:"tags,omitempty"`
	IsFeature     *bool    `json:"is_feature,omitempty"`
}

func (d CreateContentDTO) ToModel() models.Content {
	return models.Content{
		Title:         d.Title,
		Description:   d.Description,
		CoverImageURL: d.CoverImageURL,
		ContentType:   models.ContentType(d.ContentType),
		Genre:         d.Genre,
		UserID:        d.UserID,
		Status:        models.ContentStatus(d.Status),
		Tags:          d.Tags,
		IsFeature:     d.IsFeature,
	}
}

func (d UpdateContentDTO) ToPatch() models.ContentPatch {
	p := models.ContentPatch{
		Title:         d.Title,
		Description:   d.Description,
		CoverImageURL: d.CoverImageURL,
		Genre:         d.Genre,
		UserID:        d.UserID,
		Tags:          d.Tags,
		IsFeature:     d.IsFeature,
	}
	if d.ContentType != nil {
		ct := models.ContentType(*d.ContentType)
		p.ContentType = &ct
	}
	if d.Status != nil {
		st := models.ContentStatus(*d.Status)
		p.Status = &st
	}
	return p
}
