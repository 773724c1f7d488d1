package dto

import "storyhive/internal/models"

// CreateCommentDTO used for POST /api/comments
type CreateCommentDTO struct {
	UserID          int64  `json:"user_id" binding:"required"`
	ContentID       *int64 `json:"content_id,omitempty"`
	EpisodeID       *int64 `json:"episode_id,omitempty"`
	ParentCommentID *int64 `json:"parent_comment_id,omitempty"`
	Text            string `json:"text" binding:"required"`
}

// UpdateCommentDTO used for PATCH /api/comments/:id; only the text is
// editable.
type UpdateCommentDTO struct {
	Text string `json:"text" binding:"required"`
}

func (d CreateCommentDTO) ToModel() models.Comment {
	return models.Comment{
		UserID:          d.UserID,
		ContentID:       d.ContentID,
		EpisodeID:       d.EpisodeID,
		ParentCommentID: d.ParentCommentID,
		Text:            d.Text,
	}
}
