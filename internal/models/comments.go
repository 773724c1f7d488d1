package models

import "time"

// Comment targets a content or an episode. ParentCommentID links
// replies into a tree; deleting a comment takes its subtree with it.
type Comment struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	ContentID       *int64    `json:"content_id,omitempty"`
	EpisodeID       *int64    `json:"episode_id,omitempty"`
	ParentCommentID *int64    `json:"parent_comment_id,omitempty"`
	Text            string    `json:"text"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
