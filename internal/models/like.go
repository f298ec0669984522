package models

import "time"

// Like is a (user, post) edge. The pair itself is the primary key, so the
// at-most-one-row-per-pair invariant holds in the schema and insert-if-absent
// is a single conflict-proof INSERT.
type Like struct {
	UserID    uint      `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	PostID    uint      `json:"post_id" gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt time.Time `json:"created_at"`
}

// ToggleLikeRequest defines the request body for toggling a like
type ToggleLikeRequest struct {
	UserID uint `json:"user_id" validate:"required"`
	PostID uint `json:"post_id" validate:"required"`
}
