package models

import "time"

// Follow is a (follower, following) edge, keyed by the ordered pair.
// Self-follow is not rejected here; existence of the edge is the whole state.
type Follow struct {
	FollowerID  uint      `json:"follower_id" gorm:"primaryKey;autoIncrement:false"`
	FollowingID uint      `json:"following_id" gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToggleFollowRequest defines the request body for toggling a follow
type ToggleFollowRequest struct {
	FollowerID  uint `json:"follower_id" validate:"required"`
	FollowingID uint `json:"following_id" validate:"required"`
}
