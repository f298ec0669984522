package models

import "time"

// Post represents a social media post
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AuthorID  uint      `json:"author_id" gorm:"index;not null"`
	Content   string    `json:"content"`
	Image     *string   `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	AuthorID uint    `json:"author_id" validate:"required"`
	Content  string  `json:"content" validate:"required,min=1,max=500"`
	Image    *string `json:"image,omitempty" validate:"omitempty,url"`
}
