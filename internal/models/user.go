package models

import "time"

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"uniqueIndex"` // Ensure email is unique across all users
	Image     *string   `json:"image,omitempty"`          // Avatar URL
	Bio       *string   `json:"bio,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateUserRequest struct {
	Name  string  `json:"name" validate:"required,min=2,max=50"`
	Email string  `json:"email" validate:"required,email"`
	Image *string `json:"image,omitempty" validate:"omitempty,url"`
	Bio   *string `json:"bio,omitempty" validate:"omitempty,max=160"`
}

// UserCompact is the embedded author shape used inside views
type UserCompact struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Image *string `json:"image,omitempty"`
}

// ToCompact converts a User to its compact representation
func (u *User) ToCompact() UserCompact {
	return UserCompact{
		ID:    u.ID,
		Name:  u.Name,
		Image: u.Image,
	}
}
