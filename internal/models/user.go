// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a registered account. The email doubles as the token
// subject, so it is unique and stored exactly as submitted.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	Posts     []Post    `gorm:"foreignKey:OwnerID" json:"posts,omitempty"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}

// UserResponse is the external representation of a user.
type UserResponse struct {
	Email string `json:"email"`
}

// ToResponse maps a user to its external representation.
func (u *User) ToResponse() UserResponse {
	return UserResponse{Email: u.Email}
}
