package models

import "time"

// Post represents a post owned by a user. UpdatedAt stays NULL until the
// first update, so automatic timestamping is disabled and the repository
// sets it explicitly.
type Post struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description *string    `gorm:"type:text" json:"description"`
	OwnerID     uint       `gorm:"not null;index" json:"owner_id"`
	Owner       User       `gorm:"foreignKey:OwnerID" json:"-"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Post) TableName() string {
	return "posts"
}

// PostResponse combines the relational post record with the current
// like/dislike counters from the overlay store.
type PostResponse struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Likes       int64      `json:"likes"`
	Dislikes    int64      `json:"dislikes"`
	Owner       uint       `json:"owner"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// NewPostResponse assembles the external representation of a post from the
// relational record and its counters. Pure mapping, no side effects.
func NewPostResponse(post *Post, likes, dislikes int64) PostResponse {
	return PostResponse{
		ID:          post.ID,
		Title:       post.Title,
		Description: post.Description,
		Likes:       likes,
		Dislikes:    dislikes,
		Owner:       post.OwnerID,
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
	}
}
