package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog represents a blog post stored in MongoDB.
//
// Reaction state for a (blog, user) pair is encoded purely by membership in
// the Likes/Dislikes sets. A user id never appears in both sets at once; the
// reaction engine removes from the opposite set on every vote.
type Blog struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	SubTitle    string             `json:"sub_title,omitempty" bson:"sub_title,omitempty"`
	Description string             `json:"description" bson:"description"`
	Category    string             `json:"category" bson:"category"`
	Image       string             `json:"image" bson:"image"` // cover image URL in object storage
	IsPublished bool               `json:"is_published" bson:"is_published"`
	Likes       []string           `json:"likes" bson:"likes"`       // user ids currently liking the blog
	Dislikes    []string           `json:"dislikes" bson:"dislikes"` // user ids currently disliking the blog
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// CreateBlogRequest defines the JSON carried in the "blog" form-data field
// when creating a new blog with a cover image
type CreateBlogRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	SubTitle    string `json:"sub_title,omitempty" validate:"omitempty,max=300"`
	Description string `json:"description" validate:"required,min=1"`
	Category    string `json:"category" validate:"required,min=1,max=50"`
	IsPublished bool   `json:"is_published"`
}

// GenerateContentRequest defines the request body for AI draft generation
type GenerateContentRequest struct {
	Prompt string `json:"prompt" validate:"required,min=1,max=500"`
}
