package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment represents a reader comment on a blog, stored in MongoDB.
// Comments are created pending review (IsApproved=false) and only become
// publicly visible once an admin approves them.
type Comment struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	BlogID     primitive.ObjectID `json:"blog_id" bson:"blog_id"`
	Name       string             `json:"name" bson:"name"` // display name of the commenter
	Content    string             `json:"content" bson:"content"`
	IsApproved bool               `json:"is_approved" bson:"is_approved"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
}

// CreateCommentRequest defines the request body for submitting a new comment
type CreateCommentRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Content string `json:"content" validate:"required,min=1,max=1000"`
}
