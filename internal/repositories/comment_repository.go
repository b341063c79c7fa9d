package repositories

import (
	"context"
	"time"

	"github.com/arnobk/quillbase/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(ctx context.Context, comment *models.Comment) error
	GetApprovedByBlogID(ctx context.Context, blogID string) ([]models.Comment, error)
	GetAllComments(ctx context.Context) ([]models.Comment, error)
	ApproveComment(ctx context.Context, id string) error
	DeleteComment(ctx context.Context, id string) error
	DeleteByBlogID(ctx context.Context, blogID string) error
	CountComments(ctx context.Context) (int64, error)
}

// MongoCommentRepository implements CommentRepository for MongoDB
type MongoCommentRepository struct {
	collection *mongo.Collection
}

// NewMongoCommentRepository creates a new MongoCommentRepository
func NewMongoCommentRepository(db *mongo.Database) *MongoCommentRepository {
	return &MongoCommentRepository{collection: db.Collection("comments")}
}

// CreateComment inserts a new comment. Comments always start unapproved; the
// flag is only ever set through ApproveComment.
func (r *MongoCommentRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	comment.ID = primitive.NewObjectID()
	comment.IsApproved = false
	comment.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, comment)
	return err
}

// GetApprovedByBlogID retrieves approved comments for a blog, newest first.
// The secondary _id sort keeps equal timestamps in a deterministic order.
func (r *MongoCommentRepository) GetApprovedByBlogID(ctx context.Context, blogID string) ([]models.Comment, error) {
	objID, err := primitive.ObjectIDFromHex(blogID)
	if err != nil {
		return nil, ErrNotFound
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"blog_id": objID, "is_approved": true}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var comments []models.Comment
	if err = cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// GetAllComments retrieves every comment, pending ones included, newest first
func (r *MongoCommentRepository) GetAllComments(ctx context.Context) ([]models.Comment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var comments []models.Comment
	if err = cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// ApproveComment marks a comment as approved
func (r *MongoCommentRepository) ApproveComment(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"is_approved": true}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteComment deletes a comment by ID
func (r *MongoCommentRepository) DeleteComment(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByBlogID deletes all comments belonging to a blog, used when a blog
// is deleted so no orphan comments survive
func (r *MongoCommentRepository) DeleteByBlogID(ctx context.Context, blogID string) error {
	objID, err := primitive.ObjectIDFromHex(blogID)
	if err != nil {
		return ErrNotFound
	}
	_, err = r.collection.DeleteMany(ctx, bson.M{"blog_id": objID})
	return err
}

// CountComments counts all comments
func (r *MongoCommentRepository) CountComments(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
