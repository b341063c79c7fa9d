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

// BlogRepository defines the interface for blog data operations
type BlogRepository interface {
	CreateBlog(ctx context.Context, blog *models.Blog) error
	GetBlogByID(ctx context.Context, id string) (*models.Blog, error)
	GetPublishedBlogs(ctx context.Context) ([]models.Blog, error)
	GetAllBlogs(ctx context.Context) ([]models.Blog, error)
	GetRecentBlogs(ctx context.Context, limit int64) ([]models.Blog, error)
	UpdateReactions(ctx context.Context, id string, likes, dislikes []string) error
	SetPublished(ctx context.Context, id string, published bool) error
	DeleteBlog(ctx context.Context, id string) error
	CountBlogs(ctx context.Context) (int64, error)
	CountDrafts(ctx context.Context) (int64, error)
}

// MongoBlogRepository implements BlogRepository for MongoDB
type MongoBlogRepository struct {
	collection *mongo.Collection
}

// NewMongoBlogRepository creates a new MongoBlogRepository
func NewMongoBlogRepository(db *mongo.Database) *MongoBlogRepository {
	return &MongoBlogRepository{collection: db.Collection("blogs")}
}

// CreateBlog creates a new blog in MongoDB
func (r *MongoBlogRepository) CreateBlog(ctx context.Context, blog *models.Blog) error {
	blog.ID = primitive.NewObjectID()
	blog.CreatedAt = time.Now()
	blog.UpdatedAt = time.Now()
	if blog.Likes == nil {
		blog.Likes = []string{}
	}
	if blog.Dislikes == nil {
		blog.Dislikes = []string{}
	}
	_, err := r.collection.InsertOne(ctx, blog)
	return err
}

// GetBlogByID retrieves a blog by ID from MongoDB
func (r *MongoBlogRepository) GetBlogByID(ctx context.Context, id string) (*models.Blog, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// malformed ids resolve to nothing, same as unknown ids
		return nil, ErrNotFound
	}

	var blog models.Blog
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&blog)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &blog, nil
}

// GetPublishedBlogs retrieves published blogs from MongoDB, newest first
func (r *MongoBlogRepository) GetPublishedBlogs(ctx context.Context) ([]models.Blog, error) {
	return r.find(ctx, bson.M{"is_published": true}, 0)
}

// GetAllBlogs retrieves all blogs, drafts included, newest first
func (r *MongoBlogRepository) GetAllBlogs(ctx context.Context) ([]models.Blog, error) {
	return r.find(ctx, bson.M{}, 0)
}

// GetRecentBlogs retrieves the most recently created blogs
func (r *MongoBlogRepository) GetRecentBlogs(ctx context.Context, limit int64) ([]models.Blog, error) {
	return r.find(ctx, bson.M{}, limit)
}

func (r *MongoBlogRepository) find(ctx context.Context, filter bson.M, limit int64) ([]models.Blog, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	if limit > 0 {
		findOptions.SetLimit(limit)
	}
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var blogs []models.Blog
	if err = cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

// UpdateReactions persists both reaction sets in one write so the
// likes/dislikes exclusivity can never be observed half applied.
func (r *MongoBlogRepository) UpdateReactions(ctx context.Context, id string, likes, dislikes []string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	update := bson.M{
		"$set": bson.M{
			"likes":      likes,
			"dislikes":   dislikes,
			"updated_at": time.Now(),
		},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetPublished flips the publish flag of a blog
func (r *MongoBlogRepository) SetPublished(ctx context.Context, id string, published bool) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	update := bson.M{"$set": bson.M{"is_published": published, "updated_at": time.Now()}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteBlog deletes a blog by ID from MongoDB
func (r *MongoBlogRepository) DeleteBlog(ctx context.Context, id string) error {
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

// CountBlogs counts all blogs
func (r *MongoBlogRepository) CountBlogs(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// CountDrafts counts unpublished blogs
func (r *MongoBlogRepository) CountDrafts(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"is_published": false})
}
