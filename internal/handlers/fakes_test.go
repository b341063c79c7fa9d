package handlers

import (
	"context"
	"sort"
	"time"

	"github.com/arnobk/quillbase/backend/internal/models"
	"github.com/arnobk/quillbase/backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeBlogRepository keeps blogs in a map, keyed by hex id
type fakeBlogRepository struct {
	blogs map[string]*models.Blog
}

func newFakeBlogRepository() *fakeBlogRepository {
	return &fakeBlogRepository{blogs: make(map[string]*models.Blog)}
}

func (f *fakeBlogRepository) add(blog *models.Blog) string {
	if blog.ID.IsZero() {
		blog.ID = primitive.NewObjectID()
	}
	if blog.Likes == nil {
		blog.Likes = []string{}
	}
	if blog.Dislikes == nil {
		blog.Dislikes = []string{}
	}
	f.blogs[blog.ID.Hex()] = blog
	return blog.ID.Hex()
}

func (f *fakeBlogRepository) CreateBlog(_ context.Context, blog *models.Blog) error {
	blog.CreatedAt = time.Now()
	blog.UpdatedAt = time.Now()
	f.add(blog)
	return nil
}

func (f *fakeBlogRepository) GetBlogByID(_ context.Context, id string) (*models.Blog, error) {
	blog, ok := f.blogs[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *blog
	return &copied, nil
}

func (f *fakeBlogRepository) GetPublishedBlogs(_ context.Context) ([]models.Blog, error) {
	var out []models.Blog
	for _, b := range f.blogs {
		if b.IsPublished {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBlogRepository) GetAllBlogs(_ context.Context) ([]models.Blog, error) {
	var out []models.Blog
	for _, b := range f.blogs {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBlogRepository) GetRecentBlogs(_ context.Context, limit int64) ([]models.Blog, error) {
	out, _ := f.GetAllBlogs(context.Background())
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeBlogRepository) UpdateReactions(_ context.Context, id string, likes, dislikes []string) error {
	blog, ok := f.blogs[id]
	if !ok {
		return repositories.ErrNotFound
	}
	blog.Likes = likes
	blog.Dislikes = dislikes
	return nil
}

func (f *fakeBlogRepository) SetPublished(_ context.Context, id string, published bool) error {
	blog, ok := f.blogs[id]
	if !ok {
		return repositories.ErrNotFound
	}
	blog.IsPublished = published
	return nil
}

func (f *fakeBlogRepository) DeleteBlog(_ context.Context, id string) error {
	if _, ok := f.blogs[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.blogs, id)
	return nil
}

func (f *fakeBlogRepository) CountBlogs(_ context.Context) (int64, error) {
	return int64(len(f.blogs)), nil
}

func (f *fakeBlogRepository) CountDrafts(_ context.Context) (int64, error) {
	var n int64
	for _, b := range f.blogs {
		if !b.IsPublished {
			n++
		}
	}
	return n, nil
}

// fakeCommentRepository keeps comments in a slice
type fakeCommentRepository struct {
	comments []*models.Comment
}

func newFakeCommentRepository() *fakeCommentRepository {
	return &fakeCommentRepository{}
}

func (f *fakeCommentRepository) CreateComment(_ context.Context, comment *models.Comment) error {
	comment.ID = primitive.NewObjectID()
	comment.IsApproved = false
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	f.comments = append(f.comments, comment)
	return nil
}

func (f *fakeCommentRepository) GetApprovedByBlogID(_ context.Context, blogID string) ([]models.Comment, error) {
	out := []models.Comment{}
	for _, c := range f.comments {
		if c.BlogID.Hex() == blogID && c.IsApproved {
			out = append(out, *c)
		}
	}
	// newest first, id as the deterministic tie break
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.Hex() > out[j].ID.Hex()
	})
	return out, nil
}

func (f *fakeCommentRepository) GetAllComments(_ context.Context) ([]models.Comment, error) {
	out := []models.Comment{}
	for _, c := range f.comments {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCommentRepository) ApproveComment(_ context.Context, id string) error {
	for _, c := range f.comments {
		if c.ID.Hex() == id {
			c.IsApproved = true
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (f *fakeCommentRepository) DeleteComment(_ context.Context, id string) error {
	for i, c := range f.comments {
		if c.ID.Hex() == id {
			f.comments = append(f.comments[:i], f.comments[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (f *fakeCommentRepository) DeleteByBlogID(_ context.Context, blogID string) error {
	kept := f.comments[:0]
	for _, c := range f.comments {
		if c.BlogID.Hex() != blogID {
			kept = append(kept, c)
		}
	}
	f.comments = kept
	return nil
}

func (f *fakeCommentRepository) CountComments(_ context.Context) (int64, error) {
	return int64(len(f.comments)), nil
}
