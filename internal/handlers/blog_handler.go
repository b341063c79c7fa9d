package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/arnobk/quillbase/backend/internal/models"
	"github.com/arnobk/quillbase/backend/internal/repositories"
	"github.com/arnobk/quillbase/backend/pkg/metrics"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ImageUploader stores a cover image and returns its public URL
type ImageUploader interface {
	Upload(ctx context.Context, filename, contentType string, data []byte) (string, error)
}

// ContentGenerator produces an AI blog draft for a prompt
type ContentGenerator interface {
	GenerateBlogContent(ctx context.Context, prompt string) (string, error)
}

// BlogHandler handles blog CRUD, publishing and draft generation
type BlogHandler struct {
	blogRepository    repositories.BlogRepository
	commentRepository repositories.CommentRepository
	images            ImageUploader
	generator         ContentGenerator
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(blogRepo repositories.BlogRepository, commentRepo repositories.CommentRepository, images ImageUploader, generator ContentGenerator) *BlogHandler {
	return &BlogHandler{
		blogRepository:    blogRepo,
		commentRepository: commentRepo,
		images:            images,
		generator:         generator,
	}
}

// RegisterPublicBlogRoutes registers routes readers can reach without a token
func (h *BlogHandler) RegisterPublicBlogRoutes(g *echo.Group) {
	g.GET("/blogs", h.GetPublishedBlogs)
	g.GET("/blogs/:id", h.GetBlogByID)
}

// RegisterBlogRoutes registers authoring routes on an authenticated group
func (h *BlogHandler) RegisterBlogRoutes(g *echo.Group) {
	g.POST("/blogs", h.CreateBlog)
	g.DELETE("/blogs/:id", h.DeleteBlog)
	g.POST("/blogs/:id/toggle-publish", h.TogglePublish)
	g.POST("/generate", h.GenerateContent)
}

// CreateBlog creates a new blog from multipart form data: a "blog" field
// holding the blog JSON and an "image" file for the cover.
func (h *BlogHandler) CreateBlog(c echo.Context) error {
	blogField := c.FormValue("blog")
	if blogField == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Blog data is missing in form-data")
	}

	var req models.CreateBlogRequest
	if err := json.Unmarshal([]byte(blogField), &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid JSON in blog field")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required field: image")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	imageURL, err := h.images.Upload(c.Request().Context(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to upload image")
	}

	blog := &models.Blog{
		Title:       req.Title,
		SubTitle:    req.SubTitle,
		Description: req.Description,
		Category:    req.Category,
		Image:       imageURL,
		IsPublished: req.IsPublished,
	}

	if err := h.blogRepository.CreateBlog(c.Request().Context(), blog); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	metrics.BlogsCreated.Inc()

	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "Blog added successfully",
	})
}

// GetPublishedBlogs retrieves all published blogs
func (h *BlogHandler) GetPublishedBlogs(c echo.Context) error {
	blogs, err := h.blogRepository.GetPublishedBlogs(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"blogs":   blogs,
	})
}

// GetBlogByID retrieves a single blog. A missing blog is a genuine 404, not a
// success response with an explanatory message.
func (h *BlogHandler) GetBlogByID(c echo.Context) error {
	blog, err := h.blogRepository.GetBlogByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Blog not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"blog":    blog,
	})
}

// DeleteBlog deletes a blog and cascades the delete to its comments
func (h *BlogHandler) DeleteBlog(c echo.Context) error {
	blogID := c.Param("id")

	if err := h.blogRepository.DeleteBlog(c.Request().Context(), blogID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Blog not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.commentRepository.DeleteByBlogID(c.Request().Context(), blogID); err != nil {
		log.Error().Err(err).Str("blog_id", blogID).Msg("failed to cascade comment delete")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Blog deleted successfully",
	})
}

// TogglePublish flips the publish flag of a blog
func (h *BlogHandler) TogglePublish(c echo.Context) error {
	blogID := c.Param("id")

	blog, err := h.blogRepository.GetBlogByID(c.Request().Context(), blogID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Blog not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.blogRepository.SetPublished(c.Request().Context(), blogID, !blog.IsPublished); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Blog status updated",
	})
}

// GenerateContent asks the AI collaborator for a draft on a topic
func (h *BlogHandler) GenerateContent(c echo.Context) error {
	var req models.GenerateContentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	content, err := h.generator.GenerateBlogContent(c.Request().Context(), req.Prompt)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"content": content,
	})
}
