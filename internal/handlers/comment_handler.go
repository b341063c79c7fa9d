package handlers

import (
	"errors"
	"net/http"

	"github.com/arnobk/quillbase/backend/internal/models"
	"github.com/arnobk/quillbase/backend/internal/repositories"
	"github.com/arnobk/quillbase/backend/pkg/metrics"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles the public comment surface. Submitted comments land
// in a pending state and stay invisible until an admin approves them.
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	blogRepository    repositories.BlogRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, blogRepo repositories.BlogRepository) *CommentHandler {
	return &CommentHandler{
		commentRepository: commentRepo,
		blogRepository:    blogRepo,
	}
}

// RegisterCommentRoutes registers public comment routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/blogs/:id/comments", h.SubmitComment)
	g.GET("/blogs/:id/comments", h.GetApprovedComments)
}

// SubmitComment creates a new pending comment on a blog. The response carries
// a confirmation message only, never the comment itself, since nothing is
// publicly visible until moderation approves it.
func (h *CommentHandler) SubmitComment(c echo.Context) error {
	blogID := c.Param("id")

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Verify the blog exists before creating anything
	blog, err := h.blogRepository.GetBlogByID(c.Request().Context(), blogID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Blog not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	comment := &models.Comment{
		BlogID:  blog.ID,
		Name:    req.Name,
		Content: req.Content,
	}

	if err := h.commentRepository.CreateComment(c.Request().Context(), comment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	metrics.CommentsSubmitted.Inc()

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Comment added for review",
	})
}

// GetApprovedComments retrieves the approved comments of a blog, newest first
func (h *CommentHandler) GetApprovedComments(c echo.Context) error {
	blogID := c.Param("id")

	_, err := h.blogRepository.GetBlogByID(c.Request().Context(), blogID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Blog not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	comments, err := h.commentRepository.GetApprovedByBlogID(c.Request().Context(), blogID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"comments": comments,
	})
}
