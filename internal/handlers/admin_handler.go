package handlers

import (
	"errors"
	"net/http"

	"github.com/arnobk/quillbase/backend/internal/repositories"
	"github.com/arnobk/quillbase/backend/pkg/metrics"
	"github.com/labstack/echo/v4"
)

// AdminHandler handles the moderation surface. Approval here is the only path
// that ever flips a comment's approved flag.
type AdminHandler struct {
	commentRepository repositories.CommentRepository
	blogRepository    repositories.BlogRepository
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(commentRepo repositories.CommentRepository, blogRepo repositories.BlogRepository) *AdminHandler {
	return &AdminHandler{
		commentRepository: commentRepo,
		blogRepository:    blogRepo,
	}
}

// RegisterAdminRoutes registers moderation routes on an authenticated group
func (h *AdminHandler) RegisterAdminRoutes(g *echo.Group) {
	g.GET("/admin/comments", h.GetAllComments)
	g.POST("/admin/comments/:id/approve", h.ApproveComment)
	g.DELETE("/admin/comments/:id", h.DeleteComment)
	g.GET("/admin/blogs", h.GetAllBlogs)
	g.GET("/admin/dashboard", h.GetDashboard)
}

// GetAllComments retrieves every comment, pending ones included
func (h *AdminHandler) GetAllComments(c echo.Context) error {
	comments, err := h.commentRepository.GetAllComments(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"comments": comments,
	})
}

// ApproveComment releases a pending comment into the public listing
func (h *AdminHandler) ApproveComment(c echo.Context) error {
	if err := h.commentRepository.ApproveComment(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	metrics.CommentsApproved.Inc()

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Comment approved successfully",
	})
}

// DeleteComment removes a comment outright
func (h *AdminHandler) DeleteComment(c echo.Context) error {
	if err := h.commentRepository.DeleteComment(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Comment deleted successfully",
	})
}

// GetAllBlogs retrieves every blog, drafts included
func (h *AdminHandler) GetAllBlogs(c echo.Context) error {
	blogs, err := h.blogRepository.GetAllBlogs(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"blogs":   blogs,
	})
}

// GetDashboard returns headline counts and the most recent blogs
func (h *AdminHandler) GetDashboard(c echo.Context) error {
	ctx := c.Request().Context()

	blogCount, err := h.blogRepository.CountBlogs(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	commentCount, err := h.commentRepository.CountComments(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	draftCount, err := h.blogRepository.CountDrafts(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	recentBlogs, err := h.blogRepository.GetRecentBlogs(ctx, 5)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"dashboard": echo.Map{
			"blogs":        blogCount,
			"comments":     commentCount,
			"drafts":       draftCount,
			"recent_blogs": recentBlogs,
		},
	})
}
