package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/arnobk/quillbase/backend/internal/models"
	"github.com/arnobk/quillbase/backend/internal/reactions"
	"github.com/arnobk/quillbase/backend/internal/repositories"
	"github.com/arnobk/quillbase/backend/pkg/metrics"
	"github.com/labstack/echo/v4"
)

// ReactionHandler handles like/dislike votes on blogs.
//
// Reads and writes of the reaction sets go through a per-blog mutex so two
// votes on the same blog never interleave between fetch and persist.
type ReactionHandler struct {
	blogRepository repositories.BlogRepository
	locks          *reactions.KeyedMutex
}

// NewReactionHandler creates a new ReactionHandler
func NewReactionHandler(blogRepo repositories.BlogRepository) *ReactionHandler {
	return &ReactionHandler{
		blogRepository: blogRepo,
		locks:          reactions.NewKeyedMutex(),
	}
}

// RegisterReactionRoutes registers reaction routes on an authenticated group
func (h *ReactionHandler) RegisterReactionRoutes(g *echo.Group) {
	g.POST("/blogs/:id/like", h.LikeBlog)
	g.POST("/blogs/:id/dislike", h.DislikeBlog)
}

// LikeBlog casts or toggles a like vote
func (h *ReactionHandler) LikeBlog(c echo.Context) error {
	return h.react(c, reactions.Like)
}

// DislikeBlog casts or toggles a dislike vote
func (h *ReactionHandler) DislikeBlog(c echo.Context) error {
	return h.react(c, reactions.Dislike)
}

func (h *ReactionHandler) react(c echo.Context, intent reactions.Intent) error {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "No authenticated user")
	}
	userID := strconv.FormatUint(uint64(claims.UserID), 10)
	blogID := c.Param("id")

	unlock := h.locks.Lock(blogID)
	defer unlock()

	blog, err := h.blogRepository.GetBlogByID(c.Request().Context(), blogID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Blog not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	likes, dislikes, result := reactions.Apply(blog.Likes, blog.Dislikes, userID, intent)

	if err := h.blogRepository.UpdateReactions(c.Request().Context(), blogID, likes, dislikes); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Blog not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// userReaction is null on the wire when the vote toggled off
	var userReaction *string
	outcome := "cleared"
	if result != nil {
		s := string(*result)
		userReaction = &s
		outcome = s
	}
	metrics.ReactionsApplied.WithLabelValues(string(intent), outcome).Inc()

	return c.JSON(http.StatusOK, echo.Map{
		"success":      true,
		"likes":        len(likes),
		"dislikes":     len(dislikes),
		"userReaction": userReaction,
	})
}
