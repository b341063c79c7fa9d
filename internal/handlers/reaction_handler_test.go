package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arnobk/quillbase/backend/internal/models"
	"github.com/labstack/echo/v4"
)

type reactionResponse struct {
	Success      bool    `json:"success"`
	Likes        int     `json:"likes"`
	Dislikes     int     `json:"dislikes"`
	UserReaction *string `json:"userReaction"`
}

func newReactionContext(e *echo.Echo, blogID string, userID uint) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(blogID)
	c.Set("user", &models.JwtCustomClaims{UserID: userID, Email: "author@example.com"})
	return c, rec
}

func decodeReaction(t *testing.T, rec *httptest.ResponseRecorder) reactionResponse {
	t.Helper()
	var out reactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return out
}

func TestLikeBlog(t *testing.T) {
	e := echo.New()
	blogRepo := newFakeBlogRepository()
	blogID := blogRepo.add(&models.Blog{Title: "first post", IsPublished: true})
	h := NewReactionHandler(blogRepo)

	c, rec := newReactionContext(e, blogID, 1)
	if err := h.LikeBlog(c); err != nil {
		t.Fatalf("LikeBlog() error = %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	out := decodeReaction(t, rec)
	if out.Likes != 1 || out.Dislikes != 0 {
		t.Errorf("likes=%d dislikes=%d, want 1/0", out.Likes, out.Dislikes)
	}
	if out.UserReaction == nil || *out.UserReaction != "like" {
		t.Errorf("userReaction = %v, want like", out.UserReaction)
	}
}

func TestLikeBlogNotFound(t *testing.T) {
	e := echo.New()
	h := NewReactionHandler(newFakeBlogRepository())

	c, _ := newReactionContext(e, "64f000000000000000000000", 1)
	err := h.LikeBlog(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Fatalf("LikeBlog() error = %v, want 404", err)
	}
}

func TestLikeBlogUnauthenticated(t *testing.T) {
	e := echo.New()
	blogRepo := newFakeBlogRepository()
	blogID := blogRepo.add(&models.Blog{Title: "first post"})
	h := NewReactionHandler(blogRepo)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues(blogID)

	err := h.LikeBlog(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("LikeBlog() without claims error = %v, want 401", err)
	}
}

// TestReactionScenario walks the like, like again, dislike sequence and
// checks counts and reaction state after every step.
func TestReactionScenario(t *testing.T) {
	e := echo.New()
	blogRepo := newFakeBlogRepository()
	blogID := blogRepo.add(&models.Blog{Title: "first post"})
	h := NewReactionHandler(blogRepo)

	steps := []struct {
		handler      func(echo.Context) error
		wantLikes    int
		wantDislikes int
		wantReaction *string
	}{
		{h.LikeBlog, 1, 0, strPtr("like")},
		{h.LikeBlog, 0, 0, nil},
		{h.DislikeBlog, 0, 1, strPtr("dislike")},
	}

	for i, step := range steps {
		c, rec := newReactionContext(e, blogID, 1)
		if err := step.handler(c); err != nil {
			t.Fatalf("step %d: error = %v", i, err)
		}
		out := decodeReaction(t, rec)
		if out.Likes != step.wantLikes || out.Dislikes != step.wantDislikes {
			t.Errorf("step %d: likes=%d dislikes=%d, want %d/%d", i, out.Likes, out.Dislikes, step.wantLikes, step.wantDislikes)
		}
		switch {
		case step.wantReaction == nil && out.UserReaction != nil:
			t.Errorf("step %d: userReaction = %q, want null", i, *out.UserReaction)
		case step.wantReaction != nil && (out.UserReaction == nil || *out.UserReaction != *step.wantReaction):
			t.Errorf("step %d: userReaction = %v, want %q", i, out.UserReaction, *step.wantReaction)
		}
	}
}

// TestReactionSwitch checks that flipping from like to dislike moves the user
// between the sets in a single step.
func TestReactionSwitch(t *testing.T) {
	e := echo.New()
	blogRepo := newFakeBlogRepository()
	blogID := blogRepo.add(&models.Blog{Title: "first post"})
	h := NewReactionHandler(blogRepo)

	c, _ := newReactionContext(e, blogID, 1)
	if err := h.LikeBlog(c); err != nil {
		t.Fatalf("LikeBlog() error = %v", err)
	}

	c, rec := newReactionContext(e, blogID, 1)
	if err := h.DislikeBlog(c); err != nil {
		t.Fatalf("DislikeBlog() error = %v", err)
	}

	out := decodeReaction(t, rec)
	if out.Likes != 0 || out.Dislikes != 1 {
		t.Errorf("likes=%d dislikes=%d, want 0/1", out.Likes, out.Dislikes)
	}
	if out.UserReaction == nil || *out.UserReaction != "dislike" {
		t.Errorf("userReaction = %v, want dislike", out.UserReaction)
	}

	stored := blogRepo.blogs[blogID]
	if len(stored.Likes) != 0 || len(stored.Dislikes) != 1 || stored.Dislikes[0] != "1" {
		t.Errorf("stored sets likes=%v dislikes=%v", stored.Likes, stored.Dislikes)
	}
}

// TestReactionExclusivity checks that no vote sequence from two users can
// leave a user in both stored sets.
func TestReactionExclusivity(t *testing.T) {
	e := echo.New()
	blogRepo := newFakeBlogRepository()
	blogID := blogRepo.add(&models.Blog{Title: "first post"})
	h := NewReactionHandler(blogRepo)

	sequence := []struct {
		userID  uint
		handler func(echo.Context) error
	}{
		{1, h.LikeBlog},
		{2, h.DislikeBlog},
		{1, h.DislikeBlog},
		{2, h.LikeBlog},
		{1, h.LikeBlog},
		{2, h.DislikeBlog},
	}

	for i, step := range sequence {
		c, _ := newReactionContext(e, blogID, step.userID)
		if err := step.handler(c); err != nil {
			t.Fatalf("step %d: error = %v", i, err)
		}

		stored := blogRepo.blogs[blogID]
		for _, id := range stored.Likes {
			for _, other := range stored.Dislikes {
				if id == other {
					t.Fatalf("step %d: user %s in both sets", i, id)
				}
			}
		}
	}
}

func strPtr(s string) *string { return &s }
