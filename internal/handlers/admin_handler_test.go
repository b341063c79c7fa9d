package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arnobk/quillbase/backend/internal/models"
	"github.com/labstack/echo/v4"
)

func newAdminContext(e *echo.Echo, commentID string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(commentID)
	c.Set("user", &models.JwtCustomClaims{UserID: 1, Email: "admin@example.com"})
	return c, rec
}

// TestApproveReleasesComment walks the full moderation gate: a submitted
// comment is invisible until approval and visible afterwards.
func TestApproveReleasesComment(t *testing.T) {
	e := echo.New()
	blogRepo := newFakeBlogRepository()
	commentRepo := newFakeCommentRepository()
	blogID := blogRepo.add(&models.Blog{Title: "first post", IsPublished: true})
	commentH := NewCommentHandler(commentRepo, blogRepo)
	adminH := NewAdminHandler(commentRepo, blogRepo)

	c, _ := newCommentContext(e, blogID, `{"name":"Reader","content":"Great read!"}`)
	if err := commentH.SubmitComment(c); err != nil {
		t.Fatalf("SubmitComment() error = %v", err)
	}

	commentID := commentRepo.comments[0].ID.Hex()

	approveCtx, rec := newAdminContext(e, commentID)
	if err := adminH.ApproveComment(approveCtx); err != nil {
		t.Fatalf("ApproveComment() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	listCtx, listRec := newCommentContext(e, blogID, "")
	if err := commentH.GetApprovedComments(listCtx); err != nil {
		t.Fatalf("GetApprovedComments() error = %v", err)
	}
	var out struct {
		Comments []models.Comment `json:"comments"`
	}
	if err := json.Unmarshal(listRec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding listing: %v", err)
	}
	if len(out.Comments) != 1 {
		t.Fatalf("listing returned %d comments after approval, want 1", len(out.Comments))
	}
	if !out.Comments[0].IsApproved {
		t.Error("listed comment not marked approved")
	}
}

func TestApproveCommentNotFound(t *testing.T) {
	e := echo.New()
	adminH := NewAdminHandler(newFakeCommentRepository(), newFakeBlogRepository())

	c, _ := newAdminContext(e, "64f000000000000000000000")
	err := adminH.ApproveComment(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Fatalf("ApproveComment() error = %v, want 404", err)
	}
}

func TestDeleteComment(t *testing.T) {
	e := echo.New()
	blogRepo := newFakeBlogRepository()
	commentRepo := newFakeCommentRepository()
	blog := &models.Blog{Title: "first post"}
	blogRepo.add(blog)
	adminH := NewAdminHandler(commentRepo, blogRepo)

	comment := &models.Comment{BlogID: blog.ID, Name: "Reader", Content: "spam"}
	if err := commentRepo.CreateComment(context.Background(), comment); err != nil {
		t.Fatalf("CreateComment() error = %v", err)
	}

	c, _ := newAdminContext(e, comment.ID.Hex())
	if err := adminH.DeleteComment(c); err != nil {
		t.Fatalf("DeleteComment() error = %v", err)
	}
	if len(commentRepo.comments) != 0 {
		t.Errorf("stored %d comments after delete, want 0", len(commentRepo.comments))
	}
}

func TestGetDashboard(t *testing.T) {
	e := echo.New()
	blogRepo := newFakeBlogRepository()
	commentRepo := newFakeCommentRepository()
	blog := &models.Blog{Title: "draft post", IsPublished: false}
	blogRepo.add(blog)
	blogRepo.add(&models.Blog{Title: "live post", IsPublished: true})
	if err := commentRepo.CreateComment(context.Background(), &models.Comment{BlogID: blog.ID, Name: "Reader", Content: "hi"}); err != nil {
		t.Fatalf("CreateComment() error = %v", err)
	}
	adminH := NewAdminHandler(commentRepo, blogRepo)

	c, rec := newAdminContext(e, "")
	if err := adminH.GetDashboard(c); err != nil {
		t.Fatalf("GetDashboard() error = %v", err)
	}

	var out struct {
		Dashboard struct {
			Blogs    int64 `json:"blogs"`
			Comments int64 `json:"comments"`
			Drafts   int64 `json:"drafts"`
		} `json:"dashboard"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if out.Dashboard.Blogs != 2 || out.Dashboard.Comments != 1 || out.Dashboard.Drafts != 1 {
		t.Errorf("dashboard = %+v, want blogs=2 comments=1 drafts=1", out.Dashboard)
	}
}
