// Command seed populates a running quillbase server with fake data: an
// author account, a handful of blogs with comments, and some reaction votes.
package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

var baseURL = envOr("SEED_BASE_URL", "http://localhost:8080")

func main() {
	gofakeit.Seed(time.Now().UnixNano())

	email := gofakeit.Email()
	password := "seedpassword1"

	// 1. Register an author and grab a token.
	token := signup(email, password)
	if token == "" {
		token = signin(email, password)
	}
	if token == "" {
		log.Fatal("Could not obtain token, aborting seeding process")
	}

	// 2. Create blogs with cover images.
	var blogIDs []string
	for i := 0; i < 5; i++ {
		if id := createBlog(token); id != "" {
			blogIDs = append(blogIDs, id)
		}
	}

	// 3. Submit comments and cast reactions.
	for _, id := range blogIDs {
		for j := 0; j < 3; j++ {
			submitComment(id)
		}
		react(token, id, "like")
	}

	log.Printf("Seeded %d blogs", len(blogIDs))
}

func signup(email, password string) string {
	body, _ := json.Marshal(map[string]string{
		"name":     gofakeit.Name(),
		"email":    email,
		"password": password,
	})
	resp, err := http.Post(baseURL+"/api/v1/auth/signup", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("signup failed: %v", err)
		return ""
	}
	defer resp.Body.Close()
	return tokenFrom(resp)
}

func signin(email, password string) string {
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	resp, err := http.Post(baseURL+"/api/v1/auth/signin", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("signin failed: %v", err)
		return ""
	}
	defer resp.Body.Close()
	return tokenFrom(resp)
}

func createBlog(token string) string {
	blog := map[string]interface{}{
		"title":        gofakeit.Sentence(5),
		"sub_title":    gofakeit.Sentence(8),
		"description":  gofakeit.Paragraph(3, 4, 10, " "),
		"category":     gofakeit.RandomString([]string{"Technology", "Lifestyle", "Finance", "Startup"}),
		"is_published": true,
	}
	blogJSON, _ := json.Marshal(blog)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	_ = w.WriteField("blog", string(blogJSON))
	fw, _ := w.CreateFormFile("image", "cover.png")
	_, _ = fw.Write(gofakeit.ImagePng(320, 180))
	_ = w.Close()

	req, _ := http.NewRequest(http.MethodPost, baseURL+"/api/v1/blogs", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Printf("create blog failed: %v", err)
		return ""
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("create blog: status %d: %s", resp.StatusCode, body)
		return ""
	}

	// The create endpoint returns a confirmation only, so pick the id up
	// from the public listing.
	return latestBlogID()
}

func latestBlogID() string {
	resp, err := http.Get(baseURL + "/api/v1/blogs")
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	var out struct {
		Blogs []struct {
			ID string `json:"id"`
		} `json:"blogs"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || len(out.Blogs) == 0 {
		return ""
	}
	return out.Blogs[0].ID
}

func submitComment(blogID string) {
	body, _ := json.Marshal(map[string]string{
		"name":    gofakeit.Name(),
		"content": gofakeit.Sentence(12),
	})
	resp, err := http.Post(baseURL+"/api/v1/blogs/"+blogID+"/comments", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("submit comment failed: %v", err)
		return
	}
	resp.Body.Close()
}

func react(token, blogID, intent string) {
	req, _ := http.NewRequest(http.MethodPost, baseURL+"/api/v1/blogs/"+blogID+"/"+intent, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Printf("react failed: %v", err)
		return
	}
	resp.Body.Close()
}

func tokenFrom(resp *http.Response) string {
	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return ""
	}
	return out.Token
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
